package service

import (
	"fmt"
	"sort"

	helper "hrdelegation_backend/internals/helpers"

	"hrdelegation_backend/internals/features/hr/delegations/model"
)

// Grouping index: dua view turunan dari koleksi record yang sama.
// Murni dari input — tidak ada cache sendiri, jadi tidak mungkin basi;
// dihitung ulang setiap koleksi berubah (setelah fetch / setelah propagate).

// Label sentinel "buat baru" di urutan pertama opsi.
const (
	NewSecondaryGroupLabel = "إنشاء ايفاد جديد"
	NewLetterGroupLabel    = "إنشاء أمر إداري جديد"
)

// SecondaryOption: satu opsi secondary group. SecondaryID nil = sentinel buat baru.
type SecondaryOption struct {
	SecondaryID *int   `json:"secondary_id"`
	Label       string `json:"label"`
	Count       int    `json:"count"`
}

// LetterOption: satu opsi letter group. LetterNumber kosong = sentinel buat baru.
type LetterOption struct {
	LetterNumber string `json:"letter_number"`
	Label        string `json:"label"`
	Count        int    `json:"count"`
}

type GroupingIndex struct {
	SecondaryGroups []SecondaryOption `json:"secondary_groups"`
	LetterGroups    []LetterOption    `json:"letter_groups"`
}

// PartitionBySecondaryID: partisi record ber-secondary-id (non-null) per id.
// Urutan anggota tiap grup mengikuti urutan sumber, jadi anggota pertama =
// record representatif. Keys dikembalikan menurun (grup terbaru dulu).
func PartitionBySecondaryID(records []model.DelegationModel) (map[int][]model.DelegationModel, []int) {
	groups := map[int][]model.DelegationModel{}
	keys := []int{}
	for _, r := range records {
		if r.SecondaryID == nil {
			continue
		}
		id := *r.SecondaryID
		if _, ok := groups[id]; !ok {
			keys = append(keys, id)
		}
		groups[id] = append(groups[id], r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	return groups, keys
}

// PartitionByLetterNumber: analog untuk nomor amar administratif.
// Keys menurun leksikografis.
func PartitionByLetterNumber(records []model.DelegationModel) (map[string][]model.DelegationModel, []string) {
	groups := map[string][]model.DelegationModel{}
	keys := []string{}
	for _, r := range records {
		if r.LetterNumber == "" {
			continue
		}
		if _, ok := groups[r.LetterNumber]; !ok {
			keys = append(keys, r.LetterNumber)
		}
		groups[r.LetterNumber] = append(groups[r.LetterNumber], r)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return groups, keys
}

// SecondaryGroupOptions: opsi dropdown secondary group, sentinel di depan.
func SecondaryGroupOptions(records []model.DelegationModel) []SecondaryOption {
	groups, keys := PartitionBySecondaryID(records)

	out := make([]SecondaryOption, 0, len(keys)+1)
	out = append(out, SecondaryOption{SecondaryID: nil, Label: NewSecondaryGroupLabel})

	for _, key := range keys {
		group := groups[key]
		rep := group[0]
		firstEmployee := rep.EmployeeNumber
		if firstEmployee == "" {
			firstEmployee = "غير متوفر"
		}
		id := key
		out = append(out, SecondaryOption{
			SecondaryID: &id,
			Label:       fmt.Sprintf("(%d) اول موفد: %s, العدد: %d", key, firstEmployee, len(group)),
			Count:       len(group),
		})
	}
	return out
}

// LetterGroupOptions: opsi dropdown amar administratif; label menyertakan
// tanggal surat milik record representatif.
func LetterGroupOptions(records []model.DelegationModel) []LetterOption {
	groups, keys := PartitionByLetterNumber(records)

	out := make([]LetterOption, 0, len(keys)+1)
	out = append(out, LetterOption{LetterNumber: "", Label: NewLetterGroupLabel})

	for _, key := range keys {
		group := groups[key]
		rep := group[0]
		out = append(out, LetterOption{
			LetterNumber: key,
			Label:        fmt.Sprintf("رقم %s - تاريخ %s - عدد الموفدين: %d", key, helper.FormatDate(rep.LetterDate), len(group)),
			Count:        len(group),
		})
	}
	return out
}

// Recompute: hitung kedua view sekaligus dari koleksi terkini.
func Recompute(records []model.DelegationModel) GroupingIndex {
	return GroupingIndex{
		SecondaryGroups: SecondaryGroupOptions(records),
		LetterGroups:    LetterGroupOptions(records),
	}
}

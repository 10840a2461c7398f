package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrdelegation_backend/internals/features/hr/delegations/model"
)

func dateAt(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDraftStartCachesNextSecondaryID(t *testing.T) {
	store := newFakeStore(
		model.DelegationModel{SecondaryID: intp(4)},
		model.DelegationModel{SecondaryID: intp(7)},
		model.DelegationModel{SecondaryID: nil},
	)
	drafts := NewDraftSessions(store)

	s, err := drafts.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.NextSecondaryID != 8 {
		t.Errorf("NextSecondaryID = %d, want 8 (max+1)", s.NextSecondaryID)
	}
	if s.SessionID == "" {
		t.Error("SessionID kosong")
	}
}

func TestDraftStartEmptyStore(t *testing.T) {
	drafts := NewDraftSessions(newFakeStore())
	s, err := drafts.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.NextSecondaryID != 1 {
		t.Errorf("NextSecondaryID = %d, want 1 untuk store kosong", s.NextSecondaryID)
	}
}

func TestPrefillSentinelUsesCachedID(t *testing.T) {
	store := newFakeStore(model.DelegationModel{SecondaryID: intp(5)})
	drafts := NewDraftSessions(store)
	s, _ := drafts.Start(context.Background())

	// record baru masuk SETELAH sesi dibuka — next id sesi tidak berubah
	store.Create(context.Background(), &model.DelegationModel{SecondaryID: intp(99)})

	got, err := drafts.PrefillBySecondaryID(context.Background(), s.SessionID, nil)
	if err != nil {
		t.Fatalf("PrefillBySecondaryID(nil): %v", err)
	}
	if got.Form.SecondaryID == nil || *got.Form.SecondaryID != 6 {
		t.Errorf("SecondaryID = %v, want 6 (cache saat sesi dibuka)", got.Form.SecondaryID)
	}
}

func TestPrefillBySecondaryIDMergesSharedFields(t *testing.T) {
	travel := dateAt(2026, 1, 15)
	rep := model.DelegationModel{
		DelegationID:      1,
		DelegationType:    "داخلي",
		EmployeeNumber:    "10231",
		EmployeeName:      "أحمد كاظم جاسم",
		SecondaryID:       intp(3),
		LetterNumber:      "123",
		LetterDate:        dateAt(2026, 1, 12),
		TravelDate:        travel,
		TravelTimeOption:  "قبل الظهر",
		Province:          "بغداد",
		DestinationEntity: "وزارة التخطيط",
		Purpose:           "متابعة المشاريع المشتركة",
		LetterFile:        "delegations/surat_old.pdf",
		IsApproved:        true,
		ApprovalDate:      dateAt(2026, 1, 20),
		TravelDay:         "خطأ", // nilai basi yang sengaja salah
	}
	store := newFakeStore(rep)
	drafts := NewDraftSessions(store)
	s, _ := drafts.Start(context.Background())

	got, err := drafts.PrefillBySecondaryID(context.Background(), s.SessionID, intp(3))
	if err != nil {
		t.Fatalf("PrefillBySecondaryID: %v", err)
	}
	f := got.Form

	// atribut perjalanan bersama ikut
	if f.Province != "بغداد" || f.Purpose != "متابعة المشاريع المشتركة" || f.DestinationEntity != "وزارة التخطيط" {
		t.Errorf("field bersama tidak ter-merge: %+v", f)
	}
	if f.LetterNumber != "123" || f.SecondaryID == nil || *f.SecondaryID != 3 {
		t.Errorf("identitas grup salah: letter=%q secondary=%v", f.LetterNumber, f.SecondaryID)
	}
	// identitas pegawai, dokumen, dan approval TIDAK ikut
	if f.EmployeeNumber != "" || f.EmployeeName != "" {
		t.Errorf("data pegawai ikut ter-merge: %q %q", f.EmployeeNumber, f.EmployeeName)
	}
	if f.LetterFile != "" {
		t.Errorf("dokumen ikut ter-merge: %q", f.LetterFile)
	}
	if f.IsApproved || f.ApprovalDate != nil {
		t.Errorf("status approval ikut ter-merge: %v %v", f.IsApproved, f.ApprovalDate)
	}
	// nama hari dihitung ulang dari tanggal, bukan disalin dari payload sumber
	if f.TravelDay != "الخميس" { // 2026-01-15 = Kamis
		t.Errorf("TravelDay = %q, want الخميس (hasil hitung ulang)", f.TravelDay)
	}
}

func TestPrefillFetchFailureLeavesDraftUntouched(t *testing.T) {
	store := newFakeStore(model.DelegationModel{SecondaryID: intp(1), Province: "بغداد"})
	store.failFirstBySecondaryID = true
	drafts := NewDraftSessions(store)
	s, _ := drafts.Start(context.Background())

	if _, err := drafts.PrefillBySecondaryID(context.Background(), s.SessionID, intp(1)); err == nil {
		t.Fatal("fetch gagal harus mengembalikan error")
	}

	after, err := drafts.Get(s.SessionID)
	if err != nil {
		t.Fatalf("sesi hilang setelah fetch gagal: %v", err)
	}
	if after.Form.Province != "" || after.Form.SecondaryID != nil {
		t.Errorf("draft berubah padahal fetch gagal: %+v", after.Form)
	}
}

func TestPrefillByLetterNumber(t *testing.T) {
	rep := model.DelegationModel{
		DelegationID: 1,
		SecondaryID:  intp(2),
		LetterNumber: "123",
		Province:     "بغداد",
		Purpose:      "متابعة",
	}
	store := newFakeStore(rep)
	drafts := NewDraftSessions(store)
	s, _ := drafts.Start(context.Background())

	got, err := drafts.PrefillByLetterNumber(context.Background(), s.SessionID, "123")
	if err != nil {
		t.Fatalf("PrefillByLetterNumber: %v", err)
	}
	if got.Form.LetterNumber != "123" || got.Form.Province != "بغداد" {
		t.Errorf("prefill letter tidak ter-merge: %+v", got.Form)
	}
	if got.Form.SecondaryID == nil || *got.Form.SecondaryID != 2 {
		t.Errorf("secondary id representatif tidak ikut: %v", got.Form.SecondaryID)
	}

	// sentinel: letter dikosongkan, tanpa fetch
	got, err = drafts.PrefillByLetterNumber(context.Background(), s.SessionID, "")
	if err != nil {
		t.Fatalf("PrefillByLetterNumber(sentinel): %v", err)
	}
	if got.Form.LetterNumber != "" {
		t.Errorf("sentinel harus mengosongkan letter number, dapat %q", got.Form.LetterNumber)
	}
}

func TestLoadForEditRejectsApproved(t *testing.T) {
	store := newFakeStore(model.DelegationModel{DelegationID: 1, IsApproved: true})
	drafts := NewDraftSessions(store)
	s, _ := drafts.Start(context.Background())

	_, err := drafts.LoadForEdit(context.Background(), s.SessionID, 1)
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusForbidden {
		t.Fatalf("record approved harus 403, dapat %v", err)
	}
}

func TestLoadForEditRecomputesDayNames(t *testing.T) {
	store := newFakeStore(model.DelegationModel{
		DelegationID: 1,
		TravelDate:   dateAt(2026, 1, 15),
		TravelDay:    "nilai-basi",
	})
	drafts := NewDraftSessions(store)
	s, _ := drafts.Start(context.Background())

	got, err := drafts.LoadForEdit(context.Background(), s.SessionID, 1)
	if err != nil {
		t.Fatalf("LoadForEdit: %v", err)
	}
	if got.EditingID == nil || *got.EditingID != 1 {
		t.Errorf("EditingID = %v, want 1", got.EditingID)
	}
	if got.Form.TravelDay != "الخميس" {
		t.Errorf("TravelDay = %q, want الخميس", got.Form.TravelDay)
	}
}

func TestDiscard(t *testing.T) {
	drafts := NewDraftSessions(newFakeStore())
	s, _ := drafts.Start(context.Background())
	drafts.Discard(s.SessionID)
	if _, err := drafts.Get(s.SessionID); err == nil {
		t.Error("sesi masih bisa diambil setelah discard")
	}
}

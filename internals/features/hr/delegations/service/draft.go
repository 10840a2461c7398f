package service

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "hrdelegation_backend/internals/helpers"

	"hrdelegation_backend/internals/features/hr/delegations/dto"
	"hrdelegation_backend/internals/features/hr/delegations/model"
)

// Draft form state: satu record delegasi yang sedang disusun, milik satu sesi
// editing. Hilang saat submit sukses atau discard; tidak pernah dibagi antar
// sesi.
//
// Saat sesi dibuka, max(secondary_id)+1 diambil SEKALI lalu dicache — dua sesi
// paralel bisa dapat angka yang sama (race yang memang ada di sistem asal,
// lihat DESIGN.md).
type DraftSession struct {
	SessionID       string                `json:"session_id"`
	NextSecondaryID int                   `json:"next_secondary_id"`
	EditingID       *uint                 `json:"editing_id"` // nil = create baru
	Form            model.DelegationModel `json:"form"`
}

type DraftSessions struct {
	mu       sync.Mutex
	store    DelegationStore
	sessions map[string]*DraftSession
}

func NewDraftSessions(store DelegationStore) *DraftSessions {
	return &DraftSessions{
		store:    store,
		sessions: map[string]*DraftSession{},
	}
}

// Start: buka sesi draft baru dan cache next secondary id untuk sesi ini.
func (d *DraftSessions) Start(ctx context.Context) (DraftSession, error) {
	last, err := d.store.LastSecondaryID(ctx)
	if err != nil {
		return DraftSession{}, err
	}

	s := &DraftSession{
		SessionID:       uuid.NewString(),
		NextSecondaryID: last + 1,
	}

	d.mu.Lock()
	d.sessions[s.SessionID] = s
	d.mu.Unlock()

	return *s, nil
}

func (d *DraftSessions) get(sessionID string) (*DraftSession, error) {
	s, ok := d.sessions[sessionID]
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "جلسة التحرير غير موجودة")
	}
	return s, nil
}

// Get: snapshot sesi (copy) untuk dirender ke client.
func (d *DraftSessions) Get(sessionID string) (DraftSession, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, err := d.get(sessionID)
	if err != nil {
		return DraftSession{}, err
	}
	return *s, nil
}

func (d *DraftSessions) Discard(sessionID string) {
	d.mu.Lock()
	delete(d.sessions, sessionID)
	d.mu.Unlock()
}

// PrefillBySecondaryID: isi draft dari record representatif grup. secondaryID
// nil = sentinel "buat baru": tanpa fetch, draft langsung dapat next id yang
// dicache saat sesi dibuka.
//
// Kalau fetch gagal, draft TIDAK berubah — error dikembalikan untuk
// ditampilkan, sesi tetap bisa dipakai.
func (d *DraftSessions) PrefillBySecondaryID(ctx context.Context, sessionID string, secondaryID *int) (DraftSession, error) {
	if secondaryID == nil {
		d.mu.Lock()
		defer d.mu.Unlock()
		s, err := d.get(sessionID)
		if err != nil {
			return DraftSession{}, err
		}
		next := s.NextSecondaryID
		s.Form.SecondaryID = &next
		return *s, nil
	}

	rep, err := d.store.FirstBySecondaryID(ctx, *secondaryID)
	if err != nil {
		return DraftSession{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	s, err := d.get(sessionID)
	if err != nil {
		return DraftSession{}, err
	}
	mergeSharedFields(&s.Form, rep)
	id := *secondaryID
	s.Form.SecondaryID = &id
	return *s, nil
}

// PrefillByLetterNumber: isi draft dari record pertama amar administratif
// tersebut. letterNumber kosong = sentinel, tidak ada fetch dan tidak ada
// perubahan draft selain mengosongkan nomor surat.
func (d *DraftSessions) PrefillByLetterNumber(ctx context.Context, sessionID, letterNumber string) (DraftSession, error) {
	if letterNumber == "" {
		d.mu.Lock()
		defer d.mu.Unlock()
		s, err := d.get(sessionID)
		if err != nil {
			return DraftSession{}, err
		}
		s.Form.LetterNumber = ""
		return *s, nil
	}

	rep, err := d.store.FirstByLetterNumber(ctx, letterNumber)
	if err != nil {
		return DraftSession{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	s, err := d.get(sessionID)
	if err != nil {
		return DraftSession{}, err
	}
	mergeSharedFields(&s.Form, rep)
	s.Form.LetterNumber = letterNumber
	s.Form.SecondaryID = rep.SecondaryID
	return *s, nil
}

// LoadForEdit: muat record tersimpan ke draft untuk diedit. Record approved
// ditolak DI SINI (policy violation) — sebelum ada niat menulis apa pun.
func (d *DraftSessions) LoadForEdit(ctx context.Context, sessionID string, recordID uint) (DraftSession, error) {
	rec, err := d.store.Get(ctx, recordID)
	if err != nil {
		return DraftSession{}, err
	}
	if err := EnsureMutable(rec); err != nil {
		return DraftSession{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	s, err := d.get(sessionID)
	if err != nil {
		return DraftSession{}, err
	}

	form := *rec
	// dokumen lama tetap tercatat di form; normalisasi tanggal + hitung ulang hari
	normalizeDates(&form)
	dto.RecomputeDayNames(&form)
	s.Form = form
	id := rec.DelegationID
	s.EditingID = &id
	return *s, nil
}

// mergeSharedFields: allow-list eksplisit field yang boleh menular lewat
// prefill. Identitas (id, data pegawai), dokumen, dan status approval TIDAK
// pernah ikut — hanya atribut perjalanan bersama.
// Nama hari dihitung ulang lokal, tidak pernah disalin dari payload sumber.
func mergeSharedFields(dst *model.DelegationModel, src *model.DelegationModel) {
	dst.DelegationType = src.DelegationType

	dst.LetterNumber = src.LetterNumber
	dst.LetterDate = helper.DateOnly(src.LetterDate)

	dst.DisengagementDate = helper.DateOnly(src.DisengagementDate)
	dst.DisengagementTimeOption = src.DisengagementTimeOption

	dst.DisengagementLetterDate = helper.DateOnly(src.DisengagementLetterDate)
	dst.DisengagementLetterNumber = src.DisengagementLetterNumber

	dst.TravelDate = helper.DateOnly(src.TravelDate)
	dst.TravelTimeOption = src.TravelTimeOption

	dst.ReturnDate = helper.DateOnly(src.ReturnDate)
	dst.ReturnTimeOption = src.ReturnTimeOption

	dst.StartWorkDate = helper.DateOnly(src.StartWorkDate)
	dst.StartWorkTimeOption = src.StartWorkTimeOption

	dst.ExtensionLetterDate = helper.DateOnly(src.ExtensionLetterDate)
	dst.ExtensionLetterNumber = src.ExtensionLetterNumber
	dst.ExtensionPeriod = src.ExtensionPeriod

	dst.DelegationPeriod = src.DelegationPeriod
	dst.Province = src.Province
	dst.DestinationEntity = src.DestinationEntity
	dst.Purpose = src.Purpose
	dst.Notes = src.Notes

	dto.RecomputeDayNames(dst)
}

func normalizeDates(m *model.DelegationModel) {
	m.LetterDate = helper.DateOnly(m.LetterDate)
	m.DisengagementDate = helper.DateOnly(m.DisengagementDate)
	m.DisengagementLetterDate = helper.DateOnly(m.DisengagementLetterDate)
	m.TravelDate = helper.DateOnly(m.TravelDate)
	m.ReturnDate = helper.DateOnly(m.ReturnDate)
	m.StartWorkDate = helper.DateOnly(m.StartWorkDate)
	m.ExtensionLetterDate = helper.DateOnly(m.ExtensionLetterDate)
}

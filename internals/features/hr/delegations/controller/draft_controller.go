package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "hrdelegation_backend/internals/helpers"
	helperOSS "hrdelegation_backend/internals/helpers/oss"

	"hrdelegation_backend/internals/features/hr/delegations/service"
)

// Sesi draft: satu form ikatan dinas yang sedang disusun, hidup di server
// selama sesi editing. Prefill mengisi draft dari record representatif grup;
// submit menulis ke store lalu membuang sesi.
type DraftController struct {
	Drafts  *service.DraftSessions
	Store   service.DelegationStore
	Storage helperOSS.DocumentStorage
}

func NewDraftController(store service.DelegationStore, storage helperOSS.DocumentStorage) *DraftController {
	return &DraftController{
		Drafts:  service.NewDraftSessions(store),
		Store:   store,
		Storage: storage,
	}
}

type prefillSecondaryRequest struct {
	SecondaryID *int `json:"secondary_id"`
}

type prefillLetterRequest struct {
	LetterNumber string `json:"letter_number"`
}

// Start: buka sesi baru (next secondary id diambil sekali di sini).
func (ctrl *DraftController) Start(c *fiber.Ctx) error {
	s, err := ctrl.Drafts.Start(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "تم إنشاء جلسة جديدة", s)
}

func (ctrl *DraftController) Get(c *fiber.Ctx) error {
	s, err := ctrl.Drafts.Get(c.Params("session"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", s)
}

func (ctrl *DraftController) Discard(c *fiber.Ctx) error {
	ctrl.Drafts.Discard(c.Params("session"))
	return helper.JsonDeleted(c, "تم إلغاء الجلسة", nil)
}

// PrefillSecondary: secondary_id null = sentinel "buat baru" → draft dapat
// next id yang dicache; selain itu draft diisi dari record representatif.
func (ctrl *DraftController) PrefillSecondary(c *fiber.Ctx) error {
	var req prefillSecondaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	s, err := ctrl.Drafts.PrefillBySecondaryID(c.UserContext(), c.Params("session"), req.SecondaryID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", s)
}

func (ctrl *DraftController) PrefillLetter(c *fiber.Ctx) error {
	var req prefillLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	s, err := ctrl.Drafts.PrefillByLetterNumber(c.UserContext(), c.Params("session"), req.LetterNumber)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", s)
}

// LoadForEdit: muat record tersimpan ke draft. Record approved ditolak
// sebelum ada apa pun yang ditulis.
func (ctrl *DraftController) LoadForEdit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	s, err := ctrl.Drafts.LoadForEdit(c.UserContext(), c.Params("session"), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", s)
}

// Submit: form final (multipart) + konteks sesi → create atau update.
// Gagal = sesi dan draft tetap utuh, bisa dicoba lagi; sukses = sesi dibuang.
func (ctrl *DraftController) Submit(c *fiber.Ctx) error {
	sessionID := c.Params("session")
	s, err := ctrl.Drafts.Get(sessionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	delegCtrl := &DelegationController{Store: ctrl.Store, Storage: ctrl.Storage}

	if s.EditingID != nil {
		rec, err := ctrl.Store.Get(c.UserContext(), *s.EditingID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if err := service.EnsureMutable(rec); err != nil {
			return helper.FromFiberError(c, err)
		}
		m, err := delegCtrl.buildModelFromForm(c, rec)
		if err != nil {
			return respondFormError(c, err)
		}
		if m.SecondaryID == nil {
			m.SecondaryID = s.Form.SecondaryID
		}
		updated, err := ctrl.Store.Update(c.UserContext(), *s.EditingID, m)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		ctrl.Drafts.Discard(sessionID)
		return helper.JsonUpdated(c, "تم التحديث بنجاح", updated)
	}

	m, err := delegCtrl.buildModelFromForm(c, nil)
	if err != nil {
		return respondFormError(c, err)
	}
	if m.SecondaryID == nil {
		m.SecondaryID = s.Form.SecondaryID
	}
	if err := ctrl.Store.Create(c.UserContext(), m); err != nil {
		return helper.FromFiberError(c, err)
	}
	ctrl.Drafts.Discard(sessionID)
	return helper.JsonCreated(c, "تمت الإضافة بنجاح", m)
}

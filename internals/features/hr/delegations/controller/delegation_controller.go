package controller

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrdelegation_backend/internals/constants"
	helper "hrdelegation_backend/internals/helpers"
	helperOSS "hrdelegation_backend/internals/helpers/oss"
	authMiddleware "hrdelegation_backend/internals/middlewares/auth"

	"hrdelegation_backend/internals/features/hr/delegations/dto"
	"hrdelegation_backend/internals/features/hr/delegations/model"
	"hrdelegation_backend/internals/features/hr/delegations/service"
)

// Nama field multipart untuk tiga surat delegasi
var delegationFileFields = []string{"letter_file", "extension_letter_file", "disengagement_letter_file"}

type DelegationController struct {
	Store   service.DelegationStore
	Storage helperOSS.DocumentStorage
}

func NewDelegationController(store service.DelegationStore, storage helperOSS.DocumentStorage) *DelegationController {
	return &DelegationController{Store: store, Storage: storage}
}

// GetAll: list ikatan dinas. User non-privileged hanya melihat yang Pending.
func (ctrl *DelegationController) GetAll(c *fiber.Ctx) error {
	roles := authMiddleware.RolesFromLocals(c)

	records, err := ctrl.Store.List(c.UserContext(), service.VisibleOnlyPending(roles))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// pagination opsional (?page= & ?per_page=); default: semua
	if c.Query("page") == "" {
		return helper.JsonList(c, "", records, nil)
	}
	paging := helper.ResolvePaging(c, 20, 100)
	total := int64(len(records))
	lo := paging.Offset
	if lo > len(records) {
		lo = len(records)
	}
	hi := lo + paging.Limit
	if hi > len(records) {
		hi = len(records)
	}
	page := records[lo:hi]
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(page))
	return helper.JsonList(c, "", page, &pg)
}

// GetOptions: grouping index — dihitung ulang dari fetch segar, tidak ada cache.
func (ctrl *DelegationController) GetOptions(c *fiber.Ctx) error {
	roles := authMiddleware.RolesFromLocals(c)

	records, err := ctrl.Store.List(c.UserContext(), service.VisibleOnlyPending(roles))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", service.Recompute(records))
}

func (ctrl *DelegationController) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctrl.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", m)
}

func (ctrl *DelegationController) GetStats(c *fiber.Ctx) error {
	stats, err := ctrl.Store.Stats(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", stats)
}

// Create: submit tanpa id → record baru.
func (ctrl *DelegationController) Create(c *fiber.Ctx) error {
	m, err := ctrl.buildModelFromForm(c, nil)
	if err != nil {
		return respondFormError(c, err)
	}
	if err := ctrl.Store.Create(c.UserContext(), m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "تمت الإضافة بنجاح", m)
}

// Update: submit dengan id. Record approved ditolak di sini (policy
// violation) sebelum parsing form & sebelum ada network/storage call.
func (ctrl *DelegationController) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := ctrl.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.EnsureMutable(existing); err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctrl.buildModelFromForm(c, existing)
	if err != nil {
		return respondFormError(c, err)
	}

	updated, err := ctrl.Store.Update(c.UserContext(), id, m)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "تم التحديث بنجاح", updated)
}

func (ctrl *DelegationController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// policy gate dulu, pakai state yang baru dibaca — store tidak disentuh
	// untuk delete kalau ternyata sudah approved
	existing, err := ctrl.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if existing.IsApproved {
		return helper.JsonError(c, fiber.StatusForbidden, "هذا الإيفاد تمت مصادقته ولا يمكن حذفه")
	}

	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "تم حذف الايفاد بنجاح", fiber.Map{"deleted_id": id})
}

// DownloadDocument: ambil PDF surat dari storage. 404/403 dibedakan supaya
// user tahu harus retry atau minta akses.
func (ctrl *DelegationController) DownloadDocument(c *fiber.Ctx) error {
	key := c.Params("*")
	if key == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "مسار الملف غير صالح")
	}

	body, err := ctrl.Storage.OpenDocument(c.UserContext(), key)
	if err != nil {
		switch {
		case errors.Is(err, helperOSS.ErrObjectNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "الملف غير موجود")
		case errors.Is(err, helperOSS.ErrObjectForbidden):
			return helper.JsonError(c, fiber.StatusForbidden, "ليس لديك صلاحية الوصول إلى هذا الملف")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "تعذر تحميل الملف")
		}
	}

	c.Set(fiber.HeaderContentType, constants.DelegationFileContentType)
	return c.SendStream(body)
}

// GetUserRoles: role user dari token (dipakai FE untuk show/hide aksi admin).
func (ctrl *DelegationController) GetUserRoles(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", authMiddleware.RolesFromLocals(c))
}

// SaveReportInfo: bookmark sesi cetak laporan untuk satu secondary group.
func (ctrl *DelegationController) SaveReportInfo(c *fiber.Ctx) error {
	var req dto.SaveReportInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.SecondaryID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "الرجاء اختيار معرف إيفاد أولاً")
	}

	userID, _ := c.Locals("user_id").(string)
	payload := c.BodyRaw()

	info := &model.ReportInfoModel{
		ReportSecondaryID: *req.SecondaryID,
		ReportUserID:      userID,
		ReportPayload:     append([]byte(nil), payload...),
	}
	if err := ctrl.Store.SaveReportInfo(c.UserContext(), info); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "تم حفظ معلومات التقرير", info)
}

/* =========================================================
   Shared form helpers
========================================================= */

// buildModelFromForm: parse + validasi payload form, validasi SEMUA file
// (tipe PDF + maksimal 5MB) sebelum satu byte pun diupload, baru simpan
// dokumen ke storage. existing != nil berarti update: key dokumen lama
// dipertahankan kalau tidak ada file pengganti.
func (ctrl *DelegationController) buildModelFromForm(c *fiber.Ctx, existing *model.DelegationModel) (*model.DelegationModel, error) {
	var req dto.DelegationRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := validator.New().Struct(req); err != nil {
		return nil, err
	}

	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	// kumpulkan + validasi file dulu (tanpa upload)
	files := map[string]*multipart.FileHeader{}
	for _, field := range delegationFileFields {
		fh, err := c.FormFile(field)
		if err != nil || fh == nil {
			continue
		}
		if err := helper.ValidateDelegationFile(fh); err != nil {
			return nil, err
		}
		files[field] = fh
	}

	if existing != nil {
		m.LetterFile = existing.LetterFile
		m.ExtensionLetterFile = existing.ExtensionLetterFile
		m.DisengagementLetterFile = existing.DisengagementLetterFile
		m.InputUser = existing.InputUser
	}
	if name, ok := c.Locals("user_name").(string); ok && m.InputUser == "" {
		m.InputUser = name
	}

	// semua file lolos validasi — baru sekarang boleh menyentuh storage
	for field, fh := range files {
		key, err := ctrl.Storage.SaveDocument(c.UserContext(), fh, "delegations")
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في رفع الملف")
		}
		switch field {
		case "letter_file":
			m.LetterFile = key
		case "extension_letter_file":
			m.ExtensionLetterFile = key
		case "disengagement_letter_file":
			m.DisengagementLetterFile = key
		}
	}

	return m, nil
}

// respondFormError: error validator → 422 dengan map field; sisanya ikut
// status dari fiber.Error.
func respondFormError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string][]string{}
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], "يرجى تعبئة جميع الحقول المطلوبة")
		}
		return helper.JsonValidationError(c, fields)
	}
	return helper.FromFiberError(c, err)
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return uint(id), nil
}

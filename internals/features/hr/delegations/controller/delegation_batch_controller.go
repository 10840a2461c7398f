package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	helper "hrdelegation_backend/internals/helpers"
	authMiddleware "hrdelegation_backend/internals/middlewares/auth"

	"hrdelegation_backend/internals/features/hr/delegations/dto"
	"hrdelegation_backend/internals/features/hr/delegations/service"
)

// Aksi per-grup & transisi approval. Route-nya sudah di belakang
// OnlyRoles(Admin, HRAdmin); EnsureElevated di sini lapisan kedua supaya
// handler tetap aman dipasang di route manapun.
type DelegationBatchController struct {
	Store service.DelegationStore
	Batch *service.BatchSynchronizer
}

func NewDelegationBatchController(store service.DelegationStore) *DelegationBatchController {
	return &DelegationBatchController{
		Store: store,
		Batch: service.NewBatchSynchronizer(store),
	}
}

// Approve: satu record. approval_date dari store, bukan jam client.
func (ctrl *DelegationBatchController) Approve(c *fiber.Ctx) error {
	if err := service.EnsureElevated(authMiddleware.RolesFromLocals(c)); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := paramID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctrl.Store.Approve(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "تمت مصادقة الإيفاد بنجاح", m)
}

// Unapprove: hanya aktor privileged; satu-satunya jalan keluar dari Approved.
func (ctrl *DelegationBatchController) Unapprove(c *fiber.Ctx) error {
	if err := service.EnsureElevated(authMiddleware.RolesFromLocals(c)); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := paramID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctrl.Store.Unapprove(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "تم إلغاء المصادقة بنجاح", m)
}

// Propagate: tulis field bersama ke seluruh anggota grup, lalu balas dengan
// grouping index hasil refetch segar (bukan patch lokal).
func (ctrl *DelegationBatchController) Propagate(c *fiber.Ctx) error {
	if err := service.EnsureElevated(authMiddleware.RolesFromLocals(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SharedFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	count, err := ctrl.Batch.Propagate(c.UserContext(), paramSecondaryID(c), &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	groups, err := ctrl.refreshIndex(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "تم تحديث جميع الإيفادات المرتبطة بنجاح", fiber.Map{
		"updated_count": count,
		"groups":        groups,
	})
}

// ApproveAll: approve seluruh grup sekali jalan; idempotent.
func (ctrl *DelegationBatchController) ApproveAll(c *fiber.Ctx) error {
	if err := service.EnsureElevated(authMiddleware.RolesFromLocals(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ApproveAllRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	count, err := ctrl.Batch.ApproveAll(c.UserContext(), req.SecondaryID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	groups, err := ctrl.refreshIndex(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "تمت مصادقة جميع الإيفادات بنجاح", fiber.Map{
		"approved_count": count,
		"groups":         groups,
	})
}

// refreshIndex: fetch ulang koleksi penuh lalu recompute.
// State otoritatif ada di store, bukan di cache lokal.
func (ctrl *DelegationBatchController) refreshIndex(c *fiber.Ctx) (service.GroupingIndex, error) {
	records, err := ctrl.Store.List(c.UserContext(), false)
	if err != nil {
		return service.GroupingIndex{}, err
	}
	return service.Recompute(records), nil
}

func paramSecondaryID(c *fiber.Ctx) *int {
	raw := c.Params("secondaryId")
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

package service

import (
	"github.com/gofiber/fiber/v2"

	"hrdelegation_backend/internals/constants"

	"hrdelegation_backend/internals/features/hr/delegations/model"
)

// Approval state machine (jalur umum):
//
//	Pending --approve--> Approved --unapprove (privileged)--> Pending
//
// Approved = immutable kecuali transisi unapprove. Gate di bawah dipakai
// SEBELUM store call supaya pelanggaran policy tidak pernah sampai ke DB.
//
// Jalur fico punya flag/tanggal sendiri di model tapi transisinya dipicu
// sistem keuangan eksternal, bukan dari sini.

// EnsureMutable: edit/delete hanya boleh selama belum disetujui.
// Error 403 (policy violation), bukan error generic.
func EnsureMutable(m *model.DelegationModel) error {
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "لم يتم العثور على الإيفاد")
	}
	if m.IsApproved {
		return fiber.NewError(fiber.StatusForbidden, "هذا الإيفاد تمت مصادقته ولا يمكن تعديله")
	}
	return nil
}

// EnsureElevated: approve/unapprove/batch hanya untuk Admin/HRAdmin.
func EnsureElevated(roles []string) error {
	if !constants.IsElevated(roles) {
		return fiber.NewError(fiber.StatusForbidden, "ليس لديك صلاحية لتنفيذ هذه العملية")
	}
	return nil
}

// VisibleOnlyPending: user non-privileged tidak melihat record approved sama
// sekali — list mereka difilter ke Pending saja.
func VisibleOnlyPending(roles []string) bool {
	return !constants.IsElevated(roles)
}

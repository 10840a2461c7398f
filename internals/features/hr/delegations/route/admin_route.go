package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	delegCtrl "hrdelegation_backend/internals/features/hr/delegations/controller"
	"hrdelegation_backend/internals/features/hr/delegations/service"
)

// Rute admin: approve/unapprove per record + operasi batch per grup.
// Role check sudah dipasang di group /api/a, di sini tinggal handler.
func DelegationAdminRoutes(r fiber.Router, db *gorm.DB) {
	store := service.NewDelegationStore(db)

	batch := delegCtrl.NewDelegationBatchController(store)

	g := r.Group("/delegations")
	g.Post("/:id/approve", batch.Approve)
	g.Post("/:id/unapprove", batch.Unapprove)
	g.Put("/groups/:secondaryId/shared-fields", batch.Propagate)
	g.Post("/approve-all", batch.ApproveAll)
}

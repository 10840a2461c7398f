package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	delegCtrl "hrdelegation_backend/internals/features/hr/delegations/controller"
	"hrdelegation_backend/internals/features/hr/delegations/service"
	helperOSS "hrdelegation_backend/internals/helpers/oss"
)

// Rute user biasa: baca daftar (pending saja untuk non-admin), buat ikatan
// dinas baru, edit selama record belum di-approve.
func DelegationUserRoutes(r fiber.Router, db *gorm.DB, storage helperOSS.DocumentStorage) {
	store := service.NewDelegationStore(db)

	ctrl := delegCtrl.NewDelegationController(store, storage)
	draft := delegCtrl.NewDraftController(store, storage)

	g := r.Group("/delegations")
	g.Get("/", ctrl.GetAll)
	g.Get("/options", ctrl.GetOptions)
	g.Get("/stats", ctrl.GetStats)
	g.Get("/me/roles", ctrl.GetUserRoles)
	g.Get("/files/*", ctrl.DownloadDocument)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/report-info", ctrl.SaveReportInfo)

	// Sesi draft (prefill per grup, load-for-edit, submit)
	d := r.Group("/delegation-drafts")
	d.Post("/", draft.Start)
	d.Get("/:session", draft.Get)
	d.Delete("/:session", draft.Discard)
	d.Post("/:session/prefill/secondary", draft.PrefillSecondary)
	d.Post("/:session/prefill/letter", draft.PrefillLetter)
	d.Post("/:session/edit/:id", draft.LoadForEdit)
	d.Post("/:session/submit", draft.Submit)
}

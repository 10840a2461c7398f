package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrdelegation_backend/internals/constants"
	delegRoute "hrdelegation_backend/internals/features/hr/delegations/route"
	helperOSS "hrdelegation_backend/internals/helpers/oss"
	"hrdelegation_backend/internals/middlewares"
	authMiddleware "hrdelegation_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, storage helperOSS.DocumentStorage) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group /api/u ...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())
	delegRoute.DelegationUserRoutes(private, db, storage)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group /api/a (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		middlewares.BatchRateLimiter(),
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("manajemen ikatan dinas"),
			constants.ElevatedRoles,
		),
	)
	delegRoute.DelegationAdminRoutes(admin, db)
}

package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrdelegation_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan:
// recovery paling luar, lalu CORS, logger, rate limit, dan injeksi DB.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
}

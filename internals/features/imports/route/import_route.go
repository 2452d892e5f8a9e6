package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importController "edupulse_backend/internals/features/imports/controller"
	"edupulse_backend/internals/features/imports/service"
	"edupulse_backend/internals/middlewares"
	"edupulse_backend/internals/middlewares/logger"
)

func ImportRoutes(app fiber.Router, db *gorm.DB) {
	ctl := importController.NewImportController(service.NewGormStore(db), logger.L())

	g := app.Group("/imports")
	g.Post("/", middlewares.UploadRateLimiter(), ctl.Upload)
}

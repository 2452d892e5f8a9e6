package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "edupulse_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(app fiber.Router, db *gorm.DB) {
	ctl := dashboardController.NewDashboardController(db)

	app.Get("/dashboard/stats", ctl.Stats)
}

package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "edupulse_backend/internals/features/academics/attendance/controller"
)

func AttendanceRoutes(app fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := attendanceController.NewAttendanceController(db)
	qr := attendanceController.NewQRSessionController(db, v)

	g := app.Group("/attendance")
	g.Get("/", ctl.List)
	g.Post("/sessions", qr.Start)
	g.Get("/sessions/:id/token", qr.CurrentToken)
}

// Scan is public-facing: students are not signed-in teachers.
func AttendanceScanRoutes(app fiber.Router, db *gorm.DB) {
	v := validator.New()
	qr := attendanceController.NewQRSessionController(db, v)

	app.Post("/attendance/scan", qr.Scan)
}

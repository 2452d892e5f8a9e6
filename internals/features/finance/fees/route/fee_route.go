package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "edupulse_backend/internals/features/finance/fees/controller"
)

func FeeRoutes(app fiber.Router, db *gorm.DB) {
	ctl := feeController.NewFeeController(db, validator.New())

	g := app.Group("/fees")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id/paid", ctl.MarkPaid)
}

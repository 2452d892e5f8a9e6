package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wellnessController "edupulse_backend/internals/features/wellness/controller"
)

func WellnessRoutes(app fiber.Router, db *gorm.DB) {
	ctl := wellnessController.NewWellnessController(db, validator.New())

	g := app.Group("/wellness")
	g.Get("/assessments", ctl.ListAssessments)
	g.Get("/counseling", ctl.ListCounseling)
	g.Get("/challenges", ctl.ListChallenges)
	g.Patch("/challenges/:id/progress", ctl.UpdateChallengeProgress)
	g.Get("/tickets", ctl.ListTickets)
	g.Patch("/tickets/:id/resolve", ctl.ResolveTicket)
}

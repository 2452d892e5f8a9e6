package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoreController "edupulse_backend/internals/features/academics/scores/controller"
)

func ScoreRoutes(app fiber.Router, db *gorm.DB) {
	ctl := scoreController.NewScoreController(db, validator.New())

	g := app.Group("/scores")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)

	b := app.Group("/backlogs")
	b.Get("/", ctl.ListBacklogs)
	b.Put("/", ctl.UpsertBacklog)
}

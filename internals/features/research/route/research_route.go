package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	researchController "edupulse_backend/internals/features/research/controller"
)

func ResearchRoutes(app fiber.Router, db *gorm.DB) {
	ctl := researchController.NewResearchController(db)

	g := app.Group("/research")
	g.Get("/projects", ctl.ListProjects)
	g.Get("/phd", ctl.ListPhd)
	g.Get("/fellowships", ctl.ListFellowships)
}

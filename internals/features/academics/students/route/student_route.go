package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "edupulse_backend/internals/features/academics/students/controller"
)

func StudentRoutes(app fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := studentController.NewStudentController(db, v)
	cur := studentController.NewCurriculumController(db)

	g := app.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:code", ctl.Get)
	g.Post("/", ctl.Create)
	g.Put("/:code", ctl.Update)
	g.Delete("/:code", ctl.Delete)

	b := app.Group("/batches")
	b.Get("/", cur.ListBatches)
	b.Get("/:code", cur.GetBatch)

	co := app.Group("/courses")
	co.Get("/", cur.ListCourses)
	co.Get("/:code", cur.GetCourse)
}

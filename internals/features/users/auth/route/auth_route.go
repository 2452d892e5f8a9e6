package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "edupulse_backend/internals/features/users/auth/controller"
	"edupulse_backend/internals/middlewares"
)

// Public register/login; Me/Logout are mounted behind auth by the caller.
func AuthPublicRoutes(app fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := authController.NewAuthController(db, v)

	g := app.Group("/auth")
	g.Post("/register", middlewares.LoginRateLimiter(), ctl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

func AuthPrivateRoutes(app fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := authController.NewAuthController(db, v)

	g := app.Group("/auth")
	g.Post("/logout", ctl.Logout)
	g.Get("/me", ctl.Me)
}

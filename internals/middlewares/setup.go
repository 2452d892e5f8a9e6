package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"edupulse_backend/internals/middlewares/logger"
)

// Order matters: recover first so the limiter and handlers below it are
// covered, rate limit before any handler work.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.RequestLogger())
}

package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edupulse_backend/internals/configs"
	attendanceRoute "edupulse_backend/internals/features/academics/attendance/route"
	scoreRoute "edupulse_backend/internals/features/academics/scores/route"
	studentRoute "edupulse_backend/internals/features/academics/students/route"
	dashboardRoute "edupulse_backend/internals/features/dashboard/route"
	feeRoute "edupulse_backend/internals/features/finance/fees/route"
	importRoute "edupulse_backend/internals/features/imports/route"
	researchRoute "edupulse_backend/internals/features/research/route"
	authRoute "edupulse_backend/internals/features/users/auth/route"
	wellnessRoute "edupulse_backend/internals/features/wellness/route"
	authMiddleware "edupulse_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	authRoute.AuthPublicRoutes(public, db)
	// Students scan without a teacher session.
	attendanceRoute.AttendanceScanRoutes(public, db)

	// ===================== PRIVATE (TEACHER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			CookieName:          configs.CookieName,
			AllowCookieFallback: true,
		}),
	)

	authRoute.AuthPrivateRoutes(private, db)
	importRoute.ImportRoutes(private, db)
	studentRoute.StudentRoutes(private, db)
	attendanceRoute.AttendanceRoutes(private, db)
	scoreRoute.ScoreRoutes(private, db)
	feeRoute.FeeRoutes(private, db)
	researchRoute.ResearchRoutes(private, db)
	wellnessRoute.WellnessRoutes(private, db)
	dashboardRoute.DashboardRoutes(private, db)
}

package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"edupulse_backend/internals/configs"
	attendanceModel "edupulse_backend/internals/features/academics/attendance/model"
	scoreModel "edupulse_backend/internals/features/academics/scores/model"
	studentModel "edupulse_backend/internals/features/academics/students/model"
	feeModel "edupulse_backend/internals/features/finance/fees/model"
	importModel "edupulse_backend/internals/features/imports/model"
	researchModel "edupulse_backend/internals/features/research/model"
	authModel "edupulse_backend/internals/features/users/auth/model"
	wellnessModel "edupulse_backend/internals/features/wellness/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=edupulse&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays nice with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate keeps the schema in step with the models. Order matters only
// for readability; there are no DB-level FKs between natural-key columns.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&authModel.TeacherModel{},
		&studentModel.CourseModel{},
		&studentModel.BatchModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceModel{},
		&attendanceModel.QRSessionModel{},
		&attendanceModel.QRSessionMarkModel{},
		&scoreModel.TestScoreModel{},
		&scoreModel.BacklogModel{},
		&feeModel.FeePaymentModel{},
		&researchModel.ProjectModel{},
		&researchModel.PhdSupervisionModel{},
		&researchModel.FellowshipModel{},
		&wellnessModel.MentalHealthAssessmentModel{},
		&wellnessModel.CounselingAppointmentModel{},
		&wellnessModel.WellnessChallengeModel{},
		&wellnessModel.SupportTicketModel{},
		&importModel.ImportRunModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}

func WarmUp() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

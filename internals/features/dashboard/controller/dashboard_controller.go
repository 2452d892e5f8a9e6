package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "edupulse_backend/internals/features/academics/attendance/model"
	scoreModel "edupulse_backend/internals/features/academics/scores/model"
	studentModel "edupulse_backend/internals/features/academics/students/model"
	feeModel "edupulse_backend/internals/features/finance/fees/model"
	researchModel "edupulse_backend/internals/features/research/model"
	wellnessModel "edupulse_backend/internals/features/wellness/model"
	helper "edupulse_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /dashboard/stats — headline numbers for the signed-in teacher.
//
// Student-scoped counts (attendance, fees, wellness) aggregate over the
// teacher's own students; research counts key on the supervisor column
// directly.
func (ctl *DashboardController) Stats(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	myStudents := ctl.DB.Model(&studentModel.StudentModel{}).
		Select("student_code").
		Where("student_teacher_id = ?", teacherID)

	var studentCount int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_teacher_id = ?", teacherID).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var avgAttendance *float64
	if err := ctl.DB.Model(&attendanceModel.AttendanceModel{}).
		Select("avg(attendance_percent)").
		Where("attendance_student_code IN (?)", myStudents).
		Scan(&avgAttendance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var openBacklogs int64
	if err := ctl.DB.Model(&scoreModel.BacklogModel{}).
		Where("backlog_cleared = false AND backlog_student_code IN (?)", myStudents).
		Count(&openBacklogs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var pendingFees int64
	if err := ctl.DB.Model(&feeModel.FeePaymentModel{}).
		Where("fee_payment_status <> ? AND fee_payment_student_code IN (?)",
			feeModel.FeeStatusPaid, myStudents).
		Count(&pendingFees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var projectCount, phdCount, fellowshipCount int64
	if err := ctl.DB.Model(&researchModel.ProjectModel{}).
		Where("project_supervisor_id = ?", teacherID).
		Count(&projectCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Model(&researchModel.PhdSupervisionModel{}).
		Where("phd_supervisor_id = ?", teacherID).
		Count(&phdCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Model(&researchModel.FellowshipModel{}).
		Where("fellowship_supervisor_id = ?", teacherID).
		Count(&fellowshipCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var avgRisk *float64
	if err := ctl.DB.Model(&wellnessModel.MentalHealthAssessmentModel{}).
		Select("avg(assessment_risk_score)").
		Where("assessment_student_code IN (?)", myStudents).
		Scan(&avgRisk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var openTickets int64
	if err := ctl.DB.Model(&wellnessModel.SupportTicketModel{}).
		Where("ticket_status = ? AND ticket_student_code IN (?)",
			wellnessModel.TicketStatusOpen, myStudents).
		Count(&openTickets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	stats := fiber.Map{
		"students":           studentCount,
		"average_attendance": round2(avgAttendance),
		"open_backlogs":      openBacklogs,
		"pending_fees":       pendingFees,
		"projects":           projectCount,
		"phd_supervisions":   phdCount,
		"fellowships":        fellowshipCount,
		"average_risk_score": round2(avgRisk),
		"open_tickets":       openTickets,
	}
	return helper.JsonOK(c, "OK", stats)
}

func round2(v *float64) float64 {
	if v == nil {
		return 0
	}
	return float64(int(*v*100+0.5)) / 100
}

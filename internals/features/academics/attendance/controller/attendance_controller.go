package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edupulse_backend/internals/features/academics/attendance/model"
	helper "edupulse_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// GET /attendance
// Query: student, course, month (YYYY-MM), page|per_page
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.AttendanceModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("attendance_student_code = ?", s)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		q = q.Where("attendance_course_code = ?", course)
	}
	if m := strings.TrimSpace(c.Query("month")); m != "" {
		month, err := time.Parse("2006-01", m)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		q = q.Where("attendance_month = ?", month)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendance_month desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"attendance": rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

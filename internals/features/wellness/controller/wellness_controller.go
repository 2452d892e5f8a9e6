package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edupulse_backend/internals/features/wellness/dto"
	"edupulse_backend/internals/features/wellness/model"
	helper "edupulse_backend/internals/helpers"
)

type WellnessController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewWellnessController(db *gorm.DB, v *validator.Validate) *WellnessController {
	return &WellnessController{DB: db, Validate: v}
}

// GET /wellness/assessments
// Query: student, min_risk, page|per_page
func (ctl *WellnessController) ListAssessments(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.MentalHealthAssessmentModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("assessment_student_code = ?", s)
	}
	if mr := c.QueryFloat("min_risk", -1); mr >= 0 {
		q = q.Where("assessment_risk_score >= ?", mr)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MentalHealthAssessmentModel
	if err := q.Order("assessment_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"assessments": rows,
		"pagination":  helper.BuildPagination(total, p, len(rows)),
	})
}

// GET /wellness/counseling
// Query: student, status, page|per_page
func (ctl *WellnessController) ListCounseling(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.CounselingAppointmentModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("appointment_student_code = ?", s)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("appointment_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CounselingAppointmentModel
	if err := q.Order("appointment_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"appointments": rows,
		"pagination":   helper.BuildPagination(total, p, len(rows)),
	})
}

// GET /wellness/challenges
// Query: student, status, page|per_page
func (ctl *WellnessController) ListChallenges(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.WellnessChallengeModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("challenge_student_code = ?", s)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("challenge_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.WellnessChallengeModel
	if err := q.Order("challenge_start_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"challenges": rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

// PATCH /wellness/challenges/:id/progress
func (ctl *WellnessController) UpdateChallengeProgress(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid challenge id")
	}

	var req dto.UpdateChallengeProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.WellnessChallengeModel
	if err := ctl.DB.First(&row, "challenge_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Challenge not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row.ChallengeProgress = req.Progress
	row.ChallengePoints = req.Progress * 10
	if req.Status != "" {
		row.ChallengeStatus = req.Status
	} else if row.ChallengeProgress >= row.ChallengeTarget {
		row.ChallengeStatus = model.ChallengeStatusCompleted
	}
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Challenge updated", row)
}

// GET /wellness/tickets
// Query: student, status, priority, page|per_page
func (ctl *WellnessController) ListTickets(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.SupportTicketModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("ticket_student_code = ?", s)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("ticket_status = ?", st)
	}
	if pr := strings.TrimSpace(c.Query("priority")); pr != "" {
		q = q.Where("ticket_priority = ?", pr)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SupportTicketModel
	if err := q.Order("ticket_opened_at desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"tickets":    rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

// PATCH /wellness/tickets/:id/resolve
func (ctl *WellnessController) ResolveTicket(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ticket id")
	}

	var req dto.ResolveTicketRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	var row model.SupportTicketModel
	if err := ctl.DB.First(&row, "ticket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ticket not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	row.TicketStatus = model.TicketStatusResolved
	row.TicketResolvedAt = &now
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Ticket resolved", row)
}

package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edupulse_backend/internals/features/academics/scores/dto"
	"edupulse_backend/internals/features/academics/scores/model"
	helper "edupulse_backend/internals/helpers"
)

type ScoreController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScoreController(db *gorm.DB, v *validator.Validate) *ScoreController {
	return &ScoreController{DB: db, Validate: v}
}

// GET /scores
// Query: student, course, page|per_page
func (ctl *ScoreController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.TestScoreModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("test_score_student_code = ?", s)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		q = q.Where("test_score_course_code = ?", course)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TestScoreModel
	if err := q.Order("test_score_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"scores":     rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

// POST /scores
func (ctl *ScoreController) Create(c *fiber.Ctx) error {
	var req dto.CreateTestScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	row := model.TestScoreModel{
		TestScoreStudentCode: req.StudentCode,
		TestScoreCourseCode:  req.CourseCode,
		TestScoreDate:        date,
		TestScoreValue:       req.Score,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Score recorded", row)
}

// GET /backlogs
// Query: student, cleared (true|false), page|per_page
func (ctl *ScoreController) ListBacklogs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.BacklogModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("backlog_student_code = ?", s)
	}
	if cl := strings.TrimSpace(c.Query("cleared")); cl != "" {
		q = q.Where("backlog_cleared = ?", cl == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.BacklogModel
	if err := q.Order("backlog_updated_at desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"backlogs":   rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

// PUT /backlogs — upsert on the (student, course) pair, same rule the
// bulk importer applies.
func (ctl *ScoreController) UpsertBacklog(c *fiber.Ctx) error {
	var req dto.UpsertBacklogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.BacklogModel
	err := ctl.DB.
		Where("backlog_student_code = ? AND backlog_course_code = ?", req.StudentCode, req.CourseCode).
		First(&row).Error
	switch {
	case err == nil:
		row.BacklogAttempts = req.Attempts
		row.BacklogCleared = req.Cleared
		if err := ctl.DB.Save(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "Backlog updated", row)
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.BacklogModel{
			BacklogStudentCode: req.StudentCode,
			BacklogCourseCode:  req.CourseCode,
			BacklogAttempts:    req.Attempts,
			BacklogCleared:     req.Cleared,
		}
		if err := ctl.DB.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOKWithCode(c, fiber.StatusCreated, "Backlog created", row)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edupulse_backend/internals/features/research/model"
	helper "edupulse_backend/internals/helpers"
)

// Research rows are bulk-imported; this controller is read-only listing for
// the dashboard views.
type ResearchController struct {
	DB *gorm.DB
}

func NewResearchController(db *gorm.DB) *ResearchController {
	return &ResearchController{DB: db}
}

// GET /research/projects
// Query: student, status, supervisor, page|per_page
func (ctl *ResearchController) ListProjects(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.ProjectModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("project_student_code = ?", s)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("project_status = ?", st)
	}
	if sup := strings.TrimSpace(c.Query("supervisor")); sup != "" {
		q = q.Where("project_supervisor_id = ?", sup)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ProjectModel
	if err := q.Order("project_start_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"projects":   rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

// GET /research/phd
// Query: student, status, supervisor, page|per_page
func (ctl *ResearchController) ListPhd(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.PhdSupervisionModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("phd_student_code = ?", s)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("phd_status = ?", st)
	}
	if sup := strings.TrimSpace(c.Query("supervisor")); sup != "" {
		q = q.Where("phd_supervisor_id = ?", sup)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PhdSupervisionModel
	if err := q.Order("phd_start_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"supervisions": rows,
		"pagination":   helper.BuildPagination(total, p, len(rows)),
	})
}

// GET /research/fellowships
// Query: student, status, type, page|per_page
func (ctl *ResearchController) ListFellowships(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.FellowshipModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("fellowship_student_code = ?", s)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("fellowship_status = ?", st)
	}
	if ft := strings.TrimSpace(c.Query("type")); ft != "" {
		q = q.Where("fellowship_type = ?", ft)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FellowshipModel
	if err := q.Order("fellowship_start_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"fellowships": rows,
		"pagination":  helper.BuildPagination(total, p, len(rows)),
	})
}

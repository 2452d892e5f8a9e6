package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edupulse_backend/internals/features/academics/students/model"
	helper "edupulse_backend/internals/helpers"
)

// Batches and courses are mostly created by the import pipeline's
// auto-provisioning; this controller only exposes them for the dashboard.
type CurriculumController struct {
	DB *gorm.DB
}

func NewCurriculumController(db *gorm.DB) *CurriculumController {
	return &CurriculumController{DB: db}
}

func (ctl *CurriculumController) ListBatches(c *fiber.Ctx) error {
	var rows []model.BatchModel
	if err := ctl.DB.Order("batch_code asc").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

func (ctl *CurriculumController) GetBatch(c *fiber.Ctx) error {
	var b model.BatchModel
	if err := ctl.DB.Where("batch_code = ?", c.Params("code")).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", b)
}

func (ctl *CurriculumController) ListCourses(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.CourseModel{})
	if dept := c.Query("department"); dept != "" {
		q = q.Where("course_department = ?", dept)
	}
	var rows []model.CourseModel
	if err := q.Order("course_code asc").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

func (ctl *CurriculumController) GetCourse(c *fiber.Ctx) error {
	var course model.CourseModel
	if err := ctl.DB.Where("course_code = ?", c.Params("code")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", course)
}

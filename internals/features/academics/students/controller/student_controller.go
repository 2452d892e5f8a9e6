package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edupulse_backend/internals/features/academics/students/dto"
	"edupulse_backend/internals/features/academics/students/model"
	helper "edupulse_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

// GET /students
// Query: page|per_page|limit, search, batch, semester
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.StudentModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(`
			LOWER(student_name) LIKE ? OR
			LOWER(student_email) LIKE ? OR
			LOWER(student_code) LIKE ?
		`, like, like, like)
	}
	if batch := strings.TrimSpace(c.Query("batch")); batch != "" {
		q = q.Where("student_batch_code = ?", batch)
	}
	if sem := c.QueryInt("semester"); sem > 0 {
		q = q.Where("student_semester = ?", sem)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := q.Order("student_code asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"students":   rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

// GET /students/:code
func (ctl *StudentController) Get(c *fiber.Ctx) error {
	var s model.StudentModel
	if err := ctl.DB.Where("student_code = ?", c.Params("code")).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", s)
}

// POST /students — interactive form path; ownership rules match the importer.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "dob must be YYYY-MM-DD")
	}

	s := model.StudentModel{
		StudentCode:      req.StudentCode,
		StudentName:      req.Name,
		StudentEmail:     req.Email,
		StudentDOB:       dob,
		StudentSemester:  req.Semester,
		StudentTeacherID: &teacherID,
	}
	if req.BatchCode != "" {
		s.StudentBatchCode = &req.BatchCode
	}

	if err := ctl.DB.Create(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Student already exists or could not be created")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Student created", s)
}

// PUT /students/:code
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetTeacherIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var s model.StudentModel
	if err := ctl.DB.Where("student_code = ?", c.Params("code")).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Name != nil {
		s.StudentName = *req.Name
	}
	if req.Email != nil {
		s.StudentEmail = *req.Email
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "dob must be YYYY-MM-DD")
		}
		s.StudentDOB = dob
	}
	if req.Semester != nil {
		s.StudentSemester = *req.Semester
	}
	if req.BatchCode != nil {
		s.StudentBatchCode = req.BatchCode
	}

	if err := ctl.DB.Save(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Student updated", s)
}

// DELETE /students/:code (soft delete)
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetTeacherIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Where("student_code = ?", c.Params("code")).Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student deleted", nil)
}

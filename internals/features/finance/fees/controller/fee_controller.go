package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edupulse_backend/internals/features/finance/fees/dto"
	"edupulse_backend/internals/features/finance/fees/model"
	helper "edupulse_backend/internals/helpers"
)

type FeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeController(db *gorm.DB, v *validator.Validate) *FeeController {
	return &FeeController{DB: db, Validate: v}
}

// GET /fees
// Query: student, status, page|per_page
func (ctl *FeeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.FeePaymentModel{})
	if s := strings.TrimSpace(c.Query("student")); s != "" {
		q = q.Where("fee_payment_student_code = ?", s)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("fee_payment_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeePaymentModel
	if err := q.Order("fee_payment_due_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"fees":       rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

// POST /fees
func (ctl *FeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	due, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
	}

	row := model.FeePaymentModel{
		FeePaymentStudentCode: req.StudentCode,
		FeePaymentAmount:      model.FeeDefaultAmount,
		FeePaymentDueDate:     due,
		FeePaymentStatus:      req.Status,
		FeePaymentDueMonths:   req.DueMonths,
	}
	if req.Amount != nil {
		row.FeePaymentAmount = *req.Amount
	}
	if row.FeePaymentDueMonths == 0 {
		row.FeePaymentDueMonths = 1
	}
	if req.PaidDate != nil && *req.PaidDate != "" {
		paid, err := time.Parse("2006-01-02", *req.PaidDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "paid_date must be YYYY-MM-DD")
		}
		row.FeePaymentPaidDate = &paid
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Fee payment recorded", row)
}

// PATCH /fees/:id/paid
func (ctl *FeeController) MarkPaid(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee payment id")
	}

	var req dto.MarkPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	paid, err := time.Parse("2006-01-02", req.PaidDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "paid_date must be YYYY-MM-DD")
	}

	var row model.FeePaymentModel
	if err := ctl.DB.First(&row, "fee_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row.FeePaymentPaidDate = &paid
	row.FeePaymentStatus = model.FeeStatusPaid
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Fee payment marked paid", row)
}

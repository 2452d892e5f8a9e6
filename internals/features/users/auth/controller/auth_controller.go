package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edupulse_backend/internals/configs"
	"edupulse_backend/internals/constants"
	"edupulse_backend/internals/features/users/auth/dto"
	"edupulse_backend/internals/features/users/auth/model"
	helper "edupulse_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.TeacherModel
	err := ctl.DB.Where("teacher_email = ?", req.Email).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	t := model.TeacherModel{
		TeacherName:     req.Name,
		TeacherEmail:    req.Email,
		TeacherPassword: string(hash),
		TeacherRole:     constants.RoleTeacher,
	}
	if err := ctl.DB.Create(&t).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Registered", dto.TeacherResponse{
		TeacherID: t.TeacherID.String(),
		Name:      t.TeacherName,
		Email:     t.TeacherEmail,
		Role:      t.TeacherRole,
	})
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var t model.TeacherModel
	if err := ctl.DB.Where("teacher_email = ?", req.Email).First(&t).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(t.TeacherPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	claims := jwt.MapClaims{
		"teacher_id": t.TeacherID.String(),
		"role":       t.TeacherRole,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     configs.CookieName,
		Value:    signed,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   configs.AppEnv == "production",
	})

	return helper.JsonOK(c, "Logged in", fiber.Map{
		"access_token": signed,
		"teacher": dto.TeacherResponse{
			TeacherID: t.TeacherID.String(),
			Name:      t.TeacherName,
			Email:     t.TeacherEmail,
			Role:      t.TeacherRole,
		},
	})
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     configs.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Logged out", nil)
}

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var t model.TeacherModel
	if err := ctl.DB.First(&t, "teacher_id = ?", teacherID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonOK(c, "OK", dto.TeacherResponse{
		TeacherID: t.TeacherID.String(),
		Name:      t.TeacherName,
		Email:     t.TeacherEmail,
		Role:      t.TeacherRole,
	})
}

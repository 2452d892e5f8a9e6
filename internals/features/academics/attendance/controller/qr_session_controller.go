package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edupulse_backend/internals/configs"
	"edupulse_backend/internals/features/academics/attendance/dto"
	"edupulse_backend/internals/features/academics/attendance/model"
	helper "edupulse_backend/internals/helpers"
)

// The server stores only the base token. The token students scan is
// "<base>:<slot>" where the slot index advances every shuffle step, so a
// screenshotted code goes stale within seconds.
type QRSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewQRSessionController(db *gorm.DB, v *validator.Validate) *QRSessionController {
	return &QRSessionController{DB: db, Validate: v}
}

// POST /attendance/sessions — teacher starts a session for a course.
func (ctl *QRSessionController) Start(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.StartQRSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	s := model.QRSessionModel{
		QRSessionCourseCode: req.CourseCode,
		QRSessionTeacherID:  teacherID,
		QRSessionBaseToken:  uuid.NewString(),
		QRSessionStartedAt:  now,
		QRSessionExpiresAt:  now.Add(configs.QRSessionTTL),
	}
	if err := ctl.DB.Create(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Session started", fiber.Map{
		"session": s,
		"token":   currentToken(&s, now),
	})
}

// GET /attendance/sessions/:id/token — polled by the teacher's display.
func (ctl *QRSessionController) CurrentToken(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var s model.QRSessionModel
	if err := ctl.DB.First(&s, "qr_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	if now.After(s.QRSessionExpiresAt) {
		return helper.JsonError(c, fiber.StatusGone, "Session expired")
	}

	return helper.JsonOK(c, "OK", dto.QRTokenResponse{
		Token:     currentToken(&s, now),
		ExpiresIn: int(s.QRSessionExpiresAt.Sub(now).Seconds()),
	})
}

// POST /attendance/scan — student self-marks with a scanned token.
func (ctl *QRSessionController) Scan(c *fiber.Ctx) error {
	var req dto.ScanQRRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base, slot, ok := splitToken(req.Token)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed token")
	}

	var s model.QRSessionModel
	if err := ctl.DB.First(&s, "qr_session_base_token = ?", base).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unknown token")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	if now.After(s.QRSessionExpiresAt) {
		return helper.JsonError(c, fiber.StatusGone, "Session expired")
	}

	// Accept the current slot and the one just rotated out; phones lag.
	cur := slotIndex(&s, now)
	if slot != cur && slot != cur-1 {
		return helper.JsonError(c, fiber.StatusConflict, "Token has been reshuffled, scan again")
	}

	mark := model.QRSessionMarkModel{
		QRMarkSessionID:   s.QRSessionID,
		QRMarkStudentCode: req.StudentCode,
	}
	err := ctl.DB.
		Where("qr_mark_session_id = ? AND qr_mark_student_code = ?", s.QRSessionID, req.StudentCode).
		FirstOrCreate(&mark).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Attendance marked", mark)
}

func slotIndex(s *model.QRSessionModel, now time.Time) int {
	return int(now.Sub(s.QRSessionStartedAt) / configs.QRShuffleStep)
}

func currentToken(s *model.QRSessionModel, now time.Time) string {
	return fmt.Sprintf("%s:%d", s.QRSessionBaseToken, slotIndex(s, now))
}

func splitToken(token string) (base string, slot int, ok bool) {
	i := strings.LastIndex(token, ":")
	if i <= 0 || i == len(token)-1 {
		return "", 0, false
	}
	slot, err := strconv.Atoi(token[i+1:])
	if err != nil {
		return "", 0, false
	}
	return token[:i], slot, true
}

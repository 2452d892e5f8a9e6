package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QRSessionModel is a short-lived self-attendance session. The server keeps
// only the base token; the display token rotates client-side as
// "<base>:<slot>" where slot advances every shuffle step.
type QRSessionModel struct {
	QRSessionID uuid.UUID `gorm:"column:qr_session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"qr_session_id"`

	QRSessionCourseCode string    `gorm:"column:qr_session_course_code;type:varchar(50);not null;index" json:"qr_session_course_code"`
	QRSessionTeacherID  uuid.UUID `gorm:"column:qr_session_teacher_id;type:uuid;not null;index" json:"qr_session_teacher_id"`

	QRSessionBaseToken string    `gorm:"column:qr_session_base_token;type:uuid;not null;uniqueIndex" json:"qr_session_base_token"`
	QRSessionStartedAt time.Time `gorm:"column:qr_session_started_at;not null" json:"qr_session_started_at"`
	QRSessionExpiresAt time.Time `gorm:"column:qr_session_expires_at;not null" json:"qr_session_expires_at"`

	QRSessionCreatedAt time.Time      `gorm:"column:qr_session_created_at;autoCreateTime" json:"qr_session_created_at"`
	QRSessionDeletedAt gorm.DeletedAt `gorm:"column:qr_session_deleted_at;index" json:"qr_session_deleted_at,omitempty"`
}

func (QRSessionModel) TableName() string { return "qr_sessions" }

// QRSessionMarkModel records one successful scan; unique per
// (session, student) so re-scans are idempotent.
type QRSessionMarkModel struct {
	QRMarkID uuid.UUID `gorm:"column:qr_mark_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"qr_mark_id"`

	QRMarkSessionID   uuid.UUID `gorm:"column:qr_mark_session_id;type:uuid;not null;uniqueIndex:uq_qr_mark" json:"qr_mark_session_id"`
	QRMarkStudentCode string    `gorm:"column:qr_mark_student_code;type:varchar(50);not null;uniqueIndex:uq_qr_mark" json:"qr_mark_student_code"`

	QRMarkMarkedAt time.Time `gorm:"column:qr_mark_marked_at;autoCreateTime" json:"qr_mark_marked_at"`
}

func (QRSessionMarkModel) TableName() string { return "qr_session_marks" }

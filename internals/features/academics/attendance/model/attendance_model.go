package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One row per (student, course, month); the importer and the QR flow both
// upsert into this table keyed on the triple.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`

	AttendanceStudentCode string    `gorm:"column:attendance_student_code;type:varchar(50);not null;uniqueIndex:uq_attendance_triple" json:"attendance_student_code"`
	AttendanceCourseCode  string    `gorm:"column:attendance_course_code;type:varchar(50);not null;uniqueIndex:uq_attendance_triple" json:"attendance_course_code"`
	AttendanceMonth       time.Time `gorm:"column:attendance_month;type:date;not null;uniqueIndex:uq_attendance_triple" json:"attendance_month"` // first of month

	AttendancePercent float64 `gorm:"column:attendance_percent;not null" json:"attendance_percent"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Natural key used by the importer and the QR flow
	StudentCode string `gorm:"column:student_code;type:varchar(50);not null;uniqueIndex" json:"student_code"`

	StudentName     string    `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentEmail    string    `gorm:"column:student_email;type:varchar(120);not null" json:"student_email"`
	StudentDOB      time.Time `gorm:"column:student_dob;type:date;not null" json:"student_dob"`
	StudentSemester int       `gorm:"column:student_semester;not null" json:"student_semester"` // CHECK 1..8 enforced at coercion time

	// Optional links
	StudentBatchCode *string    `gorm:"column:student_batch_code;type:varchar(50);index" json:"student_batch_code,omitempty"`
	StudentTeacherID *uuid.UUID `gorm:"column:student_teacher_id;type:uuid;index" json:"student_teacher_id,omitempty"`

	// timestamps
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

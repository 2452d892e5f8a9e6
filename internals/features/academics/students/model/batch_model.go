package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Batches are mostly auto-provisioned by the importer from codes shaped like
// CSE2024B (department, intake year, section).
type BatchModel struct {
	BatchID uuid.UUID `gorm:"column:batch_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"batch_id"`

	BatchCode string `gorm:"column:batch_code;type:varchar(50);not null;uniqueIndex" json:"batch_code"`

	BatchDepartment string `gorm:"column:batch_department;type:varchar(20);not null" json:"batch_department"`
	BatchYear       int    `gorm:"column:batch_year;not null" json:"batch_year"`
	BatchSection    string `gorm:"column:batch_section;type:varchar(2);not null" json:"batch_section"`

	// Default course linked at provisioning time (<DEPT>_GENERAL)
	BatchCourseCode *string `gorm:"column:batch_course_code;type:varchar(50)" json:"batch_course_code,omitempty"`

	BatchCreatedAt time.Time      `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt time.Time      `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at"`
	BatchDeletedAt gorm.DeletedAt `gorm:"column:batch_deleted_at;index" json:"batch_deleted_at,omitempty"`
}

func (BatchModel) TableName() string { return "batches" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportRunModel is the audit trail for one CSV upload: who uploaded what,
// how many rows landed, and the (truncated) error list returned to them.
type ImportRunModel struct {
	ImportRunID uuid.UUID `gorm:"column:import_run_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"import_run_id"`

	ImportRunTeacherID uuid.UUID `gorm:"column:import_run_teacher_id;type:uuid;not null;index" json:"import_run_teacher_id"`
	ImportRunKind      string    `gorm:"column:import_run_kind;type:varchar(30);not null" json:"import_run_kind"`
	ImportRunFileName  string    `gorm:"column:import_run_file_name;type:varchar(255);not null" json:"import_run_file_name"`

	ImportRunProcessed int            `gorm:"column:import_run_processed;not null;default:0" json:"import_run_processed"`
	ImportRunTotal     int            `gorm:"column:import_run_total;not null;default:0" json:"import_run_total"`
	ImportRunErrors    datatypes.JSON `gorm:"column:import_run_errors;type:jsonb" json:"import_run_errors,omitempty"`

	ImportRunCreatedAt time.Time      `gorm:"column:import_run_created_at;autoCreateTime" json:"import_run_created_at"`
	ImportRunDeletedAt gorm.DeletedAt `gorm:"column:import_run_deleted_at;index" json:"import_run_deleted_at,omitempty"`
}

func (ImportRunModel) TableName() string { return "import_runs" }

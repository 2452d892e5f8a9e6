package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProjectStatusActive    = "Active"
	ProjectStatusCompleted = "Completed"
	ProjectStatusDropped   = "Dropped"
)

type ProjectModel struct {
	ProjectID uuid.UUID `gorm:"column:project_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"project_id"`

	ProjectStudentCode  string     `gorm:"column:project_student_code;type:varchar(50);not null;index" json:"project_student_code"`
	ProjectSupervisorID uuid.UUID  `gorm:"column:project_supervisor_id;type:uuid;not null;index" json:"project_supervisor_id"`
	ProjectTitle        string     `gorm:"column:project_title;type:varchar(200);not null" json:"project_title"`
	ProjectDescription  *string    `gorm:"column:project_description;type:text" json:"project_description,omitempty"`
	ProjectStartDate    time.Time  `gorm:"column:project_start_date;type:date;not null" json:"project_start_date"`
	ProjectEndDate      *time.Time `gorm:"column:project_end_date;type:date" json:"project_end_date,omitempty"`
	ProjectStatus       string     `gorm:"column:project_status;type:varchar(20);not null;default:Active" json:"project_status"`

	ProjectCreatedAt time.Time      `gorm:"column:project_created_at;autoCreateTime" json:"project_created_at"`
	ProjectUpdatedAt time.Time      `gorm:"column:project_updated_at;autoUpdateTime" json:"project_updated_at"`
	ProjectDeletedAt gorm.DeletedAt `gorm:"column:project_deleted_at;index" json:"project_deleted_at,omitempty"`
}

func (ProjectModel) TableName() string { return "projects" }

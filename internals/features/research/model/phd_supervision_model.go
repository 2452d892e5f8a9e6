package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PhdStatusOngoing   = "Ongoing"
	PhdStatusCompleted = "Completed"
)

type PhdSupervisionModel struct {
	PhdID uuid.UUID `gorm:"column:phd_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"phd_id"`

	PhdStudentCode  string    `gorm:"column:phd_student_code;type:varchar(50);not null;index" json:"phd_student_code"`
	PhdSupervisorID uuid.UUID `gorm:"column:phd_supervisor_id;type:uuid;not null;index" json:"phd_supervisor_id"`
	PhdTitle        string    `gorm:"column:phd_title;type:varchar(200);not null" json:"phd_title"`
	PhdResearchArea string    `gorm:"column:phd_research_area;type:varchar(120);not null" json:"phd_research_area"`
	PhdStartDate    time.Time `gorm:"column:phd_start_date;type:date;not null" json:"phd_start_date"`
	PhdStatus       string    `gorm:"column:phd_status;type:varchar(20);not null;default:Ongoing" json:"phd_status"`

	PhdCreatedAt time.Time      `gorm:"column:phd_created_at;autoCreateTime" json:"phd_created_at"`
	PhdUpdatedAt time.Time      `gorm:"column:phd_updated_at;autoUpdateTime" json:"phd_updated_at"`
	PhdDeletedAt gorm.DeletedAt `gorm:"column:phd_deleted_at;index" json:"phd_deleted_at,omitempty"`
}

func (PhdSupervisionModel) TableName() string { return "phd_supervisions" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FellowshipStatusActive = "Active"
	FellowshipStatusEnded  = "Ended"
)

type FellowshipModel struct {
	FellowshipID uuid.UUID `gorm:"column:fellowship_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fellowship_id"`

	FellowshipStudentCode  string    `gorm:"column:fellowship_student_code;type:varchar(50);not null;index" json:"fellowship_student_code"`
	FellowshipSupervisorID uuid.UUID `gorm:"column:fellowship_supervisor_id;type:uuid;not null;index" json:"fellowship_supervisor_id"`
	FellowshipType         string    `gorm:"column:fellowship_type;type:varchar(50);not null" json:"fellowship_type"`
	FellowshipAmount       float64   `gorm:"column:fellowship_amount;not null" json:"fellowship_amount"`
	FellowshipDuration     int       `gorm:"column:fellowship_duration;not null" json:"fellowship_duration"` // months
	FellowshipStartDate    time.Time `gorm:"column:fellowship_start_date;type:date;not null" json:"fellowship_start_date"`
	FellowshipStatus       string    `gorm:"column:fellowship_status;type:varchar(20);not null;default:Active" json:"fellowship_status"`

	FellowshipCreatedAt time.Time      `gorm:"column:fellowship_created_at;autoCreateTime" json:"fellowship_created_at"`
	FellowshipUpdatedAt time.Time      `gorm:"column:fellowship_updated_at;autoUpdateTime" json:"fellowship_updated_at"`
	FellowshipDeletedAt gorm.DeletedAt `gorm:"column:fellowship_deleted_at;index" json:"fellowship_deleted_at,omitempty"`
}

func (FellowshipModel) TableName() string { return "fellowships" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BacklogModel struct {
	BacklogID uuid.UUID `gorm:"column:backlog_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"backlog_id"`

	BacklogStudentCode string `gorm:"column:backlog_student_code;type:varchar(50);not null;uniqueIndex:uq_backlog_pair" json:"backlog_student_code"`
	BacklogCourseCode  string `gorm:"column:backlog_course_code;type:varchar(50);not null;uniqueIndex:uq_backlog_pair" json:"backlog_course_code"`

	BacklogAttempts int  `gorm:"column:backlog_attempts;not null;default:1" json:"backlog_attempts"`
	BacklogCleared  bool `gorm:"column:backlog_cleared;not null;default:false" json:"backlog_cleared"`

	BacklogCreatedAt time.Time      `gorm:"column:backlog_created_at;autoCreateTime" json:"backlog_created_at"`
	BacklogUpdatedAt time.Time      `gorm:"column:backlog_updated_at;autoUpdateTime" json:"backlog_updated_at"`
	BacklogDeletedAt gorm.DeletedAt `gorm:"column:backlog_deleted_at;index" json:"backlog_deleted_at,omitempty"`
}

func (BacklogModel) TableName() string { return "backlogs" }

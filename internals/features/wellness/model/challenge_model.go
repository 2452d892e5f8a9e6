package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ChallengeStatusActive    = "Active"
	ChallengeStatusCompleted = "Completed"
	ChallengeStatusAbandoned = "Abandoned"
)

type WellnessChallengeModel struct {
	ChallengeID uuid.UUID `gorm:"column:challenge_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"challenge_id"`

	ChallengeStudentCode string    `gorm:"column:challenge_student_code;type:varchar(50);not null;index" json:"challenge_student_code"`
	ChallengeType        string    `gorm:"column:challenge_type;type:varchar(50);not null" json:"challenge_type"`
	ChallengeTitle       string    `gorm:"column:challenge_title;type:varchar(200);not null" json:"challenge_title"`
	ChallengeDescription string    `gorm:"column:challenge_description;type:text;not null" json:"challenge_description"`
	ChallengeTarget      int       `gorm:"column:challenge_target;not null" json:"challenge_target"`     // >= 1
	ChallengeProgress    int       `gorm:"column:challenge_progress;not null" json:"challenge_progress"` // >= 0
	ChallengeStartDate   time.Time `gorm:"column:challenge_start_date;type:date;not null" json:"challenge_start_date"`
	ChallengeEndDate     time.Time `gorm:"column:challenge_end_date;type:date;not null" json:"challenge_end_date"`
	ChallengeStatus      string    `gorm:"column:challenge_status;type:varchar(20);not null" json:"challenge_status"`
	ChallengePoints      int       `gorm:"column:challenge_points;not null;default:0" json:"challenge_points"` // defaults to progress×10

	ChallengeCreatedAt time.Time      `gorm:"column:challenge_created_at;autoCreateTime" json:"challenge_created_at"`
	ChallengeUpdatedAt time.Time      `gorm:"column:challenge_updated_at;autoUpdateTime" json:"challenge_updated_at"`
	ChallengeDeletedAt gorm.DeletedAt `gorm:"column:challenge_deleted_at;index" json:"challenge_deleted_at,omitempty"`
}

func (WellnessChallengeModel) TableName() string { return "wellness_challenges" }

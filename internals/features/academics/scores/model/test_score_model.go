package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Every upload is a new score event; there is deliberately no natural-key
// dedup here.
type TestScoreModel struct {
	TestScoreID uuid.UUID `gorm:"column:test_score_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"test_score_id"`

	TestScoreStudentCode string    `gorm:"column:test_score_student_code;type:varchar(50);not null;index" json:"test_score_student_code"`
	TestScoreCourseCode  string    `gorm:"column:test_score_course_code;type:varchar(50);not null;index" json:"test_score_course_code"`
	TestScoreDate        time.Time `gorm:"column:test_score_date;type:date;not null" json:"test_score_date"`
	TestScoreValue       float64   `gorm:"column:test_score_value;not null" json:"test_score_value"` // 0..100

	TestScoreCreatedAt time.Time      `gorm:"column:test_score_created_at;autoCreateTime" json:"test_score_created_at"`
	TestScoreDeletedAt gorm.DeletedAt `gorm:"column:test_score_deleted_at;index" json:"test_score_deleted_at,omitempty"`
}

func (TestScoreModel) TableName() string { return "test_scores" }

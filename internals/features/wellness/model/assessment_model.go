package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// All seven metrics are on a 1..10 scale. RiskScore is the mean of stress,
// anxiety and depression when the upload does not supply one.
type MentalHealthAssessmentModel struct {
	AssessmentID uuid.UUID `gorm:"column:assessment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"assessment_id"`

	AssessmentStudentCode string    `gorm:"column:assessment_student_code;type:varchar(50);not null;index" json:"assessment_student_code"`
	AssessmentDate        time.Time `gorm:"column:assessment_date;type:date;not null" json:"assessment_date"`

	AssessmentStress           int `gorm:"column:assessment_stress;not null" json:"assessment_stress"`
	AssessmentAnxiety          int `gorm:"column:assessment_anxiety;not null" json:"assessment_anxiety"`
	AssessmentDepression       int `gorm:"column:assessment_depression;not null" json:"assessment_depression"`
	AssessmentSleepQuality     int `gorm:"column:assessment_sleep_quality;not null" json:"assessment_sleep_quality"`
	AssessmentAcademicPressure int `gorm:"column:assessment_academic_pressure;not null" json:"assessment_academic_pressure"`
	AssessmentSocialSupport    int `gorm:"column:assessment_social_support;not null" json:"assessment_social_support"`
	AssessmentOverallWellness  int `gorm:"column:assessment_overall_wellness;not null" json:"assessment_overall_wellness"`

	AssessmentRiskScore float64 `gorm:"column:assessment_risk_score;not null" json:"assessment_risk_score"`

	AssessmentCreatedAt time.Time      `gorm:"column:assessment_created_at;autoCreateTime" json:"assessment_created_at"`
	AssessmentDeletedAt gorm.DeletedAt `gorm:"column:assessment_deleted_at;index" json:"assessment_deleted_at,omitempty"`
}

func (MentalHealthAssessmentModel) TableName() string { return "mental_health_assessments" }

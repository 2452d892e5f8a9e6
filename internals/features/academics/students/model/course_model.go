package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`

	CourseCode string `gorm:"column:course_code;type:varchar(50);not null;uniqueIndex" json:"course_code"`

	CourseName       string `gorm:"column:course_name;type:varchar(120);not null" json:"course_name"`
	CourseSemester   int    `gorm:"column:course_semester;not null;default:1" json:"course_semester"`
	CourseDepartment string `gorm:"column:course_department;type:varchar(20);not null" json:"course_department"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

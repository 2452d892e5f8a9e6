package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`

	TeacherName     string `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherEmail    string `gorm:"column:teacher_email;type:varchar(120);not null;uniqueIndex" json:"teacher_email"`
	TeacherPassword string `gorm:"column:teacher_password;type:varchar(100);not null" json:"-"`
	TeacherRole     string `gorm:"column:teacher_role;type:varchar(20);not null;default:teacher" json:"teacher_role"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

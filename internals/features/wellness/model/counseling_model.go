package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)

type CounselingAppointmentModel struct {
	AppointmentID uuid.UUID `gorm:"column:appointment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"appointment_id"`

	AppointmentStudentCode   string    `gorm:"column:appointment_student_code;type:varchar(50);not null;index" json:"appointment_student_code"`
	AppointmentCounselorName string    `gorm:"column:appointment_counselor_name;type:varchar(120);not null" json:"appointment_counselor_name"`
	AppointmentDate          time.Time `gorm:"column:appointment_date;not null" json:"appointment_date"`
	AppointmentDuration      int       `gorm:"column:appointment_duration;not null" json:"appointment_duration"` // minutes, 15..180
	AppointmentType          string    `gorm:"column:appointment_type;type:varchar(50);not null" json:"appointment_type"`
	AppointmentStatus        string    `gorm:"column:appointment_status;type:varchar(20);not null" json:"appointment_status"`
	AppointmentFollowUp      bool      `gorm:"column:appointment_follow_up;not null;default:false" json:"appointment_follow_up"`
	AppointmentNotes         *string   `gorm:"column:appointment_notes;type:text" json:"appointment_notes,omitempty"`

	AppointmentCreatedAt time.Time      `gorm:"column:appointment_created_at;autoCreateTime" json:"appointment_created_at"`
	AppointmentDeletedAt gorm.DeletedAt `gorm:"column:appointment_deleted_at;index" json:"appointment_deleted_at,omitempty"`
}

func (CounselingAppointmentModel) TableName() string { return "counseling_appointments" }

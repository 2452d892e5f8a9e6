package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TicketStatusOpen     = "Open"
	TicketStatusResolved = "Resolved"
)

type SupportTicketModel struct {
	TicketID uuid.UUID `gorm:"column:ticket_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"ticket_id"`

	TicketStudentCode string     `gorm:"column:ticket_student_code;type:varchar(50);not null;index" json:"ticket_student_code"`
	TicketCategory    string     `gorm:"column:ticket_category;type:varchar(50);not null" json:"ticket_category"`
	TicketPriority    string     `gorm:"column:ticket_priority;type:varchar(20);not null" json:"ticket_priority"`
	TicketSubject     string     `gorm:"column:ticket_subject;type:varchar(200);not null" json:"ticket_subject"`
	TicketDescription string     `gorm:"column:ticket_description;type:text;not null" json:"ticket_description"`
	TicketStatus      string     `gorm:"column:ticket_status;type:varchar(20);not null" json:"ticket_status"`
	TicketIsAnonymous bool       `gorm:"column:ticket_is_anonymous;not null;default:false" json:"ticket_is_anonymous"`
	TicketOpenedAt    time.Time  `gorm:"column:ticket_opened_at;not null" json:"ticket_opened_at"`
	TicketResolvedAt  *time.Time `gorm:"column:ticket_resolved_at" json:"ticket_resolved_at,omitempty"`

	TicketCreatedAt time.Time      `gorm:"column:ticket_created_at;autoCreateTime" json:"ticket_created_at"`
	TicketUpdatedAt time.Time      `gorm:"column:ticket_updated_at;autoUpdateTime" json:"ticket_updated_at"`
	TicketDeletedAt gorm.DeletedAt `gorm:"column:ticket_deleted_at;index" json:"ticket_deleted_at,omitempty"`
}

func (SupportTicketModel) TableName() string { return "support_tickets" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeStatusPaid    = "Paid"
	FeeStatusPending = "Pending"
	FeeStatusOverdue = "Overdue"

	// Placeholder amount when the upload omits one.
	FeeDefaultAmount = 50000
)

type FeePaymentModel struct {
	FeePaymentID uuid.UUID `gorm:"column:fee_payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_payment_id"`

	FeePaymentStudentCode string `gorm:"column:fee_payment_student_code;type:varchar(50);not null;index" json:"fee_payment_student_code"`

	FeePaymentAmount   float64    `gorm:"column:fee_payment_amount;not null" json:"fee_payment_amount"`
	FeePaymentDueDate  time.Time  `gorm:"column:fee_payment_due_date;type:date;not null" json:"fee_payment_due_date"`
	FeePaymentPaidDate *time.Time `gorm:"column:fee_payment_paid_date;type:date" json:"fee_payment_paid_date,omitempty"`
	FeePaymentStatus   string     `gorm:"column:fee_payment_status;type:varchar(20);not null" json:"fee_payment_status"`
	FeePaymentDueMonths int       `gorm:"column:fee_payment_due_months;not null;default:1" json:"fee_payment_due_months"`

	FeePaymentCreatedAt time.Time      `gorm:"column:fee_payment_created_at;autoCreateTime" json:"fee_payment_created_at"`
	FeePaymentUpdatedAt time.Time      `gorm:"column:fee_payment_updated_at;autoUpdateTime" json:"fee_payment_updated_at"`
	FeePaymentDeletedAt gorm.DeletedAt `gorm:"column:fee_payment_deleted_at;index" json:"fee_payment_deleted_at,omitempty"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }

package dto

type CreateFeePaymentRequest struct {
	StudentCode string   `json:"student_code" validate:"required,max=50"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	DueDate     string   `json:"due_date" validate:"required"`
	PaidDate    *string  `json:"paid_date"`
	Status      string   `json:"status" validate:"required,oneof=Paid Pending Overdue"`
	DueMonths   int      `json:"due_months" validate:"omitempty,gte=0"`
}

type MarkPaidRequest struct {
	PaidDate string `json:"paid_date" validate:"required"`
}

package dto

type CreateStudentRequest struct {
	StudentCode string `json:"student_code" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email"`
	DOB         string `json:"dob" validate:"required"` // YYYY-MM-DD
	Semester    int    `json:"semester" validate:"required,min=1,max=8"`
	BatchCode   string `json:"batch_code,omitempty" validate:"omitempty,max=50"`
}

type UpdateStudentRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	DOB       *string `json:"dob,omitempty"`
	Semester  *int    `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`
	BatchCode *string `json:"batch_code,omitempty" validate:"omitempty,max=50"`
}

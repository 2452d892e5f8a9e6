package dto

type CreateTestScoreRequest struct {
	StudentCode string  `json:"student_code" validate:"required,max=50"`
	CourseCode  string  `json:"course_code" validate:"required,max=50"`
	Date        string  `json:"date" validate:"required"`
	Score       float64 `json:"score" validate:"gte=0,lte=100"`
}

type UpsertBacklogRequest struct {
	StudentCode string `json:"student_code" validate:"required,max=50"`
	CourseCode  string `json:"course_code" validate:"required,max=50"`
	Attempts    int    `json:"attempts" validate:"gte=1"`
	Cleared     bool   `json:"cleared"`
}

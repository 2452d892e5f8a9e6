package dto

type StartQRSessionRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=50"`
}

type ScanQRRequest struct {
	Token       string `json:"token" validate:"required"`
	StudentCode string `json:"student_code" validate:"required,max=50"`
}

type QRTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds until session death
}

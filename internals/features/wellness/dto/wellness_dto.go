package dto

type ResolveTicketRequest struct {
	Resolution string `json:"resolution" validate:"omitempty,max=2000"`
}

type UpdateChallengeProgressRequest struct {
	Progress int    `json:"progress" validate:"gte=0"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Completed Abandoned"`
}

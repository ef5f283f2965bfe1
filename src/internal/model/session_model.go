package model

type CreateSessionRequest struct {
	StudentID         string `json:"-" validate:"required,max=100"`
	TutorID           string `json:"tutorId" validate:"required,max=100"`
	Skill             string `json:"skill" validate:"max=120"`
	Problem           string `json:"problem" validate:"required,max=2000"`
	SkillCoinsOffered int64  `json:"skillCoinsOffered" validate:"required,gt=0"`
}

type CreateSessionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateSessionStatusRequest struct {
	ID      string `json:"-" validate:"required,max=100"`
	ActorID string `json:"-" validate:"required,max=100"`
	Status  string `json:"status" validate:"required,oneof=pending accepted rejected completed"`
}

type CompleteSessionRequest struct {
	ID      string `json:"-" validate:"required,max=100"`
	ActorID string `json:"-" validate:"required,max=100"`
}

type GetSessionRequest struct {
	ID      string `json:"-" validate:"required,max=100"`
	ActorID string `json:"-" validate:"required,max=100"`
}

type PricingRequest struct {
	HourlyRate    int64    `query:"hourlyRate" validate:"min=0,max=100000"`
	Hours         float64  `query:"hours" validate:"gt=0,max=24"`
	FeePercentage *float64 `query:"feePercentage" validate:"omitempty,min=0,max=100"`
}

type PricingBreakdown struct {
	HourlyRate            int64   `json:"hourlyRate"`
	EstimatedHours        float64 `json:"estimatedHours"`
	Subtotal              int64   `json:"subtotal"`
	PlatformFee           int64   `json:"platformFee"`
	PlatformFeePercentage float64 `json:"platformFeePercentage"`
	Total                 int64   `json:"total"`
	TutorReceives         int64   `json:"tutorReceives"`
}

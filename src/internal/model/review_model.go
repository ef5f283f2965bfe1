package model

type CreateReviewRequest struct {
	ReviewerID string   `json:"-" validate:"required,max=100"`
	SessionID  string   `json:"sessionId" validate:"required,max=100"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Comment    string   `json:"comment" validate:"max=2000"`
	Tags       []string `json:"tags" validate:"omitempty,max=10,dive,max=40"`
}

type ListReviewsRequest struct {
	RevieweeID string `validate:"required,max=100"`
}

type MarkHelpfulRequest struct {
	ID string `validate:"required,max=100"`
}

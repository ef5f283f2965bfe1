package model

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"max=4000"`
}

type ChatRequest struct {
	UserID  string        `json:"-"`
	Message string        `json:"message" validate:"required,max=2000"`
	History []ChatMessage `json:"history" validate:"omitempty,max=50,dive"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	Connected bool   `json:"connected"`
}

type SuggestionsRequest struct {
	UserID string `validate:"required,max=100"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

package model

// Tutor is the listing view of a user profile.
type Tutor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	University string   `json:"university"`
	Skills     []string `json:"skills"`
	Rating     float64  `json:"rating"`
	PhotoURL   string   `json:"photoURL,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	HourlyRate int64    `json:"hourlyRate"`
}

type MatchRequest struct {
	UserID  string `json:"-"`
	Problem string `json:"problem" validate:"required,max=1000"`
	Subject string `json:"subject,omitempty" validate:"max=120"`
}

const (
	MatchSourceAI       = "ai"
	MatchSourceFallback = "keyword"
)

type MatchResponse struct {
	Tutors     []Tutor `json:"tutors"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

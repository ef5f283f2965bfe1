package model

import "time"

type UserResponse struct {
	ID         string     `json:"id"`
	StudentID  string     `json:"studentId"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	University string     `json:"university"`
	PhotoURL   string     `json:"photoURL,omitempty"`
	Bio        string     `json:"bio,omitempty"`
	SkillCoins int64      `json:"skillCoins"`
	IsVerified bool       `json:"isVerified"`
	Skills     []string   `json:"skills"`
	HourlyRate int64      `json:"hourlyRate"`
	Rating     float64    `json:"rating"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type RegisterUserRequest struct {
	StudentID       string   `json:"studentId" validate:"required,max=64"`
	Name            string   `json:"name" validate:"required,max=100"`
	University      string   `json:"university" validate:"required,max=255"`
	Password        string   `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string   `json:"confirmPassword" validate:"required,eqfield=Password"`
	Skills          []string `json:"skills" validate:"omitempty,max=30,dive,max=60"`
}

type LoginUserRequest struct {
	StudentID string `json:"studentId" validate:"required,max=64"`
	Password  string `json:"password" validate:"required,max=100"`
}

type ProviderLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	IsNewUser bool         `json:"isNewUser"`
	User      UserResponse `json:"user"`
}

type UpdateUserRequest struct {
	ID         string   `json:"-" validate:"required,max=100"`
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	University *string  `json:"university,omitempty" validate:"omitempty,max=255"`
	Bio        *string  `json:"bio,omitempty" validate:"omitempty,max=1000"`
	PhotoURL   *string  `json:"photoURL,omitempty" validate:"omitempty,url,max=512"`
	Skills     []string `json:"skills,omitempty" validate:"omitempty,max=30,dive,max=60"`
	HourlyRate *int64   `json:"hourlyRate,omitempty" validate:"omitempty,min=0,max=100000"`
}

type LogoutUserRequest struct {
	ID        string `json:"id" validate:"required,max=100"`
	SessionID string `json:"-" validate:"required,max=100"`
}

type GetUserRequest struct {
	ID string `json:"id" validate:"required,max=100"`
}

type VerifyUserRequest struct {
	ID        string `json:"-" validate:"required,max=100"`
	StudentID string `json:"studentId" validate:"required,max=64"`
}

// Auth states as seen by a client holding (or not holding) a token.
const (
	AuthStateAuthenticated = "authenticated"
	AuthStateAnonymous     = "anonymous"
)

type SessionStateResponse struct {
	Status string        `json:"status"`
	User   *UserResponse `json:"user,omitempty"`
}

type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	SessionID   string    `json:"sessionId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Auth is what the bearer middleware leaves in the request locals.
type Auth struct {
	UserID    string
	FullName  string
	SessionID string
}

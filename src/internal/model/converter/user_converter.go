package converter

import (
	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/internal/model"
)

const (
	defaultTutorName       = "Unknown"
	defaultTutorUniversity = "Unknown University"
	defaultTutorRating     = 4.5
	defaultTutorRate       = 50
)

func UserToResponse(user *entity.User) *model.UserResponse {
	res := &model.UserResponse{
		ID:         user.UserID,
		StudentID:  deref(user.StudentID),
		Name:       user.FullName,
		Email:      deref(user.Email),
		University: user.University,
		PhotoURL:   deref(user.PhotoURL),
		Bio:        deref(user.Bio),
		SkillCoins: user.SkillCoins,
		IsVerified: user.IsVerified,
		Skills:     []string(user.Skills),
		HourlyRate: user.HourlyRate,
		Rating:     user.Rating,
		CreatedAt:  user.CreatedAt,
	}
	if res.Skills == nil {
		res.Skills = []string{}
	}
	if !user.UpdatedAt.IsZero() {
		updated := user.UpdatedAt
		res.UpdatedAt = &updated
	}
	return res
}

// UserToTutor fills listing defaults for profiles that never completed onboarding.
func UserToTutor(user *entity.User) model.Tutor {
	t := model.Tutor{
		ID:         user.UserID,
		Name:       user.FullName,
		University: user.University,
		Skills:     []string(user.Skills),
		Rating:     user.Rating,
		PhotoURL:   deref(user.PhotoURL),
		Bio:        deref(user.Bio),
		HourlyRate: user.HourlyRate,
	}
	if t.Name == "" {
		t.Name = defaultTutorName
	}
	if t.University == "" {
		t.University = defaultTutorUniversity
	}
	if t.Skills == nil {
		t.Skills = []string{}
	}
	if t.Rating <= 0 {
		t.Rating = defaultTutorRating
	}
	if t.HourlyRate <= 0 {
		t.HourlyRate = defaultTutorRate
	}
	return t
}

func TransactionToResponse(tx *entity.WalletTransaction) model.TransactionResponse {
	return model.TransactionResponse{
		ID:          tx.ID,
		Type:        tx.Type,
		Amount:      tx.Amount,
		Description: tx.Description,
		SessionID:   deref(tx.SessionID),
		CreatedAt:   tx.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package converter

import (
	"testing"
	"time"

	"skillswitch-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestUserToTutorDefaults(t *testing.T) {
	got := UserToTutor(&entity.User{UserID: "u1"})

	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "Unknown", got.Name)
	assert.Equal(t, "Unknown University", got.University)
	assert.Equal(t, []string{}, got.Skills)
	assert.Equal(t, 4.5, got.Rating)
	assert.Equal(t, int64(50), got.HourlyRate)
}

func TestUserToTutorKeepsValues(t *testing.T) {
	bio := "loves recursion"
	got := UserToTutor(&entity.User{
		UserID: "u2", FullName: "Ravi", University: "GTU", Skills: entity.StringList{"Python"},
		Rating: 4.9, HourlyRate: 80, Bio: &bio,
	})

	assert.Equal(t, "Ravi", got.Name)
	assert.Equal(t, "GTU", got.University)
	assert.Equal(t, []string{"Python"}, got.Skills)
	assert.Equal(t, 4.9, got.Rating)
	assert.Equal(t, int64(80), got.HourlyRate)
	assert.Equal(t, bio, got.Bio)
}

func TestUserToResponse(t *testing.T) {
	sid := "S123"
	now := time.Now()
	got := UserToResponse(&entity.User{UserID: "u1", StudentID: &sid, FullName: "Asha", SkillCoins: 100, CreatedAt: now})

	assert.Equal(t, "S123", got.StudentID)
	assert.Equal(t, int64(100), got.SkillCoins)
	assert.Equal(t, []string{}, got.Skills)
	assert.Nil(t, got.UpdatedAt)
}

package entity

import "time"

const (
	ProviderCredentials = "student_id"
	ProviderGoogle      = "google"
)

type User struct {
	UserID          string     `json:"id" db:"id" gorm:"column:id;type:char(36);primaryKey"`
	StudentID       *string    `json:"studentId,omitempty" db:"student_id" gorm:"column:student_id;size:64;uniqueIndex"`
	Email           *string    `json:"email,omitempty" db:"email" gorm:"column:email;size:255"`
	PasswordHash    *string    `json:"-" db:"password_hash" gorm:"column:password_hash;size:255"`
	Provider        string     `json:"provider" db:"provider" gorm:"column:provider;size:20;not null"`
	ProviderSubject *string    `json:"-" db:"provider_subject" gorm:"column:provider_subject;size:255;uniqueIndex"`
	FullName        string     `json:"name" db:"name" gorm:"column:name;size:255;not null"`
	University      string     `json:"university" db:"university" gorm:"column:university;size:255"`
	PhotoURL        *string    `json:"photoURL,omitempty" db:"photo_url" gorm:"column:photo_url;size:512"`
	Bio             *string    `json:"bio,omitempty" db:"bio" gorm:"column:bio;type:text"`
	Skills          StringList `json:"skills" db:"skills" gorm:"column:skills"`
	SkillCoins      int64      `json:"skillCoins" db:"skill_coins" gorm:"column:skill_coins;not null;default:0;check:chk_users_skill_coins,skill_coins >= 0"`
	HourlyRate      int64      `json:"hourlyRate" db:"hourly_rate" gorm:"column:hourly_rate;not null;default:50;check:chk_users_hourly_rate,hourly_rate >= 0"`
	Rating          float64    `json:"rating" db:"rating" gorm:"column:rating;not null;default:4.5"`
	RatingCount     int64      `json:"ratingCount" db:"rating_count" gorm:"column:rating_count;not null;default:0"`
	IsVerified      bool       `json:"isVerified" db:"is_verified" gorm:"column:is_verified;not null;default:false"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty" db:"verified_at" gorm:"column:verified_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" gorm:"column:created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

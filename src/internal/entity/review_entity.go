package entity

import "time"

const (
	ReviewOfTutor   = "tutor"
	ReviewOfStudent = "student"
)

type Review struct {
	ID            string     `json:"id" gorm:"column:id;type:char(36);primaryKey"`
	SessionID     string     `json:"sessionId" gorm:"column:session_id;type:char(36);not null;uniqueIndex:idx_review_session_reviewer"`
	ReviewerID    string     `json:"reviewerId" gorm:"column:reviewer_id;type:char(36);not null;uniqueIndex:idx_review_session_reviewer"`
	ReviewerName  string     `json:"reviewerName" gorm:"column:reviewer_name;size:255"`
	ReviewerPhoto *string    `json:"reviewerPhoto,omitempty" gorm:"column:reviewer_photo;size:512"`
	RevieweeID    string     `json:"revieweeId" gorm:"column:reviewee_id;type:char(36);not null;index"`
	Type          string     `json:"type" gorm:"column:type;size:20;not null"`
	Rating        int        `json:"rating" gorm:"column:rating;not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment       string     `json:"comment" gorm:"column:comment;type:text"`
	Tags          StringList `json:"tags" gorm:"column:tags"`
	Helpful       int64      `json:"helpful" gorm:"column:helpful;not null;default:0"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"column:created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

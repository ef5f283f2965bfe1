package entity

import "time"

type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionAccepted  SessionStatus = "accepted"
	SessionRejected  SessionStatus = "rejected"
	SessionCompleted SessionStatus = "completed"
)

var sessionTransitions = map[SessionStatus][]SessionStatus{
	SessionPending:  {SessionAccepted, SessionRejected},
	SessionAccepted: {SessionCompleted},
}

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionPending, SessionAccepted, SessionRejected, SessionCompleted:
		return true
	}
	return false
}

// CanTransitionTo allows only pending->accepted, pending->rejected and accepted->completed.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports statuses with no outgoing transition.
func (s SessionStatus) Terminal() bool {
	return len(sessionTransitions[s]) == 0
}

type SessionRequest struct {
	ID                string        `json:"id" db:"id" gorm:"column:id;type:char(36);primaryKey"`
	StudentID         string        `json:"studentId" db:"student_id" gorm:"column:student_id;type:char(36);not null;index"`
	StudentName       string        `json:"studentName" db:"student_name" gorm:"column:student_name;size:255"`
	TutorID           string        `json:"tutorId" db:"tutor_id" gorm:"column:tutor_id;type:char(36);not null;index:idx_session_tutor_status"`
	TutorName         string        `json:"tutorName" db:"tutor_name" gorm:"column:tutor_name;size:255"`
	Skill             string        `json:"skill" db:"skill" gorm:"column:skill;size:120;not null"`
	Problem           string        `json:"problem" db:"problem" gorm:"column:problem;type:text;not null"`
	SkillCoinsOffered int64         `json:"skillCoinsOffered" db:"skill_coins_offered" gorm:"column:skill_coins_offered;not null;check:chk_sessions_offered,skill_coins_offered > 0"`
	Status            SessionStatus `json:"status" db:"status" gorm:"column:status;size:20;not null;index:idx_session_tutor_status"`
	CreatedAt         time.Time     `json:"createdAt" db:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time     `json:"updatedAt" db:"updated_at" gorm:"column:updated_at"`
}

func (SessionRequest) TableName() string {
	return "session_requests"
}

// Participant reports whether userID is the student or the tutor of the session.
func (s SessionRequest) Participant(userID string) bool {
	return s.StudentID == userID || s.TutorID == userID
}

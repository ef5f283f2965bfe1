package model

import "time"

// Event is anything the messaging gateway can key and publish.
type Event interface {
	GetId() string
}

type AnalyticsEvent struct {
	ID        string                 `json:"id"`
	Event     string                 `json:"event"`
	UserID    string                 `json:"userId,omitempty"`
	Params    map[string]interface{} `json:"params,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *AnalyticsEvent) GetId() string {
	return e.ID
}

// Event names shared with the web client's analytics dashboard.
const (
	EventLogin               = "login"
	EventSignUp              = "sign_up"
	EventSearch              = "search"
	EventTutorRequest        = "tutor_request"
	EventSessionStart        = "session_start"
	EventSessionComplete     = "session_complete"
	EventCoinTransaction     = "coin_transaction"
	EventVerificationAttempt = "verification_attempt"
	EventGeofenceCheck       = "geofence_check"
	EventAffiliateClick      = "affiliate_click"
	EventResourceDownload    = "resource_download"
	EventReviewSubmitted     = "review_submitted"
)

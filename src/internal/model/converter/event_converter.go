package converter

import (
	"time"

	"skillswitch-service/src/internal/model"

	"github.com/google/uuid"
)

func ToAnalyticsEvent(name, userID string, params map[string]interface{}) *model.AnalyticsEvent {
	return &model.AnalyticsEvent{
		ID:        uuid.NewString(),
		Event:     name,
		UserID:    userID,
		Params:    params,
		Timestamp: time.Now().UTC(),
	}
}

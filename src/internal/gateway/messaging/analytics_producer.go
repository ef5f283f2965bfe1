package messaging

import (
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/model/converter"
	"skillswitch-service/src/pkg/kafka"
	"skillswitch-service/src/pkg/log"
)

const AnalyticsTopic = "skillswitch-analytics"

type AnalyticsProducer struct {
	Producer[*model.AnalyticsEvent]
}

func NewAnalyticsProducer(producer kafka.Producer, topic string, log log.Log) *AnalyticsProducer {
	if topic == "" {
		topic = AnalyticsTopic
	}
	return &AnalyticsProducer{
		Producer: Producer[*model.AnalyticsEvent]{
			Producer: producer,
			Topic:    topic,
			Log:      log,
		},
	}
}

// Track is fire-and-forget: a failed publish is logged and never reaches the caller.
func (a *AnalyticsProducer) Track(name, userID string, params map[string]interface{}) {
	if a == nil {
		return
	}
	event := converter.ToAnalyticsEvent(name, userID, params)
	if err := a.Send(event); err != nil {
		a.Log.Error("gateway/messaging/analytics", err.Error(), "Track", name)
	}
}

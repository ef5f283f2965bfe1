package messaging

import (
	"encoding/json"

	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/pkg/kafka"
	"skillswitch-service/src/pkg/log"
)

type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() *string {
	return &p.Topic
}

// Send publishes event keyed by its id. With no broker configured it only logs.
func (p *Producer[T]) Send(event T) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging/producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	if p.Producer == nil {
		p.Log.Info("gateway/messaging/producer", "producer disabled, event dropped", "Send", string(value))
		return nil
	}

	err = p.Producer.Publish(p.Topic, event.GetId(), value)
	if err != nil {
		p.Log.Error("send-event", "error send message", "send", err.Error())
		return err
	}

	return nil
}

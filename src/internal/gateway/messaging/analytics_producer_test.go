package messaging

import (
	"encoding/json"
	"testing"
	"time"

	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/pkg/kafka"
	"skillswitch-service/src/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsProducerTrack(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	mock := mocks.NewAsyncProducer(t, cfg)

	var published *sarama.ProducerMessage
	mock.ExpectInputWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		published = msg
		return nil
	})

	p := NewAnalyticsProducer(kafka.WrapAsyncProducer(mock, log.Discard()), "", log.Discard())
	p.Track(model.EventSearch, "u1", map[string]interface{}{"search_term": "python"})

	select {
	case <-mock.Successes():
	case <-time.After(time.Second):
		t.Fatal("message was not produced")
	}
	require.NotNil(t, published)
	assert.Equal(t, AnalyticsTopic, published.Topic)

	raw, err := published.Value.Encode()
	require.NoError(t, err)
	var event model.AnalyticsEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, model.EventSearch, event.Event)
	assert.Equal(t, "u1", event.UserID)
	assert.Equal(t, "python", event.Params["search_term"])

	key, err := published.Key.Encode()
	require.NoError(t, err)
	assert.Equal(t, event.ID, string(key))
	require.NoError(t, mock.Close())
}

func TestAnalyticsProducerWithoutBroker(t *testing.T) {
	p := NewAnalyticsProducer(nil, "custom", log.Discard())
	assert.Equal(t, "custom", *p.GetTopic())
	assert.NotPanics(t, func() { p.Track(model.EventLogin, "u1", nil) })

	var nilProducer *AnalyticsProducer
	assert.NotPanics(t, func() { nilProducer.Track(model.EventLogin, "u1", nil) })
}

package kafka

import (
	"testing"
	"time"

	"skillswitch-service/src/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stalledProducer never drains Input, like a producer stuck on a leader lookup.
type stalledProducer struct {
	sarama.AsyncProducer
	input  chan *sarama.ProducerMessage
	errors chan *sarama.ProducerError
}

func newStalledProducer() *stalledProducer {
	return &stalledProducer{
		input:  make(chan *sarama.ProducerMessage),
		errors: make(chan *sarama.ProducerError),
	}
}

func (s *stalledProducer) Input() chan<- *sarama.ProducerMessage { return s.input }

func (s *stalledProducer) Errors() <-chan *sarama.ProducerError { return s.errors }

func (s *stalledProducer) Close() error {
	close(s.errors)
	return nil
}

func TestPublishDropsWhenBufferIsFull(t *testing.T) {
	p := WrapAsyncProducer(newStalledProducer(), log.Discard())

	done := make(chan error, 1)
	go func() { done <- p.Publish("analytics", "evt-1", []byte(`{}`)) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrBufferFull)
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a stalled producer")
	}
	require.NoError(t, p.Close())
}

func TestPublishHandsMessageToProducer(t *testing.T) {
	mock := mocks.NewAsyncProducer(t, nil)
	mock.ExpectInputAndSucceed()
	p := WrapAsyncProducer(mock, log.Discard())

	require.NoError(t, p.Publish("analytics", "evt-2", []byte(`{"event":"login"}`)))
	require.NoError(t, p.Close())
}

func TestNewSaramaConfig(t *testing.T) {
	cfg := NewSaramaConfig(Cfg{AppName: "skillswitch", KafkaUsername: "u", KafkaPassword: "p", EnableTLS: true})
	assert.Equal(t, "skillswitch", cfg.ClientID)
	assert.True(t, cfg.Net.SASL.Enable)
	assert.Equal(t, "u", cfg.Net.SASL.User)
	assert.True(t, cfg.Net.TLS.Enable)
	assert.False(t, cfg.Producer.Return.Successes)
	assert.True(t, cfg.Producer.Return.Errors)
}

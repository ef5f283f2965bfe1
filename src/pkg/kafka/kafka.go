package kafka

import (
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"skillswitch-service/src/pkg/log"

	"github.com/IBM/sarama"
)

var ErrBufferFull = errors.New("producer buffer full, message dropped")

// Producer publishes fire-and-forget messages.
type Producer interface {
	Publish(topic, key string, value []byte) error
	Close() error
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	EnableTLS     bool
	AppName       string
}

// NewSaramaConfig maps our settings onto a sarama config for an async producer.
func NewSaramaConfig(cfg Cfg) *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.AppName
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Return.Successes = false
	sc.Producer.Return.Errors = true
	sc.Producer.Retry.Max = 3
	sc.Producer.Retry.Backoff = 500 * time.Millisecond
	sc.Producer.Flush.Frequency = 200 * time.Millisecond
	sc.Net.DialTimeout = 5 * time.Second

	if cfg.KafkaUsername != "" {
		sc.Net.SASL.Enable = true
		sc.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		sc.Net.SASL.User = cfg.KafkaUsername
		sc.Net.SASL.Password = cfg.KafkaPassword
	}
	if cfg.EnableTLS {
		sc.Net.TLS.Enable = true
		sc.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return sc
}

type asyncProducer struct {
	producer sarama.AsyncProducer
	log      log.Log
	done     chan struct{}
}

// NewProducer dials the brokers listed (comma separated) in cfg.KafkaUrl.
func NewProducer(cfg Cfg, logger log.Log) (Producer, error) {
	brokers := strings.Split(cfg.KafkaUrl, ",")
	p, err := sarama.NewAsyncProducer(brokers, NewSaramaConfig(cfg))
	if err != nil {
		return nil, err
	}
	return WrapAsyncProducer(p, logger), nil
}

// WrapAsyncProducer drains the error channel so a slow or down broker never blocks callers.
func WrapAsyncProducer(p sarama.AsyncProducer, logger log.Log) Producer {
	ap := &asyncProducer{producer: p, log: logger, done: make(chan struct{})}
	go func() {
		defer close(ap.done)
		for perr := range p.Errors() {
			ap.log.Error("kafka-producer", perr.Err.Error(), "publish", perr.Msg.Topic)
		}
	}()
	return ap
}

// Publish never waits on the broker: when the producer buffer is full the message is dropped.
func (p *asyncProducer) Publish(topic, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(value),
		Timestamp: time.Now().UTC(),
	}
	select {
	case p.producer.Input() <- msg:
		return nil
	default:
		p.log.Error("kafka-producer", ErrBufferFull.Error(), "publish", topic)
		return ErrBufferFull
	}
}

func (p *asyncProducer) Close() error {
	err := p.producer.Close()
	<-p.done
	return err
}

package config

import (
	kafkaPkg "skillswitch-service/src/pkg/kafka"
	"skillswitch-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaConfig(viper *viper.Viper) kafkaPkg.Cfg {
	return kafkaPkg.Cfg{
		KafkaUrl:      viper.GetString("kafka.bootstrap.servers"),
		KafkaUsername: viper.GetString("kafka.username"),
		KafkaPassword: viper.GetString("kafka.password"),
		EnableTLS:     viper.GetBool("kafka.tls"),
		AppName:       viper.GetString("kafka.app.name"),
	}
}

// NewKafkaProducer returns nil when analytics publishing is switched off.
func NewKafkaProducer(config *viper.Viper, log log.Log) kafkaPkg.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}
	kafkaProducer, err := kafkaPkg.NewProducer(NewKafkaConfig(config), log)
	if err != nil {
		panic(err)
	}

	return kafkaProducer
}

package config

import (
	"context"
	"time"

	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/log"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// NewScheduler registers the background sweeps; the caller starts and stops it.
func NewScheduler(v *viper.Viper, logger log.Log, sessions *usecase.SessionUseCase) (*cron.Cron, error) {
	c := cron.New()

	spec := v.GetString("sessions.sweep_schedule")
	if spec == "" {
		spec = "@every 10m"
	}
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if res := sessions.ExpireStale(ctx); res.Error != nil {
			logger.Error("scheduler", res.Error.Error(), "ExpireStale", spec)
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

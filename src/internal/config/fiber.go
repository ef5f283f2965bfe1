package config

import (
	"time"

	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func NewFiber(v *viper.Viper) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      v.GetString("app.name"),
		Prefork:      v.GetBool("web.prefork"),
		ReadTimeout:  v.GetDuration("web.read_timeout"),
		WriteTimeout: v.GetDuration("web.write_timeout"),
		IdleTimeout:  60 * time.Second,
		ErrorHandler: NewErrorHandler(),
	})
}

// NewErrorHandler keeps errors escaping a handler inside the usual response envelope.
func NewErrorHandler() fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			return utils.ResponseError(e, ctx)
		}
		return utils.ResponseError(fiber.NewError(fiber.StatusInternalServerError, err.Error()), ctx)
	}
}

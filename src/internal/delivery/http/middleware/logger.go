package middleware

import (
	"fmt"
	"time"

	"skillswitch-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const slowRequest = 3 * time.Second

// NewLogger writes one line per request and flags the slow ones.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		elapsed := time.Since(start)

		logger := log.GetLogger()
		status := ctx.Response().StatusCode()
		meta := fmt.Sprintf("status=%d latency=%s ip=%s", status, elapsed, ctx.IP())
		route := ctx.Method() + " " + ctx.Path()
		switch {
		case err != nil:
			logger.Error("http", err.Error(), route, meta)
		case elapsed > slowRequest:
			logger.Slow("http", "slow request", route, meta)
		default:
			logger.Info("http", "request served", route, meta)
		}
		return err
	}
}

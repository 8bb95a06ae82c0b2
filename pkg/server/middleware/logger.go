package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"resumeforge/pkg/logging"
)

// Logger logs one structured line per request via the global logger:
// request_id, method, path, status and latency in milliseconds.
func Logger() fiber.Handler {
	return LoggerWithWriter(nil)
}

// LoggerWithWriter logs requests to w instead of the global logger output.
// A nil writer falls back to the global logger.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		logger := logging.Logger
		if w != nil {
			logger = zerolog.New(w).With().Timestamp().Logger()
		}

		logger.Info().
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000.0).
			Msg("request")

		return err
	}
}

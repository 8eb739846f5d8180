package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Logger logs one entry per HTTP request with the fields
// ts, request_id, method, path, status and latency (milliseconds).
// Server errors log at error level, client errors at warn. A cause set with
// SetErrorCause is added as the error field.
func Logger(log logrus.FieldLogger, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		rid, _ := c.Locals(RequestIDLocalKey).(string)

		entry := log.WithFields(logrus.Fields{
			"ts":         start.In(loc).Format(time.RFC3339Nano),
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		})
		if cause, ok := c.Locals(ErrorLocalKey).(string); ok {
			entry = entry.WithField("error", cause)
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("request completed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}

		return err
	}
}

// LoggerWithWriter writes JSON request lines to w, timestamped in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})
	return Logger(log, loc)
}

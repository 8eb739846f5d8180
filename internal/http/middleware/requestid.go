package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the Fiber locals key holding the request ID.
	RequestIDLocalKey = "request_id"
	// ErrorLocalKey holds an internal error cause for the request log. It is never sent to clients.
	ErrorLocalKey = "error_cause"

	maxRequestIDLen = 128
)

// RequestID reuses an incoming X-Request-ID or generates a UUID, stores it in
// locals under RequestIDLocalKey and echoes it on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

// SetErrorCause attaches err to the request so Logger can record it.
func SetErrorCause(c *fiber.Ctx, err error) {
	if err != nil {
		c.Locals(ErrorLocalKey, err.Error())
	}
}

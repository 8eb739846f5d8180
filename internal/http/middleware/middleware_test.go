package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace oversized request id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))

		resp, _ := app.Test(req)

		rid := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, rid)
		assert.LessOrEqual(t, len(rid), maxRequestIDLen)
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test?q=1", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	require.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
	assert.Equal(t, "info", logData["level"])
}

func TestLogger_ErrorLevels(t *testing.T) {
	tests := []struct {
		name      string
		handler   fiber.Handler
		wantLevel string
		wantCode  float64
	}{
		{
			name:      "client error",
			handler:   func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) },
			wantLevel: "warning",
			wantCode:  fiber.StatusNotFound,
		},
		{
			name:      "returned fiber error",
			handler:   func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusServiceUnavailable, "down") },
			wantLevel: "error",
			wantCode:  fiber.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := fiber.New()
			app.Use(LoggerWithWriter(&buf, nil))
			app.Get("/x", tt.handler)

			_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)

			var logData map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
			assert.Equal(t, tt.wantLevel, logData["level"])
			assert.Equal(t, tt.wantCode, logData["status"])
		})
	}
}

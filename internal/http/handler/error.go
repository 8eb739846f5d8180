package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"doclib/internal/http/middleware"
	"doclib/internal/service"
)

// Error codes returned in the error envelope.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	CodeFileTooLarge        = "FILE_TOO_LARGE"
	CodeFileRequired        = "FILE_REQUIRED"
	CodeInvalidID           = "INVALID_ID"
	CodeNotFound            = "NOT_FOUND"
	CodeFileMissing         = "FILE_MISSING"
	CodeStorageIO           = "STORAGE_IO_ERROR"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	CodeBadRequest          = "BAD_REQUEST"
	CodeInternal            = "INTERNAL_ERROR"
)

// errorPayload is the error response body. Message duplicates error.message
// for clients that only read a top-level message.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Message   string        `json:"message"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// messageResponse is a plain acknowledgement body.
type messageResponse struct {
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(middleware.RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetails(c, status, code, message, nil)
}

func writeErrorDetails(c *fiber.Ctx, status int, code, message string, details map[string]string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Message:   message,
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// writeServiceError translates service errors into HTTP responses.
// notFoundMsg names the missing resource. Unknown errors become a 500 whose
// cause is only attached to the request log.
func writeServiceError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return writeErrorDetails(c, fiber.StatusBadRequest, CodeValidation, "validation failed", vErr.Details)
	case errors.Is(err, service.ErrDuplicateEmail):
		return writeError(c, fiber.StatusBadRequest, CodeDuplicateEmail, service.ErrDuplicateEmail.Error())
	case errors.Is(err, service.ErrUnsupportedFileType):
		return writeError(c, fiber.StatusBadRequest, CodeUnsupportedFileType, service.ErrUnsupportedFileType.Error())
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusBadRequest, CodeFileTooLarge, service.ErrFileTooLarge.Error())
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, CodeInvalidID, "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, CodeNotFound, notFoundMsg)
	case errors.Is(err, service.ErrFileMissing):
		middleware.SetErrorCause(c, err)
		return writeError(c, fiber.StatusNotFound, CodeFileMissing, "file not found on storage")
	case errors.Is(err, service.ErrStorageIO):
		middleware.SetErrorCause(c, err)
		return writeError(c, fiber.StatusInternalServerError, CodeStorageIO, "storage error")
	default:
		middleware.SetErrorCause(c, err)
		return writeError(c, fiber.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes framework errors.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, CodeBadRequest, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, CodeNotFound, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, CodeMethodNotAllowed, "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, CodeFileTooLarge, service.ErrFileTooLarge.Error())
		default:
			middleware.SetErrorCause(c, err)
			return writeError(c, fiber.StatusInternalServerError, CodeInternal, "internal server error")
		}
	}
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clienthub/internal/http/middleware"
	"clienthub/internal/model"
	"clienthub/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceError maps service sentinel errors onto the error envelope.
// Anything unrecognized becomes a generic 500 with no internal detail.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrLogoNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", err.Error())
	case errors.Is(err, service.ErrInvalidProgress):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PROGRESS", err.Error())
	case errors.Is(err, service.ErrInvalidBudget):
		return writeError(c, fiber.StatusBadRequest, "INVALID_BUDGET", err.Error())
	case errors.Is(err, service.ErrInvalidRef):
		return writeError(c, fiber.StatusBadRequest, "INVALID_REFERENCE", err.Error())
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// bodyError maps request body decode failures. Date parse failures get a
// dedicated code; everything else is a generic bad request.
func bodyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, model.ErrInvalidDate) {
		return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "dates must be formatted YYYY-MM-DD")
	}
	return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}

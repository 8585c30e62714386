package middleware

import (
	"errors"
	"fmt"

	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// ErrorMiddleware renders handler errors into the response envelope. Causes
// of 5xx errors are logged and never sent to the client.
type ErrorMiddleware struct {
	log logger.Logger
}

func NewErrorMiddleware(log logger.Logger) *ErrorMiddleware {
	if log == nil {
		log = logger.NewNop()
	}
	return &ErrorMiddleware{log: log}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.log.Error(c.Context(), "panic recovered",
					logger.String("method", c.Method()),
					logger.String("path", c.Path()),
					logger.String("panic", fmt.Sprint(r)),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= fiber.StatusInternalServerError {
			m.log.Error(c.Context(), "request failed",
				logger.String("method", c.Method()),
				logger.String("path", c.Path()),
				logger.Int("status", status),
				logger.Err(err),
			)
		}
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, any) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return normalizeStatus(appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return normalizeStatus(fiberErr.Code, fiberErr.Message, nil)
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

func normalizeStatus(status int, msg string, data any) (int, string, any) {
	if status <= 0 {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}
	if status == fiber.StatusInternalServerError {
		return status, response.MessageInternalServerError, nil
	}
	if msg == "" {
		msg = response.DefaultMessage(status)
	}
	if status > fiber.StatusInternalServerError {
		return status, msg, nil
	}
	return status, msg, data
}

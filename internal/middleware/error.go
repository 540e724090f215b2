package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// genericMessages are used for failures that carry no domain message.
var genericMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable entity",
	http.StatusInternalServerError: "Internal Server error",
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("requestid")),
		)

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := mapDomainErrorToHTTPStatus(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
			}
			if domainErr.Cause != nil {
				fields = append(fields, zap.Error(domainErr.Cause))
			}
			if status >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Warn("Domain error occurred", fields...)
			}

			message := domainErr.Message
			if domainErr.Code == domain.CodeStore || domainErr.Code == domain.CodeInternal {
				message = genericMessage(status)
			}
			return c.Status(status).JSON(dto.ErrorResponse{
				Error:   status,
				Message: message,
				Details: domainErr.Context,
			})
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Error:   fiberErr.Code,
				Message: genericMessageOr(fiberErr.Code, fiberErr.Message),
			})
		}

		// Handle unknown errors
		log.Error("Unknown error occurred", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   http.StatusInternalServerError,
			Message: genericMessage(http.StatusInternalServerError),
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes.
// INVALID_IDENTIFIER stays a server error for compatibility with existing clients.
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound, domain.CodeQuestionNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidBody:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func genericMessage(status int) string {
	return genericMessageOr(status, http.StatusText(status))
}

func genericMessageOr(status int, fallback string) string {
	if msg, ok := genericMessages[status]; ok {
		return msg
	}
	return fallback
}

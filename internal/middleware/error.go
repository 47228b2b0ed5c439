package middleware

import (
	"errors"
	"net/http"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

func validationResponse(c *fiber.Ctx, errs domain.ValidationErrors) error {
	logger.Get().Warn("Validation errors occurred",
		zap.String("path", c.Path()),
		zap.Int("error_count", len(errs)),
	)
	body := ValidationErrorResponse{
		Code:    string(domain.CodeValidation),
		Message: "Request validation failed",
		Status:  http.StatusBadRequest,
		Errors:  make([]domain.ValidationError, 0, len(errs)),
	}
	for _, e := range errs {
		body.Errors = append(body.Errors, *e)
	}
	return c.Status(http.StatusBadRequest).JSON(body)
}

// ErrorHandler is the centralized fiber error handler
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validationResponse(c, validationErrs)
		}
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return validationResponse(c, domain.ValidationErrors{validationErr})
		}

		var persistErr *domain.PersistError
		if errors.As(err, &persistErr) {
			log.Error("Persisting feedback form failed",
				zap.String("path", c.Path()),
				zap.String("op", persistErr.Op),
				zap.Error(persistErr.Cause),
			)
			status := http.StatusBadGateway
			var cause *domain.DomainError
			if errors.As(persistErr.Cause, &cause) && cause.Code == domain.CodeNotFound {
				status = http.StatusNotFound
			}
			return c.Status(status).JSON(ErrorResponse{
				Code:    string(domain.CodePersistFailed),
				Message: persistErr.Error(),
				Status:  status,
			})
		}

		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			log.Error("Fetching failed",
				zap.String("path", c.Path()),
				zap.String("resource", fetchErr.Resource),
				zap.Error(fetchErr.Cause),
			)
			status := http.StatusBadGateway
			var cause *domain.DomainError
			if errors.As(fetchErr.Cause, &cause) && cause.Code == domain.CodeNotFound {
				status = http.StatusNotFound
			}
			return c.Status(status).JSON(ErrorResponse{
				Code:    string(domain.CodeFetchFailed),
				Message: fetchErr.Error(),
				Status:  status,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Cause),
			}
			if statusCode >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Warn("Domain error occurred", fields...)
			}

			response := ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  statusCode,
			}
			if len(domainErr.Context) > 0 {
				response.Details = domainErr.Context
			}
			return c.Status(statusCode).JSON(response)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeConfirmationRequired, domain.CodeSubmitInProgress, domain.CodeSessionConflict:
		return http.StatusConflict
	case domain.CodeFetchFailed, domain.CodePersistFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

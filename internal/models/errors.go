package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes shared by both delivery adapters.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError is the typed failure raised by the service layer. Delivery
// adapters map it to transport responses without altering semantics.
type AppError struct {
	Code    string
	Message string
	// Data carries the full list of validation violations; validation
	// collects every failing rule, not just the first.
	Data []string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to its REST status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return fiber.StatusUnprocessableEntity
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Extensions exposes code and data to the GraphQL adapter; graphql-go
// includes them in the formatted error when the resolver error implements
// this method.
func (e *AppError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.Data) > 0 {
		ext["data"] = e.Data
	}
	return ext
}

// NewValidationError reports one or more failed validation rules.
func NewValidationError(message string, violations ...string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Data:    violations,
	}
}

// NewUnauthenticatedError reports a request without a valid identity.
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: message,
	}
}

// NewForbiddenError reports an authenticated actor lacking ownership.
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

// NewConflictError reports a uniqueness conflict, e.g. a duplicate email.
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewInternalError wraps an unclassified failure.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// ErrorResponse is the REST error body: {message, data}.
type ErrorResponse struct {
	Message string   `json:"message"`
	Data    []string `json:"data,omitempty"`
}

// RespondWithError writes a standardized REST error response. The status
// is derived from the error code; unclassified errors become 500.
func RespondWithError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*AppError); ok {
		return c.Status(appErr.HTTPStatus()).JSON(ErrorResponse{
			Message: appErr.Message,
			Data:    appErr.Data,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal server error",
	})
}

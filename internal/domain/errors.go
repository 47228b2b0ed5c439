package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Builder specific errors
	CodeFetchFailed          ErrorCode = "FETCH_FAILED"
	CodePersistFailed        ErrorCode = "PERSIST_FAILED"
	CodeConfirmationRequired ErrorCode = "CONFIRMATION_REQUIRED"
	CodeSubmitInProgress     ErrorCode = "SUBMIT_IN_PROGRESS"
	CodeSessionConflict      ErrorCode = "SESSION_CONFLICT"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail to the error and returns it.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewConfirmationRequiredError(categoryIDs []string) *DomainError {
	return NewError(CodeConfirmationRequired,
		"changing the selection discards drafted questions; resend with confirm_discard",
		nil).WithContext("discarded_category_ids", categoryIDs)
}

func NewSubmitInProgressError(sessionID string) *DomainError {
	return NewError(CodeSubmitInProgress, "a submission for this session is already in progress", nil).
		WithContext("session_id", sessionID)
}

func NewSessionConflictError(sessionID string) *DomainError {
	return NewError(CodeSessionConflict, "the builder session was changed concurrently; reload it and retry", nil).
		WithContext("session_id", sessionID)
}

// ValidationError reports a single invalid or missing field. It is local and
// recoverable: the draft that produced it is left unchanged.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewMissingFieldError(field string) *ValidationError {
	return NewValidationError(field, "is required")
}

func NewInvalidFormatError(field, value string) *ValidationError {
	return NewValidationError(field, fmt.Sprintf("has invalid value %q", value))
}

// ValidationErrors collects several field errors from one request.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// FetchError means the catalog or a persisted form could not be loaded.
type FetchError struct {
	Resource string
	Cause    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// PersistError means a create or update call failed. The draft is retained so
// the submission can be retried.
type PersistError struct {
	Op    string
	Cause error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to %s feedback form: %v", e.Op, e.Cause)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}

package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeValidation        ErrorCode = "VALIDATION_ERROR"
	CodeInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	CodeInvalidBody       ErrorCode = "INVALID_BODY"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeQuestionNotFound  ErrorCode = "QUESTION_NOT_FOUND"
	CodeStore             ErrorCode = "STORE_ERROR"
	CodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
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
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches a key/value pair that is reported to the caller.
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

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

// NewMissingFieldsError reports required inputs that were absent.
func NewMissingFieldsError(fields ...string) *DomainError {
	return NewValidationError("Missing params.").WithContext("missing_fields", fields)
}

func NewInvalidIdentifierError(name, raw string) *DomainError {
	return NewError(CodeInvalidIdentifier, fmt.Sprintf("Invalid %s: %q is not an integer", name, raw), nil)
}

func NewInvalidBodyError(err error) *DomainError {
	return NewError(CodeInvalidBody, "Unprocessable entity", err)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewQuestionNotFoundError(id int64) *DomainError {
	return NewError(CodeQuestionNotFound, fmt.Sprintf("Question #%d not found", id), nil).
		WithContext("question_id", id)
}

func NewStoreError(message string, cause error) *DomainError {
	return NewError(CodeStore, message, cause)
}

// HasCode reports whether err is a DomainError carrying one of codes.
func HasCode(err error, codes ...ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	for _, code := range codes {
		if domainErr.Code == code {
			return true
		}
	}
	return false
}

package errors

import (
	stdErrors "errors"
	"fmt"
)

// Code classifies an error for callers that branch on failure kind
// rather than message text.
type Code string

const (
	CodeValidation           Code = "VALIDATION_ERROR"
	CodeUniqueConstraint     Code = "UNIQUE_CONSTRAINT_VIOLATION"
	CodeReferentialIntegrity Code = "REFERENTIAL_INTEGRITY_ERROR"
	CodeNotFound             Code = "NOT_FOUND"
	CodeInternal             Code = "INTERNAL_ERROR"
	CodeDependency           Code = "DEPENDENCY_ERROR"
)

// Retryable reports whether a retry could plausibly succeed for the
// given code. Validation and constraint failures never clear on retry.
func Retryable(code Code) bool {
	return code == CodeInternal || code == CodeDependency
}

// PublicMessage returns a caller-safe summary for the code, hiding
// internals behind a generic phrase.
func PublicMessage(code Code) string {
	switch code {
	case CodeValidation:
		return "validation failed"
	case CodeUniqueConstraint:
		return "duplicate value"
	case CodeReferentialIntegrity:
		return "referenced by other records"
	case CodeNotFound:
		return "resource not found"
	case CodeDependency:
		return "dependency unavailable"
	default:
		return "internal server error"
	}
}

// Error is the taxonomy error carried across service boundaries. Details
// hold structured context such as per-field validation messages.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As extracts the typed error from anywhere in err's chain, or nil.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code Code) bool {
	typed := As(err)
	return typed != nil && typed.Code() == code
}

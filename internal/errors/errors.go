package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches domain errors by code so wrapped copies compare equal
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Not found
	ErrOrderNotFound    = NewDomainError("ORDER_NOT_FOUND", "order not found")
	ErrCategoryNotFound = NewDomainError("CATEGORY_NOT_FOUND", "vehicle category not found")
	ErrStatusNotFound   = NewDomainError("STATUS_NOT_FOUND", "order status not found")

	// Conflicts
	ErrCategoryExists = NewDomainError("CATEGORY_EXISTS", "vehicle category with this name already exists")
	ErrStatusExists   = NewDomainError("STATUS_EXISTS", "status with this name already exists")
	ErrCategoryInUse  = NewDomainError("CATEGORY_IN_USE", "cannot delete vehicle category that is in use")
	ErrStatusInUse    = NewDomainError("STATUS_IN_USE", "cannot delete status that is in use")

	// Validation errors
	ErrValidation = NewDomainError("VALIDATION_FAILED", "validation failed")

	// System errors
	ErrStoreUnavailable = NewDomainError("STORE_UNAVAILABLE", "datastore unavailable")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	// Default to internal server error for unknown errors
	return http.StatusInternalServerError
}

// domainErrorToHTTPStatus maps specific domain errors to HTTP status codes
func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request - duplicate names and blocked deletions are
	// reported as 400 so the front-end surfaces them directly
	case "CATEGORY_EXISTS", "STATUS_EXISTS", "CATEGORY_IN_USE", "STATUS_IN_USE":
		return http.StatusBadRequest

	// 404 Not Found
	case "ORDER_NOT_FOUND", "CATEGORY_NOT_FOUND", "STATUS_NOT_FOUND":
		return http.StatusNotFound

	// 422 Unprocessable Entity
	case "VALIDATION_FAILED":
		return http.StatusUnprocessableEntity

	// 500 Internal Server Error (default)
	case "STORE_UNAVAILABLE":
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		// Error() keeps the wrapped cause so store failures stay diagnosable
		return domainErr.Error()
	}

	return err.Error()
}

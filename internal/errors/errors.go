package errors

import "fmt"

// ErrorCode represents a toolshed error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrInternal       ErrorCode = "INTERNAL"
)

// CatalogError represents a structured error with code and details.
type CatalogError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates an error for invalid operation parameters.
func NewInvalidRequest(msg string) *CatalogError {
	return &CatalogError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewNotFound creates an error for a missing file or record.
func NewNotFound(identifier string) *CatalogError {
	return &CatalogError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewInternal creates an error for unexpected store or I/O failures.
func NewInternal(err error) *CatalogError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &CatalogError{
		Code:    ErrInternal,
		Message: msg,
	}
}

// Is checks if an error is a CatalogError with the given code.
func Is(err error, code ErrorCode) bool {
	if cErr, ok := err.(*CatalogError); ok {
		return cErr.Code == code
	}
	return false
}

// Package domain defines the core domain models for phoneledger.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "PL-SALE-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Sale errors (SALE).
var (
	// ErrSaleNotFound indicates the requested sale was not found.
	ErrSaleNotFound = NewDomainError("PL-SALE-4040", "sale not found")

	// ErrIMEIConflict indicates another sale already holds the same IMEI.
	ErrIMEIConflict = NewDomainError("PL-SALE-4090", "imei already registered")
)

// Client errors (CLNT).
var (
	// ErrClientNotFound indicates the requested client was not found.
	ErrClientNotFound = NewDomainError("PL-CLNT-4040", "client not found")
)

// Currency transaction errors (CURR).
var (
	// ErrTransactionNotFound indicates the requested transaction was not found.
	ErrTransactionNotFound = NewDomainError("PL-CURR-4040", "currency transaction not found")
)

// Authentication errors (AUTH).
var (
	// ErrInvalidCredentials indicates the username/password pair did not match.
	ErrInvalidCredentials = NewDomainError("PL-AUTH-4010", "invalid credentials")

	// ErrNotAuthenticated indicates the request carries no valid session token.
	ErrNotAuthenticated = NewDomainError("PL-AUTH-4011", "not authenticated")
)

// Argument errors (ARG).
var (
	// ErrMissingArgument indicates a required argument was not provided.
	ErrMissingArgument = NewDomainError("PL-ARG-1001", "missing required argument")

	// ErrInvalidArgument indicates an argument has an invalid value.
	ErrInvalidArgument = NewDomainError("PL-ARG-1002", "invalid argument")
)

// System errors (SYS).
var (
	// ErrInternalServer indicates an unexpected internal error.
	ErrInternalServer = NewDomainError("PL-SYS-5000", "internal server error")

	// ErrStorage indicates a storage engine failure.
	ErrStorage = NewDomainError("PL-SYS-5001", "storage failure")
)

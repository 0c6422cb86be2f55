package errors

import (
	"fmt"
	"net/http"
)

// Error represents an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of base carrying err as its cause. The taxonomy vars
// below are shared, so they are never mutated in place.
func Wrap(base *Error, err error) *Error {
	return New(base.Code, base.Message, err)
}

// Identifier and lookup errors
var (
	ErrInvalidProductID = New(http.StatusBadRequest, "Invalid product id", nil)
	ErrProductNotFound  = New(http.StatusNotFound, "Product not found", nil)
)

// Admin gate errors. A missing server-side token is a misconfiguration, not
// an authorization failure, and fails closed with a 500.
var (
	ErrInvalidAdminToken       = New(http.StatusUnauthorized, "Invalid admin token", nil)
	ErrAdminTokenNotConfigured = New(http.StatusInternalServerError, "ADMIN_TOKEN not configured on server", nil)
)

// Validation and availability errors
var (
	ErrValidation          = New(http.StatusUnprocessableEntity, "Validation error", nil)
	ErrDatabaseUnavailable = New(http.StatusServiceUnavailable, "Database unavailable", nil)
	ErrInternalServer      = New(http.StatusInternalServerError, "Internal server error", nil)
)

package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses and to the
// failure kinds returned by payment-method operations.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes.
const (
	CodeMalformedConfig = "CFG_001"
	CodeInvalidValue    = "CFG_002"
	CodeInvalidAddress  = "ADDR_001"
	CodeParseError      = "RESP_001"
	CodeInvalidToken    = "AUTH_003"
	CodeUnknownMethod   = "METHOD_001"
	CodeRateLimit       = "RATE_001"
	CodeInternal        = "SYS_001"
	CodeEncryption      = "SYS_003"
	CodeBridgeBusy      = "SYS_004"
	CodeBridgeClosed    = "SYS_005"
)

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// ---- Payload validation (CFG) ----

// MalformedConfig reports a payload that is syntactically invalid or is
// missing a required field.
func MalformedConfig(message string, err error) *AppError {
	return Wrap(CodeMalformedConfig, message, http.StatusBadRequest, err)
}

// InvalidValue reports a well-formed field that violates a domain constraint.
func InvalidValue(message string) *AppError {
	return New(CodeInvalidValue, message, http.StatusUnprocessableEntity)
}

// WrapInvalidValue is InvalidValue carrying the underlying cause.
func WrapInvalidValue(message string, err error) *AppError {
	return Wrap(CodeInvalidValue, message, http.StatusUnprocessableEntity, err)
}

// InvalidValuef is InvalidValue with a formatted message.
func InvalidValuef(format string, args ...any) *AppError {
	return InvalidValue(fmt.Sprintf(format, args...))
}

// ---- Address codec (ADDR) ----

func InvalidAddress(reason string) *AppError {
	return New(CodeInvalidAddress, "Invalid payment address: "+reason, http.StatusBadRequest)
}

// ---- Ledger responses (RESP) ----

func ParseError(message string, err error) *AppError {
	return Wrap(CodeParseError, message, http.StatusUnprocessableEntity, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Payment methods (METHOD) ----

func ErrUnknownMethod(name string) *AppError {
	return New(CodeUnknownMethod, fmt.Sprintf("payment method %q is not registered", name), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimit, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(CodeEncryption, "Encryption service failure", http.StatusInternalServerError, err)
}

func ErrBridgeBusy() *AppError {
	return New(CodeBridgeBusy, "All payment workers are busy", http.StatusServiceUnavailable)
}

func ErrBridgeClosed() *AppError {
	return New(CodeBridgeClosed, "Payment dispatcher is shut down", http.StatusServiceUnavailable)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

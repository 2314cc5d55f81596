package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Transient  bool   `json:"-"` // Safe to retry with the same signed request
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

// Is matches any *AppError carrying the same code, so errors.Is works
// against the constructors below.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
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

// CodeOf returns the AppError code in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsTransient reports whether err is an infrastructure failure that may be
// retried without re-signing.
func IsTransient(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Transient
}

// ---- Voucher (VCH) ----

func ErrInvalidAmount() *AppError {
	return New("VCH_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrVoucherNotFound() *AppError {
	return New("VCH_002", "Voucher not found", http.StatusNotFound)
}

func ErrVoucherBlocked() *AppError {
	return New("VCH_003", "Voucher is blocked", http.StatusForbidden)
}

func ErrInsufficientBalance() *AppError {
	return New("VCH_004", "Voucher amount is not enough", http.StatusUnprocessableEntity)
}

// ---- Signature & replay protection (SIG) ----

func ErrNonceMismatch() *AppError {
	return New("SIG_001", "Nonce is not correct", http.StatusConflict)
}

func ErrSignatureMismatch() *AppError {
	return New("SIG_002", "Signed data is not correct", http.StatusUnauthorized)
}

func ErrInvalidSignatureFormat() *AppError {
	return New("SIG_003", "Invalid signature format", http.StatusBadRequest)
}

// ---- Webshop (SHOP) ----

func ErrWebshopBlocked() *AppError {
	return New("SHOP_001", "Webshop is blocked", http.StatusForbidden)
}

func ErrNotAllowedWebshop() *AppError {
	return New("SHOP_002", "Not allowed webshop", http.StatusForbidden)
}

func ErrPartnerInvalid(reason string) *AppError {
	return New("SHOP_003", "Invalid partner: "+reason, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	e := Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
	e.Transient = true
	return e
}

// ErrSubmissionFailed reports a failed broadcast or confirmation. Ledger state
// is unchanged and the same signed request may be retried.
func ErrSubmissionFailed(err error) *AppError {
	e := Wrap("SYS_004", "Transaction submission failed", http.StatusServiceUnavailable, err)
	e.Transient = true
	return e
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

func ErrBodyTooLarge(limit int64) *AppError {
	return New("REQ_002", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

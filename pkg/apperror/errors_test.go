package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("VCH_004", "Voucher amount is not enough", http.StatusUnprocessableEntity),
			expected: "[VCH_004] Voucher amount is not enough",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("VCH_001", "test", http.StatusBadRequest).Unwrap())
}

func TestAppError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("redeem: %w", ErrNonceMismatch())

	assert.True(t, errors.Is(err, ErrNonceMismatch()))
	assert.False(t, errors.Is(err, ErrSignatureMismatch()))
	assert.Equal(t, "SIG_001", CodeOf(err))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
}

func TestLedgerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "VCH_001", 400},
		{"VoucherNotFound", ErrVoucherNotFound(), "VCH_002", 404},
		{"VoucherBlocked", ErrVoucherBlocked(), "VCH_003", 403},
		{"InsufficientBalance", ErrInsufficientBalance(), "VCH_004", 422},
		{"NonceMismatch", ErrNonceMismatch(), "SIG_001", 409},
		{"SignatureMismatch", ErrSignatureMismatch(), "SIG_002", 401},
		{"InvalidSignatureFormat", ErrInvalidSignatureFormat(), "SIG_003", 400},
		{"WebshopBlocked", ErrWebshopBlocked(), "SHOP_001", 403},
		{"NotAllowedWebshop", ErrNotAllowedWebshop(), "SHOP_002", 403},
		{"PartnerInvalid", ErrPartnerInvalid("self"), "SHOP_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.False(t, IsTransient(tt.err), "validation failures are never transient")
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("dial tcp: connection refused")

	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))
	assert.False(t, IsTransient(dbErr))

	lockErr := ErrLockTimeout(inner)
	assert.Equal(t, "SYS_002", lockErr.Code)
	assert.Equal(t, 503, lockErr.HTTPStatus)
	assert.True(t, IsTransient(lockErr))

	subErr := ErrSubmissionFailed(inner)
	assert.Equal(t, "SYS_004", subErr.Code)
	assert.Equal(t, 503, subErr.HTTPStatus)
	assert.True(t, IsTransient(fmt.Errorf("create: %w", subErr)))
}

func TestErrBodyTooLarge(t *testing.T) {
	err := ErrBodyTooLarge(1024)
	assert.Equal(t, "REQ_002", err.Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, err.HTTPStatus)
	assert.Contains(t, err.Message, "1024")
}

func TestPartnerInvalid_Message(t *testing.T) {
	err := ErrPartnerInvalid("zero address")
	assert.Contains(t, err.Message, "zero address")
}

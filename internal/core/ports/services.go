package ports

import (
	"context"
	"time"

	"smart-voucher/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// SignatureCodec builds action digests and recovers their signers.
type SignatureCodec interface {
	DigestForCreate(amount *uint256.Int, nonce uint64) common.Hash
	DigestForRedeem(amount *uint256.Int, voucherID uint64, nonce uint64) common.Hash
	DigestForPartnerChange(partner common.Address, nonce uint64) common.Hash
	RecoverSigner(digest common.Hash, signature []byte) (common.Address, error)
	Verify(expected common.Address, digest common.Hash, signature []byte) error
}

// Submitter makes an approved transition durable, typically by broadcasting
// the matching contract call and waiting for its receipt.
type Submitter interface {
	Submit(ctx context.Context, t *domain.Transition) (*domain.Receipt, error)
	Name() string
}

// Locker serializes writers per entity key.
type Locker interface {
	// Lock acquires every key, waiting up to the configured lock wait.
	// The returned func releases them.
	Lock(ctx context.Context, keys ...string) (func(), error)
}

// RateLimitStore counts requests in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// LedgerMetrics observes ledger outcomes.
type LedgerMetrics interface {
	ObserveAction(kind domain.ActionKind, code string, elapsed time.Duration)
	ObserveSubmission(submitter string, ok bool, elapsed time.Duration)
}

// TokenService handles admin JWT operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// --- Service Ports (Business Logic) ---

// LedgerService is the voucher authorization state machine.
type LedgerService interface {
	Create(ctx context.Context, req CreateRequest) (uint64, error)
	Redeem(ctx context.Context, req RedeemRequest) (*uint256.Int, error)
	AddPartner(ctx context.Context, req PartnerRequest) error
	RemovePartner(ctx context.Context, req PartnerRequest) error
	AddPartners(ctx context.Context, req PartnerBatchRequest) error
	RemovePartners(ctx context.Context, req PartnerBatchRequest) error

	Webshop(ctx context.Context, wallet common.Address) (*domain.Webshop, error)
	Voucher(ctx context.Context, id uint64) (*domain.Voucher, error)
	VoucherByWebshop(ctx context.Context, wallet common.Address, order uint64) (*domain.Voucher, error)
	AllowedToRedeem(ctx context.Context, wallet common.Address, voucherID uint64) (bool, error)
	NextVoucherID(ctx context.Context) (uint64, error)
}

// CreateRequest holds validated input for voucher creation.
type CreateRequest struct {
	Webshop   common.Address
	Amount    *uint256.Int
	Nonce     uint64
	Signature []byte
}

// RedeemRequest holds validated input for redemption. Webshop is the acting
// wallet: the issuer or one of its partners.
type RedeemRequest struct {
	Webshop   common.Address
	Amount    *uint256.Int
	VoucherID uint64
	Nonce     uint64
	Signature []byte
}

// PartnerRequest grants or revokes a single partner.
type PartnerRequest struct {
	Webshop   common.Address
	Partner   common.Address
	Nonce     uint64
	Signature []byte
}

// PartnerBatchRequest grants or revokes several partners under one nonce.
type PartnerBatchRequest struct {
	Webshop   common.Address
	Partners  []common.Address
	Nonce     uint64
	Signature []byte
}

// AdminService holds the administrative authority over blocked flags.
type AdminService interface {
	SetWebshopBlocked(ctx context.Context, wallet common.Address, blocked bool) (*domain.Webshop, error)
	SetVoucherBlocked(ctx context.Context, id uint64, blocked bool) (*domain.Voucher, error)
}

package ports

import (
	"context"
	"errors"

	"smart-voucher/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

// Conflicts detected by TransitionRepository.Commit. They mean another writer
// applied a transition between validation and commit.
var (
	ErrStaleNonce      = errors.New("acting webshop nonce changed before commit")
	ErrBalanceConflict = errors.New("voucher balance changed before commit")
	ErrVoucherSequence = errors.New("voucher id does not match the id sequence")
	ErrNotFound        = errors.New("record not found")
)

// WebshopRepository reads webshop records. Getters return (nil, nil) when the
// wallet has never been materialized.
type WebshopRepository interface {
	GetByWallet(ctx context.Context, wallet common.Address) (*domain.Webshop, error)
}

// VoucherRepository reads voucher records. Getters return (nil, nil) when absent.
type VoucherRepository interface {
	GetByID(ctx context.Context, id uint64) (*domain.Voucher, error)
	GetByWebshopOrder(ctx context.Context, wallet common.Address, order uint64) (*domain.Voucher, error)
	// NextID returns the id the next created voucher will receive.
	NextID(ctx context.Context) (uint64, error)
}

// TransitionRepository is the journal. Commit applies a transition to the
// webshop, voucher and partner state and appends it, all or nothing.
//
// For signed kinds Commit advances the acting nonce only if it still equals
// t.Nonce (ErrStaleNonce otherwise). REDEEM debits only if the balance covers
// t.Amount (ErrBalanceConflict otherwise) and sets t.Balance. CREATE sets
// t.VoucherID to the allocated id; if t.VoucherID is already non-zero it must
// match the allocation (ErrVoucherSequence otherwise).
type TransitionRepository interface {
	Commit(ctx context.Context, t *domain.Transition) error
	// List returns transitions with Seq > afterSeq in commit order.
	List(ctx context.Context, afterSeq int64, limit int) ([]*domain.Transition, error)
}

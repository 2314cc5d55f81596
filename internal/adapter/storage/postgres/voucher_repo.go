package postgres

import (
	"context"
	"errors"
	"fmt"

	"smart-voucher/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

const voucherColumns = `id, webshop, ord, initial_amount::text, current_amount::text, blocked, created_at`

// VoucherRepo implements ports.VoucherRepository.
type VoucherRepo struct {
	pool Pool
}

// NewVoucherRepo creates a new VoucherRepo.
func NewVoucherRepo(pool Pool) *VoucherRepo {
	return &VoucherRepo{pool: pool}
}

// GetByID fetches a voucher by id.
func (r *VoucherRepo) GetByID(ctx context.Context, id uint64) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1`

	v, err := scanVoucher(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher by id: %w", err)
	}
	return v, nil
}

// GetByWebshopOrder fetches the order-th voucher (1-based) of a webshop.
func (r *VoucherRepo) GetByWebshopOrder(ctx context.Context, wallet common.Address, order uint64) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE webshop = $1 AND ord = $2`

	v, err := scanVoucher(r.pool.QueryRow(ctx, query, wallet.Hex(), order))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher by webshop order: %w", err)
	}
	return v, nil
}

// NextID returns the id the next created voucher will receive.
func (r *VoucherRepo) NextID(ctx context.Context) (uint64, error) {
	var next uint64
	err := r.pool.QueryRow(ctx, `SELECT value FROM ledger_counters WHERE name = $1`, counterVoucherID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("read voucher id counter: %w", err)
	}
	return next, nil
}

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var (
		webshop          string
		initial, current string
	)
	v := &domain.Voucher{}
	if err := row.Scan(&v.ID, &webshop, &v.Order, &initial, &current, &v.Blocked, &v.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	v.Webshop = common.HexToAddress(webshop)
	if v.InitialAmount, err = uint256.FromDecimal(initial); err != nil {
		return nil, fmt.Errorf("parse initial_amount %q: %w", initial, err)
	}
	if v.CurrentAmount, err = uint256.FromDecimal(current); err != nil {
		return nil, fmt.Errorf("parse current_amount %q: %w", current, err)
	}
	v.CreatedAt = v.CreatedAt.UTC()
	return v, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-voucher/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

// WebshopRepo implements ports.WebshopRepository.
type WebshopRepo struct {
	pool Pool
}

// NewWebshopRepo creates a new WebshopRepo.
func NewWebshopRepo(pool Pool) *WebshopRepo {
	return &WebshopRepo{pool: pool}
}

// GetByWallet fetches a webshop with its partners in insertion order.
func (r *WebshopRepo) GetByWallet(ctx context.Context, wallet common.Address) (*domain.Webshop, error) {
	query := `SELECT w.wallet, w.nonce, w.blocked, w.voucher_count, w.last_activity,
			COALESCE(array_agg(p.partner ORDER BY p.position) FILTER (WHERE p.partner IS NOT NULL), '{}') AS partners
		FROM webshops w
		LEFT JOIN webshop_partners p ON p.webshop = w.wallet
		WHERE w.wallet = $1
		GROUP BY w.wallet`

	var (
		addr         string
		lastActivity *time.Time
		partners     []string
	)
	w := &domain.Webshop{}
	err := r.pool.QueryRow(ctx, query, wallet.Hex()).Scan(
		&addr, &w.Nonce, &w.Blocked, &w.VoucherCount, &lastActivity, &partners,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webshop by wallet: %w", err)
	}

	w.Wallet = common.HexToAddress(addr)
	if lastActivity != nil {
		w.LastActivity = lastActivity.UTC()
	}
	w.Partners = make([]common.Address, 0, len(partners))
	for _, p := range partners {
		w.Partners = append(w.Partners, common.HexToAddress(p))
	}
	return w, nil
}

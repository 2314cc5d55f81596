package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// HealthCheck reports the ledger database healthy once it answers and holds
// the voucher id counter, which only exists after Migrate.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var next uint64
	err := h.pool.QueryRow(ctx, `SELECT value FROM ledger_counters WHERE name = $1`, counterVoucherID).Scan(&next)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("voucher id counter missing, schema not migrated")
	}
	return err
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}

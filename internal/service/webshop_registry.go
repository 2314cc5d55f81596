package service

import (
	"context"
	"fmt"

	"smart-voucher/internal/core/domain"
	"smart-voucher/internal/core/ports"
	"smart-voucher/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
)

// WebshopRegistry resolves webshop identity, nonce and partner state.
// It never persists on its own; records are written by journal commits.
type WebshopRegistry struct {
	repo ports.WebshopRepository
}

// NewWebshopRegistry creates a new WebshopRegistry.
func NewWebshopRegistry(repo ports.WebshopRepository) *WebshopRegistry {
	return &WebshopRegistry{repo: repo}
}

// GetOrCreate returns the stored webshop or a fresh one with nonce 0.
func (r *WebshopRegistry) GetOrCreate(ctx context.Context, wallet common.Address) (*domain.Webshop, error) {
	w, err := r.repo.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get webshop %s: %w", wallet.Hex(), err))
	}
	if w == nil {
		return domain.NewWebshop(wallet), nil
	}
	return w, nil
}

// CurrentNonce returns the nonce the wallet's next signed action must carry.
func (r *WebshopRegistry) CurrentNonce(ctx context.Context, wallet common.Address) (uint64, error) {
	w, err := r.GetOrCreate(ctx, wallet)
	if err != nil {
		return 0, err
	}
	return w.Nonce, nil
}

// IsPartner reports whether candidate may redeem vouchers issued by webshop.
func (r *WebshopRegistry) IsPartner(ctx context.Context, webshop, candidate common.Address) (bool, error) {
	w, err := r.GetOrCreate(ctx, webshop)
	if err != nil {
		return false, err
	}
	return w.IsPartner(candidate), nil
}

// AddPartner inserts partner into w's set. Returns false if already present.
func (r *WebshopRegistry) AddPartner(w *domain.Webshop, partner common.Address) bool {
	return w.AddPartner(partner)
}

// RemovePartner deletes partner from w's set. Returns false if absent.
func (r *WebshopRegistry) RemovePartner(w *domain.Webshop, partner common.Address) bool {
	return w.RemovePartner(partner)
}

// Authorize fails with WebshopBlocked when w may not act.
func (r *WebshopRegistry) Authorize(w *domain.Webshop) error {
	if w.Blocked {
		return apperror.ErrWebshopBlocked()
	}
	return nil
}

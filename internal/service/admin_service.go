package service

import (
	"context"
	"fmt"
	"time"

	"smart-voucher/internal/core/domain"
	"smart-voucher/internal/core/ports"
	"smart-voucher/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService. Blocked flags are owned by
// the operator, not by signed wallet actions, so these transitions are
// journaled without submission and consume no nonce.
type AdminServiceImpl struct {
	registry *WebshopRegistry
	vouchers *VoucherStore
	journal  ports.TransitionRepository
	locker   ports.Locker
	log      zerolog.Logger
	now      func() time.Time
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	registry *WebshopRegistry,
	vouchers *VoucherStore,
	journal ports.TransitionRepository,
	locker ports.Locker,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		registry: registry,
		vouchers: vouchers,
		journal:  journal,
		locker:   locker,
		log:      log,
		now:      time.Now,
	}
}

// SetWebshopBlocked blocks or unblocks a webshop. Unseen wallets may be
// blocked ahead of their first action.
func (s *AdminServiceImpl) SetWebshopBlocked(ctx context.Context, wallet common.Address, blocked bool) (*domain.Webshop, error) {
	unlock, err := s.locker.Lock(ctx, webshopKey(wallet))
	if err != nil {
		return nil, apperror.ErrLockTimeout(err)
	}
	defer unlock()

	t := domain.NewTransition(domain.ActionBlockWebshop, wallet, 0)
	t.Blocked = blocked
	t.AppliedAt = s.now().UTC()
	if err := s.journal.Commit(ctx, t); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit webshop block: %w", err))
	}

	s.log.Info().Str("wallet", wallet.Hex()).Bool("blocked", blocked).Msg("webshop block flag updated")

	return s.registry.GetOrCreate(ctx, wallet)
}

// SetVoucherBlocked blocks or unblocks a voucher.
func (s *AdminServiceImpl) SetVoucherBlocked(ctx context.Context, id uint64, blocked bool) (*domain.Voucher, error) {
	unlock, err := s.locker.Lock(ctx, voucherKey(id))
	if err != nil {
		return nil, apperror.ErrLockTimeout(err)
	}
	defer unlock()

	v, err := s.vouchers.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	t := domain.NewTransition(domain.ActionBlockVoucher, v.Webshop, 0)
	t.VoucherID = id
	t.Blocked = blocked
	t.AppliedAt = s.now().UTC()
	if err := s.journal.Commit(ctx, t); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit voucher block: %w", err))
	}

	s.log.Info().Uint64("voucher_id", id).Bool("blocked", blocked).Msg("voucher block flag updated")

	return s.vouchers.Get(ctx, id)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"smart-voucher/internal/core/domain"
	"smart-voucher/internal/core/ports"
	"smart-voucher/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// VoucherStore reads vouchers and projects debits. Allocation and the
// persisted debit happen inside TransitionRepository.Commit.
type VoucherStore struct {
	repo ports.VoucherRepository
}

// NewVoucherStore creates a new VoucherStore.
func NewVoucherStore(repo ports.VoucherRepository) *VoucherStore {
	return &VoucherStore{repo: repo}
}

// Get returns the voucher or VoucherNotFound.
func (s *VoucherStore) Get(ctx context.Context, id uint64) (*domain.Voucher, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get voucher %d: %w", id, err))
	}
	if v == nil {
		return nil, apperror.ErrVoucherNotFound()
	}
	return v, nil
}

// ByWebshopOrder returns the order-th voucher (1-based) issued by wallet.
func (s *VoucherStore) ByWebshopOrder(ctx context.Context, wallet common.Address, order uint64) (*domain.Voucher, error) {
	v, err := s.repo.GetByWebshopOrder(ctx, wallet, order)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get voucher %s/%d: %w", wallet.Hex(), order, err))
	}
	if v == nil {
		return nil, apperror.ErrVoucherNotFound()
	}
	return v, nil
}

// NextID returns the id the next created voucher will receive.
func (s *VoucherStore) NextID(ctx context.Context) (uint64, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("next voucher id: %w", err))
	}
	return id, nil
}

// Debit computes the balance after redeeming amount from v without
// mutating v. Fails with InsufficientBalance when amount exceeds it.
func (s *VoucherStore) Debit(v *domain.Voucher, amount *uint256.Int) (*uint256.Int, error) {
	balance, err := v.Clone().Debit(amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return nil, apperror.ErrInsufficientBalance()
		}
		return nil, apperror.InternalError(err)
	}
	return balance, nil
}

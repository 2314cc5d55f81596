package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-voucher/internal/core/domain"
	"smart-voucher/internal/core/ports/mocks"
	"smart-voucher/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	walletA = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	walletB = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

func TestWebshopRegistry_GetOrCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebshopRepository(ctrl)
	registry := NewWebshopRegistry(repo)
	ctx := context.Background()

	stored := domain.NewWebshop(walletA)
	stored.Nonce = 4
	stored.AddPartner(walletB)

	repo.EXPECT().GetByWallet(ctx, walletA).Return(stored, nil).Times(3)
	repo.EXPECT().GetByWallet(ctx, walletB).Return(nil, nil)

	w, err := registry.GetOrCreate(ctx, walletA)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), w.Nonce)

	n, err := registry.CurrentNonce(ctx, walletA)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)

	ok, err := registry.IsPartner(ctx, walletA, walletB)
	require.NoError(t, err)
	assert.True(t, ok)

	fresh, err := registry.GetOrCreate(ctx, walletB)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), fresh.Nonce)
	assert.False(t, fresh.Blocked)
	assert.Empty(t, fresh.Partners)
}

func TestWebshopRegistry_DatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebshopRepository(ctrl)
	repo.EXPECT().GetByWallet(gomock.Any(), walletA).Return(nil, errors.New("connection refused"))

	_, err := NewWebshopRegistry(repo).CurrentNonce(context.Background(), walletA)
	assert.Equal(t, "SYS_001", apperror.CodeOf(err))
}

func TestWebshopRegistry_Authorize(t *testing.T) {
	registry := NewWebshopRegistry(nil)
	w := domain.NewWebshop(walletA)

	assert.NoError(t, registry.Authorize(w))
	w.Blocked = true
	assert.ErrorIs(t, registry.Authorize(w), apperror.ErrWebshopBlocked())
}

func TestWebshopRegistry_PartnerSetOps(t *testing.T) {
	registry := NewWebshopRegistry(nil)
	w := domain.NewWebshop(walletA)

	assert.True(t, registry.AddPartner(w, walletB))
	assert.False(t, registry.AddPartner(w, walletB))
	assert.True(t, registry.RemovePartner(w, walletB))
	assert.False(t, registry.RemovePartner(w, walletB))
}

func TestVoucherStore_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVoucherRepository(ctrl)
	store := NewVoucherStore(repo)
	ctx := context.Background()

	v := domain.NewVoucher(3, walletA, 1, uint256.NewInt(10), time.Now())
	repo.EXPECT().GetByID(ctx, uint64(3)).Return(v, nil)
	repo.EXPECT().GetByID(ctx, uint64(4)).Return(nil, nil)
	repo.EXPECT().GetByID(ctx, uint64(5)).Return(nil, errors.New("timeout"))

	got, err := store.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = store.Get(ctx, 4)
	assert.ErrorIs(t, err, apperror.ErrVoucherNotFound())

	_, err = store.Get(ctx, 5)
	assert.Equal(t, "SYS_001", apperror.CodeOf(err))
}

func TestVoucherStore_ByWebshopOrderAndNextID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVoucherRepository(ctrl)
	store := NewVoucherStore(repo)
	ctx := context.Background()

	repo.EXPECT().GetByWebshopOrder(ctx, walletA, uint64(9)).Return(nil, nil)
	repo.EXPECT().NextID(ctx).Return(uint64(12), nil)

	_, err := store.ByWebshopOrder(ctx, walletA, 9)
	assert.ErrorIs(t, err, apperror.ErrVoucherNotFound())

	next, err := store.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), next)
}

func TestVoucherStore_Debit(t *testing.T) {
	store := NewVoucherStore(nil)
	v := domain.NewVoucher(1, walletA, 1, uint256.NewInt(100), time.Now())

	bal, err := store.Debit(v, uint256.NewInt(40))
	require.NoError(t, err)
	assert.Equal(t, uint64(60), bal.Uint64())
	assert.Equal(t, uint64(100), v.CurrentAmount.Uint64(), "Debit only projects")

	_, err = store.Debit(v, uint256.NewInt(101))
	assert.ErrorIs(t, err, apperror.ErrInsufficientBalance())
}

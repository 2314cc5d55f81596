package service

import (
	"context"
	"crypto/ecdsa"
	"sync"
	"testing"
	"time"

	"smart-voucher/internal/adapter/storage/memory"
	"smart-voucher/internal/core/domain"
	"smart-voucher/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testWallet is a webshop key pair that signs ledger messages.
type testWallet struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func newTestWallet(t *testing.T) testWallet {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return testWallet{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}
}

func (w testWallet) sign(t *testing.T, digest common.Hash) []byte {
	t.Helper()
	sig, err := Sign(w.key, digest)
	require.NoError(t, err)
	return sig
}

func (w testWallet) createReq(t *testing.T, amount, nonce uint64) ports.CreateRequest {
	a := uint256.NewInt(amount)
	return ports.CreateRequest{
		Webshop:   w.addr,
		Amount:    a,
		Nonce:     nonce,
		Signature: w.sign(t, NewEthSignatureCodec().DigestForCreate(a, nonce)),
	}
}

func (w testWallet) redeemReq(t *testing.T, amount, voucherID, nonce uint64) ports.RedeemRequest {
	a := uint256.NewInt(amount)
	return ports.RedeemRequest{
		Webshop:   w.addr,
		Amount:    a,
		VoucherID: voucherID,
		Nonce:     nonce,
		Signature: w.sign(t, NewEthSignatureCodec().DigestForRedeem(a, voucherID, nonce)),
	}
}

func (w testWallet) partnerReq(t *testing.T, partner common.Address, nonce uint64) ports.PartnerRequest {
	return ports.PartnerRequest{
		Webshop:   w.addr,
		Partner:   partner,
		Nonce:     nonce,
		Signature: w.sign(t, NewEthSignatureCodec().DigestForPartnerChange(partner, nonce)),
	}
}

func (w testWallet) batchReq(t *testing.T, partners []common.Address, nonce uint64) ports.PartnerBatchRequest {
	return ports.PartnerBatchRequest{
		Webshop:   w.addr,
		Partners:  partners,
		Nonce:     nonce,
		Signature: w.sign(t, NewEthSignatureCodec().DigestForPartnerChange(partners[0], nonce)),
	}
}

// stubSubmitter confirms every transition in its own block.
type stubSubmitter struct {
	mu        sync.Mutex
	submitted []*domain.Transition
}

func (s *stubSubmitter) Submit(_ context.Context, t *domain.Transition) (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = append(s.submitted, t)
	block := uint64(len(s.submitted))
	return &domain.Receipt{TxHash: crypto.Keccak256Hash(t.ID[:]), BlockNumber: block}, nil
}

func (s *stubSubmitter) Name() string { return "stub" }

func (s *stubSubmitter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submitted)
}

type ledgerFixture struct {
	ledger    *LedgerServiceImpl
	admin     *AdminServiceImpl
	store     *memory.Store
	submitter *stubSubmitter
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	store := memory.NewStore(1)
	locker := memory.NewLocker(time.Second)
	registry := NewWebshopRegistry(store)
	vouchers := NewVoucherStore(store)
	sub := &stubSubmitter{}

	return &ledgerFixture{
		ledger:    NewLedgerService(registry, vouchers, NewEthSignatureCodec(), store, sub, locker, nil, zerolog.Nop()),
		admin:     NewAdminService(registry, vouchers, store, locker, zerolog.Nop()),
		store:     store,
		submitter: sub,
	}
}

func (f *ledgerFixture) nonce(t *testing.T, wallet common.Address) uint64 {
	t.Helper()
	w, err := f.ledger.Webshop(context.Background(), wallet)
	require.NoError(t, err)
	return w.Nonce
}

func (f *ledgerFixture) balance(t *testing.T, id uint64) uint64 {
	t.Helper()
	v, err := f.ledger.Voucher(context.Background(), id)
	require.NoError(t, err)
	return v.CurrentAmount.Uint64()
}

func (f *ledgerFixture) mustCreate(t *testing.T, w testWallet, amount uint64) uint64 {
	t.Helper()
	id, err := f.ledger.Create(context.Background(), w.createReq(t, amount, f.nonce(t, w.addr)))
	require.NoError(t, err)
	return id
}

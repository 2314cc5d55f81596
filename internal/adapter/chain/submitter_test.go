package chain

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"smart-voucher/config"
	"smart-voucher/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	contractAddr = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	shop         = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	partner      = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

type fakeClient struct {
	mu           sync.Mutex
	pendingNonce uint64
	gas          uint64
	estimateErr  error
	sendErrs     []error // consumed one per SendTransaction
	sent         []*gethtypes.Transaction
	notFound     int // receipt lookups answered with NotFound first
	status       uint64
}

func (f *fakeClient) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.pendingNonce, nil
}

func (f *fakeClient) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(7), nil
}

func (f *fakeClient) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return f.gas, f.estimateErr
}

func (f *fakeClient) SendTransaction(_ context.Context, tx *gethtypes.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	if len(f.sendErrs) > 0 {
		err := f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
		return err
	}
	return nil
}

func (f *fakeClient) TransactionReceipt(_ context.Context, hash common.Hash) (*gethtypes.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notFound > 0 {
		f.notFound--
		return nil, ethereum.NotFound
	}
	return &gethtypes.Receipt{TxHash: hash, Status: f.status, BlockNumber: big.NewInt(42)}, nil
}

func newTestSubmitter(t *testing.T, client *fakeClient) (*EthereumSubmitter, common.Address) {
	t.Helper()
	key, err := gethcrypto.GenerateKey()
	require.NoError(t, err)

	s, err := NewEthereumSubmitter(client, config.ChainConfig{
		ChainID:             1337,
		ContractAddress:     contractAddr.Hex(),
		OperatorKey:         "0x" + hex.EncodeToString(gethcrypto.FromECDSA(key)),
		GasLimitCap:         500000,
		ConfirmationTimeout: time.Second,
		PollInterval:        5 * time.Millisecond,
		MaxAttempts:         3,
	}, zerolog.Nop())
	require.NoError(t, err)
	return s, gethcrypto.PubkeyToAddress(key.PublicKey)
}

func createTransition() *domain.Transition {
	t := domain.NewTransition(domain.ActionCreate, shop, 4)
	t.Amount = uint256.NewInt(1000)
	t.Signature = make([]byte, 65)
	return t
}

func TestEthereumSubmitter_SubmitCreate(t *testing.T) {
	client := &fakeClient{pendingNonce: 9, gas: 90000, status: gethtypes.ReceiptStatusSuccessful, notFound: 2}
	s, operator := newTestSubmitter(t, client)
	assert.Equal(t, operator, s.Operator())
	assert.Equal(t, "ethereum", s.Name())

	receipt, err := s.Submit(context.Background(), createTransition())
	require.NoError(t, err)
	require.Len(t, client.sent, 1)

	tx := client.sent[0]
	assert.Equal(t, receipt.TxHash, tx.Hash())
	assert.Equal(t, uint64(42), receipt.BlockNumber)
	assert.Equal(t, uint64(9), tx.Nonce())
	assert.Equal(t, uint64(90000), tx.Gas())
	assert.Equal(t, big.NewInt(7), tx.GasPrice())
	assert.Equal(t, &contractAddr, tx.To())

	sender, err := gethtypes.Sender(gethtypes.LatestSignerForChainID(big.NewInt(1337)), tx)
	require.NoError(t, err)
	assert.Equal(t, operator, sender)

	method, err := s.contract.MethodById(tx.Data()[:4])
	require.NoError(t, err)
	assert.Equal(t, "create", method.Name)
	args, err := method.Inputs.Unpack(tx.Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, shop, args[0])
	assert.Equal(t, big.NewInt(1000), args[1])
	assert.Equal(t, big.NewInt(4), args[2])
}

func TestEthereumSubmitter_PacksEveryKind(t *testing.T) {
	s, _ := newTestSubmitter(t, &fakeClient{})

	redeem := domain.NewTransition(domain.ActionRedeem, shop, 1)
	redeem.Amount = uint256.NewInt(300)
	redeem.VoucherID = 12

	add := domain.NewTransition(domain.ActionAddPartners, shop, 2)
	add.Partners = []common.Address{partner}

	remove := domain.NewTransition(domain.ActionRemovePartners, shop, 3)
	remove.Partners = []common.Address{partner}

	tests := []struct {
		tr     *domain.Transition
		method string
	}{
		{redeem, "redeem"},
		{add, "addPartners"},
		{remove, "removePartners"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			data, err := packCall(s.contract, tt.tr)
			require.NoError(t, err)
			method, err := s.contract.MethodById(data[:4])
			require.NoError(t, err)
			assert.Equal(t, tt.method, method.Name)
		})
	}

	_, err := packCall(s.contract, domain.NewTransition(domain.ActionBlockWebshop, shop, 0))
	assert.Error(t, err)
}

func TestEthereumSubmitter_RetriesSameTransaction(t *testing.T) {
	client := &fakeClient{
		gas:      21000,
		status:   gethtypes.ReceiptStatusSuccessful,
		sendErrs: []error{errors.New("connection reset"), errors.New("already known")},
	}
	s, _ := newTestSubmitter(t, client)

	_, err := s.Submit(context.Background(), createTransition())
	require.NoError(t, err)
	require.Len(t, client.sent, 2)
	assert.Equal(t, client.sent[0].Hash(), client.sent[1].Hash())
}

func TestEthereumSubmitter_GivesUpAfterMaxAttempts(t *testing.T) {
	boom := errors.New("node unavailable")
	client := &fakeClient{gas: 21000, sendErrs: []error{boom, boom, boom}}
	s, _ := newTestSubmitter(t, client)

	_, err := s.Submit(context.Background(), createTransition())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, client.sent, 3)
}

func TestEthereumSubmitter_Reverted(t *testing.T) {
	client := &fakeClient{gas: 21000, status: gethtypes.ReceiptStatusFailed}
	s, _ := newTestSubmitter(t, client)

	_, err := s.Submit(context.Background(), createTransition())
	assert.ErrorContains(t, err, "reverted")
}

func TestEthereumSubmitter_ConfirmationTimeout(t *testing.T) {
	client := &fakeClient{gas: 21000, status: gethtypes.ReceiptStatusSuccessful, notFound: 1 << 30}
	s, _ := newTestSubmitter(t, client)
	s.timeout = 30 * time.Millisecond

	_, err := s.Submit(context.Background(), createTransition())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEthereumSubmitter_RetryAfterTimeout(t *testing.T) {
	t.Run("mined late", func(t *testing.T) {
		client := &fakeClient{gas: 21000, status: gethtypes.ReceiptStatusSuccessful, notFound: 1 << 30}
		s, _ := newTestSubmitter(t, client)
		s.timeout = 30 * time.Millisecond

		_, err := s.Submit(context.Background(), createTransition())
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.Len(t, client.sent, 1)
		first := client.sent[0]

		// The first transaction took operator nonce 0 and is mined afterwards.
		client.pendingNonce = 1
		client.notFound = 0

		receipt, err := s.Submit(context.Background(), createTransition())
		require.NoError(t, err)
		assert.Equal(t, first.Hash(), receipt.TxHash)
		assert.Len(t, client.sent, 1, "mined transaction must not be rebroadcast")
		assert.Empty(t, s.pending)
	})

	t.Run("still pending", func(t *testing.T) {
		client := &fakeClient{gas: 21000, status: gethtypes.ReceiptStatusSuccessful, notFound: 1 << 30}
		s, _ := newTestSubmitter(t, client)
		s.timeout = 30 * time.Millisecond

		_, err := s.Submit(context.Background(), createTransition())
		require.ErrorIs(t, err, context.DeadlineExceeded)

		client.pendingNonce = 1
		client.notFound = 1

		receipt, err := s.Submit(context.Background(), createTransition())
		require.NoError(t, err)
		require.Len(t, client.sent, 2)
		assert.Equal(t, client.sent[0].Hash(), client.sent[1].Hash())
		assert.Equal(t, uint64(0), client.sent[1].Nonce())
		assert.Equal(t, client.sent[0].Hash(), receipt.TxHash)
	})

	t.Run("operator nonce reused", func(t *testing.T) {
		client := &fakeClient{gas: 21000, status: gethtypes.ReceiptStatusSuccessful, notFound: 1 << 30}
		s, _ := newTestSubmitter(t, client)
		s.timeout = 30 * time.Millisecond

		_, err := s.Submit(context.Background(), createTransition())
		require.ErrorIs(t, err, context.DeadlineExceeded)

		client.pendingNonce = 1
		client.notFound = 1
		client.sendErrs = []error{errors.New("nonce too low")}

		receipt, err := s.Submit(context.Background(), createTransition())
		require.NoError(t, err)
		require.Len(t, client.sent, 3)
		assert.Equal(t, uint64(1), client.sent[2].Nonce())
		assert.Equal(t, client.sent[2].Hash(), receipt.TxHash)
	})

	t.Run("different message signs afresh", func(t *testing.T) {
		client := &fakeClient{gas: 21000, status: gethtypes.ReceiptStatusSuccessful, notFound: 1 << 30}
		s, _ := newTestSubmitter(t, client)
		s.timeout = 30 * time.Millisecond

		_, err := s.Submit(context.Background(), createTransition())
		require.ErrorIs(t, err, context.DeadlineExceeded)

		client.pendingNonce = 1
		client.notFound = 0
		other := createTransition()
		other.Nonce = 5

		receipt, err := s.Submit(context.Background(), other)
		require.NoError(t, err)
		require.Len(t, client.sent, 2)
		assert.NotEqual(t, client.sent[0].Hash(), receipt.TxHash)
		assert.Len(t, s.pending, 1)
	})
}

func TestEthereumSubmitter_RevertedIsForgotten(t *testing.T) {
	client := &fakeClient{gas: 21000, status: gethtypes.ReceiptStatusFailed}
	s, _ := newTestSubmitter(t, client)

	_, err := s.Submit(context.Background(), createTransition())
	require.ErrorIs(t, err, errReverted)
	assert.Empty(t, s.pending)
}

func TestEthereumSubmitter_PreflightFailures(t *testing.T) {
	t.Run("estimate fails", func(t *testing.T) {
		client := &fakeClient{estimateErr: errors.New("execution reverted: Nonce is not correct")}
		s, _ := newTestSubmitter(t, client)

		_, err := s.Submit(context.Background(), createTransition())
		assert.ErrorContains(t, err, "estimate gas")
		assert.Empty(t, client.sent)
	})

	t.Run("gas above cap", func(t *testing.T) {
		client := &fakeClient{gas: 900000}
		s, _ := newTestSubmitter(t, client)

		_, err := s.Submit(context.Background(), createTransition())
		assert.ErrorContains(t, err, "exceeds cap")
		assert.Empty(t, client.sent)
	})
}

func TestNewEthereumSubmitter_InvalidConfig(t *testing.T) {
	_, err := NewEthereumSubmitter(&fakeClient{}, config.ChainConfig{ContractAddress: "nope"}, zerolog.Nop())
	assert.ErrorContains(t, err, "contract address")

	_, err = NewEthereumSubmitter(&fakeClient{}, config.ChainConfig{
		ContractAddress: contractAddr.Hex(),
		OperatorKey:     "0x1234",
	}, zerolog.Nop())
	assert.ErrorContains(t, err, "operator key")
}

func TestLocalSubmitter(t *testing.T) {
	s := NewLocalSubmitter()
	assert.Equal(t, "local", s.Name())

	first, err := s.Submit(context.Background(), createTransition())
	require.NoError(t, err)
	second, err := s.Submit(context.Background(), createTransition())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.BlockNumber)
	assert.Equal(t, uint64(2), second.BlockNumber)
	assert.NotEqual(t, first.TxHash, second.TxHash)
}

type fakeHead struct{ err error }

func (f fakeHead) BlockNumber(context.Context) (uint64, error) { return 100, f.err }

func TestHealthCheck(t *testing.T) {
	assert.NoError(t, NewHealthCheck(fakeHead{}).Ping(context.Background()))
	assert.Error(t, NewHealthCheck(fakeHead{err: errors.New("down")}).Ping(context.Background()))
	assert.Equal(t, "chain", NewHealthCheck(fakeHead{}).Name())
}

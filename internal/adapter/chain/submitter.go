package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"smart-voucher/config"
	"smart-voucher/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

var errReverted = errors.New("reverted")

// Client is the subset of the Ethereum RPC used by the submitter.
type Client interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error)
}

// Dial opens an RPC connection to the node at endpoint.
func Dial(ctx context.Context, endpoint string) (*ethclient.Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("chain rpc url required")
	}
	return ethclient.DialContext(ctx, trimmed)
}

// EthereumSubmitter implements ports.Submitter. It signs contract calls with
// the operator key and waits for a successful receipt.
type EthereumSubmitter struct {
	client   Client
	contract abi.ABI
	to       common.Address
	key      *ecdsa.PrivateKey
	from     common.Address
	signer   gethtypes.Signer

	gasPrice    *big.Int // nil asks the node
	gasLimitCap uint64
	timeout     time.Duration
	poll        time.Duration
	attempts    int

	// mu orders operator nonces between concurrent submissions.
	mu sync.Mutex

	pendingMu sync.Mutex
	pending   map[pendingKey]*gethtypes.Transaction // broadcast, not yet confirmed

	log zerolog.Logger
}

// NewEthereumSubmitter validates cfg and builds a submitter.
func NewEthereumSubmitter(client Client, cfg config.ChainConfig, log zerolog.Logger) (*EthereumSubmitter, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", cfg.ContractAddress)
	}
	key, err := gethcrypto.HexToECDSA(strings.TrimPrefix(cfg.OperatorKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse operator key: %w", err)
	}
	parsed, err := parseVoucherABI()
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	s := &EthereumSubmitter{
		client:      client,
		contract:    parsed,
		to:          common.HexToAddress(cfg.ContractAddress),
		key:         key,
		from:        gethcrypto.PubkeyToAddress(key.PublicKey),
		signer:      gethtypes.LatestSignerForChainID(big.NewInt(cfg.ChainID)),
		gasLimitCap: cfg.GasLimitCap,
		timeout:     cfg.ConfirmationTimeout,
		poll:        cfg.PollInterval,
		attempts:    cfg.MaxAttempts,
		pending:     make(map[pendingKey]*gethtypes.Transaction),
		log:         log,
	}
	if cfg.GasPrice > 0 {
		s.gasPrice = big.NewInt(cfg.GasPrice)
	}
	if s.poll <= 0 {
		s.poll = time.Second
	}
	if s.attempts < 1 {
		s.attempts = 1
	}
	return s, nil
}

// Name identifies the submitter in logs and metrics.
func (s *EthereumSubmitter) Name() string {
	return "ethereum"
}

// Operator returns the address that signs submitted transactions.
func (s *EthereumSubmitter) Operator() common.Address {
	return s.from
}

// Submit broadcasts t as a contract call and blocks until it is mined.
//
// A transaction that was broadcast but not confirmed stays pending under the
// signed message it carries. Submitting the same message again looks up that
// transaction's receipt and resends the same raw transaction instead of
// signing a new one, so a late-mined first attempt is committed, not reverted.
func (s *EthereumSubmitter) Submit(ctx context.Context, t *domain.Transition) (*domain.Receipt, error) {
	key := pendingKeyOf(t)

	tx, err := s.resume(ctx, key)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		data, err := packCall(s.contract, t)
		if err != nil {
			return nil, err
		}
		if tx, err = s.signAndSend(ctx, data); err != nil {
			return nil, err
		}
		s.remember(key, tx)

		s.log.Debug().
			Str("tx_hash", tx.Hash().Hex()).
			Str("kind", string(t.Kind)).
			Str("webshop", t.Wallet.Hex()).
			Uint64("nonce", t.Nonce).
			Msg("transaction broadcast")
	}

	receipt, err := s.waitMined(ctx, tx.Hash())
	if err != nil {
		if errors.Is(err, errReverted) {
			s.forget(key)
		}
		return nil, err
	}
	s.forget(key)
	return &domain.Receipt{
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

// pendingKey identifies a signed ledger message. Unsigned kinds never reach
// the chain.
type pendingKey struct {
	wallet    common.Address
	kind      domain.ActionKind
	nonce     uint64
	signature string
}

func pendingKeyOf(t *domain.Transition) pendingKey {
	return pendingKey{
		wallet:    t.Wallet,
		kind:      t.Kind,
		nonce:     t.Nonce,
		signature: string(t.Signature),
	}
}

// resume returns the transaction already broadcast for key, rebroadcasting it
// unless it is mined. It returns nil when there is nothing to resume.
func (s *EthereumSubmitter) resume(ctx context.Context, key pendingKey) (*gethtypes.Transaction, error) {
	s.pendingMu.Lock()
	tx := s.pending[key]
	s.pendingMu.Unlock()
	if tx == nil {
		return nil, nil
	}

	receipt, err := s.client.TransactionReceipt(ctx, tx.Hash())
	if err == nil && receipt != nil {
		s.log.Info().Str("tx_hash", tx.Hash().Hex()).Msg("earlier broadcast already mined")
		return tx, nil
	}
	if err != nil && !errors.Is(err, ethereum.NotFound) {
		return nil, fmt.Errorf("look up pending %s: %w", tx.Hash().Hex(), err)
	}

	s.log.Info().Str("tx_hash", tx.Hash().Hex()).Msg("resending pending transaction")
	if err := s.send(ctx, tx); err != nil {
		if isNonceTooLow(err) {
			// The operator nonce went to another transaction; sign afresh.
			s.forget(key)
			return nil, nil
		}
		return nil, err
	}
	return tx, nil
}

func (s *EthereumSubmitter) remember(key pendingKey, tx *gethtypes.Transaction) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	s.pending[key] = tx
}

func (s *EthereumSubmitter) forget(key pendingKey) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	delete(s.pending, key)
}

// signAndSend signs a new transaction at the operator's pending nonce and
// broadcasts it.
func (s *EthereumSubmitter) signAndSend(ctx context.Context, data []byte) (*gethtypes.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return nil, fmt.Errorf("fetch operator nonce: %w", err)
	}

	gasPrice := s.gasPrice
	if gasPrice == nil {
		if gasPrice, err = s.client.SuggestGasPrice(ctx); err != nil {
			return nil, fmt.Errorf("suggest gas price: %w", err)
		}
	}

	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{From: s.from, To: &s.to, GasPrice: gasPrice, Data: data})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}
	if s.gasLimitCap > 0 && gas > s.gasLimitCap {
		return nil, fmt.Errorf("gas estimate %d exceeds cap %d", gas, s.gasLimitCap)
	}

	tx, err := gethtypes.SignTx(gethtypes.NewTx(&gethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &s.to,
		Value:    new(big.Int),
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	}), s.signer, s.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.send(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// send broadcasts tx, resending the same raw transaction on failure so it can
// never be mined twice.
func (s *EthereumSubmitter) send(ctx context.Context, tx *gethtypes.Transaction) error {
	for attempt := 1; ; attempt++ {
		err := s.client.SendTransaction(ctx, tx)
		if err == nil || isAlreadyKnown(err) {
			return nil
		}
		if attempt >= s.attempts || isNonceTooLow(err) {
			return fmt.Errorf("send transaction after %d attempts: %w", attempt, err)
		}
		s.log.Warn().Err(err).Int("attempt", attempt).Str("tx_hash", tx.Hash().Hex()).Msg("send failed, retrying")
		if err := sleepCtx(ctx, s.poll); err != nil {
			return err
		}
	}
}

func (s *EthereumSubmitter) waitMined(ctx context.Context, hash common.Hash) (*gethtypes.Receipt, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil && receipt != nil:
			if receipt.Status != gethtypes.ReceiptStatusSuccessful {
				return nil, fmt.Errorf("transaction %s: %w", hash.Hex(), errReverted)
			}
			if receipt.BlockNumber == nil {
				return nil, fmt.Errorf("transaction %s receipt has no block", hash.Hex())
			}
			return receipt, nil
		case err != nil && !errors.Is(err, ethereum.NotFound):
			s.log.Warn().Err(err).Str("tx_hash", hash.Hex()).Msg("receipt lookup failed")
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", hash.Hex(), ctx.Err())
		}
	}
}

func isNonceTooLow(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "nonce too low")
}

func isAlreadyKnown(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already known") || strings.Contains(msg, "known transaction")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

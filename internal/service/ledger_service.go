package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"smart-voucher/internal/core/domain"
	"smart-voucher/internal/core/ports"
	"smart-voucher/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// Lock keys. Every writer of a webshop's nonce or partner set holds its
// webshop key; redeem also holds the voucher key. Creates hold the id
// sequence key so allocation order matches submission order.
const (
	lockKeyWebshop     = "webshop:"
	lockKeyVoucher     = "voucher:"
	lockKeyVoucherSeq  = "voucher-seq"
	resultCodeAccepted = "OK"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	registry  *WebshopRegistry
	vouchers  *VoucherStore
	codec     ports.SignatureCodec
	journal   ports.TransitionRepository
	submitter ports.Submitter
	locker    ports.Locker
	metrics   ports.LedgerMetrics
	log       zerolog.Logger
	now       func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl. metrics may be nil.
func NewLedgerService(
	registry *WebshopRegistry,
	vouchers *VoucherStore,
	codec ports.SignatureCodec,
	journal ports.TransitionRepository,
	submitter ports.Submitter,
	locker ports.Locker,
	metrics ports.LedgerMetrics,
	log zerolog.Logger,
) *LedgerServiceImpl {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &LedgerServiceImpl{
		registry:  registry,
		vouchers:  vouchers,
		codec:     codec,
		journal:   journal,
		submitter: submitter,
		locker:    locker,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

// Create issues a voucher of amount for req.Webshop and returns its id.
func (s *LedgerServiceImpl) Create(ctx context.Context, req ports.CreateRequest) (id uint64, err error) {
	defer s.observe(domain.ActionCreate, s.now(), &err)

	if req.Amount == nil || req.Amount.IsZero() {
		return 0, apperror.ErrInvalidAmount()
	}

	unlock, err := s.lock(ctx, webshopKey(req.Webshop), lockKeyVoucherSeq)
	if err != nil {
		return 0, err
	}
	defer unlock()

	w, err := s.registry.GetOrCreate(ctx, req.Webshop)
	if err != nil {
		return 0, err
	}
	if req.Nonce != w.Nonce {
		return 0, apperror.ErrNonceMismatch()
	}
	digest := s.codec.DigestForCreate(req.Amount, req.Nonce)
	if err := s.codec.Verify(req.Webshop, digest, req.Signature); err != nil {
		return 0, err
	}
	if err := s.registry.Authorize(w); err != nil {
		return 0, err
	}

	next, err := s.vouchers.NextID(ctx)
	if err != nil {
		return 0, err
	}

	t := domain.NewTransition(domain.ActionCreate, req.Webshop, req.Nonce)
	t.Amount = req.Amount.Clone()
	t.VoucherID = next
	t.Signature = req.Signature
	if err := s.apply(ctx, t); err != nil {
		return 0, err
	}

	s.log.Info().
		Str("wallet", req.Webshop.Hex()).
		Uint64("voucher_id", t.VoucherID).
		Str("amount", req.Amount.Dec()).
		Uint64("nonce", req.Nonce).
		Msg("voucher created")

	return t.VoucherID, nil
}

// Redeem debits amount from a voucher on behalf of req.Webshop, which must be
// the issuer or one of its partners. Returns the new balance.
func (s *LedgerServiceImpl) Redeem(ctx context.Context, req ports.RedeemRequest) (balance *uint256.Int, err error) {
	defer s.observe(domain.ActionRedeem, s.now(), &err)

	if req.Amount == nil || req.Amount.IsZero() {
		return nil, apperror.ErrInvalidAmount()
	}

	// The issuer is immutable, so it is safe to learn it before locking.
	v, err := s.vouchers.Get(ctx, req.VoucherID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, webshopKey(req.Webshop), webshopKey(v.Webshop), voucherKey(req.VoucherID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	v, err = s.vouchers.Get(ctx, req.VoucherID)
	if err != nil {
		return nil, err
	}
	if v.Blocked {
		return nil, apperror.ErrVoucherBlocked()
	}

	issuer, err := s.registry.GetOrCreate(ctx, v.Webshop)
	if err != nil {
		return nil, err
	}
	if !v.CanRedeem(req.Webshop, issuer) {
		return nil, apperror.ErrNotAllowedWebshop()
	}

	actor := issuer
	if req.Webshop != v.Webshop {
		if actor, err = s.registry.GetOrCreate(ctx, req.Webshop); err != nil {
			return nil, err
		}
	}
	if req.Nonce != actor.Nonce {
		return nil, apperror.ErrNonceMismatch()
	}
	digest := s.codec.DigestForRedeem(req.Amount, req.VoucherID, req.Nonce)
	if err := s.codec.Verify(req.Webshop, digest, req.Signature); err != nil {
		return nil, err
	}
	if err := s.registry.Authorize(actor); err != nil {
		return nil, err
	}

	projected, err := s.vouchers.Debit(v, req.Amount)
	if err != nil {
		return nil, err
	}

	t := domain.NewTransition(domain.ActionRedeem, req.Webshop, req.Nonce)
	t.Amount = req.Amount.Clone()
	t.VoucherID = req.VoucherID
	t.Signature = req.Signature
	t.Balance = projected
	if err := s.apply(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("wallet", req.Webshop.Hex()).
		Str("issuer", v.Webshop.Hex()).
		Uint64("voucher_id", req.VoucherID).
		Str("amount", req.Amount.Dec()).
		Str("balance", t.Balance.Dec()).
		Uint64("nonce", req.Nonce).
		Msg("voucher redeemed")

	return t.Balance.Clone(), nil
}

// AddPartner grants req.Partner redemption rights over req.Webshop's vouchers.
func (s *LedgerServiceImpl) AddPartner(ctx context.Context, req ports.PartnerRequest) error {
	return s.AddPartners(ctx, singlePartner(req))
}

// RemovePartner revokes req.Partner's redemption rights.
func (s *LedgerServiceImpl) RemovePartner(ctx context.Context, req ports.PartnerRequest) error {
	return s.RemovePartners(ctx, singlePartner(req))
}

// AddPartners grants every listed partner under a single nonce.
func (s *LedgerServiceImpl) AddPartners(ctx context.Context, req ports.PartnerBatchRequest) (err error) {
	defer s.observe(domain.ActionAddPartners, s.now(), &err)
	return s.changePartners(ctx, domain.ActionAddPartners, req)
}

// RemovePartners revokes every listed partner under a single nonce.
func (s *LedgerServiceImpl) RemovePartners(ctx context.Context, req ports.PartnerBatchRequest) (err error) {
	defer s.observe(domain.ActionRemovePartners, s.now(), &err)
	return s.changePartners(ctx, domain.ActionRemovePartners, req)
}

// changePartners verifies a partner-change message. The signed digest covers
// the first listed partner only, as the deployed contract does.
func (s *LedgerServiceImpl) changePartners(ctx context.Context, kind domain.ActionKind, req ports.PartnerBatchRequest) error {
	if len(req.Partners) == 0 {
		return apperror.ErrPartnerInvalid("partner list is empty")
	}

	unlock, err := s.lock(ctx, webshopKey(req.Webshop))
	if err != nil {
		return err
	}
	defer unlock()

	w, err := s.registry.GetOrCreate(ctx, req.Webshop)
	if err != nil {
		return err
	}
	if req.Nonce != w.Nonce {
		return apperror.ErrNonceMismatch()
	}
	digest := s.codec.DigestForPartnerChange(req.Partners[0], req.Nonce)
	if err := s.codec.Verify(req.Webshop, digest, req.Signature); err != nil {
		return err
	}
	if err := s.registry.Authorize(w); err != nil {
		return err
	}

	projected := w.Clone()
	changed := 0
	for _, p := range req.Partners {
		if kind == domain.ActionAddPartners {
			if err := s.validatePartner(ctx, req.Webshop, p); err != nil {
				return err
			}
			if s.registry.AddPartner(projected, p) {
				changed++
			}
			continue
		}
		if s.registry.RemovePartner(projected, p) {
			changed++
		}
	}

	t := domain.NewTransition(kind, req.Webshop, req.Nonce)
	t.Partners = append([]common.Address{}, req.Partners...)
	t.Signature = req.Signature
	if err := s.apply(ctx, t); err != nil {
		return err
	}

	s.log.Info().
		Str("wallet", req.Webshop.Hex()).
		Str("kind", string(kind)).
		Int("requested", len(req.Partners)).
		Int("changed", changed).
		Uint64("nonce", req.Nonce).
		Msg("partners updated")

	return nil
}

func (s *LedgerServiceImpl) validatePartner(ctx context.Context, webshop, partner common.Address) error {
	if partner == (common.Address{}) {
		return apperror.ErrPartnerInvalid("zero address")
	}
	if partner == webshop {
		return apperror.ErrPartnerInvalid("webshop cannot be its own partner")
	}
	p, err := s.registry.GetOrCreate(ctx, partner)
	if err != nil {
		return err
	}
	if p.Blocked {
		return apperror.ErrPartnerInvalid("partner is blocked")
	}
	return nil
}

// Webshop returns the webshop record; unseen wallets yield a zero record.
func (s *LedgerServiceImpl) Webshop(ctx context.Context, wallet common.Address) (*domain.Webshop, error) {
	return s.registry.GetOrCreate(ctx, wallet)
}

// Voucher returns the voucher or VoucherNotFound.
func (s *LedgerServiceImpl) Voucher(ctx context.Context, id uint64) (*domain.Voucher, error) {
	return s.vouchers.Get(ctx, id)
}

// VoucherByWebshop returns the order-th voucher (1-based) issued by wallet.
func (s *LedgerServiceImpl) VoucherByWebshop(ctx context.Context, wallet common.Address, order uint64) (*domain.Voucher, error) {
	return s.vouchers.ByWebshopOrder(ctx, wallet, order)
}

// AllowedToRedeem reports whether wallet currently passes the redeem
// authorization check for the voucher.
func (s *LedgerServiceImpl) AllowedToRedeem(ctx context.Context, wallet common.Address, voucherID uint64) (bool, error) {
	v, err := s.vouchers.Get(ctx, voucherID)
	if err != nil {
		return false, err
	}
	issuer, err := s.registry.GetOrCreate(ctx, v.Webshop)
	if err != nil {
		return false, err
	}
	return v.CanRedeem(wallet, issuer), nil
}

// NextVoucherID returns the id the next created voucher will receive.
func (s *LedgerServiceImpl) NextVoucherID(ctx context.Context) (uint64, error) {
	return s.vouchers.NextID(ctx)
}

// apply submits an approved transition and, once confirmed, commits it.
// A failed submission leaves ledger state untouched.
func (s *LedgerServiceImpl) apply(ctx context.Context, t *domain.Transition) error {
	start := s.now()
	receipt, err := s.submitter.Submit(ctx, t)
	s.metrics.ObserveSubmission(s.submitter.Name(), err == nil, s.now().Sub(start))
	if err != nil {
		s.log.Warn().Err(err).
			Str("kind", string(t.Kind)).
			Str("wallet", t.Wallet.Hex()).
			Uint64("nonce", t.Nonce).
			Msg("transition submission failed")
		return apperror.ErrSubmissionFailed(err)
	}

	t.Receipt = *receipt
	t.AppliedAt = s.now().UTC()
	if err := s.journal.Commit(ctx, t); err != nil {
		s.log.Error().Err(err).
			Str("kind", string(t.Kind)).
			Str("wallet", t.Wallet.Hex()).
			Uint64("nonce", t.Nonce).
			Str("tx_hash", t.Receipt.TxHash.Hex()).
			Msg("confirmed transition could not be committed")
		return apperror.InternalError(fmt.Errorf("commit %s transition: %w", t.Kind, err))
	}
	return nil
}

func (s *LedgerServiceImpl) lock(ctx context.Context, keys ...string) (func(), error) {
	unlock, err := s.locker.Lock(ctx, lockKeys(keys...)...)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ErrLockTimeout(err)
	}
	return unlock, nil
}

func (s *LedgerServiceImpl) observe(kind domain.ActionKind, start time.Time, err *error) {
	code := resultCodeAccepted
	if *err != nil {
		if code = apperror.CodeOf(*err); code == "" {
			code = "SYS_000"
		}
		s.log.Debug().Str("kind", string(kind)).Str("code", code).Err(*err).Msg("action rejected")
	}
	s.metrics.ObserveAction(kind, code, s.now().Sub(start))
}

func singlePartner(req ports.PartnerRequest) ports.PartnerBatchRequest {
	return ports.PartnerBatchRequest{
		Webshop:   req.Webshop,
		Partners:  []common.Address{req.Partner},
		Nonce:     req.Nonce,
		Signature: req.Signature,
	}
}

func webshopKey(wallet common.Address) string {
	return lockKeyWebshop + strings.ToLower(wallet.Hex())
}

func voucherKey(id uint64) string {
	return lockKeyVoucher + strconv.FormatUint(id, 10)
}

// lockKeys dedupes and sorts keys so every writer acquires them in one order.
func lockKeys(keys ...string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type noopMetrics struct{}

func (noopMetrics) ObserveAction(domain.ActionKind, string, time.Duration) {}
func (noopMetrics) ObserveSubmission(string, bool, time.Duration)           {}

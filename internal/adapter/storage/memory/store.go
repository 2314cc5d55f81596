package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"smart-voucher/internal/core/domain"
	"smart-voucher/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
)

// Store keeps webshops, vouchers and the journal in process memory. It
// implements ports.WebshopRepository, ports.VoucherRepository and
// ports.TransitionRepository, and is the target of journal replay.
type Store struct {
	mu       sync.RWMutex
	webshops map[common.Address]*domain.Webshop
	vouchers map[uint64]*domain.Voucher
	orders   map[common.Address][]uint64
	nextID   uint64
	journal  []*domain.Transition
}

// NewStore creates an empty store whose first voucher id is origin.
func NewStore(origin uint64) *Store {
	return &Store{
		webshops: make(map[common.Address]*domain.Webshop),
		vouchers: make(map[uint64]*domain.Voucher),
		orders:   make(map[common.Address][]uint64),
		nextID:   origin,
	}
}

// GetByWallet returns a copy of the webshop or nil.
func (s *Store) GetByWallet(_ context.Context, wallet common.Address) (*domain.Webshop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if w, ok := s.webshops[wallet]; ok {
		return w.Clone(), nil
	}
	return nil, nil
}

// GetByID returns a copy of the voucher or nil.
func (s *Store) GetByID(_ context.Context, id uint64) (*domain.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.vouchers[id]; ok {
		return v.Clone(), nil
	}
	return nil, nil
}

// GetByWebshopOrder returns the order-th voucher (1-based) issued by wallet.
func (s *Store) GetByWebshopOrder(_ context.Context, wallet common.Address, order uint64) (*domain.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.orders[wallet]
	if order == 0 || order > uint64(len(ids)) {
		return nil, nil
	}
	return s.vouchers[ids[order-1]].Clone(), nil
}

// NextID returns the id the next created voucher will receive.
func (s *Store) NextID(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID, nil
}

// Commit applies t and appends it to the journal. Nothing changes on error.
func (s *Store) Commit(_ context.Context, t *domain.Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.AppliedAt.IsZero() {
		t.AppliedAt = time.Now().UTC()
	}

	w := s.webshop(t.Wallet)
	var (
		voucher  *domain.Voucher
		created  bool
		nextID   = s.nextID
		orderIDs = s.orders[t.Wallet]
	)

	switch t.Kind {
	case domain.ActionCreate, domain.ActionRedeem, domain.ActionAddPartners, domain.ActionRemovePartners:
		if w.Nonce != t.Nonce {
			return fmt.Errorf("webshop %s at nonce %d, transition %d: %w", t.Wallet.Hex(), w.Nonce, t.Nonce, ports.ErrStaleNonce)
		}
		w.Nonce++
		w.LastActivity = t.AppliedAt
	}

	switch t.Kind {
	case domain.ActionCreate:
		if t.VoucherID != 0 && t.VoucherID != nextID {
			return fmt.Errorf("voucher id %d, next %d: %w", t.VoucherID, nextID, ports.ErrVoucherSequence)
		}
		w.VoucherCount++
		voucher = domain.NewVoucher(nextID, t.Wallet, w.VoucherCount, t.Amount, t.AppliedAt)
		orderIDs = append(append([]uint64{}, orderIDs...), nextID)
		created = true

	case domain.ActionRedeem:
		v, ok := s.vouchers[t.VoucherID]
		if !ok {
			return fmt.Errorf("voucher %d: %w", t.VoucherID, ports.ErrNotFound)
		}
		voucher = v.Clone()
		balance, err := voucher.Debit(t.Amount)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientBalance) {
				return fmt.Errorf("voucher %d: %w", t.VoucherID, ports.ErrBalanceConflict)
			}
			return err
		}
		t.Balance = balance

	case domain.ActionAddPartners:
		for _, p := range t.Partners {
			w.AddPartner(p)
		}

	case domain.ActionRemovePartners:
		for _, p := range t.Partners {
			w.RemovePartner(p)
		}

	case domain.ActionBlockWebshop:
		w.Blocked = t.Blocked

	case domain.ActionBlockVoucher:
		v, ok := s.vouchers[t.VoucherID]
		if !ok {
			return fmt.Errorf("voucher %d: %w", t.VoucherID, ports.ErrNotFound)
		}
		voucher = v.Clone()
		voucher.Blocked = t.Blocked
		w = nil

	default:
		return fmt.Errorf("unknown transition kind %q", t.Kind)
	}

	if w != nil {
		s.webshops[t.Wallet] = w
	}
	if voucher != nil {
		s.vouchers[voucher.ID] = voucher
	}
	if created {
		t.VoucherID = nextID
		s.nextID = nextID + 1
		s.orders[t.Wallet] = orderIDs
	}

	entry := cloneTransition(t)
	entry.Seq = int64(len(s.journal) + 1)
	t.Seq = entry.Seq
	s.journal = append(s.journal, entry)
	return nil
}

// List returns up to limit transitions with Seq > afterSeq.
func (s *Store) List(_ context.Context, afterSeq int64, limit int) ([]*domain.Transition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if afterSeq < 0 {
		afterSeq = 0
	}
	out := make([]*domain.Transition, 0, limit)
	for i := int(afterSeq); i < len(s.journal) && len(out) < limit; i++ {
		out = append(out, cloneTransition(s.journal[i]))
	}
	return out, nil
}

// webshop returns a mutable copy of the stored webshop or a fresh record.
func (s *Store) webshop(wallet common.Address) *domain.Webshop {
	if w, ok := s.webshops[wallet]; ok {
		return w.Clone()
	}
	return domain.NewWebshop(wallet)
}

func cloneTransition(t *domain.Transition) *domain.Transition {
	c := *t
	c.Partners = append([]common.Address(nil), t.Partners...)
	c.Signature = append([]byte(nil), t.Signature...)
	if t.Amount != nil {
		c.Amount = t.Amount.Clone()
	}
	if t.Balance != nil {
		c.Balance = t.Balance.Clone()
	}
	return &c
}

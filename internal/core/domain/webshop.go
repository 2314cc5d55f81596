package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Webshop is a merchant identity keyed by its wallet address.
// A record exists implicitly: it is materialized on the first accepted action
// signed by the wallet and is never deleted.
type Webshop struct {
	Wallet       common.Address   `json:"wallet"`
	Nonce        uint64           `json:"nonce"`
	Partners     []common.Address `json:"partners"` // Insertion order, no duplicates
	Blocked      bool             `json:"blocked"`
	VoucherCount uint64           `json:"voucher_count"`
	LastActivity time.Time        `json:"last_activity"`
}

// NewWebshop returns a fresh, unpersisted record for wallet.
func NewWebshop(wallet common.Address) *Webshop {
	return &Webshop{Wallet: wallet, Partners: []common.Address{}}
}

// Exists reports whether the webshop has had at least one accepted action.
func (w *Webshop) Exists() bool {
	return !w.LastActivity.IsZero()
}

// IsPartner reports whether candidate may redeem this webshop's vouchers.
func (w *Webshop) IsPartner(candidate common.Address) bool {
	for _, p := range w.Partners {
		if p == candidate {
			return true
		}
	}
	return false
}

// AddPartner appends partner unless already present. Returns false on no-op.
func (w *Webshop) AddPartner(partner common.Address) bool {
	if w.IsPartner(partner) {
		return false
	}
	w.Partners = append(w.Partners, partner)
	return true
}

// RemovePartner deletes partner keeping the order of the rest. Returns false on no-op.
func (w *Webshop) RemovePartner(partner common.Address) bool {
	for i, p := range w.Partners {
		if p == partner {
			w.Partners = append(w.Partners[:i:i], w.Partners[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (w *Webshop) Clone() *Webshop {
	c := *w
	c.Partners = append([]common.Address{}, w.Partners...)
	return &c
}

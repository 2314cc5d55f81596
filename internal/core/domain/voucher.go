package domain

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ErrInsufficientBalance is returned by Debit when amount exceeds the balance.
var ErrInsufficientBalance = errors.New("insufficient voucher balance")

// Voucher is a prepaid balance issued by a webshop.
// Invariant: 0 <= CurrentAmount <= InitialAmount.
type Voucher struct {
	ID            uint64         `json:"id"`
	Webshop       common.Address `json:"webshop"`
	Order         uint64         `json:"order"` // 1-based position among the issuer's vouchers
	InitialAmount *uint256.Int   `json:"initial_amount"`
	CurrentAmount *uint256.Int   `json:"current_amount"`
	CreatedAt     time.Time      `json:"created_at"`
	Blocked       bool           `json:"blocked"`
}

// NewVoucher returns a voucher whose current amount equals its initial amount.
func NewVoucher(id uint64, webshop common.Address, order uint64, amount *uint256.Int, createdAt time.Time) *Voucher {
	return &Voucher{
		ID:            id,
		Webshop:       webshop,
		Order:         order,
		InitialAmount: amount.Clone(),
		CurrentAmount: amount.Clone(),
		CreatedAt:     createdAt,
	}
}

// CanRedeem reports whether wallet is the issuer or one of the issuer's partners.
func (v *Voucher) CanRedeem(wallet common.Address, issuer *Webshop) bool {
	if wallet == v.Webshop {
		return true
	}
	return issuer != nil && issuer.IsPartner(wallet)
}

// Debit subtracts amount and returns the new balance.
func (v *Voucher) Debit(amount *uint256.Int) (*uint256.Int, error) {
	if amount.Gt(v.CurrentAmount) {
		return nil, ErrInsufficientBalance
	}
	v.CurrentAmount = new(uint256.Int).Sub(v.CurrentAmount, amount)
	return v.CurrentAmount.Clone(), nil
}

// Clone returns a deep copy.
func (v *Voucher) Clone() *Voucher {
	c := *v
	c.InitialAmount = v.InitialAmount.Clone()
	c.CurrentAmount = v.CurrentAmount.Clone()
	return &c
}

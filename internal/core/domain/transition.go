package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// ActionKind identifies the state change recorded by a Transition.
type ActionKind string

const (
	ActionCreate         ActionKind = "CREATE"
	ActionRedeem         ActionKind = "REDEEM"
	ActionAddPartners    ActionKind = "ADD_PARTNERS"
	ActionRemovePartners ActionKind = "REMOVE_PARTNERS"

	// Administrative actions carry no signature and consume no nonce.
	ActionBlockWebshop ActionKind = "BLOCK_WEBSHOP"
	ActionBlockVoucher ActionKind = "BLOCK_VOUCHER"
)

// IsSigned reports whether the action is authorized by a wallet signature.
func (k ActionKind) IsSigned() bool {
	switch k {
	case ActionCreate, ActionRedeem, ActionAddPartners, ActionRemovePartners:
		return true
	}
	return false
}

// Receipt identifies the confirmed on-chain submission of a transition.
type Receipt struct {
	TxHash      common.Hash `json:"tx_hash"`
	BlockNumber uint64      `json:"block_number"`
}

// Transition is one journal entry. Replaying the journal in Seq order
// rebuilds webshops, vouchers and partner sets.
type Transition struct {
	ID        uuid.UUID        `json:"id"`
	Seq       int64            `json:"seq"` // Assigned by the journal on commit
	Kind      ActionKind       `json:"kind"`
	Wallet    common.Address   `json:"wallet"` // Acting wallet, or target webshop for BLOCK_WEBSHOP
	Nonce     uint64           `json:"nonce"`
	Amount    *uint256.Int     `json:"amount,omitempty"`
	VoucherID uint64           `json:"voucher_id,omitempty"` // Allocated id for CREATE
	Partners  []common.Address `json:"partners,omitempty"`
	Blocked   bool             `json:"blocked,omitempty"`
	Signature []byte           `json:"-"`
	Balance   *uint256.Int     `json:"balance,omitempty"` // Balance after REDEEM
	Receipt   Receipt          `json:"receipt"`
	AppliedAt time.Time        `json:"applied_at"`
}

// NewTransition creates a transition with a fresh id.
func NewTransition(kind ActionKind, wallet common.Address, nonce uint64) *Transition {
	return &Transition{
		ID:     uuid.New(),
		Kind:   kind,
		Wallet: wallet,
		Nonce:  nonce,
	}
}

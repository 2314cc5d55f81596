package chain

import (
	"fmt"
	"math/big"
	"strings"

	"smart-voucher/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// voucherABI covers the state-changing methods of the voucher contract.
const voucherABI = `[
	{"type":"function","name":"create","stateMutability":"nonpayable","inputs":[
		{"name":"webshop","type":"address"},
		{"name":"amount","type":"uint256"},
		{"name":"nonce","type":"uint256"},
		{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"redeem","stateMutability":"nonpayable","inputs":[
		{"name":"webshop","type":"address"},
		{"name":"amount","type":"uint256"},
		{"name":"voucherId","type":"uint256"},
		{"name":"nonce","type":"uint256"},
		{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"addPartners","stateMutability":"nonpayable","inputs":[
		{"name":"webshop","type":"address"},
		{"name":"partners","type":"address[]"},
		{"name":"nonce","type":"uint256"},
		{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"removePartners","stateMutability":"nonpayable","inputs":[
		{"name":"webshop","type":"address"},
		{"name":"partners","type":"address[]"},
		{"name":"nonce","type":"uint256"},
		{"name":"signature","type":"bytes"}],"outputs":[]}
]`

func parseVoucherABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(voucherABI))
}

// packCall encodes the contract call for a signed transition.
func packCall(contract abi.ABI, t *domain.Transition) ([]byte, error) {
	nonce := new(big.Int).SetUint64(t.Nonce)

	switch t.Kind {
	case domain.ActionCreate:
		return contract.Pack("create", t.Wallet, t.Amount.ToBig(), nonce, t.Signature)
	case domain.ActionRedeem:
		return contract.Pack("redeem", t.Wallet, t.Amount.ToBig(), new(big.Int).SetUint64(t.VoucherID), nonce, t.Signature)
	case domain.ActionAddPartners:
		return contract.Pack("addPartners", t.Wallet, t.Partners, nonce, t.Signature)
	case domain.ActionRemovePartners:
		return contract.Pack("removePartners", t.Wallet, t.Partners, nonce, t.Signature)
	}
	return nil, fmt.Errorf("transition kind %q is not submitted on chain", t.Kind)
}

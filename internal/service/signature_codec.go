package service

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"smart-voucher/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// SignatureLength is the size of an r ‖ s ‖ v secp256k1 signature.
const SignatureLength = crypto.SignatureLength

// EthSignatureCodec implements ports.SignatureCodec with the packed keccak256
// layouts of the voucher contract. Signers sign the digest as an Ethereum
// personal message ("\x19Ethereum Signed Message:\n32" ‖ digest).
type EthSignatureCodec struct{}

// NewEthSignatureCodec creates a new codec.
func NewEthSignatureCodec() *EthSignatureCodec {
	return &EthSignatureCodec{}
}

// DigestForCreate hashes uint256(amount) ‖ uint256(nonce).
func (c *EthSignatureCodec) DigestForCreate(amount *uint256.Int, nonce uint64) common.Hash {
	a := amount.Bytes32()
	n := uint256.NewInt(nonce).Bytes32()
	return crypto.Keccak256Hash(a[:], n[:])
}

// DigestForRedeem hashes uint256(amount) ‖ uint256(voucherID) ‖ uint256(nonce).
func (c *EthSignatureCodec) DigestForRedeem(amount *uint256.Int, voucherID uint64, nonce uint64) common.Hash {
	a := amount.Bytes32()
	id := uint256.NewInt(voucherID).Bytes32()
	n := uint256.NewInt(nonce).Bytes32()
	return crypto.Keccak256Hash(a[:], id[:], n[:])
}

// DigestForPartnerChange hashes address(partner) ‖ uint256(nonce).
// Batch operations pass the first partner of the list.
func (c *EthSignatureCodec) DigestForPartnerChange(partner common.Address, nonce uint64) common.Hash {
	n := uint256.NewInt(nonce).Bytes32()
	return crypto.Keccak256Hash(partner.Bytes(), n[:])
}

// RecoverSigner returns the wallet that signed digest as a personal message.
// v may be 0/1 or 27/28.
func (c *EthSignatureCodec) RecoverSigner(digest common.Hash, signature []byte) (common.Address, error) {
	if len(signature) != SignatureLength {
		return common.Address{}, apperror.ErrInvalidSignatureFormat()
	}

	sig := make([]byte, SignatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return common.Address{}, apperror.ErrInvalidSignatureFormat()
	}

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(sig[64], r, s, false) {
		return common.Address{}, apperror.ErrInvalidSignatureFormat()
	}

	pub, err := crypto.SigToPub(accounts.TextHash(digest.Bytes()), sig)
	if err != nil {
		return common.Address{}, apperror.ErrInvalidSignatureFormat()
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Verify fails with SignatureMismatch unless expected signed digest.
func (c *EthSignatureCodec) Verify(expected common.Address, digest common.Hash, signature []byte) error {
	signer, err := c.RecoverSigner(digest, signature)
	if err != nil {
		return err
	}
	if signer != expected {
		return apperror.ErrSignatureMismatch()
	}
	return nil
}

// Sign signs digest as a personal message and returns r ‖ s ‖ v with v in {27, 28}.
func Sign(key *ecdsa.PrivateKey, digest common.Hash) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(digest.Bytes()), key)
	if err != nil {
		return nil, fmt.Errorf("signing digest: %w", err)
	}
	sig[64] += 27
	return sig, nil
}

package dto

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func validCreate() CreateVoucherRequest {
	nonce := uint64(0)
	return CreateVoucherRequest{
		Webshop:   "0x00000000000000000000000000000000000000a1",
		Amount:    "1000",
		Nonce:     &nonce,
		Signature: "0x" + strings.Repeat("ab", 65),
	}
}

func TestCreateVoucherRequest_Valid(t *testing.T) {
	req := validCreate()
	assert.NoError(t, binding.Validator.ValidateStruct(&req))
}

func TestCreateVoucherRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateVoucherRequest)
	}{
		{"short address", func(r *CreateVoucherRequest) { r.Webshop = "0xa1" }},
		{"address without prefix", func(r *CreateVoucherRequest) { r.Webshop = strings.Repeat("a", 40) }},
		{"negative amount", func(r *CreateVoucherRequest) { r.Amount = "-1" }},
		{"hex amount", func(r *CreateVoucherRequest) { r.Amount = "0x10" }},
		{"amount overflows uint256", func(r *CreateVoucherRequest) {
			r.Amount = "115792089237316195423570985008687907853269984665640564039457584007913129639936"
		}},
		{"missing nonce", func(r *CreateVoucherRequest) { r.Nonce = nil }},
		{"short signature", func(r *CreateVoucherRequest) { r.Signature = "0x" + strings.Repeat("ab", 64) }},
		{"signature not hex", func(r *CreateVoucherRequest) { r.Signature = "0x" + strings.Repeat("zz", 65) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)
			assert.Error(t, binding.Validator.ValidateStruct(&req))
		})
	}
}

func TestCreateVoucherRequest_ZeroAmountPassesBoundary(t *testing.T) {
	// Zero is rejected by the ledger with its own error code.
	req := validCreate()
	req.Amount = "0"
	assert.NoError(t, binding.Validator.ValidateStruct(&req))
}

func TestPartnerBatchRequest(t *testing.T) {
	nonce := uint64(3)
	req := PartnerBatchRequest{
		Partners:  []string{"0x00000000000000000000000000000000000000b2", "0x00000000000000000000000000000000000000c3"},
		Nonce:     &nonce,
		Signature: "0x" + strings.Repeat("cd", 65),
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&req))

	req.Partners = append(req.Partners, "not-an-address")
	assert.Error(t, binding.Validator.ValidateStruct(&req))

	req.Partners = nil
	assert.NoError(t, binding.Validator.ValidateStruct(&req), "empty lists are judged by the ledger")
}

func TestSetBlockedRequest(t *testing.T) {
	var req SetBlockedRequest
	assert.Error(t, binding.Validator.ValidateStruct(&req))

	blocked := false
	req.Blocked = &blocked
	assert.NoError(t, binding.Validator.ValidateStruct(&req))
}

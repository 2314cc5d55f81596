package handler

import (
	"smart-voucher/internal/adapter/http/dto"
	"smart-voucher/internal/core/ports"
	"smart-voucher/pkg/apperror"
	"smart-voucher/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// VoucherHandler handles voucher endpoints.
type VoucherHandler struct {
	ledger ports.LedgerService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(ledger ports.LedgerService) *VoucherHandler {
	return &VoucherHandler{ledger: ledger}
}

// Create handles POST /api/v1/vouchers.
func (h *VoucherHandler) Create(c *gin.Context) {
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := decodeAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	sig, err := decodeSignature(req.Signature)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.ledger.Create(c.Request.Context(), ports.CreateRequest{
		Webshop:   common.HexToAddress(req.Webshop),
		Amount:    amount,
		Nonce:     *req.Nonce,
		Signature: sig,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateVoucherResponse{VoucherID: id})
}

// Redeem handles POST /api/v1/vouchers/:id/redeem.
func (h *VoucherHandler) Redeem(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RedeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := decodeAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	sig, err := decodeSignature(req.Signature)
	if err != nil {
		response.Error(c, err)
		return
	}

	balance, err := h.ledger.Redeem(c.Request.Context(), ports.RedeemRequest{
		Webshop:   common.HexToAddress(req.Webshop),
		Amount:    amount,
		VoucherID: id,
		Nonce:     *req.Nonce,
		Signature: sig,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RedeemVoucherResponse{VoucherID: id, CurrentAmount: balance.Dec()})
}

// Get handles GET /api/v1/vouchers/:id.
func (h *VoucherHandler) Get(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.ledger.Voucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVoucherResponse(v))
}

// Allowed handles GET /api/v1/vouchers/:id/allowed/:wallet.
func (h *VoucherHandler) Allowed(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	wallet, err := pathAddress(c, "wallet")
	if err != nil {
		response.Error(c, err)
		return
	}

	ok, err := h.ledger.AllowedToRedeem(c.Request.Context(), wallet, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowedResponse{Allowed: ok})
}

// NextID handles GET /api/v1/vouchers/next-id.
func (h *VoucherHandler) NextID(c *gin.Context) {
	next, err := h.ledger.NextVoucherID(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NextVoucherIDResponse{NextID: next})
}

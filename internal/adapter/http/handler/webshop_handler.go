package handler

import (
	"context"

	"smart-voucher/internal/adapter/http/dto"
	"smart-voucher/internal/core/ports"
	"smart-voucher/pkg/apperror"
	"smart-voucher/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// WebshopHandler handles webshop and partner endpoints.
type WebshopHandler struct {
	ledger ports.LedgerService
}

// NewWebshopHandler creates a new WebshopHandler.
func NewWebshopHandler(ledger ports.LedgerService) *WebshopHandler {
	return &WebshopHandler{ledger: ledger}
}

// Get handles GET /api/v1/webshops/:wallet.
func (h *WebshopHandler) Get(c *gin.Context) {
	wallet, err := pathAddress(c, "wallet")
	if err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.ledger.Webshop(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWebshopResponse(w))
}

// VoucherByOrder handles GET /api/v1/webshops/:wallet/vouchers/:order.
func (h *WebshopHandler) VoucherByOrder(c *gin.Context) {
	wallet, err := pathAddress(c, "wallet")
	if err != nil {
		response.Error(c, err)
		return
	}
	order, err := pathUint(c, "order")
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.ledger.VoucherByWebshop(c.Request.Context(), wallet, order)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVoucherResponse(v))
}

// AddPartner handles POST /api/v1/webshops/:wallet/partner.
func (h *WebshopHandler) AddPartner(c *gin.Context) {
	h.single(c, h.ledger.AddPartner)
}

// RemovePartner handles POST /api/v1/webshops/:wallet/partner/remove.
func (h *WebshopHandler) RemovePartner(c *gin.Context) {
	h.single(c, h.ledger.RemovePartner)
}

// AddPartners handles POST /api/v1/webshops/:wallet/partners.
func (h *WebshopHandler) AddPartners(c *gin.Context) {
	h.batch(c, h.ledger.AddPartners)
}

// RemovePartners handles POST /api/v1/webshops/:wallet/partners/remove.
func (h *WebshopHandler) RemovePartners(c *gin.Context) {
	h.batch(c, h.ledger.RemovePartners)
}

func (h *WebshopHandler) single(c *gin.Context, apply func(context.Context, ports.PartnerRequest) error) {
	wallet, err := pathAddress(c, "wallet")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sig, err := decodeSignature(req.Signature)
	if err != nil {
		response.Error(c, err)
		return
	}

	err = apply(c.Request.Context(), ports.PartnerRequest{
		Webshop:   wallet,
		Partner:   common.HexToAddress(req.Partner),
		Nonce:     *req.Nonce,
		Signature: sig,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PartnerChangeResponse{Webshop: wallet.Hex(), NextNonce: *req.Nonce + 1})
}

func (h *WebshopHandler) batch(c *gin.Context, apply func(context.Context, ports.PartnerBatchRequest) error) {
	wallet, err := pathAddress(c, "wallet")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PartnerBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sig, err := decodeSignature(req.Signature)
	if err != nil {
		response.Error(c, err)
		return
	}

	partners := make([]common.Address, 0, len(req.Partners))
	for _, p := range req.Partners {
		partners = append(partners, common.HexToAddress(p))
	}

	err = apply(c.Request.Context(), ports.PartnerBatchRequest{
		Webshop:   wallet,
		Partners:  partners,
		Nonce:     *req.Nonce,
		Signature: sig,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PartnerChangeResponse{Webshop: wallet.Hex(), NextNonce: *req.Nonce + 1})
}

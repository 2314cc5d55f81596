package handler

import (
	"smart-voucher/internal/adapter/http/dto"
	"smart-voucher/internal/adapter/http/middleware"
	"smart-voucher/internal/core/ports"
	"smart-voucher/pkg/apperror"
	"smart-voucher/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler handles the blocked-flag endpoints.
type AdminHandler struct {
	admin ports.AdminService
	log   zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin ports.AdminService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, log: log}
}

// SetWebshopBlocked handles PUT /api/v1/admin/webshops/:wallet/blocked.
func (h *AdminHandler) SetWebshopBlocked(c *gin.Context) {
	wallet, err := pathAddress(c, "wallet")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.admin.SetWebshopBlocked(c.Request.Context(), wallet, *req.Blocked)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.log.Info().
		Str("admin", c.GetString(middleware.CtxAdminSubject)).
		Str("webshop", wallet.Hex()).
		Bool("blocked", *req.Blocked).
		Msg("webshop blocked flag set")

	response.OK(c, toWebshopResponse(w))
}

// SetVoucherBlocked handles PUT /api/v1/admin/vouchers/:id/blocked.
func (h *AdminHandler) SetVoucherBlocked(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	v, err := h.admin.SetVoucherBlocked(c.Request.Context(), id, *req.Blocked)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.log.Info().
		Str("admin", c.GetString(middleware.CtxAdminSubject)).
		Uint64("voucher_id", id).
		Bool("blocked", *req.Blocked).
		Msg("voucher blocked flag set")

	response.OK(c, toVoucherResponse(v))
}

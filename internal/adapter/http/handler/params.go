package handler

import (
	"strconv"

	"smart-voucher/internal/adapter/http/dto"
	"smart-voucher/internal/core/domain"
	"smart-voucher/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

func pathAddress(c *gin.Context, name string) (common.Address, error) {
	raw := c.Param(name)
	if !common.IsHexAddress(raw) || len(raw) != 42 {
		return common.Address{}, apperror.Validation("invalid " + name + " address")
	}
	return common.HexToAddress(raw), nil
}

func pathUint(c *gin.Context, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.Validation("invalid " + name)
	}
	return v, nil
}

// The binding validators have already checked these formats.

func decodeSignature(s string) ([]byte, error) {
	sig, err := hexutil.Decode(s)
	if err != nil {
		return nil, apperror.ErrInvalidSignatureFormat()
	}
	return sig, nil
}

func decodeAmount(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, apperror.Validation("invalid amount")
	}
	return v, nil
}

func toVoucherResponse(v *domain.Voucher) dto.VoucherResponse {
	return dto.VoucherResponse{
		ID:            v.ID,
		Webshop:       v.Webshop.Hex(),
		Order:         v.Order,
		InitialAmount: v.InitialAmount.Dec(),
		CurrentAmount: v.CurrentAmount.Dec(),
		Blocked:       v.Blocked,
		CreatedAt:     v.CreatedAt.Format(timeLayout),
	}
}

func toWebshopResponse(w *domain.Webshop) dto.WebshopResponse {
	resp := dto.WebshopResponse{
		Wallet:       w.Wallet.Hex(),
		Exists:       w.Exists(),
		Nonce:        w.Nonce,
		Blocked:      w.Blocked,
		VoucherCount: w.VoucherCount,
		Partners:     make([]string, 0, len(w.Partners)),
	}
	for _, p := range w.Partners {
		resp.Partners = append(resp.Partners, p.Hex())
	}
	if !w.LastActivity.IsZero() {
		s := w.LastActivity.Format(timeLayout)
		resp.LastActivity = &s
	}
	return resp
}

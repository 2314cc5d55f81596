package dto

// CreateVoucherRequest is the request body for voucher creation.
type CreateVoucherRequest struct {
	Webshop   string  `json:"webshop" binding:"required,eth_addr"`
	Amount    string  `json:"amount" binding:"required,uint256"`
	Nonce     *uint64 `json:"nonce" binding:"required"`
	Signature string  `json:"signature" binding:"required,eth_sig"`
}

// RedeemVoucherRequest is the request body for redemption. Webshop is the
// acting wallet: the issuer or one of its partners.
type RedeemVoucherRequest struct {
	Webshop   string  `json:"webshop" binding:"required,eth_addr"`
	Amount    string  `json:"amount" binding:"required,uint256"`
	Nonce     *uint64 `json:"nonce" binding:"required"`
	Signature string  `json:"signature" binding:"required,eth_sig"`
}

// PartnerRequest grants or revokes one partner.
type PartnerRequest struct {
	Partner   string  `json:"partner" binding:"required,eth_addr"`
	Nonce     *uint64 `json:"nonce" binding:"required"`
	Signature string  `json:"signature" binding:"required,eth_sig"`
}

// PartnerBatchRequest grants or revokes several partners under one nonce.
type PartnerBatchRequest struct {
	Partners  []string `json:"partners" binding:"dive,eth_addr"`
	Nonce     *uint64  `json:"nonce" binding:"required"`
	Signature string   `json:"signature" binding:"required,eth_sig"`
}

// SetBlockedRequest is the admin request body for blocking and unblocking.
type SetBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// CreateVoucherResponse is the response body for voucher creation.
type CreateVoucherResponse struct {
	VoucherID uint64 `json:"voucher_id"`
}

// RedeemVoucherResponse is the response body for redemption.
type RedeemVoucherResponse struct {
	VoucherID     uint64 `json:"voucher_id"`
	CurrentAmount string `json:"current_amount"`
}

// PartnerChangeResponse acknowledges a partner change.
type PartnerChangeResponse struct {
	Webshop   string `json:"webshop"`
	NextNonce uint64 `json:"next_nonce"`
}

// VoucherResponse describes a voucher. Amounts are decimal strings.
type VoucherResponse struct {
	ID            uint64 `json:"id"`
	Webshop       string `json:"webshop"`
	Order         uint64 `json:"order"`
	InitialAmount string `json:"initial_amount"`
	CurrentAmount string `json:"current_amount"`
	Blocked       bool   `json:"blocked"`
	CreatedAt     string `json:"created_at"`
}

// WebshopResponse describes a webshop. Unknown wallets report exists=false
// and nonce 0.
type WebshopResponse struct {
	Wallet       string   `json:"wallet"`
	Exists       bool     `json:"exists"`
	Nonce        uint64   `json:"nonce"`
	Blocked      bool     `json:"blocked"`
	VoucherCount uint64   `json:"voucher_count"`
	Partners     []string `json:"partners"`
	LastActivity *string  `json:"last_activity,omitempty"`
}

// AllowedResponse answers whether a wallet may redeem a voucher.
type AllowedResponse struct {
	Allowed bool `json:"allowed"`
}

// NextVoucherIDResponse reports the id the next voucher will receive.
type NextVoucherIDResponse struct {
	NextID uint64 `json:"next_id"`
}

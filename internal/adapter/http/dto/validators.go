package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"
)

// A 65-byte signature, 0x-prefixed.
var signatureRe = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_sig", validateSignature)
		_ = v.RegisterValidation("uint256", validateUint256)
	}
}

func validateSignature(fl validator.FieldLevel) bool {
	return signatureRe.MatchString(fl.Field().String())
}

// validateUint256 accepts base-10 integers in [0, 2^256).
func validateUint256(fl validator.FieldLevel) bool {
	_, err := uint256.FromDecimal(fl.Field().String())
	return err == nil
}

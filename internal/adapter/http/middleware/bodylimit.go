package middleware

import (
	"net/http"

	"smart-voucher/pkg/apperror"
	"smart-voucher/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize caps request bodies. Ledger messages are a handful of hex and
// decimal fields, so anything near the cap is not a voucher request.
// Bodies that declare a larger Content-Length are refused with REQ_002;
// chunked bodies are cut off at the cap and fail to bind.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.AbortError(c, apperror.ErrBodyTooLarge(maxBytes))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

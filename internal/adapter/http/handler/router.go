package handler

import (
	"net/http"

	"smart-voucher/internal/adapter/http/middleware"
	"smart-voucher/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsExporter observes requests and serves the scrape endpoint.
type MetricsExporter interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.LedgerService
	Admin          ports.AdminService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	Metrics        MetricsExporter      // nil = no /metrics
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(64 << 10)) // 64 KB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Signed ledger actions and public reads ---
	voucherHandler := NewVoucherHandler(deps.Ledger)
	vouchers := v1.Group("/vouchers")
	{
		vouchers.POST("", rl("vouchers_write"), voucherHandler.Create)
		vouchers.GET("/next-id", rl("reads"), voucherHandler.NextID)
		vouchers.GET("/:id", rl("reads"), voucherHandler.Get)
		vouchers.POST("/:id/redeem", rl("vouchers_write"), voucherHandler.Redeem)
		vouchers.GET("/:id/allowed/:wallet", rl("reads"), voucherHandler.Allowed)
	}

	webshopHandler := NewWebshopHandler(deps.Ledger)
	webshops := v1.Group("/webshops/:wallet")
	{
		webshops.GET("", rl("reads"), webshopHandler.Get)
		webshops.GET("/vouchers/:order", rl("reads"), webshopHandler.VoucherByOrder)
		webshops.POST("/partner", rl("partners"), webshopHandler.AddPartner)
		webshops.POST("/partner/remove", rl("partners"), webshopHandler.RemovePartner)
		webshops.POST("/partners", rl("partners"), webshopHandler.AddPartners)
		webshops.POST("/partners/remove", rl("partners"), webshopHandler.RemovePartners)
	}

	// --- Admin (JWT-authenticated) ---
	if deps.Admin != nil && deps.TokenSvc != nil {
		adminHandler := NewAdminHandler(deps.Admin, deps.Logger)
		admin := v1.Group("/admin", middleware.AdminAuth(deps.TokenSvc, deps.Logger), rl("admin"))
		{
			admin.PUT("/webshops/:wallet/blocked", adminHandler.SetWebshopBlocked)
			admin.PUT("/vouchers/:id/blocked", adminHandler.SetVoucherBlocked)
		}
	}

	return r
}

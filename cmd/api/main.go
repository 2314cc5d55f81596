package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-voucher/config"
	"smart-voucher/internal/adapter/chain"
	httpHandler "smart-voucher/internal/adapter/http/handler"
	"smart-voucher/internal/adapter/metrics"
	memStorage "smart-voucher/internal/adapter/storage/memory"
	pgStorage "smart-voucher/internal/adapter/storage/postgres"
	redisStorage "smart-voucher/internal/adapter/storage/redis"
	"smart-voucher/internal/core/ports"
	"smart-voucher/internal/service"
	"smart-voucher/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

type repositories struct {
	webshops ports.WebshopRepository
	vouchers ports.VoucherRepository
	journal  ports.TransitionRepository
}

func main() {
	configPath := flag.StringP("config", "c", "", "path to a YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Ledger.Storage).
		Str("locks", cfg.Ledger.Locks).
		Str("chain", cfg.Chain.Driver).
		Msg("Starting Smart Voucher Ledger")

	ctx := context.Background()
	var checkers []ports.HealthChecker

	// Storage
	var repos repositories
	switch cfg.Ledger.Storage {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.Migrate(ctx, pool, cfg.Ledger.VoucherIDOrigin); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate ledger schema")
		}
		repos = repositories{
			webshops: pgStorage.NewWebshopRepo(pool),
			vouchers: pgStorage.NewVoucherRepo(pool),
			journal:  pgStorage.NewTransitionRepo(pool),
		}
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	case "memory":
		store := memStorage.NewStore(cfg.Ledger.VoucherIDOrigin)
		repos = repositories{webshops: store, vouchers: store, journal: store}
		log.Warn().Msg("Ledger state is held in memory and lost on restart")
	default:
		log.Fatal().Str("storage", cfg.Ledger.Storage).Msg("Unknown ledger storage")
	}

	// Locks and rate limiting
	var (
		locker         ports.Locker
		rateLimitStore ports.RateLimitStore
	)
	switch cfg.Ledger.Locks {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer closeRedis(rdb, log)
		locker = redisStorage.NewLocker(rdb, cfg.Ledger.LockTTL, cfg.Ledger.LockWait)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	case "memory":
		locker = memStorage.NewLocker(cfg.Ledger.LockWait)
		log.Warn().Msg("In-process locks: run a single instance; rate limiting disabled")
	default:
		log.Fatal().Str("locks", cfg.Ledger.Locks).Msg("Unknown lock backend")
	}

	// Chain submission
	var submitter ports.Submitter
	switch cfg.Chain.Driver {
	case "ethereum":
		client, err := chain.Dial(ctx, cfg.Chain.RPCURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to dial chain node")
		}
		defer client.Close()
		eth, err := chain.NewEthereumSubmitter(client, cfg.Chain, logger.Component(log, "chain"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize chain submitter")
		}
		log.Info().Str("operator", eth.Operator().Hex()).Str("contract", cfg.Chain.ContractAddress).Msg("Chain submitter ready")
		submitter = eth
		checkers = append(checkers, chain.NewHealthCheck(client))
	case "local":
		submitter = chain.NewLocalSubmitter()
	default:
		log.Fatal().Str("driver", cfg.Chain.Driver).Msg("Unknown chain driver")
	}

	ledgerMetrics := metrics.New()

	// Initialize business services
	registry := service.NewWebshopRegistry(repos.webshops)
	vouchers := service.NewVoucherStore(repos.vouchers)
	ledgerSvc := service.NewLedgerService(
		registry,
		vouchers,
		service.NewEthSignatureCodec(),
		repos.journal,
		submitter,
		locker,
		ledgerMetrics,
		logger.Component(log, "ledger"),
	)
	adminSvc := service.NewAdminService(registry, vouchers, repos.journal, locker, logger.Component(log, "admin"))

	deps := httpHandler.RouterDeps{
		Ledger:         ledgerSvc,
		Admin:          adminSvc,
		RateLimitStore: rateLimitStore,
		Metrics:        ledgerMetrics,
		HealthCheckers: checkers,
		Logger:         log,
	}
	if cfg.JWT.Secret != "" {
		deps.TokenSvc = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	} else {
		log.Warn().Msg("jwt.secret not set, admin routes disabled")
	}

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// In-flight submissions may wait for a receipt, so allow the full
	// confirmation timeout before forcing connections closed.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Chain.ConfirmationTimeout+10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	}
	return gin.ReleaseMode
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("closing redis client")
	}
}

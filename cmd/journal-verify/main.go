package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"smart-voucher/config"
	memStorage "smart-voucher/internal/adapter/storage/memory"
	pgStorage "smart-voucher/internal/adapter/storage/postgres"
	"smart-voucher/internal/service"
	"smart-voucher/pkg/logger"

	flag "github.com/spf13/pflag"
)

// journal-verify replays the PostgreSQL journal into an empty in-memory
// ledger and fails if any recorded outcome cannot be reproduced.
func main() {
	configPath := flag.StringP("config", "c", "", "path to a YAML config file")
	timeout := flag.Duration("timeout", 10*time.Minute, "abort after this long")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	start := time.Now()
	rebuilt := memStorage.NewStore(cfg.Ledger.VoucherIDOrigin)
	n, err := service.Replay(ctx, pgStorage.NewTransitionRepo(pool), rebuilt)
	if err != nil {
		log.Error().Err(err).Int("applied", n).Msg("journal replay diverged")
		os.Exit(1)
	}

	next, _ := rebuilt.NextID(ctx)
	stored, err := pgStorage.NewVoucherRepo(pool).NextID(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read voucher id counter")
	}
	if stored != next {
		log.Error().Uint64("stored", stored).Uint64("rebuilt", next).Msg("voucher id counter diverged")
		os.Exit(1)
	}

	log.Info().
		Int("transitions", n).
		Uint64("next_voucher_id", next).
		Dur("elapsed", time.Since(start)).
		Msg("journal replay consistent")
}

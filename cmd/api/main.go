package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"coin-launch-gateway/config"
	"coin-launch-gateway/internal/adapter/chain"
	httpHandler "coin-launch-gateway/internal/adapter/http/handler"
	"coin-launch-gateway/internal/adapter/http/middleware"
	"coin-launch-gateway/internal/adapter/metadata"
	"coin-launch-gateway/internal/adapter/storage/memory"
	pgStorage "coin-launch-gateway/internal/adapter/storage/postgres"
	redisStorage "coin-launch-gateway/internal/adapter/storage/redis"
	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/internal/service"
	"coin-launch-gateway/pkg/logger"
	"coin-launch-gateway/pkg/metrics"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win.
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn().Err(envErr).Msg("Failed to read .env file")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Int64("chain_id", cfg.Chain.ChainID).
		Bool("skip_chain", cfg.Chain.SkipChain).
		Msg("Starting Coin Launch Gateway")

	if cfg.Chain.SkipChain {
		log.Warn().Msg("SKIP_CHAIN=true: launches stop after metadata upload, no coins will be deployed")
	}

	ctx := context.Background()
	m := metrics.New()

	// Operator wallet
	var walletIdentity *domain.WalletIdentity
	var coins ports.CoinCreator
	wallet, err := chain.Provision(ctx, cfg.Wallet, cfg.Chain, log)
	switch {
	case errors.Is(err, chain.ErrWalletNotConfigured):
		log.Warn().Msg("DEPLOYER_PRIVATE_KEY not set: launches will fail until a wallet is configured")
	case err != nil:
		log.Error().Err(err).Msg("Failed to provision operator wallet, continuing without one")
	default:
		defer wallet.Close()
		id := wallet.Identity()
		walletIdentity = &id

		factory, err := chain.NewCoinFactory(wallet, cfg.Coin, cfg.Chain, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize coin factory")
		}
		coins = factory
	}

	// Rate limit store: Redis when configured, otherwise process-local
	var rateLimitStore ports.RateLimitStore
	var healthCheckers []ports.HealthChecker
	if cfg.Redis.URL != "" {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Info().Msg("REDIS_URL not set, rate limit counters are kept in memory")
		rateLimitStore = memory.NewRateLimitStore()
	}

	// Launch audit trail
	var launchRecords ports.LaunchRecordRepository
	if cfg.Database.URL != "" {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure database schema")
		}
		launchRecords = pgStorage.NewLaunchRecordRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	} else {
		log.Info().Msg("DATABASE_URL not set, launch records are only logged")
	}

	// Metadata host
	uploader := metadata.NewZoraUploader(cfg.Metadata, log)
	if !uploader.Enabled() {
		log.Warn().Msg("ZORA_API_KEY not set, metadata will be embedded inline")
	}

	// Services
	metadataSvc := service.NewMetadataService(uploader, m, log)
	auditSvc := service.NewAuditService(launchRecords, log)
	reportingSvc := service.NewReportingService(launchRecords)
	launchSvc := service.NewLaunchService(walletIdentity, metadataSvc, coins, auditSvc, m, service.LaunchOptions{
		SkipChain:     cfg.Chain.SkipChain,
		ChainID:       cfg.Chain.ChainID,
		Currency:      domain.DeployCurrency(strings.ToUpper(cfg.Coin.Currency)),
		GasMultiplier: cfg.Coin.GasMultiplier,
	}, log)

	// Setup Gin router with all routes
	router, err := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Launcher:       launchSvc,
		Reporting:      reportingSvc,
		Wallet:         walletIdentity,
		RateLimitStore: rateLimitStore,
		RateLimit:      middleware.RateLimitRule{Limit: cfg.RateLimit.Max, Window: cfg.RateLimit.Window},
		HealthCheckers: healthCheckers,
		Metrics:        m,
		Server:         cfg.Server,
		Logger:         log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up router")
	}

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Launch records still being written need the pool closed by the defers above.
	if err := auditSvc.Wait(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Launch records still pending at shutdown")
	}

	log.Info().Msg("Server exited")
}

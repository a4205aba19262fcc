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

	"sovtoken-payments/config"
	httpHandler "sovtoken-payments/internal/adapter/http/handler"
	pgStorage "sovtoken-payments/internal/adapter/storage/postgres"
	redisStorage "sovtoken-payments/internal/adapter/storage/redis"
	"sovtoken-payments/internal/adapter/wallet"
	"sovtoken-payments/internal/bridge"
	"sovtoken-payments/internal/core/ports"
	"sovtoken-payments/internal/service"
	"sovtoken-payments/pkg/logger"
	"sovtoken-payments/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("payment_method", cfg.Payment.MethodName).
		Msg("Starting sovtoken payment service")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare wallet schema")
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	var (
		recorder metrics.Recorder = metrics.NoopRecorder{}
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheusRecorder(reg)
		gatherer = reg
	}

	keyStore := wallet.NewKeyStore(pgStorage.NewPaymentAddressRepo(pool), encSvc, logger.Component(log, "wallet"))
	paymentSvc := service.NewPaymentMethodService(service.PaymentMethodOptions{
		Method:          cfg.Payment.MethodName,
		ProtocolVersion: cfg.Payment.ProtocolVersion,
		Policy:          cfg.Payment.Policy(),
		FeePolicy:       cfg.Payment.FeePolicy(),
	}, keyStore, recorder, logger.Component(log, "payment"))

	registry := bridge.NewRegistry()
	if err := registry.Register(cfg.Payment.MethodName, paymentSvc.Operations()); err != nil {
		log.Fatal().Err(err).Msg("Failed to register payment method")
	}

	dispatcher := bridge.NewDispatcher(cfg.Bridge.Workers, logger.Component(log, "bridge"))

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Methods: httpHandler.NewMethodHandler(
			registry,
			dispatcher,
			redisStorage.NewResultCache(rdb),
			cfg.Bridge.ResultTTL,
			logger.Component(log, "http"),
		),
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		Metrics:        gatherer,
		MetricsPath:    cfg.Metrics.Path,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Strs("methods", registry.Names()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	dispatcher.Close()

	log.Info().Msg("Server exited")
}

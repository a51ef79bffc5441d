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

	"github.com/rentaride/car-rental-api/internal/config"
	"github.com/rentaride/car-rental-api/internal/logger"
	"github.com/rentaride/car-rental-api/internal/security"
	"github.com/rentaride/car-rental-api/internal/service"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest"
)

func main() {
	config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	logger.Init()
	log := logger.Logger.With().
		Str("service", "car-rental-api").
		Str("env", cfg.Env).
		Logger()

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set; token issuance and protected routes will fail")
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Postgres ----
	db, err := config.NewDB(cfg.DBAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer db.Close()
	log.Info().Msg("postgres connected")

	// ---- Redis ----
	rdb, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()
	log.Info().Msg("redis connected")

	// ---- RabbitMQ ----
	amqpConn, amqpCh, err := config.NewRabbitMQConnection(cfg.RabbitURL)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbitmq connect failed")
	}
	defer amqpConn.Close()
	defer amqpCh.Close()
	log.Info().Str("exchange", config.EventsExchange).Msg("rabbitmq connected")

	// ---- Wiring ----
	storage := store.NewStorage(db)
	hasher := security.NewPasswordHasher()
	issuer := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	publisher := service.NewRabbitMQPublisher(amqpCh)

	authSvc := service.NewAuthService(storage, hasher, issuer, publisher)
	carSvc := service.NewCarService(storage, cfg.UploadDir)

	handler := rest.NewRouter(rest.RouterDeps{
		Store:  storage,
		Auth:   authSvc,
		Cars:   carSvc,
		Issuer: issuer,
		Hasher: hasher,
		Redis:  rdb,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	} else {
		log.Info().Msg("http server stopped")
	}
}

package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KissBendeguz/SnackElf/internal/adapters/handler/http"
	"github.com/KissBendeguz/SnackElf/internal/adapters/metrics"
	"github.com/KissBendeguz/SnackElf/internal/adapters/repository/postgres"
	"github.com/KissBendeguz/SnackElf/internal/config"
	"github.com/KissBendeguz/SnackElf/internal/core/services"
	"github.com/KissBendeguz/SnackElf/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.FromEnv()
	if err != nil {
		fallback := logger.New(os.Stderr, "info", "json")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if dotenvErr != nil {
		log.Info().Msg("no .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, postgres.ConnString(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.ApplyMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	// Initialize Repositories
	roomRepo := postgres.NewRoomRepository(db)
	foodRepo := postgres.NewFoodRepository(db)
	responseRepo := postgres.NewPollResponseRepository(db)

	// Initialize Services
	roomService := services.NewRoomService(roomRepo, recorder, log)
	pollService := services.NewPollService(roomRepo, foodRepo, responseRepo, recorder, log)
	foodService := services.NewFoodService(foodRepo, recorder, log)

	limiter := http.NewIPRateLimiter(cfg.PollRatePerMinute, cfg.PollRateBurst, 10*time.Minute)
	go limiter.Run(ctx.Done(), time.Minute)

	handler := http.NewHandler(
		http.NewRoomHandler(roomService),
		http.NewPollHandler(pollService),
		http.NewFoodHandler(foodService),
		http.NewHealthHandler(db),
		http.RouterConfig{
			Logger:            log,
			AllowedOrigins:    cfg.CORSAllowedOrigins,
			PollLimiter:       limiter,
			Registry:          registry,
			TrustProxyHeaders: cfg.TrustProxyHeaders,
		},
	)
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}
}

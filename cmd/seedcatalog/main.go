package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/KissBendeguz/SnackElf/internal/adapters/repository/postgres"
	"github.com/KissBendeguz/SnackElf/internal/config"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/KissBendeguz/SnackElf/internal/core/services"
	"github.com/KissBendeguz/SnackElf/internal/logger"
)

func main() {
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.FromEnv()
	if err != nil {
		fallback := logger.New(os.Stderr, "info", "console")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	flag.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "Database host")
	flag.StringVar(&cfg.DBPort, "db-port", cfg.DBPort, "Database port")
	flag.StringVar(&cfg.DBUser, "db-user", cfg.DBUser, "Database user")
	flag.StringVar(&cfg.DBPassword, "db-pass", cfg.DBPassword, "Database password")
	flag.StringVar(&cfg.DBName, "db-name", cfg.DBName, "Database name")
	migrate := flag.Bool("migrate", false, "Apply migrations before seeding")
	flag.Parse()

	log := logger.New(os.Stdout, cfg.LogLevel, "console")
	if dotenvErr != nil {
		log.Info().Msg("no .env file found")
	}

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, postgres.ConnString(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if *migrate {
		if err := postgres.ApplyMigrations(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	foodService := services.NewFoodService(postgres.NewFoodRepository(db), ports.NopMetrics{}, log)

	log.Info().Msg("starting catalog seeding")

	foods, err := foodService.SeedCatalog(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}

	log.Info().Int("items", len(foods)).Msg("catalog seeded")
}

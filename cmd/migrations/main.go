package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/KissBendeguz/SnackElf/internal/adapters/repository/postgres"
	"github.com/KissBendeguz/SnackElf/internal/config"
	"github.com/KissBendeguz/SnackElf/internal/logger"
)

// Usage:
//
//	migrations up
//	migrations down
//	migrations <name>   e.g. create_rooms.up
func main() {
	flag.Parse()
	log := logger.New(os.Stdout, "info", "console")

	if flag.NArg() < 1 {
		log.Fatal().Msg("a migration name, up or down is required")
	}
	target := flag.Arg(0)

	if err := config.LoadDotEnv(); err != nil {
		log.Info().Msg("no .env file found")
	}
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, postgres.ConnString(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	switch target {
	case "up":
		err = postgres.ApplyMigrations(ctx, db)
	case "down":
		err = postgres.RevertMigrations(ctx, db)
	default:
		err = postgres.ApplyMigration(ctx, db, target)
	}
	if err != nil {
		log.Fatal().Err(err).Str("migration", target).Msg("failed to execute migration")
	}

	log.Info().Str("migration", target).Msg("migration executed successfully")
}

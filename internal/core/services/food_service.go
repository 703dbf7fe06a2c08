package services

import (
	"context"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/rs/zerolog"
)

type foodService struct {
	repo    ports.FoodRepository
	metrics ports.MetricsRecorder
	log     zerolog.Logger
}

func NewFoodService(repo ports.FoodRepository, metrics ports.MetricsRecorder, log zerolog.Logger) ports.FoodService {
	return &foodService{
		repo:    repo,
		metrics: metrics,
		log:     log.With().Str("service", "food").Logger(),
	}
}

// SeedCatalog inserts the default catalog. Calling it again inserts a second copy.
func (s *foodService) SeedCatalog(ctx context.Context) ([]domain.FoodItem, error) {
	foods, err := s.repo.SaveAll(ctx, domain.DefaultCatalog())
	if err != nil {
		return nil, err
	}

	s.metrics.CatalogSeeded(len(foods))
	s.log.Info().Int("items", len(foods)).Msg("food catalog seeded")
	return foods, nil
}

func (s *foodService) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	foods, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return foods, nil
}

func (s *foodService) ListFoodsByCategory(ctx context.Context, category string) ([]domain.FoodItem, error) {
	c, err := domain.ParseFoodCategory(category)
	if err != nil {
		return nil, err
	}

	foods, err := s.repo.FindByCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return foods, nil
}

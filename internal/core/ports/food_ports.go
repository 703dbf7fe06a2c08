package ports

import (
	"context"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
)

type FoodRepository interface {
	SaveAll(ctx context.Context, foods []domain.FoodItem) ([]domain.FoodItem, error)
	FindAll(ctx context.Context) ([]domain.FoodItem, error)
	FindByCategory(ctx context.Context, category domain.FoodCategory) ([]domain.FoodItem, error)
	// FindByIDs returns the items that exist among ids. Unknown ids are ignored.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.FoodItem, error)
}

type FoodService interface {
	SeedCatalog(ctx context.Context) ([]domain.FoodItem, error)
	ListFoods(ctx context.Context) ([]domain.FoodItem, error)
	ListFoodsByCategory(ctx context.Context, category string) ([]domain.FoodItem, error)
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/lib/pq"
)

type foodRepository struct {
	db *sql.DB
}

func NewFoodRepository(db *sql.DB) ports.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

func (r *foodRepository) SaveAll(ctx context.Context, foods []domain.FoodItem) ([]domain.FoodItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO foods (name, category) VALUES ($1, $2) RETURNING id`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare food statement: %w", err)
	}
	defer stmt.Close()

	saved := make([]domain.FoodItem, 0, len(foods))
	for _, food := range foods {
		if err := stmt.QueryRowContext(ctx, food.Name, string(food.Category)).Scan(&food.ID); err != nil {
			return nil, fmt.Errorf("failed to insert food: %w", err)
		}
		saved = append(saved, food)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}

func (r *foodRepository) FindAll(ctx context.Context) ([]domain.FoodItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, category FROM foods ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

func (r *foodRepository) FindByCategory(ctx context.Context, category domain.FoodCategory) ([]domain.FoodItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, category FROM foods WHERE category = $1 ORDER BY id`, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to get foods by category: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

func (r *foodRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.FoodItem, error) {
	if len(ids) == 0 {
		return []domain.FoodItem{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, category FROM foods WHERE id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get foods by ids: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

func scanFoods(rows *sql.Rows) ([]domain.FoodItem, error) {
	foods := []domain.FoodItem{}
	for rows.Next() {
		var food domain.FoodItem
		if err := rows.Scan(&food.ID, &food.Name, &food.Category); err != nil {
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}
	return foods, nil
}

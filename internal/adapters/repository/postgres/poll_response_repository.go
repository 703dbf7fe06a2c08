package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
)

type pollResponseRepository struct {
	db *sql.DB
}

func NewPollResponseRepository(db *sql.DB) ports.PollResponseRepository {
	return &pollResponseRepository{
		db: db,
	}
}

func (r *pollResponseRepository) Save(ctx context.Context, response *domain.PollResponse) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var closed bool
	err = tx.QueryRowContext(ctx, `SELECT closed FROM rooms WHERE id = $1 FOR SHARE`, response.RoomID).Scan(&closed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("failed to lock room: %w", err)
	}
	if closed {
		return domain.ErrRoomClosed
	}

	queryResponse := `
		INSERT INTO poll_responses (room_id, submitted_at)
		VALUES ($1, $2)
		RETURNING id, submitted_at
	`
	err = tx.QueryRowContext(ctx, queryResponse, response.RoomID, response.SubmittedAt).Scan(&response.ID, &response.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll response: %w", err)
	}

	queryFood := `
		INSERT INTO poll_response_foods (response_id, food_id, category, position)
		VALUES ($1, $2, $3, $4)
	`
	stmt, err := tx.PrepareContext(ctx, queryFood)
	if err != nil {
		return fmt.Errorf("failed to prepare food statement: %w", err)
	}
	defer stmt.Close()

	for _, category := range domain.Categories {
		for i, food := range response.Foods(category) {
			_, err = stmt.ExecContext(ctx, response.ID, food.ID, string(category), i)
			if err != nil {
				return fmt.Errorf("failed to insert poll response food: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *pollResponseRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.PollResponse, error) {
	return listResponses(ctx, r.db, roomID)
}

func listResponses(ctx context.Context, q querier, roomID int64) ([]domain.PollResponse, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, room_id, submitted_at
		FROM poll_responses
		WHERE room_id = $1
		ORDER BY id
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list poll responses: %w", err)
	}
	defer rows.Close()

	responses := []domain.PollResponse{}
	index := make(map[int64]int)
	for rows.Next() {
		pr := domain.PollResponse{
			Liked:    []domain.FoodItem{},
			Disliked: []domain.FoodItem{},
			Neutral:  []domain.FoodItem{},
		}
		if err := rows.Scan(&pr.ID, &pr.RoomID, &pr.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll response: %w", err)
		}
		index[pr.ID] = len(responses)
		responses = append(responses, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poll responses: %w", err)
	}
	if len(responses) == 0 {
		return responses, nil
	}

	foodRows, err := q.QueryContext(ctx, `
		SELECT prf.response_id, prf.category, f.id, f.name, f.category
		FROM poll_response_foods prf
		JOIN poll_responses pr ON pr.id = prf.response_id
		JOIN foods f ON f.id = prf.food_id
		WHERE pr.room_id = $1
		ORDER BY prf.response_id, prf.category, prf.position
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list poll response foods: %w", err)
	}
	defer foodRows.Close()

	for foodRows.Next() {
		var responseID int64
		var bucket string
		var food domain.FoodItem
		if err := foodRows.Scan(&responseID, &bucket, &food.ID, &food.Name, &food.Category); err != nil {
			return nil, fmt.Errorf("failed to scan poll response food: %w", err)
		}

		i, ok := index[responseID]
		if !ok {
			continue
		}
		pr := &responses[i]
		switch domain.FoodCategory(bucket) {
		case domain.CategoryLiked:
			pr.Liked = append(pr.Liked, food)
		case domain.CategoryDisliked:
			pr.Disliked = append(pr.Disliked, food)
		case domain.CategoryNeutral:
			pr.Neutral = append(pr.Neutral, food)
		}
	}
	if err := foodRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poll response foods: %w", err)
	}

	return responses, nil
}

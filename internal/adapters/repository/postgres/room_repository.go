package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/google/uuid"
)

const selectRoom = `
	SELECT id, name, token, created_at, closed, aggregated_result
	FROM rooms
`

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) ports.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (name, token, created_at, closed)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, room.Name, room.Token, room.CreatedAt).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to insert room: %w", domain.ErrTokenConflict)
		}
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return scanRoom(r.db.QueryRowContext(ctx, selectRoom+` WHERE id = $1`, id))
}

func (r *roomRepository) GetByToken(ctx context.Context, token uuid.UUID) (*domain.Room, error) {
	return scanRoom(r.db.QueryRowContext(ctx, selectRoom+` WHERE token = $1`, token))
}

func (r *roomRepository) Close(ctx context.Context, token uuid.UUID, aggregate ports.AggregateFunc) (*domain.Room, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The row lock blocks concurrent submissions until the result is stored.
	room, err := scanRoom(tx.QueryRowContext(ctx, selectRoom+` WHERE token = $1 FOR UPDATE`, token))
	if err != nil {
		return nil, err
	}
	if room.Closed {
		return nil, domain.ErrRoomClosed
	}

	responses, err := listResponses(ctx, tx, room.ID)
	if err != nil {
		return nil, err
	}

	if err := room.Close(aggregate(responses)); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE rooms SET closed = TRUE, aggregated_result = $2 WHERE id = $1`, room.ID, *room.AggregatedResult)
	if err != nil {
		return nil, fmt.Errorf("failed to close room: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return room, nil
}

func scanRoom(row *sql.Row) (*domain.Room, error) {
	var room domain.Room
	var result sql.NullString
	err := row.Scan(&room.ID, &room.Name, &room.Token, &room.CreatedAt, &room.Closed, &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if result.Valid {
		room.AggregatedResult = &result.String
	}
	return &room, nil
}

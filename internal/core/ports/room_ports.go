package ports

import (
	"context"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/google/uuid"
)

// AggregateFunc turns the response set of a room into its stored result document.
type AggregateFunc func(responses []domain.PollResponse) string

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByToken(ctx context.Context, token uuid.UUID) (*domain.Room, error)
	// Close locks the room, aggregates its responses and marks it closed in a
	// single transaction. It returns domain.ErrRoomClosed for a closed room.
	Close(ctx context.Context, token uuid.UUID, aggregate AggregateFunc) (*domain.Room, error)
}

type RoomService interface {
	CreateRoom(ctx context.Context, name string) (*domain.Room, error)
	GetRoomByID(ctx context.Context, id int64) (*domain.Room, error)
	GetRoomByToken(ctx context.Context, token string) (*domain.Room, error)
	CloseRoom(ctx context.Context, token string) (*domain.Room, error)
	GetResults(ctx context.Context, id int64) (string, error)
}

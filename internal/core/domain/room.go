package domain

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Token            uuid.UUID `json:"token"`
	CreatedAt        time.Time `json:"created_at"`
	Closed           bool      `json:"closed"`
	AggregatedResult *string   `json:"-"`
}

// NewRoom returns an open room with a fresh random access token.
func NewRoom(name string, now time.Time) *Room {
	return &Room{
		Name:      name,
		Token:     uuid.New(),
		CreatedAt: now,
	}
}

// Close marks the room as closed and stores its result. A closed room is terminal.
func (r *Room) Close(result string) error {
	if r.Closed {
		return ErrRoomClosed
	}
	r.Closed = true
	r.AggregatedResult = &result
	return nil
}

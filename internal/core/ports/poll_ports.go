package ports

import (
	"context"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
)

type PollResponseRepository interface {
	// Save persists the response if its room exists and is still open.
	Save(ctx context.Context, response *domain.PollResponse) error
	ListByRoom(ctx context.Context, roomID int64) ([]domain.PollResponse, error)
}

type SubmitPollInput struct {
	RoomID      int64
	LikedIDs    []int64
	DislikedIDs []int64
	NeutralIDs  []int64
}

type PollService interface {
	SubmitPollResponse(ctx context.Context, input SubmitPollInput) (*domain.PollResponse, error)
	ListResponses(ctx context.Context, roomID int64) ([]domain.PollResponse, error)
}

package services

import (
	"context"
	"time"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/rs/zerolog"
)

type pollService struct {
	roomRepo     ports.RoomRepository
	foodRepo     ports.FoodRepository
	responseRepo ports.PollResponseRepository
	metrics      ports.MetricsRecorder
	log          zerolog.Logger
}

func NewPollService(roomRepo ports.RoomRepository, foodRepo ports.FoodRepository, responseRepo ports.PollResponseRepository, metrics ports.MetricsRecorder, log zerolog.Logger) ports.PollService {
	return &pollService{
		roomRepo:     roomRepo,
		foodRepo:     foodRepo,
		responseRepo: responseRepo,
		metrics:      metrics,
		log:          log.With().Str("service", "poll").Logger(),
	}
}

func (s *pollService) SubmitPollResponse(ctx context.Context, input ports.SubmitPollInput) (*domain.PollResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if room.Closed {
		return nil, domain.ErrRoomClosed
	}

	requested := make([]int64, 0, len(input.LikedIDs)+len(input.DislikedIDs)+len(input.NeutralIDs))
	requested = append(requested, input.LikedIDs...)
	requested = append(requested, input.DislikedIDs...)
	requested = append(requested, input.NeutralIDs...)

	byID := make(map[int64]domain.FoodItem)
	if len(requested) > 0 {
		foods, err := s.foodRepo.FindByIDs(ctx, requested)
		if err != nil {
			return nil, err
		}
		for _, f := range foods {
			byID[f.ID] = f
		}
	}

	liked, droppedLiked := resolveFoods(input.LikedIDs, byID)
	disliked, droppedDisliked := resolveFoods(input.DislikedIDs, byID)
	neutral, droppedNeutral := resolveFoods(input.NeutralIDs, byID)

	response := &domain.PollResponse{
		RoomID:      room.ID,
		Liked:       liked,
		Disliked:    disliked,
		Neutral:     neutral,
		SubmittedAt: time.Now(),
	}

	if err := s.responseRepo.Save(ctx, response); err != nil {
		return nil, err
	}

	dropped := droppedLiked + droppedDisliked + droppedNeutral
	s.metrics.PollSubmitted(dropped)
	if dropped > 0 {
		s.log.Debug().Int64("room_id", room.ID).Int("dropped", dropped).Msg("unknown food ids ignored")
	}
	return response, nil
}

func (s *pollService) ListResponses(ctx context.Context, roomID int64) ([]domain.PollResponse, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.responseRepo.ListByRoom(ctx, roomID)
}

// resolveFoods maps ids to known items in request order. Unknown ids are
// dropped and repeated ids collapse to their first occurrence.
func resolveFoods(ids []int64, byID map[int64]domain.FoodItem) ([]domain.FoodItem, int) {
	foods := make([]domain.FoodItem, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	dropped := 0
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		f, ok := byID[id]
		if !ok {
			dropped++
			continue
		}
		foods = append(foods, f)
	}
	return foods, dropped
}

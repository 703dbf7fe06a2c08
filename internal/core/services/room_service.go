package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type roomService struct {
	repo    ports.RoomRepository
	metrics ports.MetricsRecorder
	log     zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, metrics ports.MetricsRecorder, log zerolog.Logger) ports.RoomService {
	return &roomService{
		repo:    repo,
		metrics: metrics,
		log:     log.With().Str("service", "room").Logger(),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, name string) (*domain.Room, error) {
	room := domain.NewRoom(name, time.Now())

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}

	s.metrics.RoomCreated()
	s.log.Info().Int64("room_id", room.ID).Str("name", room.Name).Msg("room created")
	return room, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *roomService) GetRoomByToken(ctx context.Context, token string) (*domain.Room, error) {
	t, err := parseToken(token)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByToken(ctx, t)
}

func (s *roomService) CloseRoom(ctx context.Context, token string) (*domain.Room, error) {
	t, err := parseToken(token)
	if err != nil {
		return nil, err
	}

	var responses int
	room, err := s.repo.Close(ctx, t, func(rs []domain.PollResponse) string {
		responses = len(rs)
		return domain.Aggregate(rs).Encode()
	})
	if err != nil {
		if errors.Is(err, domain.ErrRoomClosed) || errors.Is(err, domain.ErrRoomNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to close room: %w", err)
	}

	s.metrics.RoomClosed(responses)
	s.log.Info().Int64("room_id", room.ID).Int("responses", responses).Msg("room closed")
	return room, nil
}

func (s *roomService) GetResults(ctx context.Context, id int64) (string, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !room.Closed || room.AggregatedResult == nil {
		return "", domain.ErrRoomOpen
	}

	// Re-encode so a stored EmptyResultDocument is served with all three categories.
	result, err := domain.DecodeAggregatedResult(*room.AggregatedResult)
	if err != nil {
		return "", fmt.Errorf("failed to decode stored result: %w", err)
	}
	return result.Encode(), nil
}

func parseToken(token string) (uuid.UUID, error) {
	t, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return t, nil
}

package http

import (
	"context"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
)

type fakeRoomService struct {
	createRoom func(ctx context.Context, name string) (*domain.Room, error)
	getByID    func(ctx context.Context, id int64) (*domain.Room, error)
	getByToken func(ctx context.Context, token string) (*domain.Room, error)
	closeRoom  func(ctx context.Context, token string) (*domain.Room, error)
	getResults func(ctx context.Context, id int64) (string, error)
}

var _ ports.RoomService = (*fakeRoomService)(nil)

func (f *fakeRoomService) CreateRoom(ctx context.Context, name string) (*domain.Room, error) {
	return f.createRoom(ctx, name)
}

func (f *fakeRoomService) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	return f.getByID(ctx, id)
}

func (f *fakeRoomService) GetRoomByToken(ctx context.Context, token string) (*domain.Room, error) {
	return f.getByToken(ctx, token)
}

func (f *fakeRoomService) CloseRoom(ctx context.Context, token string) (*domain.Room, error) {
	return f.closeRoom(ctx, token)
}

func (f *fakeRoomService) GetResults(ctx context.Context, id int64) (string, error) {
	return f.getResults(ctx, id)
}

type fakePollService struct {
	submit        func(ctx context.Context, input ports.SubmitPollInput) (*domain.PollResponse, error)
	listResponses func(ctx context.Context, roomID int64) ([]domain.PollResponse, error)
}

var _ ports.PollService = (*fakePollService)(nil)

func (f *fakePollService) SubmitPollResponse(ctx context.Context, input ports.SubmitPollInput) (*domain.PollResponse, error) {
	return f.submit(ctx, input)
}

func (f *fakePollService) ListResponses(ctx context.Context, roomID int64) ([]domain.PollResponse, error) {
	return f.listResponses(ctx, roomID)
}

type fakeFoodService struct {
	seed       func(ctx context.Context) ([]domain.FoodItem, error)
	list       func(ctx context.Context) ([]domain.FoodItem, error)
	byCategory func(ctx context.Context, category string) ([]domain.FoodItem, error)
}

var _ ports.FoodService = (*fakeFoodService)(nil)

func (f *fakeFoodService) SeedCatalog(ctx context.Context) ([]domain.FoodItem, error) {
	return f.seed(ctx)
}

func (f *fakeFoodService) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	return f.list(ctx)
}

func (f *fakeFoodService) ListFoodsByCategory(ctx context.Context, category string) ([]domain.FoodItem, error) {
	return f.byCategory(ctx, category)
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

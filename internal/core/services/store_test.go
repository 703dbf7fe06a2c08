package services

import (
	"context"
	"sync"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/google/uuid"
)

// memStore is an in-memory implementation of the room, food and poll
// response repositories used by the service tests.
type memStore struct {
	mu        sync.Mutex
	rooms     map[int64]domain.Room
	foods     []domain.FoodItem
	responses []domain.PollResponse
	nextID    int64
	failWith  error
}

func newMemStore() *memStore {
	return &memStore{rooms: make(map[int64]domain.Room)}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) Create(ctx context.Context, room *domain.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, r := range m.rooms {
		if r.Token == room.Token {
			return domain.ErrTokenConflict
		}
	}
	room.ID = m.id()
	m.rooms[room.ID] = *room
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return &r, nil
}

func (m *memStore) GetByToken(ctx context.Context, token uuid.UUID) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rooms {
		if r.Token == token {
			return &r, nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (m *memStore) Close(ctx context.Context, token uuid.UUID, aggregate ports.AggregateFunc) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.rooms {
		if r.Token != token {
			continue
		}
		if r.Closed {
			return nil, domain.ErrRoomClosed
		}
		var responses []domain.PollResponse
		for _, pr := range m.responses {
			if pr.RoomID == id {
				responses = append(responses, pr)
			}
		}
		if err := r.Close(aggregate(responses)); err != nil {
			return nil, err
		}
		m.rooms[id] = r
		return &r, nil
	}
	return nil, domain.ErrRoomNotFound
}

func (m *memStore) SaveAll(ctx context.Context, foods []domain.FoodItem) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	saved := make([]domain.FoodItem, 0, len(foods))
	for _, f := range foods {
		f.ID = m.id()
		m.foods = append(m.foods, f)
		saved = append(saved, f)
	}
	return saved, nil
}

func (m *memStore) FindAll(ctx context.Context) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.FoodItem(nil), m.foods...), nil
}

func (m *memStore) FindByCategory(ctx context.Context, category domain.FoodCategory) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.FoodItem
	for _, f := range m.foods {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memStore) FindByIDs(ctx context.Context, ids []int64) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []domain.FoodItem
	for _, f := range m.foods {
		if want[f.ID] {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memStore) Save(ctx context.Context, response *domain.PollResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[response.RoomID]
	if !ok {
		return domain.ErrRoomNotFound
	}
	if r.Closed {
		return domain.ErrRoomClosed
	}
	response.ID = m.id()
	m.responses = append(m.responses, *response)
	return nil
}

func (m *memStore) ListByRoom(ctx context.Context, roomID int64) ([]domain.PollResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.PollResponse
	for _, pr := range m.responses {
		if pr.RoomID == roomID {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (m *memStore) responseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.responses)
}

type recordingMetrics struct {
	mu                                          sync.Mutex
	created, closed, submitted, dropped, seeded int
	lastClosedResponses                         int
}

func (r *recordingMetrics) RoomCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

func (r *recordingMetrics) RoomClosed(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed++
	r.lastClosedResponses = n
}

func (r *recordingMetrics) PollSubmitted(dropped int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitted++
	r.dropped += dropped
}

func (r *recordingMetrics) CatalogSeeded(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeded += n
}

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	rooms := NewRoomRepository(db)
	foods := NewFoodRepository(db)
	responses := NewPollResponseRepository(db)

	t.Run("food catalog", func(t *testing.T) {
		_, err := db.Exec(`TRUNCATE foods, rooms RESTART IDENTITY CASCADE`)
		require.NoError(t, err)

		all, err := foods.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		seeded, err := foods.SaveAll(ctx, domain.DefaultCatalog())
		require.NoError(t, err)
		require.Len(t, seeded, 12)

		_, err = foods.SaveAll(ctx, domain.DefaultCatalog())
		require.NoError(t, err)

		all, err = foods.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 24)

		liked, err := foods.FindByCategory(ctx, domain.CategoryLiked)
		require.NoError(t, err)
		assert.Len(t, liked, 8)

		found, err := foods.FindByIDs(ctx, []int64{seeded[0].ID, 99999, seeded[3].ID})
		require.NoError(t, err)
		assert.Equal(t, []domain.FoodItem{seeded[0], seeded[3]}, found)

		none, err := foods.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("room lifecycle", func(t *testing.T) {
		_, err := db.Exec(`TRUNCATE foods, rooms RESTART IDENTITY CASCADE`)
		require.NoError(t, err)

		room := domain.NewRoom("lunch", time.Now())
		require.NoError(t, rooms.Create(ctx, room))
		assert.NotZero(t, room.ID)

		byID, err := rooms.GetByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, room.Token, byID.Token)
		assert.False(t, byID.Closed)
		assert.Nil(t, byID.AggregatedResult)

		byToken, err := rooms.GetByToken(ctx, room.Token)
		require.NoError(t, err)
		assert.Equal(t, room.ID, byToken.ID)

		_, err = rooms.GetByID(ctx, room.ID+100)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
		_, err = rooms.GetByToken(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)

		dup := domain.NewRoom("copy", time.Now())
		dup.Token = room.Token
		err = rooms.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrTokenConflict)
	})

	t.Run("submit and close", func(t *testing.T) {
		_, err := db.Exec(`TRUNCATE foods, rooms RESTART IDENTITY CASCADE`)
		require.NoError(t, err)

		catalog, err := foods.SaveAll(ctx, []domain.FoodItem{
			domain.NewFoodItem("Apple", domain.CategoryLiked),
			domain.NewFoodItem("Apple", domain.CategoryLiked),
			domain.NewFoodItem("Hamburger", domain.CategoryDisliked),
			domain.NewFoodItem("Toast", domain.CategoryNeutral),
		})
		require.NoError(t, err)
		apple1, apple2, burger, toast := catalog[0], catalog[1], catalog[2], catalog[3]

		room := domain.NewRoom("apples", time.Now())
		require.NoError(t, rooms.Create(ctx, room))

		first := &domain.PollResponse{
			RoomID:      room.ID,
			Liked:       []domain.FoodItem{apple2, apple1},
			Disliked:    []domain.FoodItem{burger},
			Neutral:     []domain.FoodItem{toast},
			SubmittedAt: time.Now(),
		}
		require.NoError(t, responses.Save(ctx, first))
		assert.NotZero(t, first.ID)

		second := &domain.PollResponse{RoomID: room.ID, Liked: []domain.FoodItem{apple1}, SubmittedAt: time.Now()}
		require.NoError(t, responses.Save(ctx, second))

		listed, err := responses.ListByRoom(ctx, room.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, []domain.FoodItem{apple2, apple1}, listed[0].Liked)
		assert.Equal(t, []domain.FoodItem{burger}, listed[0].Disliked)
		assert.Equal(t, []domain.FoodItem{toast}, listed[0].Neutral)
		assert.Empty(t, listed[1].Disliked)

		var seen int
		closed, err := rooms.Close(ctx, room.Token, func(rs []domain.PollResponse) string {
			seen = len(rs)
			return domain.Aggregate(rs).Encode()
		})
		require.NoError(t, err)
		assert.Equal(t, 2, seen)
		assert.True(t, closed.Closed)

		stored, err := rooms.GetByID(ctx, room.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.AggregatedResult)
		result, err := domain.DecodeAggregatedResult(*stored.AggregatedResult)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Liked["Apple"])
		assert.Equal(t, 1, result.Disliked["Hamburger"])
		assert.Equal(t, 1, result.Neutral["Toast"])

		_, err = rooms.Close(ctx, room.Token, func([]domain.PollResponse) string { return "overwritten" })
		assert.ErrorIs(t, err, domain.ErrRoomClosed)

		again, err := rooms.GetByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, *stored.AggregatedResult, *again.AggregatedResult)

		late := &domain.PollResponse{RoomID: room.ID, Liked: []domain.FoodItem{apple1}, SubmittedAt: time.Now()}
		assert.ErrorIs(t, responses.Save(ctx, late), domain.ErrRoomClosed)

		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM poll_responses WHERE room_id = $1`, room.ID).Scan(&count))
		assert.Equal(t, 2, count)

		missing := &domain.PollResponse{RoomID: room.ID + 1000, SubmittedAt: time.Now()}
		assert.ErrorIs(t, responses.Save(ctx, missing), domain.ErrRoomNotFound)
	})

	t.Run("result column follows closed flag", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO rooms (name, token, closed) VALUES ('bad', $1, TRUE)`, uuid.New())
		assert.Error(t, err)

		_, err = db.Exec(`INSERT INTO rooms (name, token, closed, aggregated_result) VALUES ('bad', $1, FALSE, '{}')`, uuid.New())
		assert.Error(t, err)
	})

	t.Run("concurrent submissions during close", func(t *testing.T) {
		_, err := db.Exec(`TRUNCATE foods, rooms RESTART IDENTITY CASCADE`)
		require.NoError(t, err)

		catalog, err := foods.SaveAll(ctx, domain.DefaultCatalog())
		require.NoError(t, err)

		room := domain.NewRoom("race", time.Now())
		require.NoError(t, rooms.Create(ctx, room))

		var wg sync.WaitGroup
		var mu sync.Mutex
		accepted := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pr := &domain.PollResponse{RoomID: room.ID, Liked: []domain.FoodItem{catalog[0]}, SubmittedAt: time.Now()}
				if err := responses.Save(ctx, pr); err == nil {
					mu.Lock()
					accepted++
					mu.Unlock()
				} else {
					assert.ErrorIs(t, err, domain.ErrRoomClosed)
				}
			}()
		}

		closed, err := rooms.Close(ctx, room.Token, func(rs []domain.PollResponse) string {
			return domain.Aggregate(rs).Encode()
		})
		require.NoError(t, err)
		wg.Wait()

		result, err := domain.DecodeAggregatedResult(*closed.AggregatedResult)
		require.NoError(t, err)
		assert.Equal(t, accepted, result.Liked[catalog[0].Name])
	})
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, ApplyMigrations(ctx, db))
	require.NoError(t, RevertMigrations(ctx, db))
	require.NoError(t, ApplyMigration(ctx, db, "create_foods.up"))

	var exists bool
	require.NoError(t, db.QueryRow(`SELECT to_regclass('public.foods') IS NOT NULL`).Scan(&exists))
	assert.True(t, exists)

	assert.Error(t, ApplyMigration(ctx, db, "does_not_exist"))
}

func TestMigrationNames(t *testing.T) {
	up, err := migrationNames(".up.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"000001_create_foods.up.sql",
		"000002_create_rooms.up.sql",
		"000003_create_poll_responses.up.sql",
	}, up)
}

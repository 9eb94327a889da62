package repository_test

import (
	"context"
	"testing"
	"time"

	"community-site-api/internal/database"
	"community-site-api/internal/model"
	"community-site-api/internal/repository"
	apperrors "community-site-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestEvent(title string, date time.Time) *model.Event {
	return &model.Event{
		Title:       title,
		Description: "desc",
		Price:       15,
		Date:        date,
		Venue:       "Town Hall",
		Image:       "https://cdn.example.org/a.jpg",
	}
}

func TestEventRepository_Create(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	t.Run("AssignsIDAndTimestamps", func(t *testing.T) {
		dropCollection(t, db, database.EventCollection)

		date := time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)
		created, err := repo.Create(ctx, newTestEvent("Summer Fair", date))

		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())

		// re-read matches what Create returned
		events, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, created.ID, events[0].ID)
		assert.Equal(t, "Summer Fair", events[0].Title)
		assert.True(t, events[0].Date.Equal(date))
	})
}

func TestEventRepository_List(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	t.Run("EmptyCollection", func(t *testing.T) {
		dropCollection(t, db, database.EventCollection)

		events, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("OrderByDateAsc", func(t *testing.T) {
		dropCollection(t, db, database.EventCollection)

		// insert out of order, expect upcoming-first
		dates := []time.Time{
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		for i, d := range dates {
			_, err := repo.Create(ctx, newTestEvent([]string{"C", "A", "B"}[i], d))
			require.NoError(t, err)
		}

		events, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "A", events[0].Title)
		assert.Equal(t, "B", events[1].Title)
		assert.Equal(t, "C", events[2].Title)
	})
}

func TestEventRepository_Update(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	t.Run("PartialUpdateKeepsOtherFields", func(t *testing.T) {
		dropCollection(t, db, database.EventCollection)

		created, err := repo.Create(ctx, newTestEvent("Summer Fair", time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)

		venue := "Community Center"
		updated, err := repo.Update(ctx, created.ID, model.UpdateEventParams{Venue: &venue})

		require.NoError(t, err)
		assert.Equal(t, "Community Center", updated.Venue)
		assert.Equal(t, "Summer Fair", updated.Title)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("IdempotentReapplication", func(t *testing.T) {
		dropCollection(t, db, database.EventCollection)

		created, err := repo.Create(ctx, newTestEvent("Summer Fair", time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)

		price := 25.0
		first, err := repo.Update(ctx, created.ID, model.UpdateEventParams{Price: &price})
		require.NoError(t, err)
		second, err := repo.Update(ctx, created.ID, model.UpdateEventParams{Price: &price})
		require.NoError(t, err)

		assert.Equal(t, first.Price, second.Price)
		assert.Equal(t, first.Title, second.Title)
		assert.True(t, first.Date.Equal(second.Date))
	})

	t.Run("UnknownID", func(t *testing.T) {
		dropCollection(t, db, database.EventCollection)

		title := "x"
		_, err := repo.Update(ctx, primitive.NewObjectID(), model.UpdateEventParams{Title: &title})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	t.Run("RemovesRecord", func(t *testing.T) {
		dropCollection(t, db, database.EventCollection)

		created, err := repo.Create(ctx, newTestEvent("Summer Fair", time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)

		events, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("UnknownID", func(t *testing.T) {
		dropCollection(t, db, database.EventCollection)

		_, err := repo.Delete(ctx, primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

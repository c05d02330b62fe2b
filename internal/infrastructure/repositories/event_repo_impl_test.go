package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/pkg/utils"
)

func TestEventRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createEventTable(t, db)
	repo := NewEventRepository(db)
	ctx := context.Background()

	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	event := &entities.Event{
		ID:       utils.GenerateUUIDv7(),
		UserID:   utils.GenerateUUIDv7(),
		Title:    "Kickoff call",
		Location: null.StringFrom("Zoom"),
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, event))

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, "Kickoff call", got.Title)
	require.Equal(t, "Zoom", got.Location.String)
	require.True(t, got.StartsAt.Equal(start))
}

func TestEventRepository_ListRange(t *testing.T) {
	db := newTestDB(t)
	createEventTable(t, db)
	repo := NewEventRepository(db)
	ctx := context.Background()

	userID := utils.GenerateUUIDv7()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	add := func(title string, start time.Time, d time.Duration) {
		require.NoError(t, repo.Create(ctx, &entities.Event{
			ID:       utils.GenerateUUIDv7(),
			UserID:   userID,
			Title:    title,
			StartsAt: start,
			EndsAt:   start.Add(d),
		}))
	}
	add("before", day.Add(-24*time.Hour), time.Hour)
	add("inside", day.Add(10*time.Hour), time.Hour)
	// straddles the window start, still overlaps
	add("straddling", day.Add(-time.Hour), 3*time.Hour)
	add("after", day.Add(48*time.Hour), time.Hour)

	got, err := repo.ListRange(ctx, userID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "straddling", got[0].Title)
	require.Equal(t, "inside", got[1].Title)
}

func TestEventRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	createEventTable(t, db)
	repo := NewEventRepository(db)
	ctx := context.Background()

	start := time.Now().Truncate(time.Second)
	event := &entities.Event{
		ID:       utils.GenerateUUIDv7(),
		UserID:   utils.GenerateUUIDv7(),
		Title:    "Review",
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, event))

	event.Title = "Design review"
	event.EndsAt = start.Add(2 * time.Hour)
	require.NoError(t, repo.Update(ctx, event))

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, "Design review", got.Title)

	require.NoError(t, repo.Delete(ctx, event.ID))
	_, err = repo.GetByID(ctx, event.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

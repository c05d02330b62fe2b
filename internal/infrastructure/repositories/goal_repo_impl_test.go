package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/pkg/utils"
)

func TestGoalRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createGoalTable(t, db)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	goal := &entities.Goal{
		ID:          utils.GenerateUUIDv7(),
		UserID:      utils.GenerateUUIDv7(),
		Title:       "Q4 revenue",
		TargetValue: 30000,
		Unit:        "EUR",
	}
	require.NoError(t, repo.Create(ctx, goal))

	got, err := repo.GetByID(ctx, goal.ID)
	require.NoError(t, err)
	require.Equal(t, "Q4 revenue", got.Title)
	require.Zero(t, got.Progress())

	goal.Title = "Q4 revenue (net)"
	require.NoError(t, repo.Update(ctx, goal))

	require.NoError(t, repo.UpdateProgress(ctx, goal.ID, 12000))
	got, err = repo.GetByID(ctx, goal.ID)
	require.NoError(t, err)
	require.Equal(t, "Q4 revenue (net)", got.Title)
	require.InDelta(t, 40.0, got.Progress(), 0.01)

	require.NoError(t, repo.Delete(ctx, goal.ID))
	_, err = repo.GetByID(ctx, goal.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGoalRepository_List_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	createGoalTable(t, db)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	userID := utils.GenerateUUIDv7()
	require.NoError(t, repo.Create(ctx, &entities.Goal{ID: utils.GenerateUUIDv7(), UserID: userID, Title: "New clients", TargetValue: 5}))
	require.NoError(t, repo.Create(ctx, &entities.Goal{ID: utils.GenerateUUIDv7(), UserID: utils.GenerateUUIDv7(), Title: "Other", TargetValue: 1}))

	got, err := repo.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "New clients", got[0].Title)
}

func TestGoalRepository_UpdateProgress_NotFound(t *testing.T) {
	db := newTestDB(t)
	createGoalTable(t, db)
	repo := NewGoalRepository(db)

	err := repo.UpdateProgress(context.Background(), utils.GenerateUUIDv7(), 10)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"lancerdesk.backend/internal/domain/entities"
	"lancerdesk.backend/pkg/utils"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createClientTable(t, db)
	uow := NewUnitOfWork(db)
	repo := NewClientRepository(db)

	userID := utils.GenerateUUIDv7()
	clientID := utils.GenerateUUIDv7()
	err := uow.Do(context.Background(), func(ctx context.Context) error {
		return repo.Create(ctx, &entities.Client{
			ID:          clientID,
			UserID:      userID,
			Company:     "Hafen Logistik",
			ContactName: "J. Petersen",
			Email:       "jp@hafen.example",
			Status:      entities.ClientStatusActive,
		})
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), clientID)
	require.NoError(t, err)
	require.Equal(t, "Hafen Logistik", got.Company)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	createClientTable(t, db)
	uow := NewUnitOfWork(db)
	repo := NewClientRepository(db)

	clientID := utils.GenerateUUIDv7()
	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(ctx context.Context) error {
		if err := repo.Create(ctx, &entities.Client{
			ID:          clientID,
			UserID:      utils.GenerateUUIDv7(),
			Company:     "Ghost Co",
			ContactName: "Nobody",
			Email:       "nobody@ghost.example",
			Status:      entities.ClientStatusLead,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.GetByID(context.Background(), clientID)
	require.Error(t, err)
}

func TestGetDB_FallsBackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)
	require.Same(t, db, GetDB(context.Background(), db))
}

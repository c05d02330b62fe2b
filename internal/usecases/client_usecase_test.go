package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/usecases"
	"lancerdesk.backend/pkg/utils"
)

func TestClientUsecase_CreateClient(t *testing.T) {
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)

	client := &entities.Client{
		UserID:      utils.GenerateUUIDv7(),
		Company:     "Hafen Logistik",
		ContactName: "J. Petersen",
		Email:       "jp@hafen.example",
	}
	repo.On("Create", mock.Anything, client).Return(nil).Once()

	require.NoError(t, uc.CreateClient(context.Background(), client))
	require.NotEqual(t, uuid.Nil, client.ID)
	require.Equal(t, entities.ClientStatusLead, client.Status)
	repo.AssertExpectations(t)
}

func TestClientUsecase_CreateClient_RequiresCompanyAndEmail(t *testing.T) {
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)

	err := uc.CreateClient(context.Background(), &entities.Client{Company: " ", Email: "x@y.example"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	err = uc.CreateClient(context.Background(), &entities.Client{Company: "Acme", Email: ""})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientUsecase_UpdateClient_RejectsUnknownStatus(t *testing.T) {
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)

	err := uc.UpdateClient(context.Background(), &entities.Client{
		ID:      utils.GenerateUUIDv7(),
		Company: "Acme",
		Email:   "a@acme.example",
		Status:  "vip",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestClientUsecase_ListClients(t *testing.T) {
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)

	userID := utils.GenerateUUIDv7()
	repo.On("List", mock.Anything, userID, "acme", 10, 0).
		Return([]*entities.Client{{ID: utils.GenerateUUIDv7(), Company: "Acme"}}, int64(1), nil).Once()

	got, total, err := uc.ListClients(context.Background(), userID, "acme", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.EqualValues(t, 1, total)
}

package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/domain/repositories"
	"lancerdesk.backend/pkg/utils"
)

// ClientUsecase handles client bookkeeping
type ClientUsecase struct {
	repo repositories.ClientRepository
}

func NewClientUsecase(repo repositories.ClientRepository) *ClientUsecase {
	return &ClientUsecase{repo: repo}
}

func (u *ClientUsecase) CreateClient(ctx context.Context, client *entities.Client) error {
	if strings.TrimSpace(client.Company) == "" || strings.TrimSpace(client.Email) == "" {
		return domainerrors.ErrInvalidInput
	}
	if client.Status == "" {
		client.Status = entities.ClientStatusLead
	}
	client.ID = utils.GenerateUUIDv7()
	return u.repo.Create(ctx, client)
}

func (u *ClientUsecase) GetClient(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *ClientUsecase) ListClients(ctx context.Context, userID uuid.UUID, search string, limit, offset int) ([]*entities.Client, int64, error) {
	return u.repo.List(ctx, userID, search, limit, offset)
}

func (u *ClientUsecase) UpdateClient(ctx context.Context, client *entities.Client) error {
	if strings.TrimSpace(client.Company) == "" || strings.TrimSpace(client.Email) == "" {
		return domainerrors.ErrInvalidInput
	}
	switch client.Status {
	case entities.ClientStatusLead, entities.ClientStatusActive, entities.ClientStatusArchived:
	default:
		return domainerrors.ErrInvalidInput
	}
	return u.repo.Update(ctx, client)
}

func (u *ClientUsecase) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return u.repo.SoftDelete(ctx, id)
}

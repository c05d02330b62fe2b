package repositories

import (
	"context"

	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
)

// ClientRepository defines client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entities.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Client, error)
	List(ctx context.Context, userID uuid.UUID, search string, limit, offset int) ([]*entities.Client, int64, error)
	Update(ctx context.Context, client *entities.Client) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
)

// PortfolioRepository assembles and persists the portfolio aggregate.
//
// FetchAggregate returns ErrNotFound when the root portfolio does not exist;
// the root lookup short-circuits so no child queries are issued in that case.
// SaveAggregate upserts the root, then reconciles every child collection
// against storage by id set (existing ids absent from a non-empty incoming
// collection are deleted; every incoming item is upserted). An empty incoming
// collection is skipped entirely, so it never clears stored rows.
// DeleteAggregate removes the root row only; child rows go with it through
// the schema's cascading foreign keys.
type PortfolioRepository interface {
	FetchAggregate(ctx context.Context, id uuid.UUID) (*entities.PortfolioAggregate, error)
	SaveAggregate(ctx context.Context, agg *entities.PortfolioAggregate) (uuid.UUID, error)
	DeleteAggregate(ctx context.Context, id uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Portfolio, error)
}

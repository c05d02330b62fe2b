package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/domain/repositories"
	"lancerdesk.backend/pkg/logger"
	redisclient "lancerdesk.backend/pkg/redis"
)

const (
	portfolioCachePrefix = "portfolio:aggregate:"
	portfolioCacheTTL    = 5 * time.Minute
)

// PortfolioUsecase handles portfolio business logic. Reads go through a
// redis cache; writes run in a single transaction and invalidate the cache.
type PortfolioUsecase struct {
	repo repositories.PortfolioRepository
	uow  repositories.UnitOfWork
}

func NewPortfolioUsecase(repo repositories.PortfolioRepository, uow repositories.UnitOfWork) *PortfolioUsecase {
	return &PortfolioUsecase{repo: repo, uow: uow}
}

// GetAggregate returns the full aggregate, serving from cache when possible.
// Cache failures are logged and ignored; the database is the source of truth.
func (u *PortfolioUsecase) GetAggregate(ctx context.Context, id uuid.UUID) (*entities.PortfolioAggregate, error) {
	key := portfolioCachePrefix + id.String()
	if redisclient.GetClient() != nil {
		if cached, err := redisclient.Get(ctx, key); err == nil && cached != "" {
			var agg entities.PortfolioAggregate
			if err := json.Unmarshal([]byte(cached), &agg); err == nil {
				return &agg, nil
			}
			logger.Warn(ctx, "discarding unreadable portfolio cache entry", zap.String("key", key))
		}
	}

	agg, err := u.repo.FetchAggregate(ctx, id)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			logger.Error(ctx, "fetching portfolio failed",
				zap.String("portfolio_id", id.String()), zap.Error(err))
		}
		return nil, err
	}

	if redisclient.GetClient() != nil {
		if payload, err := json.Marshal(agg); err == nil {
			if err := redisclient.Set(ctx, key, payload, portfolioCacheTTL); err != nil {
				logger.Warn(ctx, "caching portfolio failed", zap.Error(err))
			}
		}
	}
	return agg, nil
}

// SaveAggregate persists the aggregate atomically: the root upsert and every
// collection reconciliation either all commit or all roll back. Updating an
// existing portfolio requires the caller to own it.
func (u *PortfolioUsecase) SaveAggregate(ctx context.Context, agg *entities.PortfolioAggregate) (uuid.UUID, error) {
	if agg.ID != uuid.Nil {
		existing, err := u.repo.FetchAggregate(ctx, agg.ID)
		switch {
		case err == nil:
			if existing.UserID != agg.UserID {
				return uuid.Nil, domainerrors.ErrForbidden
			}
		case !errors.Is(err, domainerrors.ErrNotFound):
			logger.Error(ctx, "loading portfolio for ownership check failed",
				zap.String("portfolio_id", agg.ID.String()), zap.Error(err))
			return uuid.Nil, err
		}
	}

	var id uuid.UUID
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		savedID, err := u.repo.SaveAggregate(txCtx, agg)
		if err != nil {
			return err
		}
		id = savedID
		return nil
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrInvalidInput) {
			logger.Error(ctx, "saving portfolio failed",
				zap.String("portfolio_id", agg.ID.String()), zap.Error(err))
		}
		return uuid.Nil, err
	}

	u.invalidate(ctx, id)
	logger.Info(ctx, "portfolio saved", zap.String("portfolio_id", id.String()))
	return id, nil
}

// DeleteAggregate removes the aggregate after verifying the caller owns it.
func (u *PortfolioUsecase) DeleteAggregate(ctx context.Context, id, userID uuid.UUID) error {
	existing, err := u.repo.FetchAggregate(ctx, id)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			logger.Error(ctx, "loading portfolio for ownership check failed",
				zap.String("portfolio_id", id.String()), zap.Error(err))
		}
		return err
	}
	if existing.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := u.repo.DeleteAggregate(ctx, id); err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			logger.Error(ctx, "deleting portfolio failed",
				zap.String("portfolio_id", id.String()), zap.Error(err))
		}
		return err
	}
	u.invalidate(ctx, id)
	logger.Info(ctx, "portfolio deleted", zap.String("portfolio_id", id.String()))
	return nil
}

func (u *PortfolioUsecase) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Portfolio, error) {
	return u.repo.ListByUserID(ctx, userID)
}

func (u *PortfolioUsecase) invalidate(ctx context.Context, id uuid.UUID) {
	if redisclient.GetClient() == nil {
		return
	}
	if err := redisclient.Del(ctx, portfolioCachePrefix+id.String()); err != nil {
		logger.Warn(ctx, "invalidating portfolio cache failed", zap.Error(err))
	}
}

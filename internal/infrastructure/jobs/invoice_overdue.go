package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lancerdesk.backend/internal/domain/entities"
	"lancerdesk.backend/pkg/logger"
)

// overdueInvoiceStore is the slice of the invoice repository this job needs.
type overdueInvoiceStore interface {
	GetOverdueCandidates(ctx context.Context, asOf time.Time, limit int) ([]*entities.Invoice, error)
	MarkOverdue(ctx context.Context, ids []uuid.UUID) error
}

// InvoiceOverdueJob periodically flips sent invoices past their due date to
// overdue.
type InvoiceOverdueJob struct {
	repo     overdueInvoiceStore
	interval time.Duration
	stop     chan struct{}
}

func NewInvoiceOverdueJob(repo overdueInvoiceStore, interval time.Duration) *InvoiceOverdueJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &InvoiceOverdueJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *InvoiceOverdueJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting invoice overdue job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "invoice overdue job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "invoice overdue job stopped")
			return
		case <-ticker.C:
			j.processOverdueInvoices(ctx)
		}
	}
}

func (j *InvoiceOverdueJob) Stop() {
	close(j.stop)
}

func (j *InvoiceOverdueJob) processOverdueInvoices(ctx context.Context) {
	candidates, err := j.repo.GetOverdueCandidates(ctx, time.Now(), 100)
	if err != nil {
		logger.Error(ctx, "fetching overdue candidates failed", zap.Error(err))
		return
	}
	if len(candidates) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, inv := range candidates {
		ids = append(ids, inv.ID)
	}

	if err := j.repo.MarkOverdue(ctx, ids); err != nil {
		logger.Error(ctx, "marking invoices overdue failed", zap.Error(err))
		return
	}

	logger.Info(ctx, "marked invoices overdue", zap.Int("count", len(ids)))
}

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"lancerdesk.backend/internal/domain/entities"
)

type overdueRepoStub struct {
	candidates []*entities.Invoice
	getErr     error
	markErr    error
	markCalls  int
	lastIDs    []uuid.UUID
}

func (s *overdueRepoStub) GetOverdueCandidates(_ context.Context, _ time.Time, _ int) ([]*entities.Invoice, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.candidates, nil
}

func (s *overdueRepoStub) MarkOverdue(_ context.Context, ids []uuid.UUID) error {
	s.markCalls++
	s.lastIDs = ids
	return s.markErr
}

func TestProcessOverdueInvoices_NoCandidates(t *testing.T) {
	repo := &overdueRepoStub{}
	job := NewInvoiceOverdueJob(repo, time.Minute)

	job.processOverdueInvoices(context.Background())
	require.Equal(t, 0, repo.markCalls)
}

func TestProcessOverdueInvoices_MarksCandidates(t *testing.T) {
	a := &entities.Invoice{ID: uuid.New()}
	b := &entities.Invoice{ID: uuid.New()}
	repo := &overdueRepoStub{candidates: []*entities.Invoice{a, b}}
	job := NewInvoiceOverdueJob(repo, time.Minute)

	job.processOverdueInvoices(context.Background())
	require.Equal(t, 1, repo.markCalls)
	require.Equal(t, []uuid.UUID{a.ID, b.ID}, repo.lastIDs)
}

func TestProcessOverdueInvoices_GetError(t *testing.T) {
	repo := &overdueRepoStub{getErr: errors.New("db down")}
	job := NewInvoiceOverdueJob(repo, time.Minute)

	job.processOverdueInvoices(context.Background())
	require.Equal(t, 0, repo.markCalls)
}

func TestInvoiceOverdueJob_StartStop(t *testing.T) {
	repo := &overdueRepoStub{}
	job := NewInvoiceOverdueJob(repo, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	job.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}

func TestNewInvoiceOverdueJob_DefaultInterval(t *testing.T) {
	job := NewInvoiceOverdueJob(&overdueRepoStub{}, 0)
	require.Equal(t, time.Minute, job.interval)
}

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/pkg/utils"
)

func newInvoice(userID uuid.UUID, number string, due time.Time) *entities.Invoice {
	inv := &entities.Invoice{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		ClientID:  utils.GenerateUUIDv7(),
		Number:    number,
		Status:    entities.InvoiceStatusDraft,
		Currency:  "EUR",
		IssueDate: due.AddDate(0, 0, -14),
		DueDate:   due,
		Items: []entities.InvoiceItem{
			{ID: utils.GenerateUUIDv7(), Description: "Design sprint", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(4000)},
			{ID: utils.GenerateUUIDv7(), Description: "Support hours", Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(120)},
		},
	}
	inv.Total = inv.ComputeTotal()
	inv.AmountPaid = decimal.Zero
	return inv
}

func TestInvoiceRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createInvoiceTables(t, db)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	inv := newInvoice(utils.GenerateUUIDv7(), "2026-001", time.Now().AddDate(0, 0, 14))
	require.NoError(t, repo.Create(ctx, inv))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "2026-001", got.Number)
	require.Len(t, got.Items, 2)
	require.True(t, got.Total.Equal(decimal.NewFromInt(4600)), "total %s", got.Total)
	require.True(t, got.Balance().Equal(decimal.NewFromInt(4600)))

	byNumber, err := repo.GetByNumber(ctx, inv.UserID, "2026-001")
	require.NoError(t, err)
	require.Equal(t, inv.ID, byNumber.ID)

	_, err = repo.GetByNumber(ctx, utils.GenerateUUIDv7(), "2026-001")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestInvoiceRepository_List_FiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	createInvoiceTables(t, db)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	userID := utils.GenerateUUIDv7()
	a := newInvoice(userID, "2026-001", time.Now())
	b := newInvoice(userID, "2026-002", time.Now())
	b.Status = entities.InvoiceStatusSent
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	all, total, err := repo.List(ctx, userID, "", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.EqualValues(t, 2, total)

	sent, total, err := repo.List(ctx, userID, entities.InvoiceStatusSent, 0, 0)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.EqualValues(t, 1, total)
	require.Equal(t, "2026-002", sent[0].Number)
}

func TestInvoiceRepository_ReplaceItems(t *testing.T) {
	db := newTestDB(t)
	createInvoiceTables(t, db)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	inv := newInvoice(utils.GenerateUUIDv7(), "2026-003", time.Now())
	require.NoError(t, repo.Create(ctx, inv))

	require.NoError(t, repo.ReplaceItems(ctx, inv.ID, []entities.InvoiceItem{
		{ID: utils.GenerateUUIDv7(), Description: "Retainer", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2500)},
	}))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, "Retainer", got.Items[0].Description)

	require.NoError(t, repo.ReplaceItems(ctx, inv.ID, nil))
	got, err = repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Empty(t, got.Items)
}

func TestInvoiceRepository_OverdueFlow(t *testing.T) {
	db := newTestDB(t)
	createInvoiceTables(t, db)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	userID := utils.GenerateUUIDv7()
	now := time.Now()

	pastDue := newInvoice(userID, "2026-010", now.AddDate(0, 0, -3))
	pastDue.Status = entities.InvoiceStatusSent
	notDue := newInvoice(userID, "2026-011", now.AddDate(0, 0, 3))
	notDue.Status = entities.InvoiceStatusSent
	pastDueDraft := newInvoice(userID, "2026-012", now.AddDate(0, 0, -3))
	require.NoError(t, repo.Create(ctx, pastDue))
	require.NoError(t, repo.Create(ctx, notDue))
	require.NoError(t, repo.Create(ctx, pastDueDraft))

	candidates, err := repo.GetOverdueCandidates(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, pastDue.ID, candidates[0].ID)

	require.NoError(t, repo.MarkOverdue(ctx, []uuid.UUID{pastDue.ID, pastDueDraft.ID}))

	got, err := repo.GetByID(ctx, pastDue.ID)
	require.NoError(t, err)
	require.Equal(t, entities.InvoiceStatusOverdue, got.Status)

	// drafts are never flipped, even if passed in
	draft, err := repo.GetByID(ctx, pastDueDraft.ID)
	require.NoError(t, err)
	require.Equal(t, entities.InvoiceStatusDraft, draft.Status)

	require.NoError(t, repo.MarkOverdue(ctx, nil))
}

func TestInvoiceRepository_Delete_CascadesItems(t *testing.T) {
	db := newTestDB(t)
	createInvoiceTables(t, db)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	inv := newInvoice(utils.GenerateUUIDv7(), "2026-020", time.Now())
	require.NoError(t, repo.Create(ctx, inv))
	require.NoError(t, repo.Delete(ctx, inv.ID))

	var count int64
	require.NoError(t, db.Table("invoice_items").Where("invoice_id = ?", inv.ID).Count(&count).Error)
	require.Zero(t, count)

	require.ErrorIs(t, repo.Delete(ctx, inv.ID), domainerrors.ErrNotFound)
}

func TestPaymentRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createInvoiceTables(t, db)
	invoices := NewInvoiceRepository(db)
	payments := NewPaymentRepository(db)
	ctx := context.Background()

	inv := newInvoice(utils.GenerateUUIDv7(), "2026-030", time.Now())
	require.NoError(t, invoices.Create(ctx, inv))

	first := &entities.Payment{
		ID:        utils.GenerateUUIDv7(),
		InvoiceID: inv.ID,
		Amount:    decimal.NewFromInt(1000),
		Method:    entities.PaymentMethodBankTransfer,
		PaidAt:    time.Now().AddDate(0, 0, -2),
	}
	second := &entities.Payment{
		ID:        utils.GenerateUUIDv7(),
		InvoiceID: inv.ID,
		Amount:    decimal.NewFromInt(3600),
		Method:    entities.PaymentMethodCard,
		PaidAt:    time.Now(),
	}
	require.NoError(t, payments.Create(ctx, second))
	require.NoError(t, payments.Create(ctx, first))

	got, err := payments.ListByInvoiceID(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ordered by paid_at, not insertion
	require.Equal(t, first.ID, got[0].ID)
	require.True(t, got[1].Amount.Equal(decimal.NewFromInt(3600)))
}

package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/domain/repositories"
	"lancerdesk.backend/pkg/logger"
	"lancerdesk.backend/pkg/utils"
)

// InvoiceUsecase handles invoice business logic
type InvoiceUsecase struct {
	invoiceRepo repositories.InvoiceRepository
	paymentRepo repositories.PaymentRepository
	uow         repositories.UnitOfWork
}

func NewInvoiceUsecase(
	invoiceRepo repositories.InvoiceRepository,
	paymentRepo repositories.PaymentRepository,
	uow repositories.UnitOfWork,
) *InvoiceUsecase {
	return &InvoiceUsecase{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		uow:         uow,
	}
}

// CreateInvoice creates a draft invoice with its line items in one
// transaction. The total is always recomputed from the items.
func (u *InvoiceUsecase) CreateInvoice(ctx context.Context, invoice *entities.Invoice) error {
	if strings.TrimSpace(invoice.Number) == "" || invoice.ClientID == uuid.Nil {
		return domainerrors.ErrInvalidInput
	}

	if _, err := u.invoiceRepo.GetByNumber(ctx, invoice.UserID, invoice.Number); err == nil {
		return domainerrors.ErrAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	invoice.ID = utils.GenerateUUIDv7()
	invoice.Status = entities.InvoiceStatusDraft
	for i := range invoice.Items {
		invoice.Items[i].ID = utils.GenerateUUIDv7()
		invoice.Items[i].InvoiceID = invoice.ID
	}
	invoice.Total = invoice.ComputeTotal()

	if invoice.Currency == "" {
		invoice.Currency = "EUR"
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.invoiceRepo.Create(txCtx, invoice)
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("number", invoice.Number))
	return nil
}

func (u *InvoiceUsecase) GetInvoice(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	return u.invoiceRepo.GetByID(ctx, id)
}

func (u *InvoiceUsecase) ListInvoices(ctx context.Context, userID uuid.UUID, status entities.InvoiceStatus, limit, offset int) ([]*entities.Invoice, int64, error) {
	return u.invoiceRepo.List(ctx, userID, status, limit, offset)
}

// UpdateDraft replaces an invoice's fields and items. Only drafts are
// editable.
func (u *InvoiceUsecase) UpdateDraft(ctx context.Context, invoice *entities.Invoice) error {
	existing, err := u.invoiceRepo.GetByID(ctx, invoice.ID)
	if err != nil {
		return err
	}
	if existing.Status != entities.InvoiceStatusDraft {
		return domainerrors.ErrInvoiceNotDraft
	}

	for i := range invoice.Items {
		if invoice.Items[i].ID == uuid.Nil {
			invoice.Items[i].ID = utils.GenerateUUIDv7()
		}
		invoice.Items[i].InvoiceID = invoice.ID
	}
	invoice.Status = entities.InvoiceStatusDraft
	invoice.Total = invoice.ComputeTotal()

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.invoiceRepo.Update(txCtx, invoice); err != nil {
			return err
		}
		return u.invoiceRepo.ReplaceItems(txCtx, invoice.ID, invoice.Items)
	})
}

// SendInvoice moves a draft to sent
func (u *InvoiceUsecase) SendInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Status != entities.InvoiceStatusDraft {
		return domainerrors.ErrInvoiceNotDraft
	}
	return u.invoiceRepo.UpdateStatus(ctx, id, entities.InvoiceStatusSent)
}

// CancelInvoice cancels any invoice that has not been paid
func (u *InvoiceUsecase) CancelInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Status == entities.InvoiceStatusPaid {
		return domainerrors.ErrBadRequest
	}
	return u.invoiceRepo.UpdateStatus(ctx, id, entities.InvoiceStatusCancelled)
}

// RecordPayment registers a payment against an invoice and updates the paid
// amount, flipping the invoice to paid when the balance reaches zero. The
// payment row and invoice update commit together.
func (u *InvoiceUsecase) RecordPayment(ctx context.Context, payment *entities.Payment) (*entities.Invoice, error) {
	if payment.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.ErrInvalidInput
	}
	if payment.Method == "" {
		payment.Method = entities.PaymentMethodOther
	}
	payment.ID = utils.GenerateUUIDv7()

	var updated *entities.Invoice
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		invoice, err := u.invoiceRepo.GetByID(txCtx, payment.InvoiceID)
		if err != nil {
			return err
		}
		switch invoice.Status {
		case entities.InvoiceStatusSent, entities.InvoiceStatusOverdue:
		default:
			return domainerrors.ErrBadRequest
		}
		if payment.Amount.GreaterThan(invoice.Balance()) {
			return domainerrors.ErrInvoiceOverpaid
		}

		if err := u.paymentRepo.Create(txCtx, payment); err != nil {
			return err
		}

		invoice.AmountPaid = invoice.AmountPaid.Add(payment.Amount)
		if invoice.Balance().IsZero() {
			invoice.Status = entities.InvoiceStatusPaid
		}
		if err := u.invoiceRepo.Update(txCtx, invoice); err != nil {
			return err
		}
		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "payment recorded",
		zap.String("invoice_id", payment.InvoiceID.String()),
		zap.String("amount", payment.Amount.String()))
	return updated, nil
}

// ListPayments returns all payments recorded against an invoice
func (u *InvoiceUsecase) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]*entities.Payment, error) {
	return u.paymentRepo.ListByInvoiceID(ctx, invoiceID)
}

// DeleteInvoice removes a draft invoice. Non-drafts must be cancelled
// instead so the numbering trail stays intact.
func (u *InvoiceUsecase) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Status != entities.InvoiceStatusDraft {
		return domainerrors.ErrInvoiceNotDraft
	}
	return u.invoiceRepo.Delete(ctx, id)
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
)

// InvoiceRepository defines invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entities.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error)
	GetByNumber(ctx context.Context, userID uuid.UUID, number string) (*entities.Invoice, error)
	List(ctx context.Context, userID uuid.UUID, status entities.InvoiceStatus, limit, offset int) ([]*entities.Invoice, int64, error)
	Update(ctx context.Context, invoice *entities.Invoice) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvoiceStatus) error
	ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []entities.InvoiceItem) error
	GetOverdueCandidates(ctx context.Context, asOf time.Time, limit int) ([]*entities.Invoice, error)
	MarkOverdue(ctx context.Context, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*entities.Payment, error)
}

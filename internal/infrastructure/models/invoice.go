package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_user_number"`
	Status     string          `gorm:"type:varchar(50);not null;default:'draft'"`
	Currency   string          `gorm:"type:varchar(3);not null;default:'USD'"`
	IssueDate  time.Time       `gorm:"not null"`
	DueDate    time.Time       `gorm:"not null;index"`
	Notes      string          `gorm:"type:text"`
	Total      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	AmountPaid decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// invoice_items.invoice_id carries ON DELETE CASCADE in the schema.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:text;not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:1"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Method    string          `gorm:"type:varchar(50);not null"`
	Reference string          `gorm:"type:varchar(255)"`
	PaidAt    time.Time       `gorm:"not null"`
	CreatedAt time.Time
}

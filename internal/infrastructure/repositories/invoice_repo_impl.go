package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/infrastructure/models"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *entities.Invoice) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	m := r.toModel(invoice)
	if err := db.Create(m).Error; err != nil {
		return err
	}
	invoice.CreatedAt = m.CreatedAt
	invoice.UpdatedAt = m.UpdatedAt

	if len(invoice.Items) > 0 {
		rows := make([]models.InvoiceItem, 0, len(invoice.Items))
		for i := range invoice.Items {
			invoice.Items[i].InvoiceID = invoice.ID
			rows = append(rows, *r.toItemModel(&invoice.Items[i]))
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	var m models.Invoice
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithItems(db, &m)
}

func (r *InvoiceRepository) GetByNumber(ctx context.Context, userID uuid.UUID, number string) (*entities.Invoice, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	var m models.Invoice
	if err := db.Where("user_id = ? AND number = ?", userID, number).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithItems(db, &m)
}

func (r *InvoiceRepository) List(ctx context.Context, userID uuid.UUID, status entities.InvoiceStatus, limit, offset int) ([]*entities.Invoice, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Invoice{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Invoice
	if err := query.Order("issue_date DESC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Invoice, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i], nil))
	}
	return items, total, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *entities.Invoice) error {
	updates := map[string]interface{}{
		"client_id":   invoice.ClientID,
		"number":      invoice.Number,
		"status":      string(invoice.Status),
		"currency":    invoice.Currency,
		"issue_date":  invoice.IssueDate,
		"due_date":    invoice.DueDate,
		"notes":       invoice.Notes.String,
		"total":       invoice.Total,
		"amount_paid": invoice.AmountPaid,
		"updated_at":  time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvoiceStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ReplaceItems swaps the full item list of an invoice
func (r *InvoiceRepository) ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []entities.InvoiceItem) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("invoice_id = ?", invoiceID).Delete(&models.InvoiceItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	rows := make([]models.InvoiceItem, 0, len(items))
	for i := range items {
		items[i].InvoiceID = invoiceID
		rows = append(rows, *r.toItemModel(&items[i]))
	}
	return db.Create(&rows).Error
}

func (r *InvoiceRepository) GetOverdueCandidates(ctx context.Context, asOf time.Time, limit int) ([]*entities.Invoice, error) {
	var ms []models.Invoice
	query := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", string(entities.InvoiceStatusSent), asOf).
		Order("due_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Invoice, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i], nil))
	}
	return items, nil
}

func (r *InvoiceRepository) MarkOverdue(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id IN ? AND status = ?", ids, string(entities.InvoiceStatusSent)).
		Updates(map[string]interface{}{
			"status":     string(entities.InvoiceStatusOverdue),
			"updated_at": time.Now(),
		}).Error
}

// Delete removes the invoice row; invoice_items go with it via the
// schema's cascading foreign key.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) loadWithItems(db *gorm.DB, m *models.Invoice) (*entities.Invoice, error) {
	var itemRows []models.InvoiceItem
	if err := db.Where("invoice_id = ?", m.ID).Order("created_at ASC, id ASC").Find(&itemRows).Error; err != nil {
		return nil, err
	}
	return r.toEntity(m, itemRows), nil
}

func (r *InvoiceRepository) toEntity(m *models.Invoice, itemRows []models.InvoiceItem) *entities.Invoice {
	e := &entities.Invoice{
		ID:         m.ID,
		UserID:     m.UserID,
		ClientID:   m.ClientID,
		Number:     m.Number,
		Status:     entities.InvoiceStatus(m.Status),
		Currency:   m.Currency,
		IssueDate:  m.IssueDate,
		DueDate:    m.DueDate,
		Total:      m.Total,
		AmountPaid: m.AmountPaid,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Notes != "" {
		e.Notes.SetValid(m.Notes)
	}
	items := make([]entities.InvoiceItem, 0, len(itemRows))
	for i := range itemRows {
		items = append(items, entities.InvoiceItem{
			ID:          itemRows[i].ID,
			InvoiceID:   itemRows[i].InvoiceID,
			Description: itemRows[i].Description,
			Quantity:    itemRows[i].Quantity,
			UnitPrice:   itemRows[i].UnitPrice,
		})
	}
	e.Items = items
	return e
}

func (r *InvoiceRepository) toModel(e *entities.Invoice) *models.Invoice {
	return &models.Invoice{
		ID:         e.ID,
		UserID:     e.UserID,
		ClientID:   e.ClientID,
		Number:     e.Number,
		Status:     string(e.Status),
		Currency:   e.Currency,
		IssueDate:  e.IssueDate,
		DueDate:    e.DueDate,
		Notes:      e.Notes.String,
		Total:      e.Total,
		AmountPaid: e.AmountPaid,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (r *InvoiceRepository) toItemModel(e *entities.InvoiceItem) *models.InvoiceItem {
	return &models.InvoiceItem{
		ID:          e.ID,
		InvoiceID:   e.InvoiceID,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
	}
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	m := &models.Payment{
		ID:        payment.ID,
		InvoiceID: payment.InvoiceID,
		Amount:    payment.Amount,
		Method:    string(payment.Method),
		Reference: payment.Reference.String,
		PaidAt:    payment.PaidAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	payment.CreatedAt = m.CreatedAt
	return nil
}

func (r *PaymentRepository) ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*entities.Payment, error) {
	var ms []models.Payment
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("paid_at ASC, created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Payment, 0, len(ms))
	for i := range ms {
		p := &entities.Payment{
			ID:        ms[i].ID,
			InvoiceID: ms[i].InvoiceID,
			Amount:    ms[i].Amount,
			Method:    entities.PaymentMethod(ms[i].Method),
			PaidAt:    ms[i].PaidAt,
			CreatedAt: ms[i].CreatedAt,
		}
		if ms[i].Reference != "" {
			p.Reference.SetValid(ms[i].Reference)
		}
		items = append(items, p)
	}
	return items, nil
}

package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/infrastructure/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) error {
	m := r.toModel(client)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	client.CreatedAt = m.CreatedAt
	client.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	var m models.Client
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ClientRepository) List(ctx context.Context, userID uuid.UUID, search string, limit, offset int) ([]*entities.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Client{}).Where("user_id = ?", userID)
	if strings.TrimSpace(search) != "" {
		term := "%" + strings.TrimSpace(search) + "%"
		query = query.Where("company LIKE ? OR contact_name LIKE ? OR email LIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Client
	if err := query.Order("company ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Client, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *entities.Client) error {
	updates := map[string]interface{}{
		"company":      client.Company,
		"contact_name": client.ContactName,
		"email":        client.Email,
		"phone":        client.Phone.String,
		"address":      client.Address.String,
		"status":       string(client.Status),
		"notes":        client.Notes.String,
		"updated_at":   time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", client.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) toEntity(m *models.Client) *entities.Client {
	e := &entities.Client{
		ID:          m.ID,
		UserID:      m.UserID,
		Company:     m.Company,
		ContactName: m.ContactName,
		Email:       m.Email,
		Status:      entities.ClientStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Phone != "" {
		e.Phone.SetValid(m.Phone)
	}
	if m.Address != "" {
		e.Address.SetValid(m.Address)
	}
	if m.Notes != "" {
		e.Notes.SetValid(m.Notes)
	}
	if m.DeletedAt.Valid {
		e.DeletedAt.SetValid(m.DeletedAt.Time)
	}
	return e
}

func (r *ClientRepository) toModel(e *entities.Client) *models.Client {
	return &models.Client{
		ID:          e.ID,
		UserID:      e.UserID,
		Company:     e.Company,
		ContactName: e.ContactName,
		Email:       e.Email,
		Phone:       e.Phone.String,
		Address:     e.Address.String,
		Status:      string(e.Status),
		Notes:       e.Notes.String,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

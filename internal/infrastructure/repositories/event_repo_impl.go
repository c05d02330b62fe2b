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

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	m := r.toModel(event)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	event.CreatedAt = m.CreatedAt
	event.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *EventRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entities.Event, error) {
	var ms []models.Event
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND starts_at < ? AND ends_at > ?", userID, to, from).
		Order("starts_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Event, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	updates := map[string]interface{}{
		"client_id":  event.ClientID,
		"title":      event.Title,
		"location":   event.Location.String,
		"starts_at":  event.StartsAt,
		"ends_at":    event.EndsAt,
		"updated_at": time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) toEntity(m *models.Event) *entities.Event {
	e := &entities.Event{
		ID:        m.ID,
		UserID:    m.UserID,
		ClientID:  m.ClientID,
		Title:     m.Title,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Location != "" {
		e.Location.SetValid(m.Location)
	}
	return e
}

func (r *EventRepository) toModel(e *entities.Event) *models.Event {
	return &models.Event{
		ID:        e.ID,
		UserID:    e.UserID,
		ClientID:  e.ClientID,
		Title:     e.Title,
		Location:  e.Location.String,
		StartsAt:  e.StartsAt,
		EndsAt:    e.EndsAt,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

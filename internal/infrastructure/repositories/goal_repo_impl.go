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

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *entities.Goal) error {
	m := r.toModel(goal)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	goal.CreatedAt = m.CreatedAt
	goal.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error) {
	var m models.Goal
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *GoalRepository) List(ctx context.Context, userID uuid.UUID) ([]*entities.Goal, error) {
	var ms []models.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("deadline ASC, created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Goal, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *entities.Goal) error {
	var deadline *time.Time
	if goal.Deadline.Valid {
		deadline = &goal.Deadline.Time
	}
	updates := map[string]interface{}{
		"title":         goal.Title,
		"target_value":  goal.TargetValue,
		"current_value": goal.CurrentValue,
		"unit":          goal.Unit,
		"deadline":      deadline,
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Goal{}).
		Where("id = ?", goal.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *GoalRepository) UpdateProgress(ctx context.Context, id uuid.UUID, currentValue float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Goal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_value": currentValue,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *GoalRepository) toEntity(m *models.Goal) *entities.Goal {
	e := &entities.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		Unit:         m.Unit,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Deadline != nil {
		e.Deadline.SetValid(*m.Deadline)
	}
	return e
}

func (r *GoalRepository) toModel(e *entities.Goal) *models.Goal {
	m := &models.Goal{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		TargetValue:  e.TargetValue,
		CurrentValue: e.CurrentValue,
		Unit:         e.Unit,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Deadline.Valid {
		m.Deadline = &e.Deadline.Time
	}
	return m
}

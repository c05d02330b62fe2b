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

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	m := r.toModel(task)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	task.CreatedAt = m.CreatedAt
	task.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	var m models.Task
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TaskRepository) List(ctx context.Context, userID uuid.UUID, status entities.TaskStatus) ([]*entities.Task, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var ms []models.Task
	if err := query.Order("due_date ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Task, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) error {
	var dueDate *time.Time
	if task.DueDate.Valid {
		dueDate = &task.DueDate.Time
	}
	updates := map[string]interface{}{
		"client_id":  task.ClientID,
		"title":      task.Title,
		"notes":      task.Notes.String,
		"status":     string(task.Status),
		"priority":   string(task.Priority),
		"due_date":   dueDate,
		"updated_at": time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) toEntity(m *models.Task) *entities.Task {
	e := &entities.Task{
		ID:        m.ID,
		UserID:    m.UserID,
		ClientID:  m.ClientID,
		Title:     m.Title,
		Status:    entities.TaskStatus(m.Status),
		Priority:  entities.TaskPriority(m.Priority),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Notes != "" {
		e.Notes.SetValid(m.Notes)
	}
	if m.DueDate != nil {
		e.DueDate.SetValid(*m.DueDate)
	}
	return e
}

func (r *TaskRepository) toModel(e *entities.Task) *models.Task {
	m := &models.Task{
		ID:        e.ID,
		UserID:    e.UserID,
		ClientID:  e.ClientID,
		Title:     e.Title,
		Notes:     e.Notes.String,
		Status:    string(e.Status),
		Priority:  string(e.Priority),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.DueDate.Valid {
		m.DueDate = &e.DueDate.Time
	}
	return m
}

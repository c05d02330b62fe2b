package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
)

// TaskRepository defines task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error)
	List(ctx context.Context, userID uuid.UUID, status entities.TaskStatus) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository defines goal data operations
type GoalRepository interface {
	Create(ctx context.Context, goal *entities.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Goal, error)
	Update(ctx context.Context, goal *entities.Goal) error
	UpdateProgress(ctx context.Context, id uuid.UUID, currentValue float64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventRepository defines calendar event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

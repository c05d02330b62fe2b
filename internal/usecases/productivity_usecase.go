package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/domain/repositories"
	"lancerdesk.backend/pkg/utils"
)

// ProductivityUsecase groups tasks, goals and calendar events
type ProductivityUsecase struct {
	taskRepo  repositories.TaskRepository
	goalRepo  repositories.GoalRepository
	eventRepo repositories.EventRepository
}

func NewProductivityUsecase(
	taskRepo repositories.TaskRepository,
	goalRepo repositories.GoalRepository,
	eventRepo repositories.EventRepository,
) *ProductivityUsecase {
	return &ProductivityUsecase{
		taskRepo:  taskRepo,
		goalRepo:  goalRepo,
		eventRepo: eventRepo,
	}
}

func (u *ProductivityUsecase) CreateTask(ctx context.Context, task *entities.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return domainerrors.ErrInvalidInput
	}
	if task.Status == "" {
		task.Status = entities.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = entities.TaskPriorityMedium
	}
	task.ID = utils.GenerateUUIDv7()
	return u.taskRepo.Create(ctx, task)
}

func (u *ProductivityUsecase) GetTask(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	return u.taskRepo.GetByID(ctx, id)
}

func (u *ProductivityUsecase) ListTasks(ctx context.Context, userID uuid.UUID, status entities.TaskStatus) ([]*entities.Task, error) {
	return u.taskRepo.List(ctx, userID, status)
}

func (u *ProductivityUsecase) UpdateTask(ctx context.Context, task *entities.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return domainerrors.ErrInvalidInput
	}
	return u.taskRepo.Update(ctx, task)
}

func (u *ProductivityUsecase) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return u.taskRepo.Delete(ctx, id)
}

func (u *ProductivityUsecase) CreateGoal(ctx context.Context, goal *entities.Goal) error {
	if strings.TrimSpace(goal.Title) == "" || goal.TargetValue <= 0 {
		return domainerrors.ErrInvalidInput
	}
	goal.ID = utils.GenerateUUIDv7()
	return u.goalRepo.Create(ctx, goal)
}

func (u *ProductivityUsecase) GetGoal(ctx context.Context, id uuid.UUID) (*entities.Goal, error) {
	return u.goalRepo.GetByID(ctx, id)
}

func (u *ProductivityUsecase) ListGoals(ctx context.Context, userID uuid.UUID) ([]*entities.Goal, error) {
	return u.goalRepo.List(ctx, userID)
}

func (u *ProductivityUsecase) UpdateGoal(ctx context.Context, goal *entities.Goal) error {
	if strings.TrimSpace(goal.Title) == "" || goal.TargetValue <= 0 {
		return domainerrors.ErrInvalidInput
	}
	return u.goalRepo.Update(ctx, goal)
}

func (u *ProductivityUsecase) UpdateGoalProgress(ctx context.Context, id uuid.UUID, currentValue float64) error {
	if currentValue < 0 {
		return domainerrors.ErrInvalidInput
	}
	return u.goalRepo.UpdateProgress(ctx, id, currentValue)
}

func (u *ProductivityUsecase) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return u.goalRepo.Delete(ctx, id)
}

func (u *ProductivityUsecase) CreateEvent(ctx context.Context, event *entities.Event) error {
	if strings.TrimSpace(event.Title) == "" || !event.EndsAt.After(event.StartsAt) {
		return domainerrors.ErrInvalidInput
	}
	event.ID = utils.GenerateUUIDv7()
	return u.eventRepo.Create(ctx, event)
}

func (u *ProductivityUsecase) GetEvent(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	return u.eventRepo.GetByID(ctx, id)
}

func (u *ProductivityUsecase) ListEvents(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entities.Event, error) {
	if !to.After(from) {
		return nil, domainerrors.ErrInvalidInput
	}
	return u.eventRepo.ListRange(ctx, userID, from, to)
}

func (u *ProductivityUsecase) UpdateEvent(ctx context.Context, event *entities.Event) error {
	if strings.TrimSpace(event.Title) == "" || !event.EndsAt.After(event.StartsAt) {
		return domainerrors.ErrInvalidInput
	}
	return u.eventRepo.Update(ctx, event)
}

func (u *ProductivityUsecase) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return u.eventRepo.Delete(ctx, id)
}

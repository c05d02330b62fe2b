package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/interfaces/http/middleware"
	"lancerdesk.backend/internal/interfaces/http/response"
	"lancerdesk.backend/internal/usecases"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	usecase *usecases.ProductivityUsecase
}

func NewTaskHandler(usecase *usecases.ProductivityUsecase) *TaskHandler {
	return &TaskHandler{usecase: usecase}
}

type taskInput struct {
	ClientID *uuid.UUID `json:"clientId"`
	Title    string     `json:"title" binding:"required"`
	Notes    string     `json:"notes"`
	Status   string     `json:"status"`
	Priority string     `json:"priority"`
	DueDate  *time.Time `json:"dueDate"`
}

func (in *taskInput) toEntity(userID uuid.UUID) *entities.Task {
	task := &entities.Task{
		UserID:   userID,
		ClientID: in.ClientID,
		Title:    in.Title,
		Status:   entities.TaskStatus(in.Status),
		Priority: entities.TaskPriority(in.Priority),
	}
	if in.Notes != "" {
		task.Notes.SetValid(in.Notes)
	}
	if in.DueDate != nil {
		task.DueDate.SetValid(*in.DueDate)
	}
	return task
}

// CreateTask creates a task
// POST /api/v1/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	task := input.toEntity(userID)
	if err := h.usecase.CreateTask(c.Request.Context(), task); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, task)
}

// ListTasks lists the caller's tasks, optionally filtered by status
// GET /api/v1/tasks?status=
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	tasks, err := h.usecase.ListTasks(c.Request.Context(), userID, entities.TaskStatus(c.Query("status")))
	if err != nil {
		response.Error(c, err)
		return
	}
	if tasks == nil {
		tasks = []*entities.Task{}
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

// UpdateTask updates a task
// PUT /api/v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid task id"))
		return
	}

	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	task := input.toEntity(userID)
	task.ID = id
	if err := h.usecase.UpdateTask(c.Request.Context(), task); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, task)
}

// DeleteTask removes a task
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid task id"))
		return
	}

	if err := h.usecase.DeleteTask(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

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

// GoalHandler handles goal endpoints
type GoalHandler struct {
	usecase *usecases.ProductivityUsecase
}

func NewGoalHandler(usecase *usecases.ProductivityUsecase) *GoalHandler {
	return &GoalHandler{usecase: usecase}
}

type goalInput struct {
	Title       string     `json:"title" binding:"required"`
	TargetValue float64    `json:"targetValue" binding:"required"`
	Unit        string     `json:"unit"`
	Deadline    *time.Time `json:"deadline"`
}

// CreateGoal creates a goal
// POST /api/v1/goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	goal := &entities.Goal{
		UserID:      userID,
		Title:       input.Title,
		TargetValue: input.TargetValue,
		Unit:        input.Unit,
	}
	if input.Deadline != nil {
		goal.Deadline.SetValid(*input.Deadline)
	}

	if err := h.usecase.CreateGoal(c.Request.Context(), goal); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, goal)
}

// ListGoals lists the caller's goals with computed progress
// GET /api/v1/goals
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	goals, err := h.usecase.ListGoals(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	type goalResponse struct {
		*entities.Goal
		Progress float64 `json:"progress"`
	}
	items := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		items = append(items, goalResponse{Goal: g, Progress: g.Progress()})
	}
	response.Success(c, http.StatusOK, gin.H{"goals": items})
}

// UpdateGoalProgress sets the goal's current value
// PATCH /api/v1/goals/:id/progress
func (h *GoalHandler) UpdateGoalProgress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid goal id"))
		return
	}

	var input struct {
		CurrentValue float64 `json:"currentValue"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.usecase.UpdateGoalProgress(c.Request.Context(), id, input.CurrentValue); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"currentValue": input.CurrentValue})
}

// DeleteGoal removes a goal
// DELETE /api/v1/goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid goal id"))
		return
	}

	if err := h.usecase.DeleteGoal(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

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

// EventHandler handles calendar event endpoints
type EventHandler struct {
	usecase *usecases.ProductivityUsecase
}

func NewEventHandler(usecase *usecases.ProductivityUsecase) *EventHandler {
	return &EventHandler{usecase: usecase}
}

type eventInput struct {
	ClientID *uuid.UUID `json:"clientId"`
	Title    string     `json:"title" binding:"required"`
	Location string     `json:"location"`
	StartsAt time.Time  `json:"startsAt" binding:"required"`
	EndsAt   time.Time  `json:"endsAt" binding:"required"`
}

func (in *eventInput) toEntity(userID uuid.UUID) *entities.Event {
	event := &entities.Event{
		UserID:   userID,
		ClientID: in.ClientID,
		Title:    in.Title,
		StartsAt: in.StartsAt,
		EndsAt:   in.EndsAt,
	}
	if in.Location != "" {
		event.Location.SetValid(in.Location)
	}
	return event
}

// CreateEvent creates a calendar event
// POST /api/v1/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	event := input.toEntity(userID)
	if err := h.usecase.CreateEvent(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, event)
}

// ListEvents lists events overlapping a time window
// GET /api/v1/events?from=&to=
func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid from timestamp"))
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid to timestamp"))
		return
	}

	events, err := h.usecase.ListEvents(c.Request.Context(), userID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	if events == nil {
		events = []*entities.Event{}
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

// UpdateEvent updates a calendar event
// PUT /api/v1/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid event id"))
		return
	}

	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	event := input.toEntity(userID)
	event.ID = id
	if err := h.usecase.UpdateEvent(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, event)
}

// DeleteEvent removes a calendar event
// DELETE /api/v1/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid event id"))
		return
	}

	if err := h.usecase.DeleteEvent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

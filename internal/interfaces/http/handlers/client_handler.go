package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/interfaces/http/middleware"
	"lancerdesk.backend/internal/interfaces/http/response"
	"lancerdesk.backend/internal/usecases"
	"lancerdesk.backend/pkg/utils"
)

// ClientHandler handles client endpoints
type ClientHandler struct {
	usecase *usecases.ClientUsecase
}

func NewClientHandler(usecase *usecases.ClientUsecase) *ClientHandler {
	return &ClientHandler{usecase: usecase}
}

type clientInput struct {
	Company     string `json:"company" binding:"required"`
	ContactName string `json:"contactName"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func (in *clientInput) toEntity(userID uuid.UUID) *entities.Client {
	client := &entities.Client{
		UserID:      userID,
		Company:     in.Company,
		ContactName: in.ContactName,
		Email:       in.Email,
		Status:      entities.ClientStatus(in.Status),
	}
	if in.Phone != "" {
		client.Phone.SetValid(in.Phone)
	}
	if in.Address != "" {
		client.Address.SetValid(in.Address)
	}
	if in.Notes != "" {
		client.Notes.SetValid(in.Notes)
	}
	return client
}

// CreateClient creates a client record
// POST /api/v1/clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input clientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	client := input.toEntity(userID)
	if err := h.usecase.CreateClient(c.Request.Context(), client); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, client)
}

// GetClient returns one client
// GET /api/v1/clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid client id"))
		return
	}

	client, err := h.usecase.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, client)
}

// ListClients lists the caller's clients with search and pagination
// GET /api/v1/clients?search=&page=&limit=
func (h *ClientHandler) ListClients(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	items, total, err := h.usecase.ListClients(c.Request.Context(), userID, c.Query("search"), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Client{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"clients": items,
		"meta":    utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateClient updates a client record
// PUT /api/v1/clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid client id"))
		return
	}

	var input clientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	client := input.toEntity(userID)
	client.ID = id
	if err := h.usecase.UpdateClient(c.Request.Context(), client); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, client)
}

// DeleteClient archives a client (soft delete)
// DELETE /api/v1/clients/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid client id"))
		return
	}

	if err := h.usecase.DeleteClient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

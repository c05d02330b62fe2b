package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/interfaces/http/middleware"
	"lancerdesk.backend/internal/interfaces/http/response"
	"lancerdesk.backend/internal/usecases"
)

// PortfolioHandler handles portfolio endpoints
type PortfolioHandler struct {
	usecase *usecases.PortfolioUsecase
}

func NewPortfolioHandler(usecase *usecases.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{usecase: usecase}
}

// GetPortfolio returns the full aggregate
// GET /api/v1/portfolios/:id
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid portfolio id"))
		return
	}

	agg, err := h.usecase.GetAggregate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, agg)
}

// SavePortfolio creates or updates the full aggregate
// PUT /api/v1/portfolios
func (h *PortfolioHandler) SavePortfolio(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var agg entities.PortfolioAggregate
	if err := c.ShouldBindJSON(&agg); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	agg.UserID = userID

	id, err := h.usecase.SaveAggregate(c.Request.Context(), &agg)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// DeletePortfolio removes the caller's aggregate
// DELETE /api/v1/portfolios/:id
func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid portfolio id"))
		return
	}

	if err := h.usecase.DeleteAggregate(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPortfolios lists the caller's portfolios (roots only)
// GET /api/v1/portfolios
func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	items, err := h.usecase.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Portfolio{}
	}
	response.Success(c, http.StatusOK, gin.H{"portfolios": items})
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/interfaces/http/middleware"
	"lancerdesk.backend/internal/interfaces/http/response"
	"lancerdesk.backend/internal/usecases"
	"lancerdesk.backend/pkg/utils"
)

// InvoiceHandler handles invoice and payment endpoints
type InvoiceHandler struct {
	usecase *usecases.InvoiceUsecase
}

func NewInvoiceHandler(usecase *usecases.InvoiceUsecase) *InvoiceHandler {
	return &InvoiceHandler{usecase: usecase}
}

type invoiceItemInput struct {
	ID          string          `json:"id"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type invoiceInput struct {
	ClientID  uuid.UUID          `json:"clientId" binding:"required"`
	Number    string             `json:"number" binding:"required"`
	Currency  string             `json:"currency"`
	IssueDate time.Time          `json:"issueDate" binding:"required"`
	DueDate   time.Time          `json:"dueDate" binding:"required"`
	Notes     string             `json:"notes"`
	Items     []invoiceItemInput `json:"items"`
}

func (in *invoiceInput) toEntity(userID uuid.UUID) *entities.Invoice {
	invoice := &entities.Invoice{
		UserID:    userID,
		ClientID:  in.ClientID,
		Number:    in.Number,
		Currency:  in.Currency,
		IssueDate: in.IssueDate,
		DueDate:   in.DueDate,
	}
	if in.Notes != "" {
		invoice.Notes.SetValid(in.Notes)
	}
	for _, item := range in.Items {
		entItem := entities.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
		if id, err := uuid.Parse(item.ID); err == nil {
			entItem.ID = id
		}
		invoice.Items = append(invoice.Items, entItem)
	}
	return invoice
}

// CreateInvoice creates a draft invoice with items
// POST /api/v1/invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input invoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	invoice := input.toEntity(userID)
	if err := h.usecase.CreateInvoice(c.Request.Context(), invoice); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, invoice)
}

// GetInvoice returns an invoice with its items
// GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice id"))
		return
	}

	invoice, err := h.usecase.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoice)
}

// ListInvoices lists the caller's invoices
// GET /api/v1/invoices?status=&page=&limit=
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	status := entities.InvoiceStatus(c.Query("status"))
	items, total, err := h.usecase.ListInvoices(c.Request.Context(), userID, status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Invoice{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"invoices": items,
		"meta":     utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateInvoice replaces a draft invoice's fields and items
// PUT /api/v1/invoices/:id
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice id"))
		return
	}

	var input invoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	invoice := input.toEntity(userID)
	invoice.ID = id
	if err := h.usecase.UpdateDraft(c.Request.Context(), invoice); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoice)
}

// SendInvoice moves a draft invoice to sent
// POST /api/v1/invoices/:id/send
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice id"))
		return
	}

	if err := h.usecase.SendInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": entities.InvoiceStatusSent})
}

// CancelInvoice cancels an unpaid invoice
// POST /api/v1/invoices/:id/cancel
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice id"))
		return
	}

	if err := h.usecase.CancelInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": entities.InvoiceStatusCancelled})
}

// DeleteInvoice removes a draft invoice
// DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice id"))
		return
	}

	if err := h.usecase.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type paymentInput struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	PaidAt    time.Time       `json:"paidAt"`
}

// RecordPayment registers a payment against an invoice
// POST /api/v1/invoices/:id/payments
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice id"))
		return
	}

	var input paymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	payment := &entities.Payment{
		InvoiceID: id,
		Amount:    input.Amount,
		Method:    entities.PaymentMethod(input.Method),
		PaidAt:    input.PaidAt,
	}
	if input.Reference != "" {
		payment.Reference.SetValid(input.Reference)
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}

	invoice, err := h.usecase.RecordPayment(c.Request.Context(), payment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"payment": payment,
		"invoice": invoice,
	})
}

// ListPayments lists payments recorded against an invoice
// GET /api/v1/invoices/:id/payments
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice id"))
		return
	}

	payments, err := h.usecase.ListPayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if payments == nil {
		payments = []*entities.Payment{}
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

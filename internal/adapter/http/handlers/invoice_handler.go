package handlers

import (
	"net/http"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var payload request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	invoice, err := h.usecase.GenerateInvoice(c.Request.Context(), usecase.GenerateInvoiceCommand{
		WorkOrderID:  payload.WorkOrderID,
		Subtotal:     payload.Subtotal,
		TaxAmount:    payload.TaxAmount,
		PaymentTerms: payload.PaymentTerms,
		Notes:        payload.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// GetLatestByWorkOrder returns the work order's current invoice.
func (h *InvoiceHandler) GetLatestByWorkOrder(c *gin.Context) {
	invoice, err := h.usecase.LatestByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

package handlers

import (
	"net/http"
	"time"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for the payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment registers a payment against a work order. Card payments
// ("tarjeta" with a provider_payload) are charged through the payment
// provider before the ledger entry is written.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	paidAt := time.Time{}
	if payload.PaidAt != nil {
		paidAt = *payload.PaidAt
	}

	payment, err := h.usecase.RecordPayment(c.Request.Context(), usecase.RecordPaymentCommand{
		WorkOrderID:     payload.WorkOrderID,
		Amount:          payload.Amount,
		Method:          payload.Method,
		PaidAt:          paidAt,
		InvoiceID:       payload.InvoiceID,
		Reference:       payload.Reference,
		Notes:           payload.Notes,
		ProviderPayload: payload.ProviderPayload,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PaymentHandler) ListByWorkOrder(c *gin.Context) {
	payments, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetBalance answers the outstanding-balance question for a work order.
func (h *PaymentHandler) GetBalance(c *gin.Context) {
	statement, err := h.usecase.OutstandingBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statement)
}

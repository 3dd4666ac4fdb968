package handlers

import (
	"net/http"
	"time"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CommissionHandler handles HTTP requests for the commission ledger.

type CommissionHandler struct {
	usecase usecase.ICommissionUseCase
}

func NewCommissionHandler(uc usecase.ICommissionUseCase) *CommissionHandler {
	return &CommissionHandler{usecase: uc}
}

func (h *CommissionHandler) CreateCommission(c *gin.Context) {
	var payload request.CreateCommissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	date := time.Time{}
	if payload.Date != nil {
		date = *payload.Date
	}

	commission, err := h.usecase.CreateCommission(c.Request.Context(), usecase.CreateCommissionCommand{
		EmployeeID:  payload.EmployeeID,
		Amount:      payload.Amount,
		Concept:     payload.Concept,
		Date:        date,
		WorkOrderID: payload.WorkOrderID,
		ProcessID:   payload.ProcessID,
		ReferenceID: payload.ReferenceID,
		Notes:       payload.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromCommission(commission))
}

// SetStatus moves a commission between pendiente, pagado and anulado.
func (h *CommissionHandler) SetStatus(c *gin.Context) {
	var payload request.CommissionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	commission, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCommission(commission))
}

func (h *CommissionHandler) MarkPaid(c *gin.Context) {
	commission, err := h.usecase.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCommission(commission))
}

func (h *CommissionHandler) GetCommission(c *gin.Context) {
	commission, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCommission(commission))
}

func (h *CommissionHandler) ListByWorkOrder(c *gin.Context) {
	commissions, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCommissions(commissions))
}

func (h *CommissionHandler) ListByEmployee(c *gin.Context) {
	commissions, err := h.usecase.ListByEmployeeID(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCommissions(commissions))
}

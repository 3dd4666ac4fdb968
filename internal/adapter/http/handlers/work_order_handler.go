package handlers

import (
	"net/http"
	"strings"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/usecase"
	"taller_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles HTTP requests for the work-order lifecycle.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder opens a new work order in COTIZANDO.
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	order, err := h.usecase.CreateWorkOrder(c.Request.Context(), usecase.CreateWorkOrderCommand{
		CustomerID:      payload.CustomerID,
		VehicleID:       payload.VehicleID,
		TaxRate:         payload.TaxRate,
		WarrantyEnabled: payload.WarrantyEnabled,
		WarrantyDays:    payload.WarrantyDays,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// ListWorkOrders lists work orders for a customer (customer_id query param).
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	customerID := strings.TrimSpace(c.Query("customer_id"))
	if customerID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "customer_id query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

// RequestTransition moves a work order to the requested status, enforcing
// the transition table and its guards.
func (h *WorkOrderHandler) RequestTransition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	order, err := h.usecase.RequestTransition(c.Request.Context(), c.Param("id"), payload.ResolveTarget(), payload.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// RecalculateTotals refreshes the order's financial figures from its
// current processes.
func (h *WorkOrderHandler) RecalculateTotals(c *gin.Context) {
	order, err := h.usecase.RecalculateTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

package handlers

import (
	"net/http"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PartsRequestHandler handles HTTP requests for the parts ledger.

type PartsRequestHandler struct {
	usecase usecase.IPartsRequestUseCase
}

func NewPartsRequestHandler(uc usecase.IPartsRequestUseCase) *PartsRequestHandler {
	return &PartsRequestHandler{usecase: uc}
}

func (h *PartsRequestHandler) RequestPart(c *gin.Context) {
	var payload request.CreatePartsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	parts, err := h.usecase.RequestPart(
		c.Request.Context(),
		payload.WorkOrderID,
		payload.ProcessID,
		payload.Description,
		payload.Quantity,
		payload.Urgent,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromPartsRequest(parts))
}

func (h *PartsRequestHandler) MarkOrdered(c *gin.Context) {
	var payload request.MarkPartsOrderedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	parts, err := h.usecase.MarkOrdered(
		c.Request.Context(),
		c.Param("id"),
		payload.OrderedBy,
		payload.SupplierID,
		payload.EstimatedCost,
		payload.ExpectedAt,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPartsRequest(parts))
}

func (h *PartsRequestHandler) MarkReceived(c *gin.Context) {
	var payload request.MarkPartsReceivedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	parts, err := h.usecase.MarkReceived(c.Request.Context(), c.Param("id"), payload.RealCost)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPartsRequest(parts))
}

func (h *PartsRequestHandler) GetPartsRequest(c *gin.Context) {
	parts, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPartsRequest(parts))
}

func (h *PartsRequestHandler) ListByWorkOrder(c *gin.Context) {
	requests, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPartsRequests(requests))
}

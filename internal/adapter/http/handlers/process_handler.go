package handlers

import (
	"net/http"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProcessHandler handles HTTP requests for work-order processes.

type ProcessHandler struct {
	usecase usecase.IProcessUseCase
}

func NewProcessHandler(uc usecase.IProcessUseCase) *ProcessHandler {
	return &ProcessHandler{usecase: uc}
}

func (h *ProcessHandler) CreateProcess(c *gin.Context) {
	var payload request.CreateProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	process, err := h.usecase.CreateProcess(
		c.Request.Context(),
		payload.WorkOrderID,
		payload.Description,
		payload.EstimatedHours,
		payload.HourlyRate,
		payload.TemplateID,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromProcess(process))
}

func (h *ProcessHandler) StartProcess(c *gin.Context) {
	process, err := h.usecase.StartProcess(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromProcess(process))
}

func (h *ProcessHandler) CompleteProcess(c *gin.Context) {
	var payload request.CompleteProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	process, err := h.usecase.CompleteProcess(c.Request.Context(), c.Param("id"), payload.ActualHours, payload.HourlyRate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromProcess(process))
}

func (h *ProcessHandler) GetProcess(c *gin.Context) {
	process, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromProcess(process))
}

func (h *ProcessHandler) ListByWorkOrder(c *gin.Context) {
	processes, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromProcesses(processes))
}

package handlers

import (
	"net/http"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthorizationHandler handles HTTP requests for customer authorizations.

type AuthorizationHandler struct {
	usecase usecase.IAuthorizationUseCase
}

func NewAuthorizationHandler(uc usecase.IAuthorizationUseCase) *AuthorizationHandler {
	return &AuthorizationHandler{usecase: uc}
}

func (h *AuthorizationHandler) RequestAuthorization(c *gin.Context) {
	var payload request.RequestAuthorizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	auth, err := h.usecase.RequestAuthorization(
		c.Request.Context(),
		payload.WorkOrderID,
		payload.ProcessID,
		payload.ProblemDescription,
		payload.EstimatedPartsCost,
		payload.EstimatedLaborCost,
		payload.Urgent,
		payload.RequestedBy,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromAuthorization(auth))
}

func (h *AuthorizationHandler) ApproveAuthorization(c *gin.Context) {
	var payload request.AuthorizationDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	auth, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.DecidedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorization(auth))
}

func (h *AuthorizationHandler) RejectAuthorization(c *gin.Context) {
	var payload request.AuthorizationDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	auth, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.DecidedBy, payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorization(auth))
}

func (h *AuthorizationHandler) GetAuthorization(c *gin.Context) {
	auth, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorization(auth))
}

func (h *AuthorizationHandler) ListByWorkOrder(c *gin.Context) {
	auths, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorizations(auths))
}

package handlers

import (
	"errors"
	"net/http"

	"taller_xpto/internal/usecase"
	"taller_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapUseCaseError translates the use case error taxonomy into AppErrors.
// Guard and transition failures keep their full message: the reason text is
// what the operator acts on.
func mapUseCaseError(err error) *pkg.AppError {
	var (
		validationErr *usecase.ValidationError
		notFoundErr   *usecase.NotFoundError
		stateErr      *usecase.InvalidStateError
		transitionErr *usecase.IllegalTransitionError
		guardErr      *usecase.GuardViolation
	)

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", validationErr.Msg, http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		return pkg.NewDomainErrorSimple("NOT_FOUND", notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", transitionErr.Error(), http.StatusConflict)
	case errors.As(err, &guardErr):
		return pkg.NewDomainErrorSimple("TRANSITION_GUARD_FAILED", guardErr.Error(), http.StatusConflict)
	case errors.As(err, &stateErr):
		return pkg.NewDomainErrorSimple("INVALID_STATE", stateErr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Work order was modified concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapUseCaseError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

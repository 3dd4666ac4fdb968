package usecase

import (
	"context"
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IAuthorizationUseCase manages client approval of additional, previously
// unscoped work. APROBADA and RECHAZADA are final; the record is kept as
// the audit trail of what the client decided.

type IAuthorizationUseCase interface {
	RequestAuthorization(ctx context.Context, workOrderID, processID, problemDescription string, estimatedPartsCost, estimatedLaborCost decimal.Decimal, urgent bool, requestedBy string) (entities.Authorization, error)
	Approve(ctx context.Context, id, approvedBy string) (entities.Authorization, error)
	Reject(ctx context.Context, id, rejectedBy, reason string) (entities.Authorization, error)
	GetByID(ctx context.Context, id string) (entities.Authorization, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Authorization, error)
}

type AuthorizationUseCase struct {
	repo          interfaces.IAuthorizationRepository
	workOrderRepo interfaces.IWorkOrderRepository
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

func NewAuthorizationUseCase(repo interfaces.IAuthorizationRepository, workOrderRepo interfaces.IWorkOrderRepository) *AuthorizationUseCase {
	return &AuthorizationUseCase{repo: repo, workOrderRepo: workOrderRepo}
}

func (u *AuthorizationUseCase) RequestAuthorization(ctx context.Context, workOrderID, processID, problemDescription string, estimatedPartsCost, estimatedLaborCost decimal.Decimal, urgent bool, requestedBy string) (entities.Authorization, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Authorization{}, newValidationError("work_order_id is required")
	}
	problemDescription = strings.TrimSpace(problemDescription)
	if problemDescription == "" {
		return entities.Authorization{}, newValidationError("problem_description is required")
	}
	requestedBy = strings.TrimSpace(requestedBy)
	if requestedBy == "" {
		return entities.Authorization{}, newValidationError("requested_by is required")
	}
	if estimatedPartsCost.IsNegative() || estimatedLaborCost.IsNegative() {
		return entities.Authorization{}, newValidationError("estimated costs must not be negative")
	}

	order, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Authorization{}, err
	}
	if order.ID == "" {
		return entities.Authorization{}, &NotFoundError{Entity: "work order", ID: workOrderID}
	}

	a := entities.Authorization{
		ID:                 uuid.NewString(),
		WorkOrderID:        workOrderID,
		ProcessID:          strings.TrimSpace(processID),
		ProblemDescription: problemDescription,
		Urgent:             urgent,
		Status:             entities.AuthorizationStatusPendiente,
		EstimatedPartsCost: estimatedPartsCost,
		EstimatedLaborCost: estimatedLaborCost,
		TotalCost:          estimatedPartsCost.Add(estimatedLaborCost),
		RequestedBy:        requestedBy,
		RequestedAt:        time.Now().UTC(),
	}
	return u.repo.Create(ctx, a)
}

func (u *AuthorizationUseCase) Approve(ctx context.Context, id, approvedBy string) (entities.Authorization, error) {
	approvedBy = strings.TrimSpace(approvedBy)
	if approvedBy == "" {
		return entities.Authorization{}, newValidationError("approved_by is required")
	}
	return u.decide(ctx, id, entities.AuthorizationStatusAprobada, approvedBy, "")
}

func (u *AuthorizationUseCase) Reject(ctx context.Context, id, rejectedBy, reason string) (entities.Authorization, error) {
	rejectedBy = strings.TrimSpace(rejectedBy)
	if rejectedBy == "" {
		return entities.Authorization{}, newValidationError("rejected_by is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Authorization{}, newValidationError("rejection reason is required")
	}
	return u.decide(ctx, id, entities.AuthorizationStatusRechazada, rejectedBy, reason)
}

func (u *AuthorizationUseCase) decide(ctx context.Context, id string, status entities.AuthorizationStatus, decidedBy, reason string) (entities.Authorization, error) {
	a, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.Authorization{}, err
	}
	if a.Status != entities.AuthorizationStatusPendiente {
		op := "approve"
		if status == entities.AuthorizationStatusRechazada {
			op = "reject"
		}
		return entities.Authorization{}, &InvalidStateError{Entity: "authorization", ID: a.ID, Current: string(a.Status), Op: op}
	}
	return u.repo.UpdateDecision(ctx, a.ID, status, decidedBy, reason)
}

func (u *AuthorizationUseCase) GetByID(ctx context.Context, id string) (entities.Authorization, error) {
	return u.getExisting(ctx, id)
}

func (u *AuthorizationUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Authorization, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, newValidationError("work_order_id is required")
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

func (u *AuthorizationUseCase) getExisting(ctx context.Context, id string) (entities.Authorization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Authorization{}, newValidationError("authorization id is required")
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Authorization{}, err
	}
	if a.ID == "" {
		return entities.Authorization{}, &NotFoundError{Entity: "authorization", ID: id}
	}
	return a, nil
}

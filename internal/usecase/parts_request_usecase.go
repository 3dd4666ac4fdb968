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

// IPartsRequestUseCase tracks procurement of physical parts. The lifecycle
// is strictly forward (SOLICITADO -> PEDIDO -> RECIBIDO) and never feeds
// the work-order transition guards; it is operational bookkeeping.

type IPartsRequestUseCase interface {
	RequestPart(ctx context.Context, workOrderID, processID, description string, quantity int, urgent bool) (entities.PartsRequest, error)
	MarkOrdered(ctx context.Context, id, orderedBy, supplierID string, estimatedCost decimal.Decimal, expectedAt *time.Time) (entities.PartsRequest, error)
	MarkReceived(ctx context.Context, id string, realCost decimal.Decimal) (entities.PartsRequest, error)
	GetByID(ctx context.Context, id string) (entities.PartsRequest, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.PartsRequest, error)
}

type PartsRequestUseCase struct {
	repo          interfaces.IPartsRequestRepository
	workOrderRepo interfaces.IWorkOrderRepository
}

var _ IPartsRequestUseCase = (*PartsRequestUseCase)(nil)

func NewPartsRequestUseCase(repo interfaces.IPartsRequestRepository, workOrderRepo interfaces.IWorkOrderRepository) *PartsRequestUseCase {
	return &PartsRequestUseCase{repo: repo, workOrderRepo: workOrderRepo}
}

func (u *PartsRequestUseCase) RequestPart(ctx context.Context, workOrderID, processID, description string, quantity int, urgent bool) (entities.PartsRequest, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.PartsRequest{}, newValidationError("work_order_id is required")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.PartsRequest{}, newValidationError("description is required")
	}
	if quantity <= 0 {
		return entities.PartsRequest{}, newValidationError("quantity must be greater than zero")
	}

	order, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.PartsRequest{}, err
	}
	if order.ID == "" {
		return entities.PartsRequest{}, &NotFoundError{Entity: "work order", ID: workOrderID}
	}

	now := time.Now().UTC()
	p := entities.PartsRequest{
		ID:            uuid.NewString(),
		WorkOrderID:   workOrderID,
		ProcessID:     strings.TrimSpace(processID),
		Description:   description,
		Quantity:      quantity,
		Urgent:        urgent,
		Status:        entities.PartsRequestStatusSolicitado,
		EstimatedCost: decimal.Zero,
		RealCost:      decimal.Zero,
		RequestedAt:   now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PartsRequestUseCase) MarkOrdered(ctx context.Context, id, orderedBy, supplierID string, estimatedCost decimal.Decimal, expectedAt *time.Time) (entities.PartsRequest, error) {
	orderedBy = strings.TrimSpace(orderedBy)
	if orderedBy == "" {
		return entities.PartsRequest{}, newValidationError("ordered_by is required")
	}
	if estimatedCost.IsNegative() {
		return entities.PartsRequest{}, newValidationError("estimated_cost must not be negative")
	}

	p, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.PartsRequest{}, err
	}
	if p.Status != entities.PartsRequestStatusSolicitado {
		return entities.PartsRequest{}, &InvalidStateError{Entity: "parts request", ID: p.ID, Current: string(p.Status), Op: "order"}
	}
	return u.repo.MarkOrdered(ctx, p.ID, orderedBy, strings.TrimSpace(supplierID), estimatedCost, expectedAt)
}

func (u *PartsRequestUseCase) MarkReceived(ctx context.Context, id string, realCost decimal.Decimal) (entities.PartsRequest, error) {
	if realCost.IsNegative() {
		return entities.PartsRequest{}, newValidationError("real_cost must not be negative")
	}

	p, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.PartsRequest{}, err
	}
	if p.Status != entities.PartsRequestStatusPedido {
		return entities.PartsRequest{}, &InvalidStateError{Entity: "parts request", ID: p.ID, Current: string(p.Status), Op: "receive"}
	}
	return u.repo.MarkReceived(ctx, p.ID, realCost)
}

func (u *PartsRequestUseCase) GetByID(ctx context.Context, id string) (entities.PartsRequest, error) {
	return u.getExisting(ctx, id)
}

func (u *PartsRequestUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.PartsRequest, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, newValidationError("work_order_id is required")
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

func (u *PartsRequestUseCase) getExisting(ctx context.Context, id string) (entities.PartsRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PartsRequest{}, newValidationError("parts request id is required")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PartsRequest{}, err
	}
	if p.ID == "" {
		return entities.PartsRequest{}, &NotFoundError{Entity: "parts request", ID: id}
	}
	return p, nil
}

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

// IProcessUseCase exposes the labor tracker: billable units of work inside
// a work order.
//
// Completing the last outstanding process does NOT touch the work order;
// the POR_PAGAR guard is evaluated lazily when a transition is requested.

type IProcessUseCase interface {
	CreateProcess(ctx context.Context, workOrderID, description string, estimatedHours float64, hourlyRate decimal.Decimal, templateID string) (entities.Process, error)
	StartProcess(ctx context.Context, id string) (entities.Process, error)
	CompleteProcess(ctx context.Context, id string, actualHours float64, hourlyRate decimal.Decimal) (entities.Process, error)
	GetByID(ctx context.Context, id string) (entities.Process, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Process, error)
}

type ProcessUseCase struct {
	repo          interfaces.IProcessRepository
	workOrderRepo interfaces.IWorkOrderRepository
}

var _ IProcessUseCase = (*ProcessUseCase)(nil)

func NewProcessUseCase(repo interfaces.IProcessRepository, workOrderRepo interfaces.IWorkOrderRepository) *ProcessUseCase {
	return &ProcessUseCase{repo: repo, workOrderRepo: workOrderRepo}
}

func (u *ProcessUseCase) CreateProcess(ctx context.Context, workOrderID, description string, estimatedHours float64, hourlyRate decimal.Decimal, templateID string) (entities.Process, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Process{}, newValidationError("work_order_id is required")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Process{}, newValidationError("description is required")
	}
	if estimatedHours <= 0 {
		return entities.Process{}, newValidationError("estimated_hours must be greater than zero")
	}
	if hourlyRate.IsNegative() {
		return entities.Process{}, newValidationError("hourly_rate must not be negative")
	}

	order, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Process{}, err
	}
	if order.ID == "" {
		return entities.Process{}, &NotFoundError{Entity: "work order", ID: workOrderID}
	}

	now := time.Now().UTC()
	p := entities.Process{
		ID:             uuid.NewString(),
		WorkOrderID:    workOrderID,
		Description:    description,
		TemplateID:     strings.TrimSpace(templateID),
		Status:         entities.ProcessStatusPendiente,
		EstimatedHours: estimatedHours,
		HourlyRate:     hourlyRate,
		LaborCost:      decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProcessUseCase) StartProcess(ctx context.Context, id string) (entities.Process, error) {
	p, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.Process{}, err
	}
	if p.Status != entities.ProcessStatusPendiente {
		return entities.Process{}, &InvalidStateError{Entity: "process", ID: p.ID, Current: string(p.Status), Op: "start"}
	}
	return u.repo.MarkInProgress(ctx, p.ID)
}

func (u *ProcessUseCase) CompleteProcess(ctx context.Context, id string, actualHours float64, hourlyRate decimal.Decimal) (entities.Process, error) {
	if actualHours <= 0 {
		return entities.Process{}, newValidationError("actual_hours must be greater than zero")
	}
	if hourlyRate.IsNegative() {
		return entities.Process{}, newValidationError("hourly_rate must not be negative")
	}

	p, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.Process{}, err
	}
	if p.Status == entities.ProcessStatusCompletado {
		return entities.Process{}, &InvalidStateError{Entity: "process", ID: p.ID, Current: string(p.Status), Op: "complete"}
	}

	laborCost := hourlyRate.Mul(decimal.NewFromFloat(actualHours))
	return u.repo.MarkCompleted(ctx, p.ID, actualHours, hourlyRate, laborCost)
}

func (u *ProcessUseCase) GetByID(ctx context.Context, id string) (entities.Process, error) {
	return u.getExisting(ctx, id)
}

func (u *ProcessUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Process, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, newValidationError("work_order_id is required")
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

func (u *ProcessUseCase) getExisting(ctx context.Context, id string) (entities.Process, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Process{}, newValidationError("process id is required")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Process{}, err
	}
	if p.ID == "" {
		return entities.Process{}, &NotFoundError{Entity: "process", ID: id}
	}
	return p, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// IWorkOrderUseCase is the work-order state machine. RequestTransition is
// the only writer of WorkOrder.Status: it checks the structural transition
// table, evaluates the cross-entity guard for the target status against
// the process and payment ledgers, and commits with a version-conditional
// write.
//
// Guard evaluation is read-only; a rejected transition leaves every entity
// untouched. Guards are evaluated lazily on request, never eagerly on
// child-entity writes.

type IWorkOrderUseCase interface {
	CreateWorkOrder(ctx context.Context, cmd CreateWorkOrderCommand) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkOrder, error)
	RequestTransition(ctx context.Context, workOrderID string, target entities.OrderStatus, notes string) (entities.WorkOrder, error)
	RecalculateTotals(ctx context.Context, workOrderID string) (entities.WorkOrder, error)
}

// CreateWorkOrderCommand opens a new job in COTIZANDO. A nil TaxRate takes
// the configured default.
type CreateWorkOrderCommand struct {
	CustomerID      string
	VehicleID       string
	TaxRate         *decimal.Decimal
	WarrantyEnabled bool
	WarrantyDays    int
}

type WorkOrderUseCase struct {
	repo           interfaces.IWorkOrderRepository
	processRepo    interfaces.IProcessRepository
	invoiceRepo    interfaces.IInvoiceRepository
	paymentRepo    interfaces.IPaymentRepository
	defaultTaxRate decimal.Decimal
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	processRepo interfaces.IProcessRepository,
	invoiceRepo interfaces.IInvoiceRepository,
	paymentRepo interfaces.IPaymentRepository,
	defaultTaxRate decimal.Decimal,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		repo:           repo,
		processRepo:    processRepo,
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		defaultTaxRate: defaultTaxRate,
	}
}

func (u *WorkOrderUseCase) CreateWorkOrder(ctx context.Context, cmd CreateWorkOrderCommand) (entities.WorkOrder, error) {
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return entities.WorkOrder{}, newValidationError("customer_id is required")
	}
	vehicleID := strings.TrimSpace(cmd.VehicleID)
	if vehicleID == "" {
		return entities.WorkOrder{}, newValidationError("vehicle_id is required")
	}

	taxRate := u.defaultTaxRate
	if cmd.TaxRate != nil {
		if cmd.TaxRate.IsNegative() {
			return entities.WorkOrder{}, newValidationError("tax_rate must not be negative")
		}
		taxRate = *cmd.TaxRate
	}
	if cmd.WarrantyEnabled && cmd.WarrantyDays <= 0 {
		return entities.WorkOrder{}, newValidationError("warranty_days must be greater than zero when warranty is enabled")
	}

	now := time.Now().UTC()
	o := entities.WorkOrder{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		Status:          entities.OrderStatusCotizando,
		Subtotal:        decimal.Zero,
		TaxRate:         taxRate,
		TaxAmount:       decimal.Zero,
		Total:           decimal.Zero,
		WarrantyEnabled: cmd.WarrantyEnabled,
		WarrantyDays:    cmd.WarrantyDays,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, o)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.getExisting(ctx, id)
}

func (u *WorkOrderUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, newValidationError("customer_id is required")
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *WorkOrderUseCase) RequestTransition(ctx context.Context, workOrderID string, target entities.OrderStatus, notes string) (entities.WorkOrder, error) {
	if !target.IsValid() {
		return entities.WorkOrder{}, newValidationError("unknown target status %q", target)
	}

	order, err := u.getExisting(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	// Structural legality is independent of guards: an edge missing from
	// the table is rejected even when every guard would pass.
	if !order.Status.CanTransitionTo(target) {
		return entities.WorkOrder{}, &IllegalTransitionError{From: order.Status, To: target}
	}

	if err := u.evaluateGuard(ctx, order, target); err != nil {
		log.Info().
			Str("work_order_id", order.ID).
			Str("from", string(order.Status)).
			Str("to", string(target)).
			Str("notes", notes).
			Err(err).
			Msg("work order transition rejected")
		return entities.WorkOrder{}, err
	}

	now := time.Now().UTC()
	change := entities.StateChange{Status: target}
	switch target {
	case entities.OrderStatusAceptada:
		change.QuoteApprovedAt = &now
	case entities.OrderStatusEntregada:
		if order.WarrantyEnabled {
			expiry := now.AddDate(0, 0, order.WarrantyDays)
			change.WarrantyExpiresAt = &expiry
		}
	}

	updated, err := u.repo.UpdateState(ctx, order.ID, change, order.Version)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		// The version condition lost against a concurrent transition.
		return entities.WorkOrder{}, ErrConcurrentUpdate
	}

	log.Info().
		Str("work_order_id", updated.ID).
		Str("from", string(order.Status)).
		Str("to", string(updated.Status)).
		Str("notes", notes).
		Msg("work order transition committed")
	return updated, nil
}

// evaluateGuard checks the cross-entity precondition for target. All reads,
// no writes; reasons are operator-facing and surfaced verbatim.
func (u *WorkOrderUseCase) evaluateGuard(ctx context.Context, order entities.WorkOrder, target entities.OrderStatus) error {
	switch target {
	case entities.OrderStatusPorPagar:
		processes, err := u.processRepo.ListByWorkOrderID(ctx, order.ID)
		if err != nil {
			return err
		}
		if len(processes) == 0 {
			return &GuardViolation{Target: target, Reason: "sin procesos registrados"}
		}
		incomplete := 0
		for _, p := range processes {
			if p.Status != entities.ProcessStatusCompletado {
				incomplete++
			}
		}
		if incomplete > 0 {
			return &GuardViolation{Target: target, Reason: fmt.Sprintf("%d proceso(s) sin completar", incomplete)}
		}
		return nil

	case entities.OrderStatusCompletada:
		stmt, err := computeBalance(ctx, u.invoiceRepo, u.paymentRepo, order.ID)
		if err != nil {
			return err
		}
		if !stmt.HasInvoice {
			return &GuardViolation{Target: target, Reason: "sin factura generada"}
		}
		if stmt.Balance.IsPositive() {
			return &GuardViolation{Target: target, Reason: fmt.Sprintf("saldo pendiente: %s", stmt.Balance.String())}
		}
		return nil
	}

	// ACEPTADA, EN_PROCESO, ENTREGADA, CANCELADA: structural check only.
	return nil
}

func (u *WorkOrderUseCase) RecalculateTotals(ctx context.Context, workOrderID string) (entities.WorkOrder, error) {
	order, err := u.getExisting(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	processes, err := u.processRepo.ListByWorkOrderID(ctx, order.ID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	subtotal := decimal.Zero
	for _, p := range processes {
		if p.Status == entities.ProcessStatusCompletado {
			subtotal = subtotal.Add(p.LaborCost)
		} else {
			subtotal = subtotal.Add(p.EstimatedLaborCost())
		}
	}
	taxAmount := subtotal.Mul(order.TaxRate)
	total := subtotal.Add(taxAmount)

	updated, err := u.repo.UpdateTotals(ctx, order.ID, subtotal, taxAmount, total, order.Version)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrConcurrentUpdate
	}
	return updated, nil
}

func (u *WorkOrderUseCase) getExisting(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, newValidationError("work order id is required")
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, &NotFoundError{Entity: "work order", ID: id}
	}
	return o, nil
}

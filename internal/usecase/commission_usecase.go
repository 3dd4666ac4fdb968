package usecase

import (
	"context"
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ICommissionUseCase is the employee commission ledger.
//
// Commissions are never created automatically from process completion;
// issuance is an explicit decision of the calling workflow (flat rate,
// percentage of sale, a deal closed, etc.).

type ICommissionUseCase interface {
	CreateCommission(ctx context.Context, cmd CreateCommissionCommand) (entities.Commission, error)
	SetStatus(ctx context.Context, id string, status entities.CommissionStatus) (entities.Commission, error)
	MarkPaid(ctx context.Context, id string) (entities.Commission, error)
	GetByID(ctx context.Context, id string) (entities.Commission, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Commission, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]entities.Commission, error)
}

// CreateCommissionCommand carries a new ledger entry. WorkOrderID,
// ProcessID and ReferenceID are optional linkage; Date defaults to now.
type CreateCommissionCommand struct {
	EmployeeID  string
	Amount      decimal.Decimal
	Concept     string
	Date        time.Time
	WorkOrderID string
	ProcessID   string
	ReferenceID string
	Notes       string
}

type CommissionUseCase struct {
	repo interfaces.ICommissionRepository
}

var _ ICommissionUseCase = (*CommissionUseCase)(nil)

func NewCommissionUseCase(repo interfaces.ICommissionRepository) *CommissionUseCase {
	return &CommissionUseCase{repo: repo}
}

func (u *CommissionUseCase) CreateCommission(ctx context.Context, cmd CreateCommissionCommand) (entities.Commission, error) {
	employeeID := strings.TrimSpace(cmd.EmployeeID)
	if employeeID == "" {
		return entities.Commission{}, newValidationError("employee_id is required")
	}
	if !cmd.Amount.IsPositive() {
		return entities.Commission{}, newValidationError("amount must be greater than zero")
	}
	concept := strings.TrimSpace(cmd.Concept)
	if concept == "" {
		return entities.Commission{}, newValidationError("concept is required")
	}

	now := time.Now().UTC()
	date := cmd.Date
	if date.IsZero() {
		date = now
	}

	c := entities.Commission{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Status:      entities.CommissionStatusPendiente,
		Paid:        false,
		Amount:      cmd.Amount,
		Concept:     concept,
		WorkOrderID: strings.TrimSpace(cmd.WorkOrderID),
		ProcessID:   strings.TrimSpace(cmd.ProcessID),
		ReferenceID: strings.TrimSpace(cmd.ReferenceID),
		Notes:       strings.TrimSpace(cmd.Notes),
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Commission{}, err
	}
	log.Info().
		Str("commission_id", created.ID).
		Str("employee_id", employeeID).
		Str("amount", created.Amount.String()).
		Msg("commission created")
	return created, nil
}

func (u *CommissionUseCase) SetStatus(ctx context.Context, id string, status entities.CommissionStatus) (entities.Commission, error) {
	if !status.IsValid() {
		return entities.Commission{}, newValidationError("unknown commission status %q", status)
	}

	c, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.Commission{}, err
	}
	if c.Status == entities.CommissionStatusAnulado {
		return entities.Commission{}, &InvalidStateError{Entity: "commission", ID: c.ID, Current: string(c.Status), Op: "set status"}
	}
	if c.Status == status {
		return c, nil
	}

	// Paid flag and status move together, always.
	return u.repo.UpdateStatus(ctx, c.ID, status, status == entities.CommissionStatusPagado)
}

func (u *CommissionUseCase) MarkPaid(ctx context.Context, id string) (entities.Commission, error) {
	return u.SetStatus(ctx, id, entities.CommissionStatusPagado)
}

func (u *CommissionUseCase) GetByID(ctx context.Context, id string) (entities.Commission, error) {
	return u.getExisting(ctx, id)
}

func (u *CommissionUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Commission, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, newValidationError("work_order_id is required")
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

func (u *CommissionUseCase) ListByEmployeeID(ctx context.Context, employeeID string) ([]entities.Commission, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, newValidationError("employee_id is required")
	}
	return u.repo.ListByEmployeeID(ctx, employeeID)
}

func (u *CommissionUseCase) getExisting(ctx context.Context, id string) (entities.Commission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Commission{}, newValidationError("commission id is required")
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Commission{}, err
	}
	if c.ID == "" {
		return entities.Commission{}, &NotFoundError{Entity: "commission", ID: id}
	}
	return c, nil
}

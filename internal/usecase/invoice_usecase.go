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

// IInvoiceUseCase issues immutable billing snapshots of a work order.
//
// GenerateInvoice deliberately does not validate figures against the work
// order totals: callers may issue adjusted or partial invoices. Re-issuing
// is allowed; the balance computation always uses the latest invoice.

type IInvoiceUseCase interface {
	GenerateInvoice(ctx context.Context, cmd GenerateInvoiceCommand) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	LatestByWorkOrderID(ctx context.Context, workOrderID string) (entities.Invoice, error)
}

// GenerateInvoiceCommand carries the billing figures for a new invoice.
type GenerateInvoiceCommand struct {
	WorkOrderID  string
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	PaymentTerms string
	Notes        string
}

type InvoiceUseCase struct {
	repo          interfaces.IInvoiceRepository
	workOrderRepo interfaces.IWorkOrderRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, workOrderRepo interfaces.IWorkOrderRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, workOrderRepo: workOrderRepo}
}

func (u *InvoiceUseCase) GenerateInvoice(ctx context.Context, cmd GenerateInvoiceCommand) (entities.Invoice, error) {
	workOrderID := strings.TrimSpace(cmd.WorkOrderID)
	if workOrderID == "" {
		return entities.Invoice{}, newValidationError("work_order_id is required")
	}
	if cmd.Subtotal.IsNegative() {
		return entities.Invoice{}, newValidationError("subtotal must not be negative")
	}
	if cmd.TaxAmount.IsNegative() {
		return entities.Invoice{}, newValidationError("tax_amount must not be negative")
	}

	order, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if order.ID == "" {
		return entities.Invoice{}, &NotFoundError{Entity: "work order", ID: workOrderID}
	}

	seq, err := u.repo.NextNumber(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:           uuid.NewString(),
		WorkOrderID:  workOrderID,
		Number:       fmt.Sprintf("F-%06d", seq),
		Subtotal:     cmd.Subtotal,
		TaxAmount:    cmd.TaxAmount,
		Total:        cmd.Subtotal.Add(cmd.TaxAmount),
		PaymentTerms: strings.TrimSpace(cmd.PaymentTerms),
		Notes:        strings.TrimSpace(cmd.Notes),
		IssuedAt:     now,
		CreatedAt:    now,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Info().
		Str("work_order_id", workOrderID).
		Str("invoice_id", created.ID).
		Str("number", created.Number).
		Str("total", created.Total.String()).
		Msg("invoice issued")
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, newValidationError("invoice id is required")
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, &NotFoundError{Entity: "invoice", ID: id}
	}
	return inv, nil
}

func (u *InvoiceUseCase) LatestByWorkOrderID(ctx context.Context, workOrderID string) (entities.Invoice, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Invoice{}, newValidationError("work_order_id is required")
	}
	inv, err := u.repo.LatestByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, &NotFoundError{Entity: "invoice for work order", ID: workOrderID}
	}
	return inv, nil
}

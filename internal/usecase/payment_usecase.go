package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase is the payment ledger: it records customer payments and
// answers the outstanding-balance question against the latest invoice.
//
// Balance <= 0 means fully paid; callers may observe a negative balance to
// signal overpayment.

type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error)
	OutstandingBalance(ctx context.Context, workOrderID string) (BalanceStatement, error)
	IsFullyPaid(ctx context.Context, workOrderID string) (bool, error)
}

// RecordPaymentCommand carries one customer payment. ProviderPayload, when
// present, is the raw card-payment request forwarded to the payment
// gateway before the ledger entry is written.
type RecordPaymentCommand struct {
	WorkOrderID     string
	Amount          decimal.Decimal
	Method          string
	PaidAt          time.Time
	InvoiceID       string
	Reference       string
	Notes           string
	ProviderPayload json.RawMessage
}

// BalanceStatement is the outstanding-balance answer for a work order.
type BalanceStatement struct {
	WorkOrderID   string          `json:"work_order_id"`
	HasInvoice    bool            `json:"has_invoice"`
	InvoiceID     string          `json:"invoice_id,omitempty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	InvoiceTotal  decimal.Decimal `json:"invoice_total"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
	FullyPaid     bool            `json:"fully_paid"`
}

type PaymentUseCase struct {
	repo          interfaces.IPaymentRepository
	invoiceRepo   interfaces.IInvoiceRepository
	workOrderRepo interfaces.IWorkOrderRepository
	gateway       interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, invoiceRepo interfaces.IInvoiceRepository, workOrderRepo interfaces.IWorkOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, workOrderRepo: workOrderRepo, gateway: gateway}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error) {
	workOrderID := strings.TrimSpace(cmd.WorkOrderID)
	if workOrderID == "" {
		return entities.Payment{}, newValidationError("work_order_id is required")
	}
	if !cmd.Amount.IsPositive() {
		return entities.Payment{}, newValidationError("amount must be greater than zero")
	}
	method := strings.TrimSpace(cmd.Method)
	if method == "" {
		return entities.Payment{}, newValidationError("method is required")
	}

	order, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, &NotFoundError{Entity: "work order", ID: workOrderID}
	}

	invoiceID := strings.TrimSpace(cmd.InvoiceID)
	if invoiceID != "" {
		inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
		if err != nil {
			return entities.Payment{}, err
		}
		if inv.ID == "" {
			return entities.Payment{}, &NotFoundError{Entity: "invoice", ID: invoiceID}
		}
	}

	p := entities.Payment{
		ID:          uuid.NewString(),
		WorkOrderID: workOrderID,
		InvoiceID:   invoiceID,
		Amount:      cmd.Amount,
		Method:      method,
		Reference:   strings.TrimSpace(cmd.Reference),
		Notes:       strings.TrimSpace(cmd.Notes),
		PaidAt:      cmd.PaidAt,
		CreatedAt:   time.Now().UTC(),
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = p.CreatedAt
	}

	if len(cmd.ProviderPayload) > 0 {
		providerID, raw, err := u.chargeProvider(ctx, workOrderID, cmd.Amount, cmd.ProviderPayload)
		if err != nil {
			return entities.Payment{}, err
		}
		p.ProviderPaymentID = providerID
		p.ProviderPayloadRaw = raw
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).
			Str("work_order_id", workOrderID).
			Str("payment_id", p.ID).
			Msg("payment ledger write failed")
		return entities.Payment{}, err
	}
	log.Info().
		Str("work_order_id", workOrderID).
		Str("payment_id", created.ID).
		Str("method", created.Method).
		Str("amount", created.Amount.String()).
		Msg("payment recorded")
	return created, nil
}

// chargeProvider forwards a card payment to the external gateway and
// returns the provider id and raw response. The payload is enriched with
// the linkage and amount the ledger knows to be correct.
func (u *PaymentUseCase) chargeProvider(ctx context.Context, workOrderID string, amount decimal.Decimal, payload json.RawMessage) (string, json.RawMessage, error) {
	if !json.Valid(payload) {
		return "", nil, newValidationError("provider payload is not valid json")
	}
	if u.gateway == nil {
		return "", nil, ErrPaymentGatewayNotConfigured
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = workOrderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Orden de trabajo %s", workOrderID)
		}
		// The ledger, not the caller, is the source of truth for the amount.
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Info().Str("work_order_id", workOrderID).Int("payload_len", len(payload)).Msg("charging payment provider")
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error().Err(err).Str("work_order_id", workOrderID).Msg("payment provider call failed")
		switch {
		case isGatewayUnauthorized(err):
			return "", nil, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return "", nil, ErrPaymentGatewayBadRequest
		}
		return "", nil, err
	}
	log.Info().
		Str("work_order_id", workOrderID).
		Str("provider_payment_id", providerID).
		Str("provider_status", providerStatus).
		Msg("payment provider approved")
	return providerID, providerResp, nil
}

func (u *PaymentUseCase) DeletePayment(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return newValidationError("payment id is required")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return &NotFoundError{Entity: "payment", ID: id}
	}
	return u.repo.Delete(ctx, id)
}

func (u *PaymentUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, newValidationError("work_order_id is required")
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

func (u *PaymentUseCase) OutstandingBalance(ctx context.Context, workOrderID string) (BalanceStatement, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return BalanceStatement{}, newValidationError("work_order_id is required")
	}
	return computeBalance(ctx, u.invoiceRepo, u.repo, workOrderID)
}

func (u *PaymentUseCase) IsFullyPaid(ctx context.Context, workOrderID string) (bool, error) {
	stmt, err := u.OutstandingBalance(ctx, workOrderID)
	if err != nil {
		return false, err
	}
	return stmt.FullyPaid, nil
}

// computeBalance is shared with the work-order state machine, which needs
// the same answer for the COMPLETADA guard. Balance is measured against
// the latest invoice; without an invoice the order is never fully paid.
func computeBalance(ctx context.Context, invoiceRepo interfaces.IInvoiceRepository, paymentRepo interfaces.IPaymentRepository, workOrderID string) (BalanceStatement, error) {
	stmt := BalanceStatement{
		WorkOrderID:  workOrderID,
		InvoiceTotal: decimal.Zero,
		Paid:         decimal.Zero,
		Balance:      decimal.Zero,
	}

	payments, err := paymentRepo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return BalanceStatement{}, err
	}
	for _, p := range payments {
		stmt.Paid = stmt.Paid.Add(p.Amount)
	}

	inv, err := invoiceRepo.LatestByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return BalanceStatement{}, err
	}
	if inv.ID == "" {
		return stmt, nil
	}

	stmt.HasInvoice = true
	stmt.InvoiceID = inv.ID
	stmt.InvoiceNumber = inv.Number
	stmt.InvoiceTotal = inv.Total
	stmt.Balance = inv.Total.Sub(stmt.Paid)
	stmt.FullyPaid = !stmt.Balance.IsPositive()
	return stmt, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is free-form but these are the values the workshop uses.

const (
	PaymentMethodEfectivo      = "efectivo"
	PaymentMethodTransferencia = "transferencia"
	PaymentMethodTarjeta       = "tarjeta"
)

// Payment is a single customer payment applied to a work order. Amount is
// strictly positive and a payment is never mutated after creation;
// corrections are new records or deletions.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// Card payments processed through the provider keep the raw provider
// response (ProviderPayloadRaw) for traceability/audit.

type Payment struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id"`
	InvoiceID   string `json:"invoice_id,omitempty"`

	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}

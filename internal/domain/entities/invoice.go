package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is an immutable billing snapshot of a work order. Re-issuing is
// allowed; balance computation always uses the most recently issued invoice
// for the order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//   - Number comes from an atomic counter item in the same table.

type Invoice struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id"`
	Number      string `json:"number"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`

	PaymentTerms string    `json:"payment_terms,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	IssuedAt     time.Time `json:"issued_at"`
	CreatedAt    time.Time `json:"created_at"`
}

package request

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest registers a customer payment. ProviderPayload is the
// raw card-payment request forwarded untouched to the payment provider; it
// is only meaningful for method "tarjeta".
type RecordPaymentRequest struct {
	WorkOrderID     string          `json:"work_order_id" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Method          string          `json:"method" binding:"required"`
	PaidAt          *time.Time      `json:"paid_at"`
	InvoiceID       string          `json:"invoice_id"`
	Reference       string          `json:"reference"`
	Notes           string          `json:"notes"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}

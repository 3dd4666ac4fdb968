package response

import (
	"encoding/json"
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id"`
	InvoiceID   string `json:"invoice_id,omitempty"`

	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`

	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`

	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		WorkOrderID:       p.WorkOrderID,
		InvoiceID:         p.InvoiceID,
		Amount:            p.Amount,
		Method:            p.Method,
		Reference:         p.Reference,
		Notes:             p.Notes,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderPayload:   p.ProviderPayloadRaw,
		PaidAt:            p.PaidAt,
		CreatedAt:         p.CreatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

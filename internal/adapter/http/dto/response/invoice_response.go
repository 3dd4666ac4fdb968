package response

import (
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InvoiceResponse struct {
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

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:           inv.ID,
		WorkOrderID:  inv.WorkOrderID,
		Number:       inv.Number,
		Subtotal:     inv.Subtotal,
		TaxAmount:    inv.TaxAmount,
		Total:        inv.Total,
		PaymentTerms: inv.PaymentTerms,
		Notes:        inv.Notes,
		IssuedAt:     inv.IssuedAt,
		CreatedAt:    inv.CreatedAt,
	}
}

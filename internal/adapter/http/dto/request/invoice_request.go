package request

import "github.com/shopspring/decimal"

type GenerateInvoiceRequest struct {
	WorkOrderID  string          `json:"work_order_id" binding:"required"`
	Subtotal     decimal.Decimal `json:"subtotal" binding:"required"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	PaymentTerms string          `json:"payment_terms"`
	Notes        string          `json:"notes"`
}

package response

import (
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type WorkOrderResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	Status     string `json:"status"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`

	QuoteApproved   bool       `json:"quote_approved"`
	QuoteApprovedAt *time.Time `json:"quote_approved_at,omitempty"`

	WarrantyEnabled   bool       `json:"warranty_enabled"`
	WarrantyDays      int        `json:"warranty_days,omitempty"`
	WarrantyExpiresAt *time.Time `json:"warranty_expires_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		VehicleID:         o.VehicleID,
		Status:            string(o.Status),
		Subtotal:          o.Subtotal,
		TaxRate:           o.TaxRate,
		TaxAmount:         o.TaxAmount,
		Total:             o.Total,
		QuoteApproved:     o.QuoteApproved,
		QuoteApprovedAt:   o.QuoteApprovedAt,
		WarrantyEnabled:   o.WarrantyEnabled,
		WarrantyDays:      o.WarrantyDays,
		WarrantyExpiresAt: o.WarrantyExpiresAt,
		Version:           o.Version,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}

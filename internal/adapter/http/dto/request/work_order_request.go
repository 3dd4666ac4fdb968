package request

import (
	"strings"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest opens a new work order. TaxRate is optional; the
// server default applies when omitted.
type CreateWorkOrderRequest struct {
	CustomerID      string           `json:"customer_id" binding:"required"`
	VehicleID       string           `json:"vehicle_id" binding:"required"`
	TaxRate         *decimal.Decimal `json:"tax_rate"`
	WarrantyEnabled bool             `json:"warranty_enabled"`
	WarrantyDays    int              `json:"warranty_days"`
}

// TransitionRequest asks for a status change on a work order.
type TransitionRequest struct {
	TargetStatus string `json:"target_status" binding:"required"`
	Notes        string `json:"notes"`
}

func (r TransitionRequest) ResolveTarget() entities.OrderStatus {
	return entities.OrderStatus(strings.ToUpper(strings.TrimSpace(r.TargetStatus)))
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessStatus represents the lifecycle of a billable unit of labor.

type ProcessStatus string

const (
	ProcessStatusPendiente  ProcessStatus = "PENDIENTE"
	ProcessStatusEnProgreso ProcessStatus = "EN_PROGRESO"
	ProcessStatusCompletado ProcessStatus = "COMPLETADO"
)

// Process is a billable unit of labor inside a work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// Once COMPLETADO, ActualHours and HourlyRate are frozen and
// LaborCost = ActualHours * HourlyRate.

type Process struct {
	ID          string        `json:"id"`
	WorkOrderID string        `json:"work_order_id"`
	Description string        `json:"description"`
	TemplateID  string        `json:"template_id,omitempty"`
	Status      ProcessStatus `json:"status"`

	EstimatedHours float64         `json:"estimated_hours"`
	ActualHours    float64         `json:"actual_hours"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	LaborCost      decimal.Decimal `json:"labor_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EstimatedLaborCost is the pre-completion cost used by totals
// recalculation: estimated hours at the quoted hourly rate.
func (p Process) EstimatedLaborCost() decimal.Decimal {
	return p.HourlyRate.Mul(decimal.NewFromFloat(p.EstimatedHours))
}

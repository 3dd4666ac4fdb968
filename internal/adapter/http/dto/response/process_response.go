package response

import (
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProcessResponse struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id"`
	Description string `json:"description"`
	TemplateID  string `json:"template_id,omitempty"`
	Status      string `json:"status"`

	EstimatedHours float64         `json:"estimated_hours"`
	ActualHours    float64         `json:"actual_hours"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	LaborCost      decimal.Decimal `json:"labor_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProcess(p entities.Process) ProcessResponse {
	return ProcessResponse{
		ID:             p.ID,
		WorkOrderID:    p.WorkOrderID,
		Description:    p.Description,
		TemplateID:     p.TemplateID,
		Status:         string(p.Status),
		EstimatedHours: p.EstimatedHours,
		ActualHours:    p.ActualHours,
		HourlyRate:     p.HourlyRate,
		LaborCost:      p.LaborCost,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProcesses(processes []entities.Process) []ProcessResponse {
	out := make([]ProcessResponse, 0, len(processes))
	for _, p := range processes {
		out = append(out, FromProcess(p))
	}
	return out
}

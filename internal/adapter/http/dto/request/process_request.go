package request

import "github.com/shopspring/decimal"

type CreateProcessRequest struct {
	WorkOrderID    string          `json:"work_order_id" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	EstimatedHours float64         `json:"estimated_hours" binding:"required"`
	HourlyRate     decimal.Decimal `json:"hourly_rate" binding:"required"`
	TemplateID     string          `json:"template_id"`
}

type CompleteProcessRequest struct {
	ActualHours float64         `json:"actual_hours" binding:"required"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" binding:"required"`
}

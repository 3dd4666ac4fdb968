package request

import (
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CreateCommissionRequest struct {
	EmployeeID  string          `json:"employee_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Concept     string          `json:"concept" binding:"required"`
	Date        *time.Time      `json:"date"`
	WorkOrderID string          `json:"work_order_id"`
	ProcessID   string          `json:"process_id"`
	ReferenceID string          `json:"reference_id"`
	Notes       string          `json:"notes"`
}

type CommissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r CommissionStatusRequest) ResolveStatus() entities.CommissionStatus {
	return entities.CommissionStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

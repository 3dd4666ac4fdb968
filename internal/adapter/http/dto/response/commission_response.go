package response

import (
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CommissionResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	Paid       bool   `json:"paid"`

	Amount  decimal.Decimal `json:"amount"`
	Concept string          `json:"concept"`

	WorkOrderID string `json:"work_order_id,omitempty"`
	ProcessID   string `json:"process_id,omitempty"`
	ReferenceID string `json:"reference_id,omitempty"`
	Notes       string `json:"notes,omitempty"`

	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCommission(c entities.Commission) CommissionResponse {
	return CommissionResponse{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		Status:      string(c.Status),
		Paid:        c.Paid,
		Amount:      c.Amount,
		Concept:     c.Concept,
		WorkOrderID: c.WorkOrderID,
		ProcessID:   c.ProcessID,
		ReferenceID: c.ReferenceID,
		Notes:       c.Notes,
		Date:        c.Date,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCommissions(commissions []entities.Commission) []CommissionResponse {
	out := make([]CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		out = append(out, FromCommission(c))
	}
	return out
}

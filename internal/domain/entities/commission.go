package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus: pendiente <-> pagado, anulado from either (terminal).
// The Paid flag is kept in sync: Paid == (Status == pagado).

type CommissionStatus string

const (
	CommissionStatusPendiente CommissionStatus = "pendiente"
	CommissionStatusPagado    CommissionStatus = "pagado"
	CommissionStatusAnulado   CommissionStatus = "anulado"
)

// IsValid reports whether s is a defined commission status.
func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionStatusPendiente, CommissionStatusPagado, CommissionStatusAnulado:
		return true
	}
	return false
}

// Commission credits an employee for value generated (completing a
// process, closing a sale). Issuance is always explicit: nothing in the
// engine creates commissions as a side effect of process completion.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//   - GSI2 (employee_id-index): employee_id

type Commission struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Status     CommissionStatus `json:"status"`
	Paid       bool             `json:"paid"`

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

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthorizationStatus is the client decision on extra, unscoped work.
// APROBADA and RECHAZADA are final: the record is the audit trail of the
// client decision and is never reopened.

type AuthorizationStatus string

const (
	AuthorizationStatusPendiente AuthorizationStatus = "PENDIENTE"
	AuthorizationStatusAprobada  AuthorizationStatus = "APROBADA"
	AuthorizationStatusRechazada AuthorizationStatus = "RECHAZADA"
)

// Authorization asks the customer to approve additional work on an order.
// TotalCost = EstimatedPartsCost + EstimatedLaborCost, frozen at creation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id

type Authorization struct {
	ID                 string              `json:"id"`
	WorkOrderID        string              `json:"work_order_id"`
	ProcessID          string              `json:"process_id,omitempty"`
	ProblemDescription string              `json:"problem_description"`
	Urgent             bool                `json:"urgent"`
	Status             AuthorizationStatus `json:"status"`

	EstimatedPartsCost decimal.Decimal `json:"estimated_parts_cost"`
	EstimatedLaborCost decimal.Decimal `json:"estimated_labor_cost"`
	TotalCost          decimal.Decimal `json:"total_cost"`

	RequestedBy     string     `json:"requested_by"`
	DecidedBy       string     `json:"decided_by,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	RequestedAt     time.Time  `json:"requested_at"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
}

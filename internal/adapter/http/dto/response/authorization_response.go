package response

import (
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AuthorizationResponse struct {
	ID                 string `json:"id"`
	WorkOrderID        string `json:"work_order_id"`
	ProcessID          string `json:"process_id,omitempty"`
	ProblemDescription string `json:"problem_description"`
	Urgent             bool   `json:"urgent"`
	Status             string `json:"status"`

	EstimatedPartsCost decimal.Decimal `json:"estimated_parts_cost"`
	EstimatedLaborCost decimal.Decimal `json:"estimated_labor_cost"`
	TotalCost          decimal.Decimal `json:"total_cost"`

	RequestedBy     string     `json:"requested_by"`
	DecidedBy       string     `json:"decided_by,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	RequestedAt     time.Time  `json:"requested_at"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
}

func FromAuthorization(a entities.Authorization) AuthorizationResponse {
	return AuthorizationResponse{
		ID:                 a.ID,
		WorkOrderID:        a.WorkOrderID,
		ProcessID:          a.ProcessID,
		ProblemDescription: a.ProblemDescription,
		Urgent:             a.Urgent,
		Status:             string(a.Status),
		EstimatedPartsCost: a.EstimatedPartsCost,
		EstimatedLaborCost: a.EstimatedLaborCost,
		TotalCost:          a.TotalCost,
		RequestedBy:        a.RequestedBy,
		DecidedBy:          a.DecidedBy,
		RejectionReason:    a.RejectionReason,
		RequestedAt:        a.RequestedAt,
		DecidedAt:          a.DecidedAt,
	}
}

func FromAuthorizations(auths []entities.Authorization) []AuthorizationResponse {
	out := make([]AuthorizationResponse, 0, len(auths))
	for _, a := range auths {
		out = append(out, FromAuthorization(a))
	}
	return out
}

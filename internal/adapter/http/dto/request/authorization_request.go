package request

import "github.com/shopspring/decimal"

type RequestAuthorizationRequest struct {
	WorkOrderID        string          `json:"work_order_id" binding:"required"`
	ProcessID          string          `json:"process_id"`
	ProblemDescription string          `json:"problem_description" binding:"required"`
	EstimatedPartsCost decimal.Decimal `json:"estimated_parts_cost"`
	EstimatedLaborCost decimal.Decimal `json:"estimated_labor_cost"`
	Urgent             bool            `json:"urgent"`
	RequestedBy        string          `json:"requested_by" binding:"required"`
}

// AuthorizationDecisionRequest approves or rejects a pending authorization.
// Reason is required only when rejecting.
type AuthorizationDecisionRequest struct {
	DecidedBy string `json:"decided_by" binding:"required"`
	Reason    string `json:"reason"`
}

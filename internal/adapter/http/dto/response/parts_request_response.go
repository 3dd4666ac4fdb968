package response

import (
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PartsRequestResponse struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id"`
	ProcessID   string `json:"process_id,omitempty"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Urgent      bool   `json:"urgent"`
	Status      string `json:"status"`

	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	RealCost      decimal.Decimal `json:"real_cost"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	OrderedBy     string          `json:"ordered_by,omitempty"`

	RequestedAt time.Time  `json:"requested_at"`
	OrderedAt   *time.Time `json:"ordered_at,omitempty"`
	ExpectedAt  *time.Time `json:"expected_at,omitempty"`
	ReceivedAt  *time.Time `json:"received_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromPartsRequest(p entities.PartsRequest) PartsRequestResponse {
	return PartsRequestResponse{
		ID:            p.ID,
		WorkOrderID:   p.WorkOrderID,
		ProcessID:     p.ProcessID,
		Description:   p.Description,
		Quantity:      p.Quantity,
		Urgent:        p.Urgent,
		Status:        string(p.Status),
		EstimatedCost: p.EstimatedCost,
		RealCost:      p.RealCost,
		SupplierID:    p.SupplierID,
		OrderedBy:     p.OrderedBy,
		RequestedAt:   p.RequestedAt,
		OrderedAt:     p.OrderedAt,
		ExpectedAt:    p.ExpectedAt,
		ReceivedAt:    p.ReceivedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromPartsRequests(requests []entities.PartsRequest) []PartsRequestResponse {
	out := make([]PartsRequestResponse, 0, len(requests))
	for _, p := range requests {
		out = append(out, FromPartsRequest(p))
	}
	return out
}

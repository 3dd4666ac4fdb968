package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartsRequestStatus tracks procurement of a physical part. Status only
// moves forward: SOLICITADO -> PEDIDO -> RECIBIDO.

type PartsRequestStatus string

const (
	PartsRequestStatusSolicitado PartsRequestStatus = "SOLICITADO"
	PartsRequestStatusPedido     PartsRequestStatus = "PEDIDO"
	PartsRequestStatusRecibido   PartsRequestStatus = "RECIBIDO"
)

// PartsRequest is a request to procure a part for a work order, optionally
// tied to a concrete process. EstimatedCost is set when the part is
// ordered, RealCost when it is received.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id

type PartsRequest struct {
	ID          string             `json:"id"`
	WorkOrderID string             `json:"work_order_id"`
	ProcessID   string             `json:"process_id,omitempty"`
	Description string             `json:"description"`
	Quantity    int                `json:"quantity"`
	Urgent      bool               `json:"urgent"`
	Status      PartsRequestStatus `json:"status"`

	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	RealCost      decimal.Decimal `json:"real_cost"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	OrderedBy     string          `json:"ordered_by,omitempty"`

	RequestedAt  time.Time  `json:"requested_at"`
	OrderedAt    *time.Time `json:"ordered_at,omitempty"`
	ExpectedAt   *time.Time `json:"expected_at,omitempty"`
	ReceivedAt   *time.Time `json:"received_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

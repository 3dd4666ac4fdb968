package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePartsRequest struct {
	WorkOrderID string `json:"work_order_id" binding:"required"`
	ProcessID   string `json:"process_id"`
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	Urgent      bool   `json:"urgent"`
}

type MarkPartsOrderedRequest struct {
	OrderedBy     string          `json:"ordered_by" binding:"required"`
	SupplierID    string          `json:"supplier_id"`
	EstimatedCost decimal.Decimal `json:"estimated_cost" binding:"required"`
	ExpectedAt    *time.Time      `json:"expected_at"`
}

type MarkPartsReceivedRequest struct {
	RealCost decimal.Decimal `json:"real_cost" binding:"required"`
}

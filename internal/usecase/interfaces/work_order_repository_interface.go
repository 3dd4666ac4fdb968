package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// State and totals writes are conditional on the expected version so two
// concurrent transition requests cannot both commit; a lost condition check
// yields an empty WorkOrder, same as a missing item.

type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkOrder, error)
	UpdateState(ctx context.Context, id string, change entities.StateChange, expectedVersion int64) (entities.WorkOrder, error)
	UpdateTotals(ctx context.Context, id string, subtotal, taxAmount, total decimal.Decimal, expectedVersion int64) (entities.WorkOrder, error)
}

package interfaces

import (
	"context"
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IPartsRequestRepository abstracts DynamoDB persistence for PartsRequest.

type IPartsRequestRepository interface {
	Create(ctx context.Context, p entities.PartsRequest) (entities.PartsRequest, error)
	GetByID(ctx context.Context, id string) (entities.PartsRequest, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.PartsRequest, error)
	MarkOrdered(ctx context.Context, id, orderedBy, supplierID string, estimatedCost decimal.Decimal, expectedAt *time.Time) (entities.PartsRequest, error)
	MarkReceived(ctx context.Context, id string, realCost decimal.Decimal) (entities.PartsRequest, error)
}

package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IProcessRepository abstracts DynamoDB persistence for Process.

type IProcessRepository interface {
	Create(ctx context.Context, p entities.Process) (entities.Process, error)
	GetByID(ctx context.Context, id string) (entities.Process, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Process, error)
	MarkInProgress(ctx context.Context, id string) (entities.Process, error)
	MarkCompleted(ctx context.Context, id string, actualHours float64, hourlyRate, laborCost decimal.Decimal) (entities.Process, error)
}

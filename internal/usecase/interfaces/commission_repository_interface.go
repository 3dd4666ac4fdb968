package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"
)

// ICommissionRepository abstracts DynamoDB persistence for Commission.

type ICommissionRepository interface {
	Create(ctx context.Context, c entities.Commission) (entities.Commission, error)
	GetByID(ctx context.Context, id string) (entities.Commission, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Commission, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]entities.Commission, error)
	UpdateStatus(ctx context.Context, id string, status entities.CommissionStatus, paid bool) (entities.Commission, error)
}

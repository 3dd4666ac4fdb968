package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Payments are never updated in place; corrections are new records or a
// delete of the wrong one.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error)
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// NextNumber draws from an atomic counter so invoice numbers are unique and
// sequential across concurrent issuers.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	LatestByWorkOrderID(ctx context.Context, workOrderID string) (entities.Invoice, error)
	NextNumber(ctx context.Context) (int64, error)
}

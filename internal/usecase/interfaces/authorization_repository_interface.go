package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"
)

// IAuthorizationRepository abstracts DynamoDB persistence for Authorization.

type IAuthorizationRepository interface {
	Create(ctx context.Context, a entities.Authorization) (entities.Authorization, error)
	GetByID(ctx context.Context, id string) (entities.Authorization, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Authorization, error)
	UpdateDecision(ctx context.Context, id string, status entities.AuthorizationStatus, decidedBy, reason string) (entities.Authorization, error)
}

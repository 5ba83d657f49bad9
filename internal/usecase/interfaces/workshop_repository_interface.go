package interfaces

import (
	"context"
	"tallerhub/internal/domain/entities"
)

// IWorkshopRepository abstracts persistence for Workshop ("workshops" collection).
type IWorkshopRepository interface {
	Create(ctx context.Context, w entities.Workshop) (entities.Workshop, error)
	GetByID(ctx context.Context, id string) (entities.Workshop, error)
	List(ctx context.Context) ([]entities.Workshop, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Workshop, error)
	Update(ctx context.Context, w entities.Workshop) (entities.Workshop, error)
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"
	"tallerhub/internal/domain/entities"
)

// IWorkOrderRepository abstracts persistence for WorkOrder ("ordenesTrabajo").
//
// Create returns ErrAlreadyExists when an order already exists for the id,
// which is what keeps work orders at most one per assessment.
type IWorkOrderRepository interface {
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.WorkOrder, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.WorkOrder, error)
	Update(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
}

package interfaces

import (
	"context"
	"tallerhub/internal/domain/entities"
)

// IVehicleRepository abstracts persistence for Vehicle ("vehicles" collection).
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

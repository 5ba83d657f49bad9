package interfaces

import (
	"context"
	"tallerhub/internal/domain/entities"
)

// IAssessmentRepository abstracts persistence for Assessment ("valoraciones").
//
// Update is optimistic: it succeeds only if the stored version equals
// a.Version, stores a.Version+1 and returns the stored document. Otherwise it
// returns ErrConcurrentUpdate.
type IAssessmentRepository interface {
	Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
	ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.Assessment, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Assessment, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Assessment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Assessment, error)
	Update(ctx context.Context, a entities.Assessment) (entities.Assessment, error)
	Delete(ctx context.Context, id string) error
}

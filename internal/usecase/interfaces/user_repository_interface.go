package interfaces

import (
	"context"
	"tallerhub/internal/domain/entities"
)

// IUserRepository abstracts persistence for User ("users" collection).
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

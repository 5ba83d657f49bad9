package interfaces

import (
	"context"
	"tallerhub/internal/domain/entities"
)

// IEventPublisher pushes workflow events to dashboard listeners.
type IEventPublisher interface {
	Publish(ctx context.Context, e entities.Event) error
}

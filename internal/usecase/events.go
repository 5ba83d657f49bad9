package usecase

import (
	"context"
	"log"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
	"time"
)

// publish sends a workflow event. Failures are logged and never fail the
// operation that produced the event.
func publish(ctx context.Context, p interfaces.IEventPublisher, t entities.EventType, entityID, workshopID string, data map[string]string) {
	if p == nil {
		return
	}
	e := entities.Event{
		Type:       t,
		EntityID:   entityID,
		WorkshopID: workshopID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.Publish(ctx, e); err != nil {
		log.Printf("[events][usecase] publish failed type=%s entity_id=%s err=%v", t, entityID, err)
	}
}

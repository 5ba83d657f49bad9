package interfaces

import (
	"context"
	"tallerhub/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence for Invoice ("facturas").
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.Invoice, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
}

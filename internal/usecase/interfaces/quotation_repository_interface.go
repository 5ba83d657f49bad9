package interfaces

import (
	"context"
	"tallerhub/internal/domain/entities"
)

// IQuotationRepository abstracts persistence for Quotation ("cotizaciones").
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}

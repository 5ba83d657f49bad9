package response

import (
	"time"

	"tallerhub/internal/domain/entities"
)

type QuotationLineResponse struct {
	TaskID      string  `json:"task_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type QuotationResponse struct {
	ID           string                  `json:"id"`
	AssessmentID string                  `json:"assessment_id"`
	WorkshopID   string                  `json:"workshop_id"`
	ClientID     string                  `json:"client_id,omitempty"`
	Lines        []QuotationLineResponse `json:"lines"`
	Subtotal     float64                 `json:"subtotal"`
	TaxRate      float64                 `json:"tax_rate"`
	Tax          float64                 `json:"tax"`
	Total        float64                 `json:"total"`
	Notes        string                  `json:"notes,omitempty"`
	Status       string                  `json:"status"`
	ValidUntil   time.Time               `json:"valid_until"`
	Expired      bool                    `json:"expired"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	lines := make([]QuotationLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, QuotationLineResponse{TaskID: l.TaskID, Name: l.Name, Description: l.Description, Price: l.Price})
	}
	return QuotationResponse{
		ID:           q.ID,
		AssessmentID: q.AssessmentID,
		WorkshopID:   q.WorkshopID,
		ClientID:     q.ClientID,
		Lines:        lines,
		Subtotal:     q.Subtotal,
		TaxRate:      q.TaxRate,
		Tax:          q.Tax,
		Total:        q.Total,
		Notes:        q.Notes,
		Status:       string(q.Status),
		ValidUntil:   q.ValidUntil,
		Expired:      q.Expired(time.Now().UTC()),
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

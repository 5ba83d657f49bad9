package request

import (
	"strings"

	"tallerhub/internal/usecase"
)

type QuotationPriceRequest struct {
	TaskID string  `json:"task_id" binding:"required"`
	Price  float64 `json:"price"`
}

type CreateQuotationRequest struct {
	AssessmentID string                  `json:"assessment_id" binding:"required"`
	Prices       []QuotationPriceRequest `json:"prices"`
	Notes        string                  `json:"notes"`
	ValidDays    int                     `json:"valid_days"`
}

func (r CreateQuotationRequest) ToInput() usecase.CreateQuotationInput {
	var prices map[string]float64
	if len(r.Prices) > 0 {
		prices = make(map[string]float64, len(r.Prices))
		for _, p := range r.Prices {
			prices[strings.TrimSpace(p.TaskID)] = p.Price
		}
	}
	return usecase.CreateQuotationInput{
		AssessmentID: strings.TrimSpace(r.AssessmentID),
		Prices:       prices,
		Notes:        r.Notes,
		ValidDays:    r.ValidDays,
	}
}

package response

import (
	"encoding/json"
	"time"

	"tallerhub/internal/domain/entities"
)

type InvoiceLineResponse struct {
	TaskID      string  `json:"task_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type InvoiceResponse struct {
	ID              string                `json:"id"`
	Number          string                `json:"number"`
	WorkOrderID     string                `json:"work_order_id"`
	WorkshopID      string                `json:"workshop_id"`
	ClientID        string                `json:"client_id,omitempty"`
	Lines           []InvoiceLineResponse `json:"lines"`
	Subtotal        float64               `json:"subtotal"`
	TaxRate         float64               `json:"tax_rate"`
	Tax             float64               `json:"tax"`
	Total           float64               `json:"total"`
	Status          string                `json:"status"`
	PaymentID       string                `json:"payment_id,omitempty"`
	ProviderPayload json.RawMessage       `json:"provider_payload,omitempty"`
	IssuedAt        time.Time             `json:"issued_at"`
	PaidAt          *time.Time            `json:"paid_at,omitempty"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse{TaskID: l.TaskID, Description: l.Description, Amount: l.Amount})
	}
	out := InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		WorkOrderID: inv.WorkOrderID,
		WorkshopID:  inv.WorkshopID,
		ClientID:    inv.ClientID,
		Lines:       lines,
		Subtotal:    inv.Subtotal,
		TaxRate:     inv.TaxRate,
		Tax:         inv.Tax,
		Total:       inv.Total,
		Status:      string(inv.Status),
		PaymentID:   inv.PaymentID,
		IssuedAt:    inv.IssuedAt,
		PaidAt:      inv.PaidAt,
		UpdatedAt:   inv.UpdatedAt,
	}
	if len(inv.ProviderPayloadRaw) > 0 && json.Valid(inv.ProviderPayloadRaw) {
		out.ProviderPayload = inv.ProviderPayloadRaw
	}
	return out
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}

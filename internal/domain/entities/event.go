package entities

import "time"

type EventType string

const (
	EventAssessmentCreated EventType = "assessment.created"
	EventTaskResponded     EventType = "assessment.task_responded"
	EventQuotationSent     EventType = "quotation.sent"
	EventWorkOrderCreated  EventType = "work_order.created"
	EventWorkOrderUpdated  EventType = "work_order.updated"
	EventInvoiceIssued     EventType = "invoice.issued"
	EventInvoicePaid       EventType = "invoice.paid"
)

// Event is a workflow notification pushed to dashboards.
type Event struct {
	Type       EventType         `json:"type"`
	EntityID   string            `json:"entity_id"`
	WorkshopID string            `json:"workshop_id,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

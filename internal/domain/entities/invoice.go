package entities

import (
	"encoding/json"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

type InvoiceLine struct {
	TaskID      string  `json:"task_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice (factura) bills a completed work order.
//
// Storage model (DynamoDB, table "facturas"):
//   - PK: id (equal to the work order id)
//   - GSI: workshop_id-index, client_id-index
//
// ProviderPayloadRaw keeps the payment provider response for audit.
type Invoice struct {
	ID                 string          `json:"id"`
	Number             string          `json:"number"`
	WorkOrderID        string          `json:"work_order_id"`
	WorkshopID         string          `json:"workshop_id"`
	ClientID           string          `json:"client_id"`
	Lines              []InvoiceLine   `json:"lines"`
	Subtotal           float64         `json:"subtotal"`
	TaxRate            float64         `json:"tax_rate"`
	Tax                float64         `json:"tax"`
	Total              float64         `json:"total"`
	Status             InvoiceStatus   `json:"status"`
	PaymentID          string          `json:"payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	IssuedAt           time.Time       `json:"issued_at"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

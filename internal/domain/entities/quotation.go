package entities

import "time"

type QuotationStatus string

const (
	QuotationStatusSent              QuotationStatus = "sent"
	QuotationStatusAccepted          QuotationStatus = "accepted"
	QuotationStatusPartiallyAccepted QuotationStatus = "partially-accepted"
	QuotationStatusRejected          QuotationStatus = "rejected"
)

// QuotationStatusFor maps a final client status onto the quotation. It returns
// false while the client has not answered every task.
func QuotationStatusFor(cs ClientStatus) (QuotationStatus, bool) {
	switch cs {
	case ClientStatusFullyAccepted:
		return QuotationStatusAccepted, true
	case ClientStatusPartiallyAccepted:
		return QuotationStatusPartiallyAccepted, true
	case ClientStatusRejected:
		return QuotationStatusRejected, true
	default:
		return "", false
	}
}

type QuotationLine struct {
	TaskID      string  `json:"task_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Quotation (cotización) is the owner's priced offer for an assessment.
//
// Storage model (DynamoDB, table "cotizaciones"):
//   - PK: id (equal to the assessment id)
type Quotation struct {
	ID           string          `json:"id"`
	AssessmentID string          `json:"assessment_id"`
	WorkshopID   string          `json:"workshop_id"`
	ClientID     string          `json:"client_id"`
	Lines        []QuotationLine `json:"lines"`
	Subtotal     float64         `json:"subtotal"`
	TaxRate      float64         `json:"tax_rate"`
	Tax          float64         `json:"tax"`
	Total        float64         `json:"total"`
	Notes        string          `json:"notes,omitempty"`
	Status       QuotationStatus `json:"status"`
	ValidUntil   time.Time       `json:"valid_until"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (q Quotation) Expired(now time.Time) bool {
	return !q.ValidUntil.IsZero() && now.After(q.ValidUntil)
}

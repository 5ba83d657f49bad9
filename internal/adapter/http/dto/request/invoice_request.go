package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyPaymentPayload = errors.New("payment_payload cannot be empty")

type CreateInvoiceRequest struct {
	WorkOrderID string `json:"work_order_id" binding:"required"`
}

// ParsePaymentPayload extracts the provider payload from a pay request body.
// The body is either the raw Mercado Pago payment request or an envelope
// {"payment_payload": {...}}. An empty body yields "{}".
func ParsePaymentPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, ErrEmptyPaymentPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

package response

// Envelope is the body of every successful response. Failures use
// pkg.HTTPError, which has the same success/message shape plus a code.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

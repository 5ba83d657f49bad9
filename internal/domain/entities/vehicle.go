package entities

import (
	"strings"
	"time"
)

// Vehicle belongs to a client user.
//
// Storage model (DynamoDB, table "vehicles"):
//   - PK: id
//   - GSI (client_id-index): client_id
//   - GSI (plate-index): plate
type Vehicle struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	WorkshopID string    `json:"workshop_id,omitempty"`
	Plate      string    `json:"plate"`
	Make       string    `json:"make"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	VIN        string    `json:"vin,omitempty"`
	Mileage    int       `json:"mileage"`
	Color      string    `json:"color,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NormalizePlate upper-cases a plate and strips spaces and dashes so that
// "ab-123 cd" and "AB123CD" collide on the unique index.
func NormalizePlate(plate string) string {
	r := strings.NewReplacer(" ", "", "-", "")
	return strings.ToUpper(r.Replace(strings.TrimSpace(plate)))
}

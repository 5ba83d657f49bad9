package entities

import "time"

// Workshop is a repair shop registered by the site admin.
//
// Storage model (DynamoDB, table "workshops"):
//   - PK: id
//   - GSI (owner_id-index): owner_id
type Workshop struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	TaxID     string    `json:"tax_id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

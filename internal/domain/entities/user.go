package entities

import (
	"fmt"
	"strings"
	"time"
)

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleOwner    UserRole = "owner"
	UserRoleMechanic UserRole = "mechanic"
	UserRoleClient   UserRole = "client"
)

func ParseUserRole(s string) (UserRole, error) {
	switch r := UserRole(strings.ToLower(strings.TrimSpace(s))); r {
	case UserRoleAdmin, UserRoleOwner, UserRoleMechanic, UserRoleClient:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role: %s", s)
	}
}

// User is any person that logs into a dashboard.
//
// Storage model (DynamoDB, table "users"):
//   - PK: id
//   - GSI (email-index): email
//   - GSI (workshop_id-index): workshop_id
//
// WorkshopID is set for owners and mechanics only.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         UserRole  `json:"role"`
	WorkshopID   string    `json:"workshop_id,omitempty"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

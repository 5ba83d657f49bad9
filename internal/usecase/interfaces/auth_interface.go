package interfaces

import (
	"tallerhub/internal/domain/entities"
	"time"
)

// TokenClaims is the identity carried by a session token.
type TokenClaims struct {
	UserID     string
	Email      string
	Role       entities.UserRole
	WorkshopID string
	ExpiresAt  time.Time
}

type ITokenIssuer interface {
	Issue(u entities.User) (token string, expiresAt time.Time, err error)
	Verify(token string) (TokenClaims, error)
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

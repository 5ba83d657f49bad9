package auth

import (
	"errors"
	"fmt"
	"time"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "tallerhub"

var ErrInvalidToken = errors.New("invalid token")

type sessionClaims struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	WorkshopID string `json:"workshop_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 session tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTManager)(nil)

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *JWTManager) Issue(u entities.User) (string, time.Time, error) {
	now := m.now().UTC()
	exp := now.Add(m.ttl)
	claims := sessionClaims{
		Email:      u.Email,
		Role:       string(u.Role),
		WorkshopID: u.WorkshopID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (m *JWTManager) Verify(token string) (interfaces.TokenClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return interfaces.TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role, err := entities.ParseUserRole(claims.Role)
	if err != nil || claims.Subject == "" {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	out := interfaces.TokenClaims{
		UserID:     claims.Subject,
		Email:      claims.Email,
		Role:       role,
		WorkshopID: claims.WorkshopID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

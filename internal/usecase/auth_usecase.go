package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Session is what a dashboard keeps after logging in.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Verify(ctx context.Context, token string) (interfaces.TokenClaims, error)
}

type AuthUseCase struct {
	userRepo interfaces.IUserRepository
	hasher   interfaces.IPasswordHasher
	tokens   interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(userRepo interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// Login never tells the caller whether the email or the password was wrong.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email = entities.NormalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if user.ID == "" || !user.Active {
		log.Printf("[auth][usecase] login rejected email=%s found=%t", email, user.ID != "")
		return Session{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Printf("[auth][usecase] login rejected email=%s reason=password", email)
		return Session{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}
	log.Printf("[auth][usecase] login success user_id=%s role=%s", user.ID, user.Role)
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (u *AuthUseCase) Verify(_ context.Context, token string) (interfaces.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	return claims, nil
}

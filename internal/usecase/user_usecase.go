package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidUserName    = errors.New("name is required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrWeakPassword       = errors.New("password must have at least 8 characters")
	ErrWorkshopRequired   = errors.New("workshop_id is required for this role")
)

const minPasswordLength = 8

type RegisterUserInput struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	Role       entities.UserRole
	WorkshopID string
}

// UpdateUserInput holds the mutable profile fields. Nil fields are left as is.
type UpdateUserInput struct {
	Name   *string
	Phone  *string
	Active *bool
}

type IUserUseCase interface {
	Register(ctx context.Context, in RegisterUserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListByWorkshop(ctx context.Context, workshopID string) ([]entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (entities.User, error)
	AssignWorkshop(ctx context.Context, id string, workshopID string) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo         interfaces.IUserRepository
	workshopRepo interfaces.IWorkshopRepository
	hasher       interfaces.IPasswordHasher
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, workshopRepo interfaces.IWorkshopRepository, hasher interfaces.IPasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, workshopRepo: workshopRepo, hasher: hasher}
}

func (u *UserUseCase) Register(ctx context.Context, in RegisterUserInput) (entities.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = entities.NormalizeEmail(in.Email)
	in.WorkshopID = strings.TrimSpace(in.WorkshopID)

	if in.Name == "" {
		return entities.User{}, ErrInvalidUserName
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return entities.User{}, ErrInvalidEmail
	}
	role, err := entities.ParseUserRole(string(in.Role))
	if err != nil {
		return entities.User{}, ErrInvalidRole
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, ErrWeakPassword
	}
	if role == entities.UserRoleMechanic && in.WorkshopID == "" {
		return entities.User{}, ErrWorkshopRequired
	}
	log.Printf("[user][usecase] register start email=%s role=%s workshop_id=%s", in.Email, role, in.WorkshopID)

	existing, err := u.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyExists
	}

	if in.WorkshopID != "" {
		if err := u.ensureWorkshop(ctx, in.WorkshopID); err != nil {
			return entities.User{}, err
		}
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Only staff is tied to a workshop.
	if role == entities.UserRoleOwner || role == entities.UserRoleMechanic {
		user.WorkshopID = in.WorkshopID
	}

	created, err := u.repo.Create(ctx, user)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.User{}, ErrEmailAlreadyExists
	}
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[user][usecase] register success id=%s role=%s", created.ID, created.Role)
	return created, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) ListByWorkshop(ctx context.Context, workshopID string) ([]entities.User, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return nil, ErrMissingFilter
	}
	return u.repo.ListByWorkshopID(ctx, workshopID)
}

func (u *UserUseCase) ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	r, err := entities.ParseUserRole(string(role))
	if err != nil {
		return nil, ErrInvalidRole
	}
	return u.repo.ListByRole(ctx, r)
}

func (u *UserUseCase) Update(ctx context.Context, id string, in UpdateUserInput) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.User{}, ErrInvalidUserName
		}
		user.Name = name
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now().UTC()
	return u.save(ctx, user)
}

// AssignWorkshop links an owner or mechanic to a workshop.
func (u *UserUseCase) AssignWorkshop(ctx context.Context, id string, workshopID string) (entities.User, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return entities.User{}, ErrWorkshopRequired
	}

	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.Role != entities.UserRoleOwner && user.Role != entities.UserRoleMechanic {
		return entities.User{}, ErrInvalidRole
	}
	if err := u.ensureWorkshop(ctx, workshopID); err != nil {
		return entities.User{}, err
	}

	user.WorkshopID = workshopID
	user.UpdatedAt = time.Now().UTC()
	return u.save(ctx, user)
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	log.Printf("[user][usecase] deleted id=%s", id)
	return nil
}

func (u *UserUseCase) save(ctx context.Context, user entities.User) (entities.User, error) {
	updated, err := u.repo.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) ensureWorkshop(ctx context.Context, workshopID string) error {
	w, err := u.workshopRepo.GetByID(ctx, workshopID)
	if err != nil {
		return err
	}
	if w.ID == "" {
		return ErrWorkshopNotFound
	}
	return nil
}

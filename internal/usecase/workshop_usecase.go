package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWorkshopID   = errors.New("invalid workshop id")
	ErrInvalidWorkshopName = errors.New("workshop name is required")
)

type WorkshopInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
}

// WorkshopWithOwner is the result of the admin onboarding flow.
type WorkshopWithOwner struct {
	Workshop entities.Workshop
	Owner    entities.User
}

type IWorkshopUseCase interface {
	Create(ctx context.Context, in WorkshopInput, ownerID string) (entities.Workshop, error)
	CreateWithOwner(ctx context.Context, in WorkshopInput, owner RegisterUserInput) (WorkshopWithOwner, error)
	GetByID(ctx context.Context, id string) (entities.Workshop, error)
	List(ctx context.Context) ([]entities.Workshop, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Workshop, error)
	Update(ctx context.Context, id string, in WorkshopInput) (entities.Workshop, error)
	Delete(ctx context.Context, id string) error
}

type WorkshopUseCase struct {
	repo     interfaces.IWorkshopRepository
	userRepo interfaces.IUserRepository
	users    IUserUseCase
}

var _ IWorkshopUseCase = (*WorkshopUseCase)(nil)

func NewWorkshopUseCase(repo interfaces.IWorkshopRepository, userRepo interfaces.IUserRepository, users IUserUseCase) *WorkshopUseCase {
	return &WorkshopUseCase{repo: repo, userRepo: userRepo, users: users}
}

// Create registers a workshop. ownerID is optional; when set it must point to
// an existing owner user.
func (u *WorkshopUseCase) Create(ctx context.Context, in WorkshopInput, ownerID string) (entities.Workshop, error) {
	in = trimWorkshopInput(in)
	if in.Name == "" {
		return entities.Workshop{}, ErrInvalidWorkshopName
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID != "" {
		owner, err := u.userRepo.GetByID(ctx, ownerID)
		if err != nil {
			return entities.Workshop{}, err
		}
		if owner.ID == "" || owner.Role != entities.UserRoleOwner {
			return entities.Workshop{}, ErrUserNotFound
		}
	}

	now := time.Now().UTC()
	w := entities.Workshop{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     entities.NormalizeEmail(in.Email),
		TaxID:     in.TaxID,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, w)
	if err != nil {
		return entities.Workshop{}, err
	}
	log.Printf("[workshop][usecase] create success id=%s owner_id=%s", created.ID, created.OwnerID)
	return created, nil
}

// CreateWithOwner registers the owner user, then the workshop, then links the
// owner to it. A failure after the owner exists removes whatever was already
// stored, best effort.
func (u *WorkshopUseCase) CreateWithOwner(ctx context.Context, in WorkshopInput, owner RegisterUserInput) (WorkshopWithOwner, error) {
	if strings.TrimSpace(in.Name) == "" {
		return WorkshopWithOwner{}, ErrInvalidWorkshopName
	}
	owner.Role = entities.UserRoleOwner
	owner.WorkshopID = ""
	log.Printf("[workshop][usecase] create with owner start name=%q owner_email=%s", in.Name, owner.Email)

	createdOwner, err := u.users.Register(ctx, owner)
	if err != nil {
		return WorkshopWithOwner{}, err
	}

	w, err := u.Create(ctx, in, createdOwner.ID)
	if err != nil {
		log.Printf("[workshop][usecase] workshop create failed, removing owner id=%s err=%v", createdOwner.ID, err)
		if delErr := u.users.Delete(ctx, createdOwner.ID); delErr != nil {
			log.Printf("[workshop][usecase] owner cleanup failed id=%s err=%v", createdOwner.ID, delErr)
		}
		return WorkshopWithOwner{}, err
	}

	linked, err := u.users.AssignWorkshop(ctx, createdOwner.ID, w.ID)
	if err != nil {
		log.Printf("[workshop][usecase] owner link failed, removing workshop id=%s owner_id=%s err=%v", w.ID, createdOwner.ID, err)
		if delErr := u.repo.Delete(ctx, w.ID); delErr != nil {
			log.Printf("[workshop][usecase] workshop cleanup failed id=%s err=%v", w.ID, delErr)
		}
		if delErr := u.users.Delete(ctx, createdOwner.ID); delErr != nil {
			log.Printf("[workshop][usecase] owner cleanup failed id=%s err=%v", createdOwner.ID, delErr)
		}
		return WorkshopWithOwner{}, err
	}
	log.Printf("[workshop][usecase] create with owner success workshop_id=%s owner_id=%s", w.ID, linked.ID)
	return WorkshopWithOwner{Workshop: w, Owner: linked}, nil
}

func (u *WorkshopUseCase) GetByID(ctx context.Context, id string) (entities.Workshop, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Workshop{}, ErrInvalidWorkshopID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Workshop{}, err
	}
	if w.ID == "" {
		return entities.Workshop{}, ErrWorkshopNotFound
	}
	return w, nil
}

func (u *WorkshopUseCase) List(ctx context.Context) ([]entities.Workshop, error) {
	return u.repo.List(ctx)
}

func (u *WorkshopUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Workshop, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrMissingFilter
	}
	return u.repo.ListByOwnerID(ctx, ownerID)
}

// Update replaces the contact fields. Empty fields keep the stored value.
func (u *WorkshopUseCase) Update(ctx context.Context, id string, in WorkshopInput) (entities.Workshop, error) {
	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Workshop{}, err
	}

	in = trimWorkshopInput(in)
	if in.Name != "" {
		w.Name = in.Name
	}
	if in.Address != "" {
		w.Address = in.Address
	}
	if in.Phone != "" {
		w.Phone = in.Phone
	}
	if in.Email != "" {
		w.Email = entities.NormalizeEmail(in.Email)
	}
	if in.TaxID != "" {
		w.TaxID = in.TaxID
	}
	w.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, w)
	if err != nil {
		return entities.Workshop{}, err
	}
	if updated.ID == "" {
		return entities.Workshop{}, ErrWorkshopNotFound
	}
	return updated, nil
}

func (u *WorkshopUseCase) Delete(ctx context.Context, id string) error {
	w, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, w.ID); err != nil {
		return err
	}
	log.Printf("[workshop][usecase] deleted id=%s", w.ID)
	return nil
}

func trimWorkshopInput(in WorkshopInput) WorkshopInput {
	return WorkshopInput{
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		TaxID:   strings.TrimSpace(in.TaxID),
	}
}

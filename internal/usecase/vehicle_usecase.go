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
	ErrClientNotFound      = errors.New("client not found")
	ErrVehiclePlateExists  = errors.New("a vehicle with this plate already exists")
	ErrInvalidVehicleID    = errors.New("invalid vehicle id")
	ErrInvalidVehicleInput = errors.New("invalid vehicle: client_id, plate, make and model are required")
)

type VehicleInput struct {
	ClientID   string
	WorkshopID string
	Plate      string
	Make       string
	Model      string
	Year       int
	VIN        string
	Mileage    int
	Color      string
}

type IVehicleUseCase interface {
	Register(ctx context.Context, in VehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo     interfaces.IVehicleRepository
	userRepo interfaces.IUserRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, userRepo interfaces.IUserRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, userRepo: userRepo}
}

func (u *VehicleUseCase) Register(ctx context.Context, in VehicleInput) (entities.Vehicle, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.Plate = entities.NormalizePlate(in.Plate)
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	if in.ClientID == "" || in.Plate == "" || in.Make == "" || in.Model == "" || in.Year < 0 || in.Mileage < 0 {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}
	log.Printf("[vehicle][usecase] register start client_id=%s plate=%s", in.ClientID, in.Plate)

	client, err := u.userRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if client.ID == "" || client.Role != entities.UserRoleClient {
		return entities.Vehicle{}, ErrClientNotFound
	}

	existing, err := u.repo.GetByPlate(ctx, in.Plate)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing.ID != "" {
		return entities.Vehicle{}, ErrVehiclePlateExists
	}

	now := time.Now().UTC()
	v := entities.Vehicle{
		ID:         uuid.NewString(),
		ClientID:   client.ID,
		WorkshopID: strings.TrimSpace(in.WorkshopID),
		Plate:      in.Plate,
		Make:       in.Make,
		Model:      in.Model,
		Year:       in.Year,
		VIN:        strings.ToUpper(strings.TrimSpace(in.VIN)),
		Mileage:    in.Mileage,
		Color:      strings.TrimSpace(in.Color),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	log.Printf("[vehicle][usecase] register success id=%s plate=%s", created.ID, created.Plate)
	return created, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrMissingFilter
	}
	return u.repo.ListByClientID(ctx, clientID)
}

// Update changes the descriptive fields. The owner client cannot change and a
// new plate must still be unique.
func (u *VehicleUseCase) Update(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error) {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if in.Year < 0 || in.Mileage < 0 {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}

	if plate := entities.NormalizePlate(in.Plate); plate != "" && plate != v.Plate {
		other, err := u.repo.GetByPlate(ctx, plate)
		if err != nil {
			return entities.Vehicle{}, err
		}
		if other.ID != "" && other.ID != v.ID {
			return entities.Vehicle{}, ErrVehiclePlateExists
		}
		v.Plate = plate
	}
	if s := strings.TrimSpace(in.Make); s != "" {
		v.Make = s
	}
	if s := strings.TrimSpace(in.Model); s != "" {
		v.Model = s
	}
	if in.Year > 0 {
		v.Year = in.Year
	}
	if s := strings.TrimSpace(in.VIN); s != "" {
		v.VIN = strings.ToUpper(s)
	}
	if in.Mileage > 0 {
		v.Mileage = in.Mileage
	}
	if s := strings.TrimSpace(in.Color); s != "" {
		v.Color = s
	}
	if s := strings.TrimSpace(in.WorkshopID); s != "" {
		v.WorkshopID = s
	}
	v.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, v.ID)
}

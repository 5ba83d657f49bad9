package usecase

import (
	"context"
	"errors"
	"testing"

	"tallerhub/internal/domain/entities"
	mock_interfaces "tallerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_Register(t *testing.T) {
	in := VehicleInput{ClientID: "cli-1", Plate: "1234-bcd", Make: "Seat", Model: "Ibiza", Year: 2019, Mileage: 80000}

	t.Run("missing fields", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		_, err := uc.Register(context.Background(), VehicleInput{ClientID: "cli-1"})
		if !errors.Is(err, ErrInvalidVehicleInput) {
			t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewVehicleUseCase(nil, users)

		users.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.User{ID: "cli-1", Role: entities.UserRoleMechanic}, nil)

		_, err := uc.Register(context.Background(), in)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("plate exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewVehicleUseCase(repo, users)

		users.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.User{ID: "cli-1", Role: entities.UserRoleClient}, nil)
		repo.EXPECT().GetByPlate(gomock.Any(), "1234BCD").Return(entities.Vehicle{ID: "veh-0"}, nil)

		_, err := uc.Register(context.Background(), in)
		if !errors.Is(err, ErrVehiclePlateExists) {
			t.Fatalf("expected ErrVehiclePlateExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewVehicleUseCase(repo, users)

		users.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.User{ID: "cli-1", Role: entities.UserRoleClient}, nil)
		repo.EXPECT().GetByPlate(gomock.Any(), "1234BCD").Return(entities.Vehicle{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
			return v, nil
		})

		got, err := uc.Register(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Plate != "1234BCD" || got.ClientID != "cli-1" {
			t.Fatalf("unexpected vehicle %+v", got)
		}
	})
}

func TestVehicleUseCase_Update(t *testing.T) {
	stored := entities.Vehicle{ID: "veh-1", ClientID: "cli-1", Plate: "1234BCD", Make: "Seat", Model: "Ibiza", Mileage: 1000}

	t.Run("new plate taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(stored, nil)
		repo.EXPECT().GetByPlate(gomock.Any(), "9999ZZZ").Return(entities.Vehicle{ID: "veh-2"}, nil)

		_, err := uc.Update(context.Background(), "veh-1", VehicleInput{Plate: "9999 zzz"})
		if !errors.Is(err, ErrVehiclePlateExists) {
			t.Fatalf("expected ErrVehiclePlateExists, got %v", err)
		}
	})

	t.Run("mileage only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
			return v, nil
		})

		got, err := uc.Update(context.Background(), "veh-1", VehicleInput{Mileage: 2500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Mileage != 2500 || got.Plate != "1234BCD" || got.Make != "Seat" {
			t.Fatalf("unexpected vehicle %+v", got)
		}
	})
}

func TestVehicleUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewVehicleUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)

	if _, err := uc.GetByID(context.Background(), "veh-1"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

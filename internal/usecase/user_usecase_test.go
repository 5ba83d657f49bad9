package usecase

import (
	"context"
	"errors"
	"testing"

	"tallerhub/internal/domain/entities"
	mock_interfaces "tallerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Register(t *testing.T) {
	valid := RegisterUserInput{Name: "Ana", Email: " Ana@Taller.ES ", Password: "s3cretpass", Role: entities.UserRoleMechanic, WorkshopID: "ws-1"}

	validation := []struct {
		name string
		in   func(RegisterUserInput) RegisterUserInput
		want error
	}{
		{name: "missing name", in: func(in RegisterUserInput) RegisterUserInput { in.Name = " "; return in }, want: ErrInvalidUserName},
		{name: "bad email", in: func(in RegisterUserInput) RegisterUserInput { in.Email = "not-an-email"; return in }, want: ErrInvalidEmail},
		{name: "bad role", in: func(in RegisterUserInput) RegisterUserInput { in.Role = "boss"; return in }, want: ErrInvalidRole},
		{name: "short password", in: func(in RegisterUserInput) RegisterUserInput { in.Password = "short"; return in }, want: ErrWeakPassword},
		{name: "mechanic without workshop", in: func(in RegisterUserInput) RegisterUserInput { in.WorkshopID = ""; return in }, want: ErrWorkshopRequired},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewUserUseCase(nil, nil, nil)
			_, err := uc.Register(context.Background(), tc.in(valid))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@taller.es").Return(entities.User{ID: "u-0"}, nil)

		_, err := uc.Register(context.Background(), valid)
		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("workshop not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		workshops := mock_interfaces.NewMockIWorkshopRepository(ctrl)
		uc := NewUserUseCase(repo, workshops, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@taller.es").Return(entities.User{}, nil)
		workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{}, nil)

		_, err := uc.Register(context.Background(), valid)
		if !errors.Is(err, ErrWorkshopNotFound) {
			t.Fatalf("expected ErrWorkshopNotFound, got %v", err)
		}
	})

	t.Run("success hashes password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		workshops := mock_interfaces.NewMockIWorkshopRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewUserUseCase(repo, workshops, hasher)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@taller.es").Return(entities.User{}, nil)
		workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1"}, nil)
		hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			return u, nil
		})

		got, err := uc.Register(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Email != "ana@taller.es" || got.PasswordHash != "hashed" || !got.Active {
			t.Fatalf("unexpected user %+v", got)
		}
		if got.WorkshopID != "ws-1" {
			t.Fatalf("expected workshop ws-1, got %q", got.WorkshopID)
		}
	})

	t.Run("client never gets a workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		workshops := mock_interfaces.NewMockIWorkshopRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewUserUseCase(repo, workshops, hasher)

		in := valid
		in.Role = entities.UserRoleClient
		repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{}, nil)
		workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1"}, nil)
		hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			return u, nil
		})

		got, err := uc.Register(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkshopID != "" {
			t.Fatalf("expected no workshop, got %q", got.WorkshopID)
		}
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo, nil, nil)

	name, active := "Ana María", false
	repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Name: "Ana", Phone: "600", Active: true}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
		return u, nil
	})

	got, err := uc.Update(context.Background(), "u-1", UpdateUserInput{Name: &name, Active: &active})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != name || got.Active || got.Phone != "600" {
		t.Fatalf("unexpected user %+v", got)
	}
}

func TestUserUseCase_AssignWorkshop(t *testing.T) {
	t.Run("client cannot join a workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Role: entities.UserRoleClient}, nil)

		_, err := uc.AssignWorkshop(context.Background(), "u-1", "ws-1")
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		workshops := mock_interfaces.NewMockIWorkshopRepository(ctrl)
		uc := NewUserUseCase(repo, workshops, nil)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Role: entities.UserRoleOwner}, nil)
		workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			return u, nil
		})

		got, err := uc.AssignWorkshop(context.Background(), "u-1", "ws-1")
		if err != nil || got.WorkshopID != "ws-1" {
			t.Fatalf("unexpected result %+v %v", got, err)
		}
	})
}

func TestUserUseCase_ListByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo, nil, nil)

	repo.EXPECT().ListByRole(gomock.Any(), entities.UserRoleMechanic).Return([]entities.User{{ID: "m-1"}}, nil)

	got, err := uc.ListByRole(context.Background(), "Mechanic")
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
	if _, err := uc.ListByRole(context.Background(), "boss"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"tallerhub/internal/domain/entities"
	mock_interfaces "tallerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type assessmentMocks struct {
	repo      *mock_interfaces.MockIAssessmentRepository
	vehicles  *mock_interfaces.MockIVehicleRepository
	users     *mock_interfaces.MockIUserRepository
	workshops *mock_interfaces.MockIWorkshopRepository
	events    *mock_interfaces.MockIEventPublisher
}

func newAssessmentUseCaseWithMocks(ctrl *gomock.Controller) (*AssessmentUseCase, assessmentMocks) {
	m := assessmentMocks{
		repo:      mock_interfaces.NewMockIAssessmentRepository(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		users:     mock_interfaces.NewMockIUserRepository(ctrl),
		workshops: mock_interfaces.NewMockIWorkshopRepository(ctrl),
		events:    mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	uc := NewAssessmentUseCase(m.repo, m.vehicles, m.users, m.workshops, nil, nil, m.events)
	return uc, m
}

func TestAssessmentUseCase_AssignMechanic(t *testing.T) {
	in := AssignMechanicInput{VehicleID: "veh-1", MechanicID: "mec-1", WorkshopID: "ws-1", Notes: " noisy brakes "}
	mechanic := entities.User{ID: "mec-1", Role: entities.UserRoleMechanic, WorkshopID: "ws-1"}

	t.Run("missing references", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.AssignMechanic(context.Background(), AssignMechanicInput{VehicleID: "veh-1"})
		if !errors.Is(err, ErrInvalidAssignmentReference) {
			t.Fatalf("expected ErrInvalidAssignmentReference, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)

		_, err := uc.AssignMechanic(context.Background(), in)
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("mechanic not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", ClientID: "cli-1"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "mec-1").Return(entities.User{}, nil)

		_, err := uc.AssignMechanic(context.Background(), in)
		if !errors.Is(err, ErrMechanicNotFound) {
			t.Fatalf("expected ErrMechanicNotFound, got %v", err)
		}
	})

	t.Run("user is not a mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "mec-1").Return(entities.User{ID: "mec-1", Role: entities.UserRoleClient}, nil)

		_, err := uc.AssignMechanic(context.Background(), in)
		if !errors.Is(err, ErrMechanicNotFound) {
			t.Fatalf("expected ErrMechanicNotFound, got %v", err)
		}
	})

	t.Run("workshop not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "mec-1").Return(mechanic, nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{}, nil)

		_, err := uc.AssignMechanic(context.Background(), in)
		if !errors.Is(err, ErrWorkshopNotFound) {
			t.Fatalf("expected ErrWorkshopNotFound, got %v", err)
		}
	})

	t.Run("mechanic from another workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		other := mechanic
		other.WorkshopID = "ws-2"
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "mec-1").Return(other, nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1"}, nil)

		_, err := uc.AssignMechanic(context.Background(), in)
		if !errors.Is(err, ErrMechanicNotInWorkshop) {
			t.Fatalf("expected ErrMechanicNotInWorkshop, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", ClientID: "cli-1"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "mec-1").Return(mechanic, nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
			if a.ID == "" || a.ClientID != "cli-1" || a.Notes != "noisy brakes" {
				t.Fatalf("unexpected assessment %+v", a)
			}
			if a.Status != entities.AssessmentStatusPending || a.ClientStatus != entities.ClientStatusPendingReview || a.Version != 1 {
				t.Fatalf("unexpected initial state %+v", a)
			}
			return a, nil
		})
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Event) error {
			if e.Type != entities.EventAssessmentCreated {
				t.Fatalf("unexpected event %s", e.Type)
			}
			return errors.New("redis down")
		})

		got, err := uc.AssignMechanic(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MechanicID != "mec-1" || got.WorkshopID != "ws-1" {
			t.Fatalf("unexpected assessment %+v", got)
		}
	})
}

func TestAssessmentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(entities.Assessment{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "val-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(entities.Assessment{}, nil)

		_, err := uc.GetByID(context.Background(), "val-1")
		if !errors.Is(err, ErrAssessmentNotFound) {
			t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
		}
	})
}

func TestAssessmentUseCase_List(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.List(context.Background(), AssessmentFilter{})
		if !errors.Is(err, ErrMissingFilter) {
			t.Fatalf("expected ErrMissingFilter, got %v", err)
		}
	})

	t.Run("workshop wins over mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.repo.EXPECT().ListByWorkshopID(gomock.Any(), "ws-1").Return([]entities.Assessment{{ID: "val-1"}}, nil)

		got, err := uc.List(context.Background(), AssessmentFilter{WorkshopID: "ws-1", MechanicID: "mec-1"})
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %v %v", got, err)
		}
	})

	t.Run("by client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.repo.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Assessment{}, nil)

		if _, err := uc.List(context.Background(), AssessmentFilter{ClientID: " cli-1 "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAssessmentUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "val-1", entities.AssessmentStatus("done"))
		if !errors.Is(err, ErrInvalidAssessmentStatus) {
			t.Fatalf("expected ErrInvalidAssessmentStatus, got %v", err)
		}
	})

	t.Run("transition not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(entities.Assessment{ID: "val-1", Status: entities.AssessmentStatusPending, Version: 1}, nil)

		_, err := uc.UpdateStatus(context.Background(), "val-1", entities.AssessmentStatusCompleted)
		if !errors.Is(err, ErrInvalidAssessmentStatus) {
			t.Fatalf("expected ErrInvalidAssessmentStatus, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssessmentUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(entities.Assessment{ID: "val-1", Status: entities.AssessmentStatusInProgress, Version: 4}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
			if a.Status != entities.AssessmentStatusCompleted || a.Version != 4 {
				t.Fatalf("unexpected update %+v", a)
			}
			a.Version++
			return a, nil
		})

		got, err := uc.UpdateStatus(context.Background(), "val-1", entities.AssessmentStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 5 {
			t.Fatalf("expected version 5, got %d", got.Version)
		}
	})
}

func TestAssessmentUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newAssessmentUseCaseWithMocks(ctrl)

	m.repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(entities.Assessment{ID: "val-1"}, nil)
	m.repo.EXPECT().Delete(gomock.Any(), "val-1").Return(nil)

	if err := uc.Delete(context.Background(), "val-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssessmentUseCase_UpdateNotes_DeletedMeanwhile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newAssessmentUseCaseWithMocks(ctrl)

	m.repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(entities.Assessment{ID: "val-1", Version: 2}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Assessment{}, nil)

	_, err := uc.UpdateNotes(context.Background(), "val-1", "brakes squeal")
	if !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
	}
}

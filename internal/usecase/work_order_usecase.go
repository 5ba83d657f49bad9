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
	ErrWorkOrderNotFound      = errors.New("work order not found")
	ErrWorkOrderAlreadyExists = errors.New("work order already exists for this assessment")
	ErrWorkOrderNotReady      = errors.New("assessment still has proposed tasks or no accepted task")
	ErrInvalidWorkOrderID     = errors.New("invalid work order id")
	ErrInvalidWorkOrderStatus = errors.New("invalid work order status transition")
	ErrInvalidMechanicID      = errors.New("invalid mechanic id")
)

type WorkOrderFilter struct {
	WorkshopID string
	MechanicID string
}

// IWorkOrderUseCase exposes work order operations. Automatic creation happens
// inside IAssessmentUseCase.RespondToTask; CreateFromAssessment is the owner's
// manual path for the same result.
type IWorkOrderUseCase interface {
	CreateFromAssessment(ctx context.Context, assessmentID string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context, f WorkOrderFilter) ([]entities.WorkOrder, error)
	AssignMechanic(ctx context.Context, id string, mechanicID string) (entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo           interfaces.IWorkOrderRepository
	assessmentRepo interfaces.IAssessmentRepository
	userRepo       interfaces.IUserRepository
	events         interfaces.IEventPublisher
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	assessmentRepo interfaces.IAssessmentRepository,
	userRepo interfaces.IUserRepository,
	events interfaces.IEventPublisher,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, assessmentRepo: assessmentRepo, userRepo: userRepo, events: events}
}

func (u *WorkOrderUseCase) CreateFromAssessment(ctx context.Context, assessmentID string) (entities.WorkOrder, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.WorkOrder{}, ErrInvalidAssessmentID
	}
	log.Printf("[work_order][usecase] manual create start assessment_id=%s", assessmentID)

	a, err := u.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if a.ID == "" {
		return entities.WorkOrder{}, ErrAssessmentNotFound
	}
	if a.WorkOrderID != "" {
		return entities.WorkOrder{}, ErrWorkOrderAlreadyExists
	}
	counts := entities.CountTasks(a.Tasks)
	if counts.Proposed > 0 || counts.Accepted == 0 {
		log.Printf("[work_order][usecase] not ready assessment_id=%s proposed=%d accepted=%d", a.ID, counts.Proposed, counts.Accepted)
		return entities.WorkOrder{}, ErrWorkOrderNotReady
	}

	wo, _, err := createWorkOrder(ctx, u.repo, u.assessmentRepo, a)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	log.Printf("[work_order][usecase] manual create success id=%s total=%.2f", wo.ID, wo.TotalCost)

	publish(ctx, u.events, entities.EventWorkOrderCreated, wo.ID, wo.WorkshopID, map[string]string{
		"assessment_id": wo.AssessmentID,
		"trigger":       "manual",
	})
	return wo, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context, f WorkOrderFilter) ([]entities.WorkOrder, error) {
	switch {
	case strings.TrimSpace(f.WorkshopID) != "":
		return u.repo.ListByWorkshopID(ctx, strings.TrimSpace(f.WorkshopID))
	case strings.TrimSpace(f.MechanicID) != "":
		return u.repo.ListByMechanicID(ctx, strings.TrimSpace(f.MechanicID))
	default:
		return nil, ErrMissingFilter
	}
}

func (u *WorkOrderUseCase) AssignMechanic(ctx context.Context, id string, mechanicID string) (entities.WorkOrder, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.WorkOrder{}, ErrInvalidMechanicID
	}

	wo, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !wo.Status.CanTransition(entities.WorkOrderStatusAssigned) {
		return entities.WorkOrder{}, ErrInvalidWorkOrderStatus
	}

	mechanic, err := u.userRepo.GetByID(ctx, mechanicID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if mechanic.ID == "" || mechanic.Role != entities.UserRoleMechanic {
		return entities.WorkOrder{}, ErrMechanicNotFound
	}
	if mechanic.WorkshopID != wo.WorkshopID {
		return entities.WorkOrder{}, ErrMechanicNotInWorkshop
	}

	wo.MechanicID = mechanic.ID
	wo.Status = entities.WorkOrderStatusAssigned
	wo.UpdatedAt = time.Now().UTC()
	return u.save(ctx, wo)
}

// UpdateStatus moves a work order along assigned -> in-progress -> completed,
// or cancels it before work starts. Assignment goes through AssignMechanic.
func (u *WorkOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	if _, err := entities.ParseWorkOrderStatus(string(status)); err != nil || status == entities.WorkOrderStatusAssigned {
		return entities.WorkOrder{}, ErrInvalidWorkOrderStatus
	}

	wo, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !wo.Status.CanTransition(status) {
		log.Printf("[work_order][usecase] rejected transition id=%s from=%s to=%s", wo.ID, wo.Status, status)
		return entities.WorkOrder{}, ErrInvalidWorkOrderStatus
	}

	now := time.Now().UTC()
	switch status {
	case entities.WorkOrderStatusInProgress:
		wo.StartedAt = &now
	case entities.WorkOrderStatusCompleted:
		wo.CompletedAt = &now
	}
	wo.Status = status
	wo.UpdatedAt = now
	return u.save(ctx, wo)
}

func (u *WorkOrderUseCase) save(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	updated, err := u.repo.Update(ctx, wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	log.Printf("[work_order][usecase] updated id=%s status=%s mechanic_id=%s", updated.ID, updated.Status, updated.MechanicID)

	publish(ctx, u.events, entities.EventWorkOrderUpdated, updated.ID, updated.WorkshopID, map[string]string{
		"status":      string(updated.Status),
		"mechanic_id": updated.MechanicID,
	})
	return updated, nil
}

// createWorkOrder stores the work order for a and links it back to the
// assessment. The work order id is the assessment id, so a second call fails
// with ErrWorkOrderAlreadyExists instead of creating a duplicate. When the
// order exists but an earlier link write was lost, the link is written before
// returning that error.
func createWorkOrder(ctx context.Context, woRepo interfaces.IWorkOrderRepository, aRepo interfaces.IAssessmentRepository, a entities.Assessment) (entities.WorkOrder, entities.Assessment, error) {
	now := time.Now().UTC()
	created, err := woRepo.Create(ctx, entities.NewWorkOrderFromAssessment(a, now))
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		if a.WorkOrderID == "" {
			relinkWorkOrder(ctx, woRepo, aRepo, a.ID, now)
		}
		return entities.WorkOrder{}, entities.Assessment{}, ErrWorkOrderAlreadyExists
	}
	if err != nil {
		return entities.WorkOrder{}, entities.Assessment{}, err
	}

	linked, err := linkWorkOrder(ctx, aRepo, a.ID, created.ID, now)
	if err != nil {
		log.Printf("[work_order][usecase] link to assessment failed id=%s err=%v", created.ID, err)
		return entities.WorkOrder{}, entities.Assessment{}, err
	}
	return created, linked, nil
}

func linkWorkOrder(ctx context.Context, aRepo interfaces.IAssessmentRepository, assessmentID, workOrderID string, now time.Time) (entities.Assessment, error) {
	return updateAssessment(ctx, aRepo, assessmentID, func(x *entities.Assessment) error {
		x.WorkOrderID = workOrderID
		x.UpdatedAt = now
		return nil
	})
}

func relinkWorkOrder(ctx context.Context, woRepo interfaces.IWorkOrderRepository, aRepo interfaces.IAssessmentRepository, assessmentID string, now time.Time) {
	existing, err := woRepo.GetByID(ctx, assessmentID)
	if err != nil || existing.ID == "" {
		log.Printf("[work_order][usecase] relink lookup failed assessment_id=%s err=%v", assessmentID, err)
		return
	}
	if _, err := linkWorkOrder(ctx, aRepo, assessmentID, existing.ID, now); err != nil {
		log.Printf("[work_order][usecase] relink failed assessment_id=%s err=%v", assessmentID, err)
		return
	}
	log.Printf("[work_order][usecase] relinked assessment_id=%s work_order_id=%s", assessmentID, existing.ID)
}

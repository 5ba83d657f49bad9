package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAssessmentNotFound         = errors.New("assessment not found")
	ErrTaskNotFound               = errors.New("task not found")
	ErrInvalidAssessmentID        = errors.New("invalid assessment id")
	ErrInvalidTaskID              = errors.New("invalid task id")
	ErrInvalidTask                = errors.New("invalid task: name is required and price must be >= 0")
	ErrInvalidTaskDecision        = errors.New("invalid task decision")
	ErrInvalidAssessmentStatus    = errors.New("invalid assessment status transition")
	ErrTaskAlreadyResolved        = errors.New("task already resolved")
	ErrAssessmentLocked           = errors.New("assessment already has a work order")
	ErrAssessmentQuoted           = errors.New("assessment has a quotation awaiting the client")
	ErrVehicleNotFound            = errors.New("vehicle not found")
	ErrMechanicNotFound           = errors.New("mechanic not found")
	ErrMechanicNotInWorkshop      = errors.New("mechanic does not belong to the workshop")
	ErrWorkshopNotFound           = errors.New("workshop not found")
	ErrQuotationExpired           = errors.New("quotation expired")
	ErrInvalidAssignmentReference = errors.New("vehicle_id, mechanic_id and workshop_id are required")
)

// maxUpdateAttempts bounds the read-modify-write retries on version conflicts.
const maxUpdateAttempts = 3

type AssignMechanicInput struct {
	VehicleID  string
	MechanicID string
	WorkshopID string
	Notes      string
}

type NewTaskInput struct {
	Name           string
	Description    string
	EstimatedPrice float64
}

// AssessmentFilter selects which index a list query uses. Exactly one field
// must be set; the first non-empty one in declaration order wins.
type AssessmentFilter struct {
	WorkshopID string
	MechanicID string
	VehicleID  string
	ClientID   string
}

// TaskResponseResult is the outcome of a client answer. WorkOrder is set only
// when this answer resolved the last proposed task with at least one accepted.
type TaskResponseResult struct {
	Assessment entities.Assessment
	WorkOrder  *entities.WorkOrder
}

// IAssessmentUseCase drives the approval workflow:
// mechanic assessment -> owner quotation -> client answers -> work order.
type IAssessmentUseCase interface {
	AssignMechanic(ctx context.Context, in AssignMechanicInput) (entities.Assessment, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
	List(ctx context.Context, f AssessmentFilter) ([]entities.Assessment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AssessmentStatus) (entities.Assessment, error)
	UpdateNotes(ctx context.Context, id string, notes string) (entities.Assessment, error)
	AddTask(ctx context.Context, id string, in NewTaskInput) (entities.Assessment, error)
	RemoveTask(ctx context.Context, id string, taskID string) (entities.Assessment, error)
	RespondToTask(ctx context.Context, id string, taskID string, decision entities.TaskDecision, clientID string) (TaskResponseResult, error)
	Delete(ctx context.Context, id string) error
}

type AssessmentUseCase struct {
	repo          interfaces.IAssessmentRepository
	vehicleRepo   interfaces.IVehicleRepository
	userRepo      interfaces.IUserRepository
	workshopRepo  interfaces.IWorkshopRepository
	workOrderRepo interfaces.IWorkOrderRepository
	quotationRepo interfaces.IQuotationRepository
	events        interfaces.IEventPublisher
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(
	repo interfaces.IAssessmentRepository,
	vehicleRepo interfaces.IVehicleRepository,
	userRepo interfaces.IUserRepository,
	workshopRepo interfaces.IWorkshopRepository,
	workOrderRepo interfaces.IWorkOrderRepository,
	quotationRepo interfaces.IQuotationRepository,
	events interfaces.IEventPublisher,
) *AssessmentUseCase {
	return &AssessmentUseCase{
		repo:          repo,
		vehicleRepo:   vehicleRepo,
		userRepo:      userRepo,
		workshopRepo:  workshopRepo,
		workOrderRepo: workOrderRepo,
		quotationRepo: quotationRepo,
		events:        events,
	}
}

func (u *AssessmentUseCase) AssignMechanic(ctx context.Context, in AssignMechanicInput) (entities.Assessment, error) {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.MechanicID = strings.TrimSpace(in.MechanicID)
	in.WorkshopID = strings.TrimSpace(in.WorkshopID)
	if in.VehicleID == "" || in.MechanicID == "" || in.WorkshopID == "" {
		return entities.Assessment{}, ErrInvalidAssignmentReference
	}
	log.Printf("[assessment][usecase] assign start vehicle_id=%s mechanic_id=%s workshop_id=%s", in.VehicleID, in.MechanicID, in.WorkshopID)

	vehicle, err := u.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return entities.Assessment{}, err
	}
	if vehicle.ID == "" {
		log.Printf("[assessment][usecase] vehicle not found vehicle_id=%s", in.VehicleID)
		return entities.Assessment{}, ErrVehicleNotFound
	}

	mechanic, err := u.userRepo.GetByID(ctx, in.MechanicID)
	if err != nil {
		return entities.Assessment{}, err
	}
	if mechanic.ID == "" || mechanic.Role != entities.UserRoleMechanic {
		log.Printf("[assessment][usecase] mechanic not found mechanic_id=%s", in.MechanicID)
		return entities.Assessment{}, ErrMechanicNotFound
	}

	workshop, err := u.workshopRepo.GetByID(ctx, in.WorkshopID)
	if err != nil {
		return entities.Assessment{}, err
	}
	if workshop.ID == "" {
		return entities.Assessment{}, ErrWorkshopNotFound
	}
	if mechanic.WorkshopID != workshop.ID {
		log.Printf("[assessment][usecase] mechanic outside workshop mechanic_id=%s mechanic_workshop=%s workshop_id=%s", mechanic.ID, mechanic.WorkshopID, workshop.ID)
		return entities.Assessment{}, ErrMechanicNotInWorkshop
	}

	now := time.Now().UTC()
	a := entities.Assessment{
		ID:           uuid.NewString(),
		VehicleID:    vehicle.ID,
		MechanicID:   mechanic.ID,
		WorkshopID:   workshop.ID,
		ClientID:     vehicle.ClientID,
		Status:       entities.AssessmentStatusPending,
		ClientStatus: entities.ClientStatusPendingReview,
		Tasks:        []entities.Task{},
		Notes:        strings.TrimSpace(in.Notes),
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[assessment][usecase] create failed vehicle_id=%s err=%v", in.VehicleID, err)
		return entities.Assessment{}, err
	}
	log.Printf("[assessment][usecase] assign success id=%s", created.ID)

	publish(ctx, u.events, entities.EventAssessmentCreated, created.ID, created.WorkshopID, map[string]string{
		"mechanic_id": created.MechanicID,
		"vehicle_id":  created.VehicleID,
	})
	return created, nil
}

func (u *AssessmentUseCase) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}

func (u *AssessmentUseCase) List(ctx context.Context, f AssessmentFilter) ([]entities.Assessment, error) {
	switch {
	case strings.TrimSpace(f.WorkshopID) != "":
		return u.repo.ListByWorkshopID(ctx, strings.TrimSpace(f.WorkshopID))
	case strings.TrimSpace(f.MechanicID) != "":
		return u.repo.ListByMechanicID(ctx, strings.TrimSpace(f.MechanicID))
	case strings.TrimSpace(f.VehicleID) != "":
		return u.repo.ListByVehicleID(ctx, strings.TrimSpace(f.VehicleID))
	case strings.TrimSpace(f.ClientID) != "":
		return u.repo.ListByClientID(ctx, strings.TrimSpace(f.ClientID))
	default:
		return nil, ErrMissingFilter
	}
}

func (u *AssessmentUseCase) UpdateStatus(ctx context.Context, id string, status entities.AssessmentStatus) (entities.Assessment, error) {
	if _, err := entities.ParseAssessmentStatus(string(status)); err != nil {
		return entities.Assessment{}, ErrInvalidAssessmentStatus
	}
	return u.update(ctx, id, func(a *entities.Assessment) error {
		if !a.Status.CanTransition(status) {
			log.Printf("[assessment][usecase] rejected transition id=%s from=%s to=%s", a.ID, a.Status, status)
			return ErrInvalidAssessmentStatus
		}
		a.Status = status
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (u *AssessmentUseCase) UpdateNotes(ctx context.Context, id string, notes string) (entities.Assessment, error) {
	return u.update(ctx, id, func(a *entities.Assessment) error {
		a.Notes = strings.TrimSpace(notes)
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (u *AssessmentUseCase) AddTask(ctx context.Context, id string, in NewTaskInput) (entities.Assessment, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.EstimatedPrice < 0 {
		return entities.Assessment{}, ErrInvalidTask
	}
	task := entities.Task{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Description:    strings.TrimSpace(in.Description),
		EstimatedPrice: entities.RoundMoney(in.EstimatedPrice),
		Status:         entities.TaskStatusProposed,
	}

	quoted, err := u.hasQuotation(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	return u.update(ctx, id, func(a *entities.Assessment) error {
		if err := checkEditable(a, quoted); err != nil {
			return err
		}
		a.Tasks = append(a.Tasks, task)
		if a.Status == entities.AssessmentStatusPending {
			a.Status = entities.AssessmentStatusInProgress
		}
		a.Refresh(time.Now().UTC())
		return nil
	})
}

// RemoveTask drops a task from the assessment. Removal is not a client
// response, so it never creates a work order even if it leaves no proposed
// tasks behind.
func (u *AssessmentUseCase) RemoveTask(ctx context.Context, id string, taskID string) (entities.Assessment, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Assessment{}, ErrInvalidTaskID
	}

	quoted, err := u.hasQuotation(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	return u.update(ctx, id, func(a *entities.Assessment) error {
		if err := checkEditable(a, quoted); err != nil {
			return err
		}
		i := a.FindTask(taskID)
		if i < 0 {
			return ErrTaskNotFound
		}
		a.Tasks = append(a.Tasks[:i:i], a.Tasks[i+1:]...)
		a.Refresh(time.Now().UTC())
		return nil
	})
}

func (u *AssessmentUseCase) hasQuotation(ctx context.Context, id string) (bool, error) {
	if u.quotationRepo == nil {
		return false, nil
	}
	q, err := u.quotationRepo.GetByAssessmentID(ctx, strings.TrimSpace(id))
	if err != nil {
		return false, err
	}
	return q.ID != "", nil
}

// checkEditable refuses task changes once a work order exists, and while a
// sent quotation is waiting on the client so its lines match the tasks.
func checkEditable(a *entities.Assessment, quoted bool) error {
	if a.Locked() {
		return ErrAssessmentLocked
	}
	if quoted && a.Status == entities.AssessmentStatusAwaitingClient {
		return ErrAssessmentQuoted
	}
	return nil
}

func (u *AssessmentUseCase) RespondToTask(ctx context.Context, id string, taskID string, decision entities.TaskDecision, clientID string) (TaskResponseResult, error) {
	id = strings.TrimSpace(id)
	taskID = strings.TrimSpace(taskID)
	if id == "" {
		return TaskResponseResult{}, ErrInvalidAssessmentID
	}
	if taskID == "" {
		return TaskResponseResult{}, ErrInvalidTaskID
	}
	if _, err := entities.ParseTaskDecision(string(decision)); err != nil {
		return TaskResponseResult{}, ErrInvalidTaskDecision
	}
	log.Printf("[assessment][usecase] respond start id=%s task_id=%s decision=%s", id, taskID, decision)

	var quotation entities.Quotation
	if u.quotationRepo != nil {
		q, err := u.quotationRepo.GetByAssessmentID(ctx, id)
		if err != nil {
			return TaskResponseResult{}, err
		}
		if q.ID != "" && q.Expired(time.Now().UTC()) {
			log.Printf("[assessment][usecase] quotation expired id=%s valid_until=%s", id, q.ValidUntil.Format(time.RFC3339))
			return TaskResponseResult{}, ErrQuotationExpired
		}
		quotation = q
	}

	var resolvedLast bool
	updated, err := u.update(ctx, id, func(a *entities.Assessment) error {
		if clientID != "" && a.ClientID != clientID {
			return ErrForbidden
		}
		i := a.FindTask(taskID)
		if i < 0 {
			return ErrTaskNotFound
		}
		if a.Tasks[i].Status != entities.TaskStatusProposed {
			return ErrTaskAlreadyResolved
		}
		now := time.Now().UTC()
		a.Tasks[i].Status = decision.Status()
		a.Tasks[i].RespondedAt = &now
		a.Refresh(now)
		resolvedLast = entities.CountTasks(a.Tasks).Proposed == 0
		return nil
	})
	if err != nil {
		log.Printf("[assessment][usecase] respond failed id=%s task_id=%s err=%v", id, taskID, err)
		return TaskResponseResult{}, err
	}
	log.Printf("[assessment][usecase] respond stored id=%s client_status=%s resolved_last=%t", id, updated.ClientStatus, resolvedLast)

	publish(ctx, u.events, entities.EventTaskResponded, updated.ID, updated.WorkshopID, map[string]string{
		"task_id":       taskID,
		"decision":      string(decision),
		"client_status": string(updated.ClientStatus),
	})

	result := TaskResponseResult{Assessment: updated}
	if !resolvedLast {
		return result, nil
	}

	if quotation.ID != "" {
		syncQuotationStatus(ctx, u.quotationRepo, quotation, updated.ClientStatus)
	}

	if entities.CountTasks(updated.Tasks).Accepted == 0 {
		return result, nil
	}

	wo, linked, err := createWorkOrder(ctx, u.workOrderRepo, u.repo, updated)
	if err != nil {
		log.Printf("[assessment][usecase] work order creation failed id=%s err=%v", id, err)
		return TaskResponseResult{}, fmt.Errorf("create work order: %w", err)
	}
	publish(ctx, u.events, entities.EventWorkOrderCreated, wo.ID, wo.WorkshopID, map[string]string{
		"assessment_id": wo.AssessmentID,
		"trigger":       "client_response",
	})
	result.Assessment = linked
	result.WorkOrder = &wo
	return result, nil
}

func (u *AssessmentUseCase) Delete(ctx context.Context, id string) error {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	log.Printf("[assessment][usecase] delete id=%s", a.ID)
	return u.repo.Delete(ctx, a.ID)
}

func (u *AssessmentUseCase) update(ctx context.Context, id string, mutate func(a *entities.Assessment) error) (entities.Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}
	return updateAssessment(ctx, u.repo, id, mutate)
}

// updateAssessment performs a versioned read-modify-write, re-reading and
// re-applying mutate when another writer got there first.
func updateAssessment(ctx context.Context, repo interfaces.IAssessmentRepository, id string, mutate func(a *entities.Assessment) error) (entities.Assessment, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		a, err := repo.GetByID(ctx, id)
		if err != nil {
			return entities.Assessment{}, err
		}
		if a.ID == "" {
			return entities.Assessment{}, ErrAssessmentNotFound
		}
		if err := mutate(&a); err != nil {
			return entities.Assessment{}, err
		}

		updated, err := repo.Update(ctx, a)
		if errors.Is(err, interfaces.ErrConcurrentUpdate) {
			log.Printf("[assessment][usecase] version conflict id=%s version=%d attempt=%d", id, a.Version, attempt)
			continue
		}
		if err != nil {
			return entities.Assessment{}, err
		}
		if updated.ID == "" {
			return entities.Assessment{}, ErrAssessmentNotFound
		}
		return updated, nil
	}
	return entities.Assessment{}, ErrConcurrentUpdate
}

func syncQuotationStatus(ctx context.Context, repo interfaces.IQuotationRepository, q entities.Quotation, cs entities.ClientStatus) {
	status, ok := entities.QuotationStatusFor(cs)
	if !ok || status == q.Status {
		return
	}
	if _, err := repo.UpdateStatus(ctx, q.ID, status); err != nil {
		log.Printf("[assessment][usecase] quotation status sync failed quotation_id=%s status=%s err=%v", q.ID, status, err)
	}
}

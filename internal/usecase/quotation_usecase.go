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
	ErrQuotationNotFound      = errors.New("quotation not found")
	ErrQuotationAlreadyExists = errors.New("quotation already exists for this assessment")
	ErrQuotationEmpty         = errors.New("assessment has no tasks to quote")
	ErrInvalidQuotationID     = errors.New("invalid quotation id")
	ErrInvalidQuotationPrice  = errors.New("invalid quotation price")
	ErrAssessmentNotCompleted = errors.New("assessment must be completed before quoting")
)

const defaultQuotationValidDays = 15

type CreateQuotationInput struct {
	AssessmentID string
	// Prices overrides the mechanic's estimate per task id. Tasks not listed
	// keep their estimated price.
	Prices       map[string]float64
	Notes        string
	ValidDays    int
}

// IQuotationUseCase covers the owner step of the workflow: pricing a completed
// assessment and sending it to the client.
type IQuotationUseCase interface {
	Create(ctx context.Context, in CreateQuotationInput) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo           interfaces.IQuotationRepository
	assessmentRepo interfaces.IAssessmentRepository
	events         interfaces.IEventPublisher
	taxRate        float64
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, assessmentRepo interfaces.IAssessmentRepository, events interfaces.IEventPublisher, taxRate float64) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, assessmentRepo: assessmentRepo, events: events, taxRate: taxRate}
}

func (u *QuotationUseCase) Create(ctx context.Context, in CreateQuotationInput) (entities.Quotation, error) {
	in.AssessmentID = strings.TrimSpace(in.AssessmentID)
	if in.AssessmentID == "" {
		return entities.Quotation{}, ErrInvalidAssessmentID
	}
	for _, p := range in.Prices {
		if p < 0 {
			return entities.Quotation{}, ErrInvalidQuotationPrice
		}
	}
	if in.ValidDays <= 0 {
		in.ValidDays = defaultQuotationValidDays
	}
	log.Printf("[quotation][usecase] create start assessment_id=%s prices=%d", in.AssessmentID, len(in.Prices))

	a, err := u.assessmentRepo.GetByID(ctx, in.AssessmentID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if a.ID == "" {
		return entities.Quotation{}, ErrAssessmentNotFound
	}
	if err := checkQuotable(&a, in.Prices); err != nil {
		return entities.Quotation{}, err
	}

	if existing, err := u.repo.GetByAssessmentID(ctx, a.ID); err != nil {
		return entities.Quotation{}, err
	} else if existing.ID != "" {
		return entities.Quotation{}, ErrQuotationAlreadyExists
	}

	applyPrices(&a, in.Prices)
	now := time.Now().UTC()
	subtotal := entities.SumTaskPrices(a.Tasks)
	tax, total := entities.TaxBreakdown(subtotal, u.taxRate)

	lines := make([]entities.QuotationLine, 0, len(a.Tasks))
	for _, t := range a.Tasks {
		lines = append(lines, entities.QuotationLine{TaskID: t.ID, Name: t.Name, Description: t.Description, Price: t.EstimatedPrice})
	}

	q := entities.Quotation{
		ID:           a.ID,
		AssessmentID: a.ID,
		WorkshopID:   a.WorkshopID,
		ClientID:     a.ClientID,
		Lines:        lines,
		Subtotal:     subtotal,
		TaxRate:      u.taxRate,
		Tax:          tax,
		Total:        total,
		Notes:        strings.TrimSpace(in.Notes),
		Status:       entities.QuotationStatusSent,
		ValidUntil:   now.AddDate(0, 0, in.ValidDays),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, q)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.Quotation{}, ErrQuotationAlreadyExists
	}
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = updateAssessment(ctx, u.assessmentRepo, a.ID, func(x *entities.Assessment) error {
		if err := checkQuotable(x, in.Prices); err != nil {
			return err
		}
		applyPrices(x, in.Prices)
		x.Status = entities.AssessmentStatusAwaitingClient
		x.UpdatedAt = now
		return nil
	})
	if err != nil {
		log.Printf("[quotation][usecase] assessment update failed quotation_id=%s err=%v", created.ID, err)
		if derr := u.repo.Delete(ctx, created.ID); derr != nil {
			log.Printf("[quotation][usecase] rollback failed quotation_id=%s err=%v", created.ID, derr)
		}
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] create success id=%s subtotal=%.2f total=%.2f", created.ID, created.Subtotal, created.Total)

	publish(ctx, u.events, entities.EventQuotationSent, created.ID, created.WorkshopID, map[string]string{
		"client_id": created.ClientID,
	})
	return created, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Quotation, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Quotation{}, ErrInvalidAssessmentID
	}

	q, err := u.repo.GetByAssessmentID(ctx, assessmentID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func checkQuotable(a *entities.Assessment, prices map[string]float64) error {
	if a.Status != entities.AssessmentStatusCompleted {
		return ErrAssessmentNotCompleted
	}
	if len(a.Tasks) == 0 {
		return ErrQuotationEmpty
	}
	for taskID := range prices {
		if a.FindTask(taskID) < 0 {
			return ErrTaskNotFound
		}
	}
	return nil
}

func applyPrices(a *entities.Assessment, prices map[string]float64) {
	for i := range a.Tasks {
		if p, ok := prices[a.Tasks[i].ID]; ok {
			a.Tasks[i].EstimatedPrice = entities.RoundMoney(p)
		}
	}
}

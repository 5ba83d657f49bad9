package usecase

import (
	"context"
	"errors"
	"sync"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
)

// In-memory repositories used by the workflow tests. They follow the same
// contract as the DynamoDB ones: zero value on not found, ErrAlreadyExists on
// duplicate keys and versioned assessment updates.

type memAssessmentRepo struct {
	mu    sync.Mutex
	items map[string]entities.Assessment
	// conflicts makes the next N Update calls fail with ErrConcurrentUpdate.
	conflicts int
	// failAt makes the Update call with that 1-based number fail with
	// errStorageDown.
	failAt  int
	updates int
}

var errStorageDown = errors.New("storage unavailable")

func newMemAssessmentRepo(items ...entities.Assessment) *memAssessmentRepo {
	r := &memAssessmentRepo{items: map[string]entities.Assessment{}}
	for _, a := range items {
		r.items[a.ID] = cloneAssessment(a)
	}
	return r
}

func cloneAssessment(a entities.Assessment) entities.Assessment {
	a.Tasks = append([]entities.Task(nil), a.Tasks...)
	return a
}

func (r *memAssessmentRepo) Create(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; ok {
		return entities.Assessment{}, interfaces.ErrAlreadyExists
	}
	r.items[a.ID] = cloneAssessment(a)
	return a, nil
}

func (r *memAssessmentRepo) GetByID(_ context.Context, id string) (entities.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAssessment(r.items[id]), nil
}

func (r *memAssessmentRepo) list(match func(entities.Assessment) bool) []entities.Assessment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.Assessment{}
	for _, a := range r.items {
		if match(a) {
			out = append(out, cloneAssessment(a))
		}
	}
	return out
}

func (r *memAssessmentRepo) ListByWorkshopID(_ context.Context, id string) ([]entities.Assessment, error) {
	return r.list(func(a entities.Assessment) bool { return a.WorkshopID == id }), nil
}

func (r *memAssessmentRepo) ListByMechanicID(_ context.Context, id string) ([]entities.Assessment, error) {
	return r.list(func(a entities.Assessment) bool { return a.MechanicID == id }), nil
}

func (r *memAssessmentRepo) ListByVehicleID(_ context.Context, id string) ([]entities.Assessment, error) {
	return r.list(func(a entities.Assessment) bool { return a.VehicleID == id }), nil
}

func (r *memAssessmentRepo) ListByClientID(_ context.Context, id string) ([]entities.Assessment, error) {
	return r.list(func(a entities.Assessment) bool { return a.ClientID == id }), nil
}

func (r *memAssessmentRepo) Update(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.failAt == r.updates {
		return entities.Assessment{}, errStorageDown
	}
	if r.conflicts > 0 {
		r.conflicts--
		return entities.Assessment{}, interfaces.ErrConcurrentUpdate
	}
	stored, ok := r.items[a.ID]
	if !ok {
		return entities.Assessment{}, nil
	}
	if stored.Version != a.Version {
		return entities.Assessment{}, interfaces.ErrConcurrentUpdate
	}
	a.Version++
	r.items[a.ID] = cloneAssessment(a)
	return cloneAssessment(a), nil
}

func (r *memAssessmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type memWorkOrderRepo struct {
	mu      sync.Mutex
	items   map[string]entities.WorkOrder
	creates int
}

func newMemWorkOrderRepo() *memWorkOrderRepo {
	return &memWorkOrderRepo{items: map[string]entities.WorkOrder{}}
}

func (r *memWorkOrderRepo) Create(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[w.ID]; ok {
		return entities.WorkOrder{}, interfaces.ErrAlreadyExists
	}
	r.creates++
	r.items[w.ID] = w
	return w, nil
}

func (r *memWorkOrderRepo) GetByID(_ context.Context, id string) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memWorkOrderRepo) ListByWorkshopID(_ context.Context, id string) ([]entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.WorkOrder{}
	for _, w := range r.items {
		if w.WorkshopID == id {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *memWorkOrderRepo) ListByMechanicID(_ context.Context, id string) ([]entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.WorkOrder{}
	for _, w := range r.items {
		if w.MechanicID == id {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *memWorkOrderRepo) Update(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[w.ID]; !ok {
		return entities.WorkOrder{}, nil
	}
	r.items[w.ID] = w
	return w, nil
}

type memQuotationRepo struct {
	mu    sync.Mutex
	items map[string]entities.Quotation
}

func newMemQuotationRepo(items ...entities.Quotation) *memQuotationRepo {
	r := &memQuotationRepo{items: map[string]entities.Quotation{}}
	for _, q := range items {
		r.items[q.ID] = q
	}
	return r
}

func (r *memQuotationRepo) Create(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[q.ID]; ok {
		return entities.Quotation{}, interfaces.ErrAlreadyExists
	}
	r.items[q.ID] = q
	return q, nil
}

func (r *memQuotationRepo) GetByID(_ context.Context, id string) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memQuotationRepo) GetByAssessmentID(_ context.Context, assessmentID string) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.items {
		if q.AssessmentID == assessmentID {
			return q, nil
		}
	}
	return entities.Quotation{}, nil
}

func (r *memQuotationRepo) UpdateStatus(_ context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.items[id]
	if !ok {
		return entities.Quotation{}, nil
	}
	q.Status = status
	r.items[id] = q
	return q, nil
}

func (r *memQuotationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e entities.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) count(t entities.EventType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

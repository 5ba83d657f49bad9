package repository

import (
	"context"
	"log"
	"time"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

const workshopListKey = "workshops:all"

// CachedWorkshopRepository keeps workshops in an in-process cache. Workshops
// are read on almost every request to check ownership and change rarely.
// Any write drops the whole cache.
type CachedWorkshopRepository struct {
	next  interfaces.IWorkshopRepository
	cache *gocache.Cache
}

var _ interfaces.IWorkshopRepository = (*CachedWorkshopRepository)(nil)

func NewCachedWorkshopRepository(next interfaces.IWorkshopRepository, ttl time.Duration) *CachedWorkshopRepository {
	return &CachedWorkshopRepository{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (r *CachedWorkshopRepository) Create(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	out, err := r.next.Create(ctx, w)
	if err == nil {
		r.cache.Flush()
	}
	return out, err
}

func (r *CachedWorkshopRepository) GetByID(ctx context.Context, id string) (entities.Workshop, error) {
	key := "workshop:" + id
	if v, ok := r.cache.Get(key); ok {
		return v.(entities.Workshop), nil
	}
	w, err := r.next.GetByID(ctx, id)
	if err != nil {
		return entities.Workshop{}, err
	}
	if w.ID != "" {
		r.cache.SetDefault(key, w)
	}
	return w, nil
}

func (r *CachedWorkshopRepository) List(ctx context.Context) ([]entities.Workshop, error) {
	if v, ok := r.cache.Get(workshopListKey); ok {
		return v.([]entities.Workshop), nil
	}
	list, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(workshopListKey, list)
	return list, nil
}

func (r *CachedWorkshopRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Workshop, error) {
	return r.next.ListByOwnerID(ctx, ownerID)
}

func (r *CachedWorkshopRepository) Update(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	out, err := r.next.Update(ctx, w)
	if err == nil {
		r.cache.Flush()
	}
	return out, err
}

func (r *CachedWorkshopRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[workshop][cache] flushed after delete workshop_id=%s", id)
	r.cache.Flush()
	return nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"star-dog-walker/internal/domain/walks"
)

type walkRepo struct {
	mu   sync.RWMutex
	byID map[string]walks.Walk
}

func NewWalkRepo() walks.Repository {
	return &walkRepo{
		byID: make(map[string]walks.Walk),
	}
}

func (r *walkRepo) Create(ctx context.Context, w walks.Walk) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(w.ID) == "" {
		return errors.New("walk id required")
	}
	if _, exists := r.byID[w.ID]; exists {
		return errors.New("walk already exists")
	}
	r.byID[w.ID] = cloneWalk(w)
	return nil
}

func (r *walkRepo) Update(ctx context.Context, w walks.Walk) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(w.ID) == "" {
		return errors.New("walk id required")
	}
	if _, exists := r.byID[w.ID]; !exists {
		return ErrNotFound
	}
	r.byID[w.ID] = cloneWalk(w)
	return nil
}

func (r *walkRepo) GetByID(ctx context.Context, id string) (walks.Walk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.byID[id]
	if !ok {
		return walks.Walk{}, ErrNotFound
	}
	return cloneWalk(w), nil
}

func (r *walkRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *walkRepo) ListByOwner(ctx context.Context, ownerID string) ([]walks.Walk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]walks.Walk, 0)
	for _, w := range r.byID {
		if w.OwnerID == ownerID {
			out = append(out, cloneWalk(w))
		}
	}
	sortWalks(out)
	return out, nil
}

func (r *walkRepo) ListAll(ctx context.Context) ([]walks.Walk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]walks.Walk, 0, len(r.byID))
	for _, w := range r.byID {
		out = append(out, cloneWalk(w))
	}
	sortWalks(out)
	return out, nil
}

func sortWalks(out []walks.Walk) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}

// cloneWalk copia el slice de fotos: Walk es el único agregado con un
// campo mutable por referencia, y el map comparte memoria con los callers.
func cloneWalk(w walks.Walk) walks.Walk {
	if w.Photos != nil {
		photos := make([]string, len(w.Photos))
		copy(photos, w.Photos)
		w.Photos = photos
	}
	return w
}

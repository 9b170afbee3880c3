package cart

import (
	"sync"
)

// Repository stores cart lines keyed by cart id. A missing cart reads as
// empty; only Save creates rows.
type Repository interface {
	Get(cartID string) ([]Line, error)
	Save(cartID string, lines []Line) error
	Delete(cartID string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]Line)}
}

func (r *InMemoryRepository) Get(cartID string) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := r.carts[cartID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (r *InMemoryRepository) Save(cartID string, lines []Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]Line, len(lines))
	copy(stored, lines)
	r.carts[cartID] = stored
	return nil
}

func (r *InMemoryRepository) Delete(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}

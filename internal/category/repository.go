package category

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound = errors.New("category not found")
)

// Repository provides read access to category rows and the per-category
// filter configuration.
type Repository interface {
	List() ([]Category, error)
	GetByID(id int) (Category, error)
	// FilterAttributes returns the category's filterable attribute
	// configuration ordered by display order.
	FilterAttributes(categoryID int) ([]FilterAttribute, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
	filters    []FilterAttribute
}

func NewInMemoryRepository(categories []Category, filters []FilterAttribute) *InMemoryRepository {
	return &InMemoryRepository{
		categories: append([]Category(nil), categories...),
		filters:    append([]FilterAttribute(nil), filters...),
	}
}

func (r *InMemoryRepository) List() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) FilterAttributes(categoryID int) ([]FilterAttribute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]FilterAttribute, 0)
	for _, f := range r.filters {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

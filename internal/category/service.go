package category

import (
	"go.uber.org/zap"

	"github.com/maderoluz/biochimeneas-backend/internal/logger"
)

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all categories; a gateway failure degrades to an empty
// list.
func (s *Service) List() []Category {
	categories, err := s.repo.List()
	if err != nil {
		logger.Get().Error("category list failed", zap.Error(err))
		return []Category{}
	}
	return categories
}

// Get returns one category. ErrNotFound passes through so the handler can
// distinguish an absent category from a gateway failure.
func (s *Service) Get(id int) (Category, error) {
	return s.repo.GetByID(id)
}

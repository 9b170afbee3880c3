package cart

import (
	"errors"

	"github.com/maderoluz/biochimeneas-backend/internal/catalog"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductSource supplies the product snapshot taken when a line is added.
type ProductSource interface {
	GetBySKU(sku string) (catalog.Product, error)
}

// Service orchestrates cart operations.
type Service struct {
	repo     Repository
	products ProductSource
}

func NewService(repo Repository, products ProductSource) *Service {
	return &Service{repo: repo, products: products}
}

// Get returns the cart's lines; an unknown cart id reads as empty.
func (s *Service) Get(cartID string) ([]Line, error) {
	return s.repo.Get(cartID)
}

// Add puts one unit of a product in the cart. An existing line for the SKU
// is incremented; otherwise the product is snapshotted into a new line
// with quantity 1.
func (s *Service) Add(cartID string, sku string) ([]Line, error) {
	lines, err := s.repo.Get(cartID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].Product.SKU == sku {
			lines[i].Quantity++
			return lines, s.repo.Save(cartID, lines)
		}
	}

	p, err := s.products.GetBySKU(sku)
	if err != nil {
		if err == catalog.ErrNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	lines = append(lines, Line{Product: p, Quantity: 1})
	return lines, s.repo.Save(cartID, lines)
}

// SetQuantity sets a line's quantity; zero or below removes the line.
func (s *Service) SetQuantity(cartID string, sku string, quantity int) ([]Line, error) {
	lines, err := s.repo.Get(cartID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].Product.SKU != sku {
			continue
		}
		if quantity <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity = quantity
		}
		return lines, s.repo.Save(cartID, lines)
	}
	return lines, nil
}

// Remove deletes a line regardless of quantity.
func (s *Service) Remove(cartID string, sku string) ([]Line, error) {
	return s.SetQuantity(cartID, sku, 0)
}

// Clear empties the cart.
func (s *Service) Clear(cartID string) error {
	return s.repo.Delete(cartID)
}

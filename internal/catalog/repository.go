package catalog

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository provides read access to the product gateway. All methods are
// queries; this service never writes product data.
type Repository interface {
	// Search returns active products matching the selection within a
	// category, plus the exact match count. Attribute filters are not
	// applied here; the service applies them after the fetch.
	Search(sel Selection, categoryID int) ([]Product, int, error)
	// GetBySKU returns the bare product row without images or attributes.
	GetBySKU(sku string) (Product, error)
	// ActiveByCategory returns the active products of a category.
	ActiveByCategory(categoryID int) ([]Product, error)
	// Siblings returns active products sharing a parent SKU, excluding
	// excludeSKU.
	Siblings(parentSKU string, excludeSKU string) ([]Product, error)
	// Related returns active products of a category excluding excludeSKU,
	// newest first.
	Related(categoryID int, excludeSKU string, limit int) ([]Product, error)
	// Featured returns the newest active products of a super category.
	Featured(superCategoryID int, limit int) ([]Product, error)
	// ImagesBySKUs returns images for the given SKUs in ascending display
	// order.
	ImagesBySKUs(skus []string) ([]ProductImage, error)
	// AttributeValues returns non-null attribute values for the given SKUs
	// restricted to the given attribute ids.
	AttributeValues(skus []string, attributeIDs []int) ([]AttributeValue, error)
	// DiscriminatorValues returns the variant-discriminating attribute
	// values for the given SKUs.
	DiscriminatorValues(skus []string) ([]AttributeValue, error)
	// AttributeTypes returns the attribute types for the given ids.
	AttributeTypes(attributeIDs []int) ([]AttributeType, error)
	// AttributesBySKU returns every attribute value of one product with
	// the attribute type name attached.
	AttributesBySKU(sku string) ([]AttributeValue, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	images   []ProductImage
	values   []AttributeValue
	types    []AttributeType
}

func NewInMemoryRepository(products []Product, images []ProductImage, values []AttributeValue, types []AttributeType) *InMemoryRepository {
	return &InMemoryRepository{
		products: append([]Product(nil), products...),
		images:   append([]ProductImage(nil), images...),
		values:   append([]AttributeValue(nil), values...),
		types:    append([]AttributeType(nil), types...),
	}
}

func (r *InMemoryRepository) Search(sel Selection, categoryID int) ([]Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.products {
		if !p.Active || p.CategoryID != categoryID {
			continue
		}
		// a missing sale price never matches the range, as in the gateway
		if p.SalePrice == nil || *p.SalePrice < sel.PriceMin || *p.SalePrice > sel.PriceMax {
			continue
		}
		if len(sel.Brands) > 0 {
			if p.Brand == nil || !containsString(sel.Brands, *p.Brand) {
				continue
			}
		}
		if sel.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(sel.Query)) {
			continue
		}
		out = append(out, p)
	}

	switch sel.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return *out[i].SalePrice < *out[j].SalePrice })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return *out[i].SalePrice > *out[j].SalePrice })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}
	return out, len(out), nil
}

func (r *InMemoryRepository) GetBySKU(sku string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ActiveByCategory(categoryID int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.products {
		if p.Active && p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Siblings(parentSKU string, excludeSKU string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.products {
		if !p.Active || p.SKU == excludeSKU {
			continue
		}
		if p.ParentSKU != nil && *p.ParentSKU == parentSKU {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Related(categoryID int, excludeSKU string, limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.products {
		if p.Active && p.CategoryID == categoryID && p.SKU != excludeSKU {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) Featured(superCategoryID int, limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.products {
		if p.Active && p.SuperCategoryID != nil && *p.SuperCategoryID == superCategoryID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) ImagesBySKUs(skus []string) ([]ProductImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ProductImage, 0)
	for _, img := range r.images {
		if containsString(skus, img.SKU) {
			out = append(out, img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *InMemoryRepository) AttributeValues(skus []string, attributeIDs []int) ([]AttributeValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]AttributeValue, 0)
	for _, v := range r.values {
		if v.Value == nil {
			continue
		}
		if containsString(skus, v.SKU) && containsInt(attributeIDs, v.AttributeID) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) DiscriminatorValues(skus []string) ([]AttributeValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]AttributeValue, 0)
	for _, v := range r.values {
		if v.VariantDiscriminator && containsString(skus, v.SKU) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) AttributeTypes(attributeIDs []int) ([]AttributeType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]AttributeType, 0)
	for _, t := range r.types {
		if containsInt(attributeIDs, t.AttributeID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) AttributesBySKU(sku string) ([]AttributeValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make(map[int]string, len(r.types))
	for _, t := range r.types {
		names[t.AttributeID] = t.Name
	}
	out := make([]AttributeValue, 0)
	for _, v := range r.values {
		if v.SKU == sku {
			v.Name = names[v.AttributeID]
			out = append(out, v)
		}
	}
	return out, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}

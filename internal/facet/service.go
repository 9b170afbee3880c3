package facet

import (
	"sort"

	"go.uber.org/zap"

	"github.com/maderoluz/biochimeneas-backend/internal/catalog"
	"github.com/maderoluz/biochimeneas-backend/internal/category"
	"github.com/maderoluz/biochimeneas-backend/internal/logger"
)

// ProductSource is the slice of the catalog repository the facet loader
// needs.
type ProductSource interface {
	ActiveByCategory(categoryID int) ([]catalog.Product, error)
	AttributeTypes(attributeIDs []int) ([]catalog.AttributeType, error)
	AttributeValues(skus []string, attributeIDs []int) ([]catalog.AttributeValue, error)
}

// FilterConfigSource provides the per-category filter configuration.
type FilterConfigSource interface {
	FilterAttributes(categoryID int) ([]category.FilterAttribute, error)
}

// Service derives the filter sidebar for a category: brand counts plus the
// configured attribute facets, restricted to values that actually occur
// among the category's active products.
type Service struct {
	products ProductSource
	config   FilterConfigSource
}

func NewService(products ProductSource, config FilterConfigSource) *Service {
	return &Service{products: products, config: config}
}

// Load computes the facets for one category. Gateway failures are logged
// and degrade to empty facets.
func (s *Service) Load(categoryID int) Facets {
	products, err := s.products.ActiveByCategory(categoryID)
	if err != nil {
		logger.Get().Error("facet product fetch failed", zap.Int("categoryId", categoryID), zap.Error(err))
		return Empty()
	}
	if len(products) == 0 {
		return Empty()
	}

	out := Empty()
	out.Brands = brandFacets(products)

	config, err := s.config.FilterAttributes(categoryID)
	if err != nil {
		logger.Get().Error("facet config fetch failed", zap.Int("categoryId", categoryID), zap.Error(err))
		return out
	}
	if len(config) == 0 {
		return out
	}

	attributeIDs := make([]int, 0, len(config))
	for _, f := range config {
		attributeIDs = append(attributeIDs, f.AttributeID)
	}

	types, err := s.products.AttributeTypes(attributeIDs)
	if err != nil {
		logger.Get().Error("facet type fetch failed", zap.Int("categoryId", categoryID), zap.Error(err))
		return out
	}

	skus := make([]string, 0, len(products))
	for _, p := range products {
		skus = append(skus, p.SKU)
	}
	values, err := s.products.AttributeValues(skus, attributeIDs)
	if err != nil {
		logger.Get().Error("facet value fetch failed", zap.Int("categoryId", categoryID), zap.Error(err))
		return out
	}

	out.Attributes = attributeFacets(config, types, values)
	return out
}

func brandFacets(products []catalog.Product) []BrandFacet {
	counts := make(map[string]int)
	for _, p := range products {
		if p.Brand == nil || *p.Brand == "" {
			continue
		}
		counts[*p.Brand]++
	}

	out := make([]BrandFacet, 0, len(counts))
	for name, count := range counts {
		out = append(out, BrandFacet{Name: name, Count: count})
	}
	// count descending, name ascending on ties so output is deterministic
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func attributeFacets(config []category.FilterAttribute, types []catalog.AttributeType, values []catalog.AttributeValue) []AttributeFacet {
	names := make(map[int]string, len(types))
	for _, t := range types {
		names[t.AttributeID] = t.Name
	}

	byAttribute := make(map[int]map[string]int)
	for _, v := range values {
		if v.Value == nil || *v.Value == "" {
			continue
		}
		if byAttribute[v.AttributeID] == nil {
			byAttribute[v.AttributeID] = make(map[string]int)
		}
		byAttribute[v.AttributeID][*v.Value]++
	}

	// config is already in display order; attribute types with no
	// qualifying values are dropped entirely
	out := make([]AttributeFacet, 0, len(config))
	for _, f := range config {
		counts := byAttribute[f.AttributeID]
		if len(counts) == 0 {
			continue
		}
		facetValues := make([]Value, 0, len(counts))
		for value, count := range counts {
			facetValues = append(facetValues, Value{Value: value, Count: count})
		}
		sort.SliceStable(facetValues, func(i, j int) bool {
			if facetValues[i].Count != facetValues[j].Count {
				return facetValues[i].Count > facetValues[j].Count
			}
			return facetValues[i].Value < facetValues[j].Value
		})
		out = append(out, AttributeFacet{
			AttributeID: f.AttributeID,
			Name:        names[f.AttributeID],
			Values:      facetValues,
		})
	}
	return out
}

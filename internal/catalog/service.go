package catalog

import (
	"go.uber.org/zap"

	"github.com/maderoluz/biochimeneas-backend/internal/logger"
)

const (
	featuredSuperCategoryID = 570
	featuredLimit           = 6
	defaultRelatedLimit     = 4
)

// Service orchestrates catalog reads. Gateway failures are logged and
// degrade to empty results; they never propagate past the service.
type Service struct {
	repo              Repository
	defaultCategoryID int
}

func NewService(repo Repository, defaultCategoryID int) *Service {
	return &Service{repo: repo, defaultCategoryID: defaultCategoryID}
}

// ListResult is the lister's output. TotalCount is the match count of the
// gateway query and is taken before the local attribute filter runs, so it
// can exceed len(Products) when attribute filters are active.
type ListResult struct {
	Products   []Product `json:"products"`
	TotalCount int       `json:"totalCount"`
}

// List returns the active products matching the selection. A categoryID of
// zero falls back to the storefront's default category.
func (s *Service) List(sel Selection, categoryID int) ListResult {
	if categoryID == 0 {
		categoryID = s.defaultCategoryID
	}

	products, total, err := s.repo.Search(sel, categoryID)
	if err != nil {
		logger.Get().Error("catalog search failed", zap.Int("categoryId", categoryID), zap.Error(err))
		return ListResult{Products: []Product{}}
	}
	if len(products) == 0 {
		return ListResult{Products: []Product{}, TotalCount: total}
	}

	s.attachImages(products)

	if sel.HasAttributeFilters() {
		skus := skusOf(products)
		values, err := s.repo.AttributeValues(skus, sel.SelectedAttributeIDs())
		if err != nil {
			logger.Get().Error("attribute fetch failed", zap.Error(err))
			return ListResult{Products: []Product{}, TotalCount: total}
		}
		attachAttributes(products, values)
		products = FilterByAttributes(products, sel.Attributes)
	}

	return ListResult{Products: products, TotalCount: total}
}

// Get returns one product with its images and named attributes attached.
func (s *Service) Get(sku string) (Product, error) {
	p, err := s.repo.GetBySKU(sku)
	if err != nil {
		return Product{}, err
	}

	images, err := s.repo.ImagesBySKUs([]string{sku})
	if err != nil {
		logger.Get().Error("image fetch failed", zap.String("sku", sku), zap.Error(err))
	} else {
		p.Images = images
	}

	attrs, err := s.repo.AttributesBySKU(sku)
	if err != nil {
		logger.Get().Error("attribute fetch failed", zap.String("sku", sku), zap.Error(err))
	} else {
		p.Attributes = attrs
	}
	return p, nil
}

// Featured returns the newest active products of the main super category,
// images attached.
func (s *Service) Featured() []Product {
	products, err := s.repo.Featured(featuredSuperCategoryID, featuredLimit)
	if err != nil {
		logger.Get().Error("featured fetch failed", zap.Error(err))
		return []Product{}
	}
	s.attachImages(products)
	return products
}

// Related returns active products sharing the category of sku, excluding
// sku itself, newest first.
func (s *Service) Related(sku string, limit int) []Product {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	p, err := s.repo.GetBySKU(sku)
	if err != nil {
		if err != ErrNotFound {
			logger.Get().Error("related lookup failed", zap.String("sku", sku), zap.Error(err))
		}
		return []Product{}
	}

	products, err := s.repo.Related(p.CategoryID, sku, limit)
	if err != nil {
		logger.Get().Error("related fetch failed", zap.String("sku", sku), zap.Error(err))
		return []Product{}
	}
	s.attachImages(products)
	return products
}

func (s *Service) attachImages(products []Product) {
	if len(products) == 0 {
		return
	}
	images, err := s.repo.ImagesBySKUs(skusOf(products))
	if err != nil {
		logger.Get().Error("image fetch failed", zap.Error(err))
		return
	}
	bySKU := make(map[string][]ProductImage, len(products))
	for _, img := range images {
		bySKU[img.SKU] = append(bySKU[img.SKU], img)
	}
	for i := range products {
		products[i].Images = bySKU[products[i].SKU]
	}
}

func attachAttributes(products []Product, values []AttributeValue) {
	bySKU := make(map[string][]AttributeValue, len(products))
	for _, v := range values {
		bySKU[v.SKU] = append(bySKU[v.SKU], v)
	}
	for i := range products {
		products[i].Attributes = bySKU[products[i].SKU]
	}
}

// FilterByAttributes keeps the products that, for every attribute id with a
// non-empty selected set, carry at least one selected value: a logical AND
// across attribute types and OR within a type's values.
func FilterByAttributes(products []Product, selected map[int][]string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesAttributeSelection(p, selected) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAttributeSelection(p Product, selected map[int][]string) bool {
	for attributeID, values := range selected {
		if len(values) == 0 {
			continue
		}
		matched := false
		for _, attr := range p.Attributes {
			if attr.AttributeID != attributeID || attr.Value == nil {
				continue
			}
			if containsString(values, *attr.Value) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func skusOf(products []Product) []string {
	skus := make([]string, 0, len(products))
	for _, p := range products {
		skus = append(skus, p.SKU)
	}
	return skus
}

package variant

import (
	"go.uber.org/zap"

	"github.com/maderoluz/biochimeneas-backend/internal/catalog"
	"github.com/maderoluz/biochimeneas-backend/internal/logger"
)

// ProductSource is the slice of the catalog repository the resolver needs.
type ProductSource interface {
	GetBySKU(sku string) (catalog.Product, error)
	Siblings(parentSKU string, excludeSKU string) ([]catalog.Product, error)
	ImagesBySKUs(skus []string) ([]catalog.ProductImage, error)
	DiscriminatorValues(skus []string) ([]catalog.AttributeValue, error)
	AttributeTypes(attributeIDs []int) ([]catalog.AttributeType, error)
}

// Swatch is one sibling shown as a clickable thumbnail.
type Swatch struct {
	SKU     string  `json:"sku"`
	Name    string  `json:"name"`
	Image   *string `json:"image,omitempty"`
	Current bool    `json:"current"`
}

// Picker is the variant UI payload for a product page.
type Picker struct {
	Mode      Mode       `json:"mode"`
	Swatches  []Swatch   `json:"swatches,omitempty"`
	Selectors []Selector `json:"selectors,omitempty"`
}

type Service struct {
	repo ProductSource
}

func NewService(repo ProductSource) *Service {
	return &Service{repo: repo}
}

// Picker loads the sibling group of a SKU and builds the variant UI for
// it: nothing for 0-1 siblings, thumbnails for 2-6, one selector per
// discriminator attribute beyond that.
func (s *Service) Picker(sku string) (Picker, error) {
	current, err := s.repo.GetBySKU(sku)
	if err != nil {
		return Picker{}, err
	}
	if current.ParentSKU == nil {
		return Picker{Mode: ModeNone}, nil
	}

	siblings, err := s.repo.Siblings(*current.ParentSKU, sku)
	if err != nil {
		logger.Get().Error("sibling fetch failed", zap.String("sku", sku), zap.Error(err))
		return Picker{Mode: ModeNone}, nil
	}

	switch PickerMode(len(siblings)) {
	case ModeSwatches:
		return Picker{Mode: ModeSwatches, Swatches: s.swatches(current, siblings)}, nil
	case ModeSelectors:
		return Picker{Mode: ModeSelectors, Selectors: s.selectors(current, siblings)}, nil
	default:
		return Picker{Mode: ModeNone}, nil
	}
}

// Resolve matches the selected attribute values against the sibling
// group of a SKU.
func (s *Service) Resolve(sku string, selections map[int]string) (Resolution, error) {
	current, err := s.repo.GetBySKU(sku)
	if err != nil {
		return Resolution{}, err
	}
	if current.ParentSKU == nil {
		return Resolution{}, nil
	}

	siblings, err := s.repo.Siblings(*current.ParentSKU, sku)
	if err != nil {
		logger.Get().Error("sibling fetch failed", zap.String("sku", sku), zap.Error(err))
		return Resolution{}, nil
	}

	rows, err := s.repo.DiscriminatorValues(groupSKUs(current, siblings))
	if err != nil {
		logger.Get().Error("discriminator fetch failed", zap.String("sku", sku), zap.Error(err))
		return Resolution{}, nil
	}
	return Resolve(sku, rows, selections), nil
}

func (s *Service) swatches(current catalog.Product, siblings []catalog.Product) []Swatch {
	group := append([]catalog.Product{current}, siblings...)
	skus := make([]string, 0, len(group))
	for _, p := range group {
		skus = append(skus, p.SKU)
	}

	primary := make(map[string]string)
	images, err := s.repo.ImagesBySKUs(skus)
	if err != nil {
		logger.Get().Error("swatch image fetch failed", zap.Error(err))
	} else {
		// rows arrive in ascending display order; keep the first per SKU
		for _, img := range images {
			if _, ok := primary[img.SKU]; !ok {
				primary[img.SKU] = img.URL
			}
		}
	}

	out := make([]Swatch, 0, len(group))
	for _, p := range group {
		sw := Swatch{SKU: p.SKU, Name: p.Name, Current: p.SKU == current.SKU}
		if url, ok := primary[p.SKU]; ok {
			sw.Image = &url
		}
		out = append(out, sw)
	}
	return out
}

func (s *Service) selectors(current catalog.Product, siblings []catalog.Product) []Selector {
	rows, err := s.repo.DiscriminatorValues(groupSKUs(current, siblings))
	if err != nil {
		logger.Get().Error("discriminator fetch failed", zap.String("sku", current.SKU), zap.Error(err))
		return []Selector{}
	}

	ids := make([]int, 0)
	for _, row := range rows {
		if !containsInt(ids, row.AttributeID) {
			ids = append(ids, row.AttributeID)
		}
	}
	names := make(map[int]string, len(ids))
	types, err := s.repo.AttributeTypes(ids)
	if err != nil {
		logger.Get().Error("attribute type fetch failed", zap.Error(err))
	} else {
		for _, t := range types {
			names[t.AttributeID] = t.Name
		}
	}
	return BuildSelectors(current.SKU, rows, names)
}

func groupSKUs(current catalog.Product, siblings []catalog.Product) []string {
	skus := make([]string, 0, len(siblings)+1)
	skus = append(skus, current.SKU)
	for _, p := range siblings {
		skus = append(skus, p.SKU)
	}
	return skus
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}

package catalog

// Sort orders accepted by the lister.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

const (
	defaultPriceMin = 0
	defaultPriceMax = 5000
)

// Selection holds the customer's current filter state for a listing page:
// price range, brand set, attribute-value sets keyed by attribute id,
// free-text query and sort order. It is a plain state container with no
// I/O.
type Selection struct {
	PriceMin   float64          `json:"priceMin"`
	PriceMax   float64          `json:"priceMax"`
	Brands     []string         `json:"brands"`
	Attributes map[int][]string `json:"attributes"`
	Query      string           `json:"query"`
	Sort       string           `json:"sort"`
}

// DefaultSelection returns the state a listing page starts with.
func DefaultSelection() Selection {
	return Selection{
		PriceMin:   defaultPriceMin,
		PriceMax:   defaultPriceMax,
		Brands:     []string{},
		Attributes: map[int][]string{},
		Query:      "",
		Sort:       SortNewest,
	}
}

func (s *Selection) SetPriceRange(min, max float64) {
	s.PriceMin = min
	s.PriceMax = max
}

// ToggleBrand adds the brand when absent and removes it when present.
func (s *Selection) ToggleBrand(brand string) {
	for i, b := range s.Brands {
		if b == brand {
			s.Brands = append(s.Brands[:i], s.Brands[i+1:]...)
			return
		}
	}
	s.Brands = append(s.Brands, brand)
}

// ToggleAttribute adds the value to the attribute's selected set when
// absent and removes it when present.
func (s *Selection) ToggleAttribute(attributeID int, value string) {
	if s.Attributes == nil {
		s.Attributes = map[int][]string{}
	}
	current := s.Attributes[attributeID]
	for i, v := range current {
		if v == value {
			s.Attributes[attributeID] = append(current[:i], current[i+1:]...)
			return
		}
	}
	s.Attributes[attributeID] = append(current, value)
}

func (s *Selection) SetQuery(q string) {
	s.Query = q
}

// SetSort applies a sort order; unknown values fall back to newest.
func (s *Selection) SetSort(sort string) {
	switch sort {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortName:
		s.Sort = sort
	default:
		s.Sort = SortNewest
	}
}

// Reset restores every field to the documented defaults.
func (s *Selection) Reset() {
	*s = DefaultSelection()
}

// HasAttributeFilters reports whether any attribute has a non-empty
// selected value set.
func (s Selection) HasAttributeFilters() bool {
	for _, values := range s.Attributes {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// SelectedAttributeIDs returns the ids of attributes with at least one
// selected value.
func (s Selection) SelectedAttributeIDs() []int {
	ids := make([]int, 0, len(s.Attributes))
	for id, values := range s.Attributes {
		if len(values) > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

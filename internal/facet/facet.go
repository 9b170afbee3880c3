package facet

// BrandFacet is one brand with the number of active category products
// carrying it.
type BrandFacet struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Value is one attribute value with its product count.
type Value struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// AttributeFacet is a filterable attribute type with its occurring values.
// Values is never empty: attribute types with no qualifying values are
// dropped before they reach the response.
type AttributeFacet struct {
	AttributeID int     `json:"attributeId"`
	Name        string  `json:"attributeName"`
	Values      []Value `json:"values"`
}

// Facets is the full filter sidebar payload for one category.
type Facets struct {
	Brands     []BrandFacet     `json:"brands"`
	Attributes []AttributeFacet `json:"attributes"`
}

// Empty returns facets with no brands and no attributes.
func Empty() Facets {
	return Facets{Brands: []BrandFacet{}, Attributes: []AttributeFacet{}}
}

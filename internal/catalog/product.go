package catalog

// Product is a typed view of a `products` row. Nullable columns map to
// pointers; JSON tags follow the camelCase convention used elsewhere in
// the project.
type Product struct {
	SKU              string           `json:"sku"`
	ParentSKU        *string          `json:"parentSku,omitempty"`
	Name             string           `json:"name"`
	ShortDescription *string          `json:"shortDescription,omitempty"`
	LongDescription  *string          `json:"longDescription,omitempty"`
	ListPrice        *float64         `json:"listPrice,omitempty"`
	SalePrice        *float64         `json:"salePrice,omitempty"`
	CategoryID       int              `json:"categoryId"`
	SuperCategoryID  *int             `json:"superCategoryId,omitempty"`
	Height           *float64         `json:"height,omitempty"`
	Width            *float64         `json:"width,omitempty"`
	Depth            *float64         `json:"depth,omitempty"`
	Weight           *float64         `json:"weight,omitempty"`
	EAN              *string          `json:"ean,omitempty"`
	Brand            *string          `json:"brand,omitempty"`
	Active           bool             `json:"active"`
	StockStatus      *string          `json:"stockStatus,omitempty"`
	CreatedAt        string           `json:"createdAt,omitempty"`
	UpdatedAt        string           `json:"updatedAt,omitempty"`
	Images           []ProductImage   `json:"images,omitempty"`
	Attributes       []AttributeValue `json:"attributes,omitempty"`
}

// EffectivePrice is the price shown to the customer: sale price when set,
// list price otherwise, zero when neither exists.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	if p.ListPrice != nil {
		return *p.ListPrice
	}
	return 0
}

// PrimaryImage returns the first image by display order, or nil.
func (p Product) PrimaryImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0]
}

// ProductImage maps a `product_images` row. Rows are kept in ascending
// display order; the first one is the primary thumbnail.
type ProductImage struct {
	SKU   string `json:"sku"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// AttributeType maps a `product_attribute_types` row.
type AttributeType struct {
	AttributeID int    `json:"attributeId"`
	Name        string `json:"attributeName"`
	Filterable  bool   `json:"filterable"`
}

// AttributeValue maps a `product_attributes` row. VariantDiscriminator
// marks attributes that distinguish sibling variants (color, size) from
// purely informational specs. Name is filled in on the detail endpoint by
// joining the attribute type.
type AttributeValue struct {
	SKU                  string  `json:"sku"`
	AttributeID          int     `json:"attributeId"`
	Value                *string `json:"value,omitempty"`
	VariantDiscriminator bool    `json:"variantDiscriminator"`
	Name                 string  `json:"attributeName,omitempty"`
}

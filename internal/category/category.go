package category

// Category maps a `categories` row. JSON tags follow the camelCase
// convention used elsewhere in the project.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID *int   `json:"parentId,omitempty"`
}

// FilterAttribute maps a `category_filter_attributes` row: which attribute
// types surface as filters for a category, in display order.
type FilterAttribute struct {
	CategoryID   int `json:"categoryId"`
	AttributeID  int `json:"attributeId"`
	DisplayOrder int `json:"displayOrder"`
}

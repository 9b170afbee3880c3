package cart

import (
	"github.com/maderoluz/biochimeneas-backend/internal/catalog"
)

// Line is one cart entry: a product snapshot taken at add time plus a
// quantity. The cart holds at most one line per SKU.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Total is the line's contribution to the cart price.
func (l Line) Total() float64 {
	return l.Product.EffectivePrice() * float64(l.Quantity)
}

// TotalItems sums the quantities across all lines.
func TotalItems(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums effective price times quantity across all lines.
func TotalPrice(lines []Line) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Total()
	}
	return total
}

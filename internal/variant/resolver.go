package variant

import (
	"sort"

	"github.com/maderoluz/biochimeneas-backend/internal/catalog"
)

// Mode decides which variant UI a product page shows.
type Mode string

const (
	// ModeNone: zero or one sibling, no variant UI.
	ModeNone Mode = "none"
	// ModeSwatches: 2 to 6 siblings, each shown as a clickable thumbnail.
	ModeSwatches Mode = "swatches"
	// ModeSelectors: more than 6 siblings, one selector per
	// variant-discriminating attribute.
	ModeSelectors Mode = "selectors"
)

const swatchLimit = 6

// PickerMode maps a sibling count to the UI mode.
func PickerMode(siblingCount int) Mode {
	switch {
	case siblingCount <= 1:
		return ModeNone
	case siblingCount <= swatchLimit:
		return ModeSwatches
	default:
		return ModeSelectors
	}
}

// Selector is one dropdown in the multi-attribute picker: the attribute,
// the current product's value, and every value the sibling group offers
// for it, deduplicated and sorted ascending.
type Selector struct {
	AttributeID int      `json:"attributeId"`
	Name        string   `json:"attributeName"`
	Current     string   `json:"current"`
	Options     []string `json:"options"`
}

// BuildSelectors derives the picker dropdowns from the discriminator rows
// of the current product and its siblings. Only attributes present on the
// current product produce a selector.
func BuildSelectors(currentSKU string, rows []catalog.AttributeValue, names map[int]string) []Selector {
	current := make(map[int]string)
	order := make([]int, 0)
	for _, row := range rows {
		if row.SKU != currentSKU || row.Value == nil {
			continue
		}
		if _, seen := current[row.AttributeID]; !seen {
			order = append(order, row.AttributeID)
		}
		current[row.AttributeID] = *row.Value
	}

	options := make(map[int][]string)
	for _, row := range rows {
		if row.Value == nil {
			continue
		}
		if _, relevant := current[row.AttributeID]; !relevant {
			continue
		}
		if !containsString(options[row.AttributeID], *row.Value) {
			options[row.AttributeID] = append(options[row.AttributeID], *row.Value)
		}
	}

	out := make([]Selector, 0, len(order))
	for _, id := range order {
		values := options[id]
		sort.Strings(values)
		out = append(out, Selector{
			AttributeID: id,
			Name:        names[id],
			Current:     current[id],
			Options:     values,
		})
	}
	return out
}

// Resolution is the outcome of matching a selection against the sibling
// group.
type Resolution struct {
	Matched        bool   `json:"matched"`
	SKU            string `json:"sku,omitempty"`
	Exact          bool   `json:"exact"`
	AlreadyViewing bool   `json:"alreadyViewing"`
}

// Resolve scores every SKU in the sibling group by how many of the
// selected (attribute, value) pairs it carries. A SKU matching every
// selected pair wins outright; otherwise the highest partial score wins.
// Equal scores resolve to the lexicographically lowest SKU, so the
// outcome is deterministic. A winner equal to currentSKU reports
// AlreadyViewing instead of a navigation target.
func Resolve(currentSKU string, rows []catalog.AttributeValue, selections map[int]string) Resolution {
	if len(selections) == 0 {
		return Resolution{}
	}

	scores := make(map[string]int)
	for _, row := range rows {
		if row.Value == nil {
			continue
		}
		if want, ok := selections[row.AttributeID]; ok && want == *row.Value {
			scores[row.SKU]++
		}
	}
	if len(scores) == 0 {
		return Resolution{}
	}

	exact := make([]string, 0)
	for sku, score := range scores {
		if score == len(selections) {
			exact = append(exact, sku)
		}
	}

	var winner string
	isExact := len(exact) > 0
	if isExact {
		sort.Strings(exact)
		winner = exact[0]
		// the current product always wins its own exact match
		if containsString(exact, currentSKU) {
			winner = currentSKU
		}
	} else {
		best := 0
		for sku, score := range scores {
			if score > best || (score == best && (winner == "" || sku < winner)) {
				best = score
				winner = sku
			}
		}
	}

	return Resolution{
		Matched:        true,
		SKU:            winner,
		Exact:          isExact,
		AlreadyViewing: winner == currentSKU,
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

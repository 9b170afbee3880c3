package catalog

import (
	"testing"
)

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()
	if sel.PriceMin != 0 || sel.PriceMax != 5000 {
		t.Fatalf("unexpected default price range [%v, %v]", sel.PriceMin, sel.PriceMax)
	}
	if sel.Sort != SortNewest {
		t.Fatalf("expected default sort %q, got %q", SortNewest, sel.Sort)
	}
	if len(sel.Brands) != 0 || len(sel.Attributes) != 0 || sel.Query != "" {
		t.Fatalf("expected empty filters, got %+v", sel)
	}
}

func TestToggleBrand(t *testing.T) {
	sel := DefaultSelection()
	sel.ToggleBrand("Kratki")
	if len(sel.Brands) != 1 || sel.Brands[0] != "Kratki" {
		t.Fatalf("expected brand added, got %v", sel.Brands)
	}
	// toggling again must remove it
	sel.ToggleBrand("Kratki")
	if len(sel.Brands) != 0 {
		t.Fatalf("expected brand removed, got %v", sel.Brands)
	}
}

func TestToggleAttribute(t *testing.T) {
	sel := DefaultSelection()
	sel.ToggleAttribute(7, "negro")
	sel.ToggleAttribute(7, "blanco")
	if got := sel.Attributes[7]; len(got) != 2 {
		t.Fatalf("expected 2 values, got %v", got)
	}
	sel.ToggleAttribute(7, "negro")
	if got := sel.Attributes[7]; len(got) != 1 || got[0] != "blanco" {
		t.Fatalf("expected only blanco left, got %v", got)
	}
	if !sel.HasAttributeFilters() {
		t.Fatalf("expected attribute filters to be active")
	}
}

func TestSetSortFallsBackToNewest(t *testing.T) {
	sel := DefaultSelection()
	sel.SetSort(SortPriceDesc)
	if sel.Sort != SortPriceDesc {
		t.Fatalf("expected %q, got %q", SortPriceDesc, sel.Sort)
	}
	sel.SetSort("bogus")
	if sel.Sort != SortNewest {
		t.Fatalf("expected fallback to %q, got %q", SortNewest, sel.Sort)
	}
}

func TestReset(t *testing.T) {
	sel := DefaultSelection()
	sel.SetPriceRange(100, 900)
	sel.ToggleBrand("Purline")
	sel.ToggleAttribute(3, "60cm")
	sel.SetQuery("mural")
	sel.SetSort(SortName)

	sel.Reset()

	def := DefaultSelection()
	if sel.PriceMin != def.PriceMin || sel.PriceMax != def.PriceMax || sel.Sort != def.Sort || sel.Query != "" {
		t.Fatalf("reset did not restore defaults: %+v", sel)
	}
	if len(sel.Brands) != 0 || sel.HasAttributeFilters() {
		t.Fatalf("reset left filters behind: %+v", sel)
	}
}

func TestSelectedAttributeIDs(t *testing.T) {
	sel := DefaultSelection()
	sel.Attributes[3] = []string{"60cm"}
	sel.Attributes[7] = []string{}
	ids := sel.SelectedAttributeIDs()
	if len(ids) != 1 || ids[0] != 3 {
		t.Fatalf("expected only attribute 3, got %v", ids)
	}
}

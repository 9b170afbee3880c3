package facet

import (
	"testing"

	"github.com/maderoluz/biochimeneas-backend/internal/catalog"
	"github.com/maderoluz/biochimeneas-backend/internal/category"
)

func ptrString(s string) *string { return &s }

func seedRepos() (*catalog.InMemoryRepository, *category.InMemoryRepository) {
	products := []catalog.Product{
		{SKU: "BIO-100", Name: "Alfa", CategoryID: 570, Brand: ptrString("Kratki"), Active: true},
		{SKU: "BIO-200", Name: "Beta", CategoryID: 570, Brand: ptrString("Kratki"), Active: true},
		{SKU: "BIO-300", Name: "Gamma", CategoryID: 570, Brand: ptrString("Purline"), Active: true},
		{SKU: "BIO-400", Name: "Delta", CategoryID: 571, Brand: ptrString("Noble"), Active: true},
		{SKU: "BIO-500", Name: "Retirada", CategoryID: 570, Brand: ptrString("Noble"), Active: false},
	}
	values := []catalog.AttributeValue{
		{SKU: "BIO-100", AttributeID: 7, Value: ptrString("negro")},
		{SKU: "BIO-200", AttributeID: 7, Value: ptrString("negro")},
		{SKU: "BIO-300", AttributeID: 7, Value: ptrString("blanco")},
		// attribute 9 has no values in this category and must be dropped
	}
	types := []catalog.AttributeType{
		{AttributeID: 7, Name: "Color", Filterable: true},
		{AttributeID: 9, Name: "Material", Filterable: true},
	}
	catalogRepo := catalog.NewInMemoryRepository(products, nil, values, types)

	filters := []category.FilterAttribute{
		{CategoryID: 570, AttributeID: 7, DisplayOrder: 1},
		{CategoryID: 570, AttributeID: 9, DisplayOrder: 2},
	}
	categoryRepo := category.NewInMemoryRepository(nil, filters)
	return catalogRepo, categoryRepo
}

func TestLoadBuildsBrandAndAttributeFacets(t *testing.T) {
	catalogRepo, categoryRepo := seedRepos()
	svc := NewService(catalogRepo, categoryRepo)

	facets := svc.Load(570)

	if len(facets.Brands) != 2 {
		t.Fatalf("expected 2 brands, got %+v", facets.Brands)
	}
	// Kratki counts twice and sorts first; the inactive Noble product is
	// excluded entirely
	if facets.Brands[0].Name != "Kratki" || facets.Brands[0].Count != 2 {
		t.Fatalf("unexpected top brand: %+v", facets.Brands[0])
	}
	if facets.Brands[1].Name != "Purline" || facets.Brands[1].Count != 1 {
		t.Fatalf("unexpected second brand: %+v", facets.Brands[1])
	}

	// attribute 9 has no occurring values and is dropped
	if len(facets.Attributes) != 1 {
		t.Fatalf("expected 1 attribute facet, got %+v", facets.Attributes)
	}
	attr := facets.Attributes[0]
	if attr.AttributeID != 7 || attr.Name != "Color" {
		t.Fatalf("unexpected attribute facet: %+v", attr)
	}
	if len(attr.Values) != 2 || attr.Values[0].Value != "negro" || attr.Values[0].Count != 2 {
		t.Fatalf("unexpected facet values: %+v", attr.Values)
	}
}

func TestLoadEmptyCategory(t *testing.T) {
	catalogRepo, categoryRepo := seedRepos()
	svc := NewService(catalogRepo, categoryRepo)

	facets := svc.Load(999)
	if len(facets.Brands) != 0 || len(facets.Attributes) != 0 {
		t.Fatalf("expected empty facets, got %+v", facets)
	}
}

func TestLoadWithoutFilterConfig(t *testing.T) {
	catalogRepo, _ := seedRepos()
	categoryRepo := category.NewInMemoryRepository(nil, nil)
	svc := NewService(catalogRepo, categoryRepo)

	facets := svc.Load(570)
	if len(facets.Brands) == 0 {
		t.Fatalf("expected brand facets without filter config")
	}
	if len(facets.Attributes) != 0 {
		t.Fatalf("expected no attribute facets without config, got %+v", facets.Attributes)
	}
}

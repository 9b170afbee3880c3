package category

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func ptrInt(n int) *int { return &n }

func seedCategories() []Category {
	return []Category{
		{ID: 570, Name: "Biochimeneas"},
		{ID: 571, Name: "Quemadores", ParentID: ptrInt(570)},
		{ID: 572, Name: "Accesorios", ParentID: ptrInt(570)},
	}
}

func TestListCategoriesEndpoint(t *testing.T) {
	repo := NewInMemoryRepository(seedCategories(), nil)
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/categories", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var categories []Category
	if err := json.NewDecoder(res.Body).Decode(&categories); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
}

func TestGetCategoryEndpoint(t *testing.T) {
	repo := NewInMemoryRepository(seedCategories(), nil)
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/category/571", nil)
	res, _ := app.Test(req)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var cat Category
	if err := json.NewDecoder(res.Body).Decode(&cat); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cat.Name != "Quemadores" || cat.ParentID == nil || *cat.ParentID != 570 {
		t.Fatalf("unexpected category: %+v", cat)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/category/999", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("GET", "/api/v1/category/abc", nil)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res3.StatusCode)
	}
}

package facet

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestFacetsEndpoint(t *testing.T) {
	catalogRepo, categoryRepo := seedRepos()
	app := fiber.New()
	NewHandler(NewService(catalogRepo, categoryRepo)).RegisterPublicRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/category/570/facets", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var facets Facets
	if err := json.NewDecoder(res.Body).Decode(&facets); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(facets.Brands) != 2 || len(facets.Attributes) != 1 {
		t.Fatalf("unexpected facets: %+v", facets)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/category/abc/facets", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res2.StatusCode)
	}
}

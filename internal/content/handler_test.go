package content

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newContentApp() *fiber.App {
	app := fiber.New()
	NewHandler().RegisterPublicRoutes(app)
	return app
}

func TestGetFAQ(t *testing.T) {
	app := newContentApp()

	req := httptest.NewRequest("GET", "/api/v1/content/faq", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var entries []FAQEntry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 FAQ entries, got %d", len(entries))
	}
	if !strings.Contains(entries[0].Question, "biochimenea") {
		t.Fatalf("unexpected first question: %q", entries[0].Question)
	}
}

func TestGetDistributors(t *testing.T) {
	app := newContentApp()

	req := httptest.NewRequest("GET", "/api/v1/content/distributors", nil)
	res, _ := app.Test(req)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var distributors []Distributor
	if err := json.NewDecoder(res.Body).Decode(&distributors); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(distributors) != 5 {
		t.Fatalf("expected 5 distributors, got %d", len(distributors))
	}
	if distributors[0].Name != "BioChimeneas Madrid Centro" {
		t.Fatalf("unexpected first distributor: %+v", distributors[0])
	}
}

func TestGetAbout(t *testing.T) {
	app := newContentApp()

	req := httptest.NewRequest("GET", "/api/v1/content/about", nil)
	res, _ := app.Test(req)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Sostenibilidad") {
		t.Fatalf("about payload missing values: %s", body)
	}
}

package contact

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newContactApp() *fiber.App {
	app := fiber.New()
	NewHandler().RegisterPublicRoutes(app)
	return app
}

func TestPostContactAccepted(t *testing.T) {
	app := newContactApp()

	body := `{"name":"Ana","email":"ana@example.com","subject":"Pedido","message":"¿Cuándo llega mi pedido?"}`
	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusAccepted {
		t.Fatalf("expected 202, got %d", res.StatusCode)
	}
}

func TestPostContactValidation(t *testing.T) {
	app := newContactApp()

	body := `{"name":"","email":"not-an-email","subject":"","message":""}`
	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, field := range []string{"name", "email", "subject", "message"} {
		if payload.Errors[field] == "" {
			t.Fatalf("expected error for %q, got %+v", field, payload.Errors)
		}
	}
	if payload.Errors["email"] != "El email no es válido" {
		t.Fatalf("unexpected email error: %q", payload.Errors["email"])
	}
}

func TestPostNewsletter(t *testing.T) {
	app := newContactApp()

	req := httptest.NewRequest("POST", "/api/v1/newsletter", strings.NewReader(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusAccepted {
		t.Fatalf("expected 202, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/newsletter", strings.NewReader(`{"email":""}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res2.StatusCode)
	}
}

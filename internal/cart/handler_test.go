package cart

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/maderoluz/biochimeneas-backend/internal/metrics"
)

const testSecret = "test-secret"

type cartResponse struct {
	CartToken  string  `json:"cartToken"`
	Items      []Line  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func newCartApp(t *testing.T) *fiber.App {
	t.Helper()
	metrics.Init("test")
	app := fiber.New()
	svc := NewService(NewInMemoryRepository(), testProducts())
	NewHandler(svc, testSecret).RegisterProtectedRoutes(app)
	return app
}

func TestTokenRoundTrip(t *testing.T) {
	id := NewCartID()
	signed, err := IssueToken(testSecret, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["cart_id"] != id {
		t.Fatalf("expected cart_id %q, got %v", id, claims["cart_id"])
	}
}

func TestCartFlowAcrossRequests(t *testing.T) {
	app := newCartApp(t)

	// first request carries no token; the handler mints a cart
	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"sku":"BIO-100"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var first cartResponse
	if err := json.NewDecoder(res.Body).Decode(&first); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if first.CartToken == "" || first.TotalItems != 1 {
		t.Fatalf("unexpected response: %+v", first)
	}

	// the returned token addresses the same cart on the next request
	req2 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"sku":"BIO-100"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("Authorization", "Bearer "+first.CartToken)
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var second cartResponse
	if err := json.NewDecoder(res2.Body).Decode(&second); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(second.Items) != 1 || second.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 on one line, got %+v", second.Items)
	}
	if second.TotalPrice != 298 {
		t.Fatalf("expected total 298, got %v", second.TotalPrice)
	}

	// reading the cart returns the same state
	req3 := httptest.NewRequest("GET", "/api/v1/cart", nil)
	req3.Header.Set("Authorization", "Bearer "+second.CartToken)
	res3, _ := app.Test(req3)
	var third cartResponse
	if err := json.NewDecoder(res3.Body).Decode(&third); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if third.TotalItems != 2 {
		t.Fatalf("expected 2 items, got %d", third.TotalItems)
	}
}

func TestAddUnknownSKUEndpoint(t *testing.T) {
	app := newCartApp(t)

	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"sku":"NOPE"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown sku, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing sku, got %d", res2.StatusCode)
	}
}

func TestUpdateAndClearEndpoints(t *testing.T) {
	app := newCartApp(t)

	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"sku":"BIO-100"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	var state cartResponse
	if err := json.NewDecoder(res.Body).Decode(&state); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	req2 := httptest.NewRequest("PUT", "/api/v1/cart/items/BIO-100", strings.NewReader(`{"quantity":4}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("Authorization", "Bearer "+state.CartToken)
	res2, _ := app.Test(req2)
	if err := json.NewDecoder(res2.Body).Decode(&state); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if state.TotalItems != 4 {
		t.Fatalf("expected 4 items, got %d", state.TotalItems)
	}

	req3 := httptest.NewRequest("DELETE", "/api/v1/cart/items/BIO-100", nil)
	req3.Header.Set("Authorization", "Bearer "+state.CartToken)
	res3, _ := app.Test(req3)
	if err := json.NewDecoder(res3.Body).Decode(&state); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(state.Items) != 0 {
		t.Fatalf("expected empty cart after delete, got %+v", state.Items)
	}

	req4 := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req4.Header.Set("Authorization", "Bearer "+state.CartToken)
	res4, _ := app.Test(req4)
	if res4.StatusCode != 200 {
		t.Fatalf("expected 200 for clear, got %d", res4.StatusCode)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	app := newCartApp(t)

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res, _ := app.Test(req)
	if res.StatusCode == 200 {
		t.Fatalf("expected request with garbage token to be rejected")
	}
}

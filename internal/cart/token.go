package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// NewCartID mints a fresh cart identifier.
func NewCartID() string {
	return uuid.NewString()
}

// IssueToken signs a cart id into the bearer token the client presents on
// later requests.
func IssueToken(secret string, cartID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"cart_id": cartID})
	return token.SignedString([]byte(secret))
}

// CartIDFromCtx extracts the cart id that the jwt middleware stored on the
// request, or "" when the request carried no token.
func CartIDFromCtx(c *fiber.Ctx) string {
	token, ok := c.Locals("cart").(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	id, _ := claims["cart_id"].(string)
	return id
}

package principal

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Principal is the authenticated identity derived from the session token.
type Principal struct {
	ID   uuid.UUID
	Role string
}

// Claims is the payload signed into the session token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// KeyFunc returns the verification key for HMAC-signed session tokens and
// rejects every other signing method. The auth middleware and
// AuthService.VerifyToken both parse with this function so the two
// verification paths cannot drift apart.
func KeyFunc(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}
}

// FromContext extracts the principal from JWT claims placed in context by the
// auth middleware. Returns nil when the request carries no valid token.
func FromContext(c *fiber.Ctx) *Principal {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil
	}

	role, _ := claims["role"].(string)
	return &Principal{ID: id, Role: role}
}

package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/tradegate/marketplace-backend/internal/config"
	"github.com/tradegate/marketplace-backend/internal/dto"
	"github.com/tradegate/marketplace-backend/internal/principal"
)

// AuthCookieName is the session cookie carrying the signed token.
const AuthCookieName = "auth_token"

// JWTProtected verifies the session cookie and stores the parsed token in
// context. An absent, expired or tampered token is answered with a uniform
// 401; the distinction is visible only in server logs, never to the client.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc:     principal.KeyFunc(cfg.JWTSecret),
		TokenLookup: "cookie:" + AuthCookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Not authenticated",
			})
		},
	})
}

package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/tradegate/marketplace-backend/internal/config"
	"github.com/tradegate/marketplace-backend/internal/dto"
)

// internalError logs an unexpected failure and answers with a generic 500.
// The underlying error text is exposed only outside production.
func internalError(c *fiber.Ctx, cfg *config.Config, action string, err error) error {
	slog.Error(action, "error", err, "method", c.Method(), "path", c.Path())
	resp := dto.ErrorResponse{Error: true, Message: "Internal server error"}
	if !cfg.IsProduction() {
		resp.Detail = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}

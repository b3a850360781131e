package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tradegate/marketplace-backend/internal/config"
	"github.com/tradegate/marketplace-backend/internal/dto"
	"github.com/tradegate/marketplace-backend/internal/models"
	"github.com/tradegate/marketplace-backend/internal/services"
)

// UserHandler serves the admin user directory and verification toggles.
type UserHandler struct {
	userService *services.UserService
	cfg         *config.Config
}

func NewUserHandler(userService *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{userService: userService, cfg: cfg}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	role := c.Query("role", "")
	if role != "" && !models.ValidRole(role) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "role must be buyer, seller or admin",
		})
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var verified *bool
	if v := c.Query("verified", ""); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "verified must be true or false",
			})
		}
		verified = &parsed
	}

	users, total, err := h.userService.List(role, verified, limit, offset)
	if err != nil {
		return internalError(c, h.cfg, "failed to list users", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}

	return c.JSON(fiber.Map{
		"users":  responses,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

type setVerifiedRequest struct {
	Verified *bool `json:"verified"`
}

func (h *UserHandler) SetVerified(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	var req setVerifiedRequest
	if err := c.BodyParser(&req); err != nil || req.Verified == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "verified is required",
		})
	}

	user, err := h.userService.SetVerified(id, *req.Verified)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return internalError(c, h.cfg, "failed to update user", err)
	}

	return c.JSON(dto.NewUserResponse(user))
}

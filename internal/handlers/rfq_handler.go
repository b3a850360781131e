package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tradegate/marketplace-backend/internal/config"
	"github.com/tradegate/marketplace-backend/internal/dto"
	"github.com/tradegate/marketplace-backend/internal/principal"
	"github.com/tradegate/marketplace-backend/internal/services"
)

type RFQHandler struct {
	rfqService *services.RFQService
	cfg        *config.Config
}

func NewRFQHandler(rfqService *services.RFQService, cfg *config.Config) *RFQHandler {
	return &RFQHandler{rfqService: rfqService, cfg: cfg}
}

func (h *RFQHandler) Create(c *fiber.Ctx) error {
	p := principal.FromContext(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authenticated",
		})
	}

	var req dto.CreateRFQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	rfq, err := h.rfqService.Create(p.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c, h.cfg, "failed to create rfq", err)
	}
	return c.Status(fiber.StatusCreated).JSON(rfq)
}

// List returns only the calling buyer's RFQs.
func (h *RFQHandler) List(c *fiber.Ctx) error {
	p := principal.FromContext(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authenticated",
		})
	}

	rfqs, err := h.rfqService.List(p.ID)
	if err != nil {
		return internalError(c, h.cfg, "failed to list rfqs", err)
	}
	return c.JSON(rfqs)
}

func (h *RFQHandler) Get(c *fiber.Ctx) error {
	p := principal.FromContext(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authenticated",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "RFQ not found",
		})
	}

	rfq, err := h.rfqService.Get(id, p.ID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "RFQ not found",
		})
	}
	return c.JSON(rfq)
}

func (h *RFQHandler) UpdateStatus(c *fiber.Ctx) error {
	p := principal.FromContext(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authenticated",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "RFQ not found",
		})
	}

	var req dto.UpdateRFQStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	rfq, err := h.rfqService.UpdateStatus(id, p.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRFQNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "RFQ not found",
			})
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return internalError(c, h.cfg, "failed to update rfq", err)
		}
	}
	return c.JSON(rfq)
}

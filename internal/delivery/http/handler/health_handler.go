package handler

import (
	"perfect-fit/internal/delivery/http/dto"
	"perfect-fit/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthMessage = "Perfect Fit API is running"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, dto.HealthResponse{Status: "OK", Message: healthMessage})
}

package handler

import (
	"errors"

	"perfect-fit/internal/delivery/http/dto"
	"perfect-fit/internal/delivery/http/middleware"
	"perfect-fit/internal/pkg/response"
	"perfect-fit/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SizeChartHandler struct {
	uc usecase.SizeChartUsecase
}

func NewSizeChartHandler(uc usecase.SizeChartUsecase) *SizeChartHandler {
	return &SizeChartHandler{uc: uc}
}

func (h *SizeChartHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/size-charts/:gender/:type", h.GetChart)
}

func (h *SizeChartHandler) GetChart(c fiber.Ctx) error {
	res, err := h.uc.GetChart(c.Context(), c.Params("gender"), c.Params("type"))
	if err != nil {
		if errors.Is(err, usecase.ErrLookup) {
			return middleware.NewAppError(fiber.StatusNotFound, response.MessageSizeChartNotFound, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	out := dto.SizeChartResponse{
		Gender:    string(res.Gender),
		Type:      string(res.Garment),
		Reference: res.Reference,
		Sizes:     make([]dto.SizeChartEntryResponse, 0, len(res.Sizes)),
	}
	for _, s := range res.Sizes {
		out.Sizes = append(out.Sizes, dto.SizeChartEntryResponse{Size: s.Size, Measurements: s.Measurements})
	}
	return response.Success(c, fiber.StatusOK, out)
}

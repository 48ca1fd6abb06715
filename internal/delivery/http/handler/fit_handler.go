package handler

import (
	"bytes"
	"errors"

	"perfect-fit/internal/delivery/http/dto"
	"perfect-fit/internal/delivery/http/middleware"
	"perfect-fit/internal/domain/fit"
	"perfect-fit/internal/pkg/response"
	"perfect-fit/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FitHandler struct {
	uc usecase.FitAnalysisUsecase
}

func NewFitHandler(uc usecase.FitAnalysisUsecase) *FitHandler {
	return &FitHandler{uc: uc}
}

func (h *FitHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analyze-fit", h.AnalyzeFit)
}

func (h *FitHandler) AnalyzeFit(c fiber.Ctx) error {
	var req dto.AnalyzeFitRequest
	if len(bytes.TrimSpace(c.Body())) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageInvalidBody, err)
		}
	}

	measurements, err := req.MeasurementSet()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageInvalidMeasurement, err)
	}

	res, err := h.uc.AnalyzeFit(c.Context(), usecase.FitAnalysisInput{
		UserMeasurements: measurements,
		ProductLink:      req.ProductLink,
		Gender:           req.Gender,
		Type:             req.Type,
	})
	if err != nil {
		return mapFitUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.AnalyzeFitResponse{
		Fit:                 res.Fit,
		ProductMeasurements: res.ProductMeasurements,
		Recommendations:     res.Recommendations[:],
	})
}

func mapFitUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var missing *fit.MissingDimensionError
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageMissingFields, err)
	case errors.As(err, &missing):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageMissingDimension+missing.List(), err)
	case errors.Is(err, fit.ErrInvalidValue):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageInvalidMeasurement, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	default:
		// Unknown gender/type lands here as well.
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageAnalysisFailed, err)
	}
}

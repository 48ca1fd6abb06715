package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"perfect-fit/internal/domain/fit"
	"perfect-fit/internal/domain/sizing"
	"perfect-fit/internal/domain/style"
)

type FitAnalysisInput struct {
	UserMeasurements sizing.MeasurementSet
	ProductLink      string
	Gender           string
	Type             string
}

type FitAnalysisResult struct {
	Fit                 fit.Verdict
	ProductMeasurements sizing.MeasurementSet
	Recommendations     [2]style.Recommendation
}

type FitAnalysisUsecase interface {
	AnalyzeFit(ctx context.Context, in FitAnalysisInput) (FitAnalysisResult, error)
}

type FitAnalysis struct {
	chart *sizing.Chart
}

func NewFitAnalysisUsecase(chart *sizing.Chart) *FitAnalysis {
	return &FitAnalysis{chart: chart}
}

func (u *FitAnalysis) AnalyzeFit(ctx context.Context, in FitAnalysisInput) (FitAnalysisResult, error) {
	if in.UserMeasurements == nil || strings.TrimSpace(in.Gender) == "" || strings.TrimSpace(in.Type) == "" {
		return FitAnalysisResult{}, ErrMissingFields
	}
	if err := ctx.Err(); err != nil {
		return FitAnalysisResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if u == nil || u.chart == nil {
		return FitAnalysisResult{}, ErrInternal
	}

	gender, err := sizing.ParseGender(in.Gender)
	if err != nil {
		return FitAnalysisResult{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	garment, err := sizing.ParseGarment(in.Type)
	if err != nil {
		return FitAnalysisResult{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}

	// productLink is not resolved; the medium row stands in for the product.
	reference, err := u.chart.Reference(gender, garment)
	if err != nil {
		return FitAnalysisResult{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}

	verdict, err := fit.Evaluate(in.UserMeasurements, reference)
	if err != nil {
		var missing *fit.MissingDimensionError
		if errors.As(err, &missing) || errors.Is(err, fit.ErrInvalidValue) {
			return FitAnalysisResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return FitAnalysisResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return FitAnalysisResult{
		Fit:                 verdict,
		ProductMeasurements: reference,
		Recommendations:     style.Recommend(gender, garment, verdict),
	}, nil
}

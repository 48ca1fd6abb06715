package usecase

import (
	"context"
	"fmt"

	"perfect-fit/internal/domain/sizing"
)

type SizeChartItem struct {
	Size         string
	Measurements sizing.MeasurementSet
}

type SizeChartResult struct {
	Gender    sizing.Gender
	Garment   sizing.Garment
	Reference string
	Sizes     []SizeChartItem
}

type SizeChartUsecase interface {
	GetChart(ctx context.Context, gender, garment string) (SizeChartResult, error)
}

type SizeChart struct {
	chart *sizing.Chart
}

func NewSizeChartUsecase(chart *sizing.Chart) *SizeChart {
	return &SizeChart{chart: chart}
}

func (u *SizeChart) GetChart(_ context.Context, gender, garment string) (SizeChartResult, error) {
	if u == nil || u.chart == nil {
		return SizeChartResult{}, ErrInternal
	}

	g, err := sizing.ParseGender(gender)
	if err != nil {
		return SizeChartResult{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	gt, err := sizing.ParseGarment(garment)
	if err != nil {
		return SizeChartResult{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}

	sizes, err := u.chart.Sizes(g, gt)
	if err != nil {
		return SizeChartResult{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	ref, err := u.chart.ReferenceLabel(g, gt)
	if err != nil {
		return SizeChartResult{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}

	out := SizeChartResult{Gender: g, Garment: gt, Reference: ref, Sizes: make([]SizeChartItem, 0, len(sizes))}
	for _, s := range sizes {
		out.Sizes = append(out.Sizes, SizeChartItem{Size: s.Label, Measurements: s.Measurements})
	}
	return out, nil
}

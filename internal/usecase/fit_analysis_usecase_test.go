package usecase

import (
	"context"
	"errors"
	"testing"

	"perfect-fit/internal/domain/fit"
	"perfect-fit/internal/domain/sizing"
)

func TestFitAnalysis_AnalyzeFit_MissingFields(t *testing.T) {
	uc := NewFitAnalysisUsecase(sizing.DefaultChart())

	cases := []FitAnalysisInput{
		{Gender: "male", Type: "shirt"},
		{UserMeasurements: sizing.MeasurementSet{"chest": 40}, Type: "shirt"},
		{UserMeasurements: sizing.MeasurementSet{"chest": 40}, Gender: "male", Type: "  "},
	}
	for _, in := range cases {
		if _, err := uc.AnalyzeFit(context.Background(), in); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %+v, got %v", in, err)
		}
	}
}

func TestFitAnalysis_AnalyzeFit_Success(t *testing.T) {
	uc := NewFitAnalysisUsecase(sizing.DefaultChart())

	res, err := uc.AnalyzeFit(context.Background(), FitAnalysisInput{
		UserMeasurements: sizing.MeasurementSet{"chest": 42, "shoulder": 18, "length": 35},
		ProductLink:      "https://shop.example/item/1",
		Gender:           "male",
		Type:             "shirt",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Fit.Overall != fit.Good {
		t.Fatalf("overall = %q, want good", res.Fit.Overall)
	}
	if res.Fit.Measurements["length"] != fit.Tight {
		t.Fatalf("length = %q, want tight", res.Fit.Measurements["length"])
	}
	if res.ProductMeasurements["chest"] != 40 {
		t.Fatalf("expected medium reference, got %v", res.ProductMeasurements)
	}
	if res.Recommendations[0].Style != "Classic Fit" {
		t.Fatalf("unexpected recommendations: %+v", res.Recommendations)
	}
}

func TestFitAnalysis_AnalyzeFit_Pant(t *testing.T) {
	uc := NewFitAnalysisUsecase(sizing.DefaultChart())

	res, err := uc.AnalyzeFit(context.Background(), FitAnalysisInput{
		UserMeasurements: sizing.MeasurementSet{"waist": 30, "hip": 38, "inseam": 30},
		Gender:           "female",
		Type:             "pant",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ProductMeasurements["waist"] != 30 || res.Fit.Overall != fit.Good {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFitAnalysis_AnalyzeFit_UnknownGender(t *testing.T) {
	uc := NewFitAnalysisUsecase(sizing.DefaultChart())

	_, err := uc.AnalyzeFit(context.Background(), FitAnalysisInput{
		UserMeasurements: sizing.MeasurementSet{"chest": 40},
		Gender:           "other",
		Type:             "shirt",
	})
	if !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
}

func TestFitAnalysis_AnalyzeFit_MissingDimension(t *testing.T) {
	uc := NewFitAnalysisUsecase(sizing.DefaultChart())

	_, err := uc.AnalyzeFit(context.Background(), FitAnalysisInput{
		UserMeasurements: sizing.MeasurementSet{"chest": 40, "waist": 32},
		Gender:           "male",
		Type:             "shirt",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var missing *fit.MissingDimensionError
	if !errors.As(err, &missing) || missing.List() != "waist" {
		t.Fatalf("expected missing waist, got %v", err)
	}
}

func TestFitAnalysis_AnalyzeFit_CanceledContext(t *testing.T) {
	uc := NewFitAnalysisUsecase(sizing.DefaultChart())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.AnalyzeFit(ctx, FitAnalysisInput{
		UserMeasurements: sizing.MeasurementSet{"chest": 40},
		Gender:           "male",
		Type:             "shirt",
	})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSizeChart_GetChart(t *testing.T) {
	uc := NewSizeChartUsecase(sizing.DefaultChart())

	res, err := uc.GetChart(context.Background(), "male", "pant")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Reference != "32" || len(res.Sizes) != 4 {
		t.Fatalf("unexpected chart: %+v", res)
	}
	if res.Sizes[0].Size != "30" || res.Sizes[0].Measurements["hip"] != 38 {
		t.Fatalf("unexpected first size: %+v", res.Sizes[0])
	}

	if _, err := uc.GetChart(context.Background(), "male", "hat"); !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
}

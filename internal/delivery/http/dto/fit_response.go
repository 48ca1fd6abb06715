package dto

import (
	"perfect-fit/internal/domain/fit"
	"perfect-fit/internal/domain/sizing"
	"perfect-fit/internal/domain/style"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AnalyzeFitResponse struct {
	Fit                 fit.Verdict            `json:"fit"`
	ProductMeasurements sizing.MeasurementSet  `json:"productMeasurements"`
	Recommendations     []style.Recommendation `json:"recommendations"`
}

type SizeChartEntryResponse struct {
	Size         string                `json:"size"`
	Measurements sizing.MeasurementSet `json:"measurements"`
}

type SizeChartResponse struct {
	Gender    string                   `json:"gender"`
	Type      string                   `json:"type"`
	Reference string                   `json:"reference"`
	Sizes     []SizeChartEntryResponse `json:"sizes"`
}

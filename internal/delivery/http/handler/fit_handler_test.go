package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perfect-fit/internal/delivery/http/middleware"
	"perfect-fit/internal/domain/fit"
	"perfect-fit/internal/domain/sizing"
	"perfect-fit/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type mockFitUsecase struct {
	got usecase.FitAnalysisInput
	res usecase.FitAnalysisResult
	err error
}

func (m *mockFitUsecase) AnalyzeFit(_ context.Context, in usecase.FitAnalysisInput) (usecase.FitAnalysisResult, error) {
	m.got = in
	return m.res, m.err
}

func newFitApp(uc usecase.FitAnalysisUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())
	NewFitHandler(uc).RegisterRoutes(app.Group("/api"))
	return app
}

func postFit(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-fit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestFitHandler_PassesInput(t *testing.T) {
	uc := &mockFitUsecase{res: usecase.FitAnalysisResult{
		Fit:                 fit.Verdict{Measurements: map[string]fit.Classification{"waist": fit.Perfect}, Overall: fit.Good},
		ProductMeasurements: sizing.MeasurementSet{"waist": 32},
	}}
	app := newFitApp(uc)

	status, body := postFit(t, app, `{"userMeasurements":{"waist":"31.5"},"productLink":"https://shop.example/x","gender":"male","type":"pant"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d body=%s", status, body)
	}
	if uc.got.UserMeasurements["waist"] != 31.5 || uc.got.ProductLink != "https://shop.example/x" || uc.got.Type != "pant" {
		t.Fatalf("unexpected usecase input: %+v", uc.got)
	}

	var out struct {
		Fit struct {
			Overall string `json:"overall"`
		} `json:"fit"`
		Recommendations []json.RawMessage `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Fit.Overall != "good" || len(out.Recommendations) != 2 {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFitHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "missing fields", err: usecase.ErrMissingFields, status: http.StatusBadRequest, msg: "Missing required fields"},
		{name: "missing dimension", err: &fit.MissingDimensionError{Dimensions: []string{"hip", "waist"}}, status: http.StatusBadRequest, msg: "Measurement not available for this garment: hip, waist"},
		{name: "invalid value", err: fit.ErrInvalidValue, status: http.StatusBadRequest, msg: "Invalid measurement value"},
		{name: "lookup", err: usecase.ErrLookup, status: http.StatusInternalServerError, msg: "Analysis failed"},
		{name: "internal", err: errors.New("anything"), status: http.StatusInternalServerError, msg: "Analysis failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newFitApp(&mockFitUsecase{err: tt.err})
			status, body := postFit(t, app, `{"userMeasurements":{"chest":40},"gender":"male","type":"shirt"}`)
			if status != tt.status {
				t.Fatalf("status = %d, want %d", status, tt.status)
			}
			if want := `{"error":"` + tt.msg + `"}`; body != want {
				t.Fatalf("body = %s, want %s", body, want)
			}
		})
	}
}

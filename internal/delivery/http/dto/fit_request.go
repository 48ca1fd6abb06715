package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"perfect-fit/internal/domain/sizing"
)

var ErrInvalidMeasurement = errors.New("invalid measurement value")

// AnalyzeFitRequest keeps measurement values raw so that both numbers and
// numeric strings ("42.5") are accepted.
type AnalyzeFitRequest struct {
	UserMeasurements map[string]json.RawMessage `json:"userMeasurements"`
	ProductLink      string                     `json:"productLink"`
	Gender           string                     `json:"gender"`
	Type             string                     `json:"type"`
}

func (r AnalyzeFitRequest) MeasurementSet() (sizing.MeasurementSet, error) {
	if r.UserMeasurements == nil {
		return nil, nil
	}
	out := make(sizing.MeasurementSet, len(r.UserMeasurements))
	for dim, raw := range r.UserMeasurements {
		v, err := parseMeasurement(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMeasurement, dim)
		}
		out[dim] = v
	}
	return out, nil
}

func parseMeasurement(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrInvalidMeasurement
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, err
	}
	return f, nil
}

package fit

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"perfect-fit/internal/domain/sizing"
)

type Classification string

type Overall string

const (
	Tight   Classification = "tight"
	Perfect Classification = "perfect"
	Loose   Classification = "loose"

	Good Overall = "good"
	Poor Overall = "poor"
)

// Tolerance is the allowed deviation in inches before a dimension stops
// being a perfect fit.
const Tolerance = 2.0

var (
	ErrMissingDimension = errors.New("reference measurement missing")
	ErrInvalidValue     = errors.New("invalid measurement value")
)

type MissingDimensionError struct {
	Dimensions []string
}

func (e *MissingDimensionError) Error() string {
	if e == nil {
		return ""
	}
	return ErrMissingDimension.Error() + ": " + e.List()
}

func (e *MissingDimensionError) List() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Dimensions, ", ")
}

func (e *MissingDimensionError) Unwrap() error {
	return ErrMissingDimension
}

type Verdict struct {
	Measurements map[string]Classification `json:"measurements"`
	Overall      Overall                   `json:"overall"`
}

func (v Verdict) PerfectCount() int {
	n := 0
	for _, c := range v.Measurements {
		if c == Perfect {
			n++
		}
	}
	return n
}

func Classify(user, reference float64) Classification {
	if math.Abs(user-reference) <= Tolerance {
		return Perfect
	}
	if reference > user+Tolerance {
		return Loose
	}
	return Tight
}

// Evaluate classifies every dimension of user against reference. Dimensions
// only present in reference are ignored; dimensions only present in user
// fail the whole evaluation.
func Evaluate(user, reference sizing.MeasurementSet) (Verdict, error) {
	var missing []string
	for dim, u := range user {
		r, ok := reference[dim]
		if !ok {
			missing = append(missing, dim)
			continue
		}
		if !finite(u) || !finite(r) {
			return Verdict{}, fmt.Errorf("%w: %s", ErrInvalidValue, dim)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Verdict{}, &MissingDimensionError{Dimensions: missing}
	}

	results := make(map[string]Classification, len(user))
	for dim, u := range user {
		results[dim] = Classify(u, reference[dim])
	}

	v := Verdict{Measurements: results, Overall: Poor}
	if v.PerfectCount()*2 >= len(results) {
		v.Overall = Good
	}
	return v, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

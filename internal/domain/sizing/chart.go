package sizing

import (
	"errors"
	"fmt"
	"strings"
)

type Gender string

type Garment string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"

	GarmentShirt Garment = "shirt"
	GarmentPant  Garment = "pant"
)

var (
	ErrLookup         = errors.New("size chart lookup failed")
	ErrUnknownGender  = fmt.Errorf("%w: unknown gender", ErrLookup)
	ErrUnknownGarment = fmt.Errorf("%w: unknown garment type", ErrLookup)
	ErrUnknownSize    = fmt.Errorf("%w: unknown size", ErrLookup)
)

// MeasurementSet maps a dimension name (chest, waist, ...) to inches.
type MeasurementSet map[string]float64

func (m MeasurementSet) Clone() MeasurementSet {
	if m == nil {
		return nil
	}
	out := make(MeasurementSet, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type Size struct {
	Label        string
	Measurements MeasurementSet
}

// GarmentChart holds the sizes of one garment type in ascending order.
// Reference is the label of the row used as the stand-in product size.
type GarmentChart struct {
	Reference string
	Sizes     []Size
}

func (g GarmentChart) find(label string) (Size, bool) {
	for _, s := range g.Sizes {
		if s.Label == label {
			return s, true
		}
	}
	return Size{}, false
}

// Chart is the immutable gender × garment × size table. All accessors
// return copies, so a *Chart can be shared between handlers.
type Chart struct {
	charts map[Gender]map[Garment]GarmentChart
}

func NewChart(charts map[Gender]map[Garment]GarmentChart) *Chart {
	c := &Chart{charts: make(map[Gender]map[Garment]GarmentChart, len(charts))}
	for g, byGarment := range charts {
		inner := make(map[Garment]GarmentChart, len(byGarment))
		for gt, gc := range byGarment {
			sizes := make([]Size, 0, len(gc.Sizes))
			for _, s := range gc.Sizes {
				sizes = append(sizes, Size{Label: s.Label, Measurements: s.Measurements.Clone()})
			}
			inner[gt] = GarmentChart{Reference: gc.Reference, Sizes: sizes}
		}
		c.charts[g] = inner
	}
	return c
}

func (c *Chart) garment(gender Gender, garment Garment) (GarmentChart, error) {
	if c == nil {
		return GarmentChart{}, ErrUnknownGender
	}
	byGarment, ok := c.charts[gender]
	if !ok {
		return GarmentChart{}, fmt.Errorf("%w %q", ErrUnknownGender, gender)
	}
	gc, ok := byGarment[garment]
	if !ok {
		return GarmentChart{}, fmt.Errorf("%w %q", ErrUnknownGarment, garment)
	}
	return gc, nil
}

func (c *Chart) Lookup(gender Gender, garment Garment, size string) (MeasurementSet, error) {
	gc, err := c.garment(gender, garment)
	if err != nil {
		return nil, err
	}
	s, ok := gc.find(size)
	if !ok {
		return nil, fmt.Errorf("%w %q for %s %s", ErrUnknownSize, size, gender, garment)
	}
	return s.Measurements.Clone(), nil
}

// Reference returns the medium row of the garment table.
func (c *Chart) Reference(gender Gender, garment Garment) (MeasurementSet, error) {
	gc, err := c.garment(gender, garment)
	if err != nil {
		return nil, err
	}
	return c.Lookup(gender, garment, gc.Reference)
}

func (c *Chart) ReferenceLabel(gender Gender, garment Garment) (string, error) {
	gc, err := c.garment(gender, garment)
	if err != nil {
		return "", err
	}
	return gc.Reference, nil
}

func (c *Chart) Sizes(gender Gender, garment Garment) ([]Size, error) {
	gc, err := c.garment(gender, garment)
	if err != nil {
		return nil, err
	}
	out := make([]Size, 0, len(gc.Sizes))
	for _, s := range gc.Sizes {
		out = append(out, Size{Label: s.Label, Measurements: s.Measurements.Clone()})
	}
	return out, nil
}

func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownGender, s)
	}
}

func ParseGarment(s string) (Garment, error) {
	switch g := Garment(strings.ToLower(strings.TrimSpace(s))); g {
	case GarmentShirt, GarmentPant:
		return g, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownGarment, s)
	}
}

// Package service contains domain services that operate on more than one
// shape: comparison, scaling and volume ratios. None of them mutate their
// inputs.
package service

import (
	"fmt"
	"math"

	"github.com/hapkiduki/geoshapes/internal/domain/entity"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// Ordering is the outcome of a comparison, read as "first is <Ordering> second".
type Ordering int

const (
	OrderEqual   Ordering = iota // metrics within entity.EqualityTolerance
	OrderLarger                  // first has the larger metric
	OrderSmaller                 // first has the smaller metric
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case OrderLarger:
		return "larger"
	case OrderSmaller:
		return "smaller"
	default:
		return "equal"
	}
}

// MarshalText renders the ordering by name in JSON output.
func (o Ordering) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Comparison is the report produced by Compare.
type Comparison struct {
	// First and Second are the kinds of the compared shapes, in argument order.
	First  entity.Kind `json:"first" yaml:"first"`
	Second entity.Kind `json:"second" yaml:"second"`

	// FirstMetric and SecondMetric are the primary metrics that were compared.
	FirstMetric  float64 `json:"first_metric" yaml:"first_metric"`
	SecondMetric float64 `json:"second_metric" yaml:"second_metric"`

	// Unit is the unit the metrics are expressed in. Empty when the shapes
	// carry different labels and were compared raw.
	Unit valueobject.Unit `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Result orders First relative to Second.
	Result Ordering `json:"result" yaml:"result"`

	// Difference is the absolute metric difference.
	Difference float64 `json:"difference" yaml:"difference"`

	// UnitMismatch is set when the shapes carry different unit labels and
	// the metrics were compared without normalization.
	UnitMismatch bool `json:"unit_mismatch" yaml:"unit_mismatch"`
}

// Larger returns the kind of the larger shape, or "" when equal.
func (c Comparison) Larger() entity.Kind {
	switch c.Result {
	case OrderLarger:
		return c.First
	case OrderSmaller:
		return c.Second
	}
	return ""
}

// Smaller returns the kind of the smaller shape, or "" when equal.
func (c Comparison) Smaller() entity.Kind {
	switch c.Result {
	case OrderLarger:
		return c.Second
	case OrderSmaller:
		return c.First
	}
	return ""
}

// String renders the report, e.g. "Circle is larger than Rectangle by 0.27 units²".
func (c Comparison) String() string {
	suffix := "units²"
	if c.Unit != "" {
		suffix = c.Unit.Squared()
	}
	if c.Result == OrderEqual {
		return fmt.Sprintf("Shapes have equal area (%.2f %s)", c.FirstMetric, suffix)
	}
	return fmt.Sprintf("%s is larger than %s by %.2f %s", c.Larger(), c.Smaller(), c.Difference, suffix)
}

// Compare compares two shapes by primary metric (area for 2D, surface area
// for 3D). Metrics are compared raw: shapes recorded in different units are
// not normalized, and the report flags UnitMismatch instead. Use CompareIn
// to normalize first.
//
// Parameters:
//   - a: the first shape
//   - b: the second shape
//
// Returns:
//   - Comparison: the report
//   - error: domain.ErrUnsupportedShape if either shape exposes no metric
func Compare(a, b entity.Shape) (Comparison, error) {
	m1, err := entity.PrimaryMetric(a)
	if err != nil {
		return Comparison{}, fmt.Errorf("first shape: %w", err)
	}
	m2, err := entity.PrimaryMetric(b)
	if err != nil {
		return Comparison{}, fmt.Errorf("second shape: %w", err)
	}

	c := build(a.Kind(), b.Kind(), m1, m2)
	if a.Unit() == b.Unit() {
		c.Unit = a.Unit()
	} else {
		c.UnitMismatch = true
	}
	return c, nil
}

// CompareIn converts both primary metrics into unit² before comparing.
//
// Parameters:
//   - a: the first shape
//   - b: the second shape
//   - unit: the common unit
//
// Returns:
//   - Comparison: the report, with Unit set to unit
//   - error: domain.ErrUnsupportedShape, or valueobject.ErrUnknownUnit when
//     a shape's label or unit is not a supported unit
func CompareIn(a, b entity.Shape, unit valueobject.Unit) (Comparison, error) {
	m1, err := metricIn(a, unit)
	if err != nil {
		return Comparison{}, fmt.Errorf("first shape: %w", err)
	}
	m2, err := metricIn(b, unit)
	if err != nil {
		return Comparison{}, fmt.Errorf("second shape: %w", err)
	}

	c := build(a.Kind(), b.Kind(), m1, m2)
	c.Unit = unit
	return c, nil
}

func metricIn(s entity.Shape, unit valueobject.Unit) (float64, error) {
	m, err := entity.PrimaryMetric(s)
	if err != nil {
		return 0, err
	}
	return valueobject.ConvertArea(m, s.Unit(), unit)
}

func build(first, second entity.Kind, m1, m2 float64) Comparison {
	c := Comparison{
		First:        first,
		Second:       second,
		FirstMetric:  m1,
		SecondMetric: m2,
		Difference:   math.Abs(m1 - m2),
	}
	switch {
	case c.Difference < entity.EqualityTolerance:
		c.Result = OrderEqual
	case m1 > m2:
		c.Result = OrderLarger
	default:
		c.Result = OrderSmaller
	}
	return c
}

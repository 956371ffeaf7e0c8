// Package entity contains the shape entities of the domain layer.
//
// The shape family is closed: Rectangle, Circle, Cube and Sphere are the only
// implementers of Shape. Each variant implements exactly one capability:
//   - Shape2D: area and perimeter
//   - Shape3D: volume and surface area
//
// Derived quantities are never cached; they are recomputed from the current
// dimensions on every call.
package entity

import (
	"errors"
	"math"

	"github.com/hapkiduki/geoshapes/internal/domain"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// Shape errors define domain-specific error conditions for shapes.
var (
	ErrNonPositiveDimension = valueobject.ErrNonPositiveLength
	ErrNonFiniteDimension   = valueobject.ErrNonFiniteValue
	ErrInvalidScaleFactor   = errors.New("scale factor must be a positive finite number")
	ErrUnknownKind          = errors.New("unknown shape kind")
	ErrDimensionCount       = errors.New("wrong number of dimensions for shape kind")
)

// EqualityTolerance is the maximum metric difference at which two shapes
// are considered equal.
const EqualityTolerance = 1e-10

// Kind identifies a shape variant.
type Kind string

const (
	KindRectangle Kind = "Rectangle" // 2D, width x height
	KindCircle    Kind = "Circle"    // 2D, radius
	KindCube      Kind = "Cube"      // 3D, side
	KindSphere    Kind = "Sphere"    // 3D, radius
)

// Shape is the capability set shared by all variants.
type Shape interface {
	// Kind returns the variant name.
	Kind() Kind

	// Unit returns the unit label of the dimensions.
	Unit() valueobject.Unit

	// SetUnit replaces the unit label without touching the dimensions.
	SetUnit(unit valueobject.Unit)

	// String returns a one-line summary.
	String() string

	sealed()
}

// Shape2D is implemented by flat shapes.
type Shape2D interface {
	Shape

	// Area returns the area in unit².
	Area() float64

	// Perimeter returns the perimeter in unit.
	Perimeter() float64
}

// Shape3D is implemented by solid shapes.
type Shape3D interface {
	Shape

	// Volume returns the volume in unit³.
	Volume() float64

	// SurfaceArea returns the surface area in unit².
	SurfaceArea() float64
}

// Compile-time checks of the closed implementer set.
var (
	_ Shape2D = (*Rectangle)(nil)
	_ Shape2D = (*Circle)(nil)
	_ Shape3D = (*Cube)(nil)
	_ Shape3D = (*Sphere)(nil)
)

// base holds the unit label shared by every variant.
type base struct {
	unit valueobject.Unit
}

func newBase(unit valueobject.Unit) base {
	return base{unit: unit.OrDefault()}
}

// Unit returns the unit label.
func (b *base) Unit() valueobject.Unit {
	return b.unit
}

// SetUnit replaces the unit label. Any string is accepted; the label is only
// checked when it is used for a conversion.
func (b *base) SetUnit(unit valueobject.Unit) {
	b.unit = unit
}

func (b *base) sealed() {}

// PrimaryMetric returns the size-like quantity used for comparison:
// the area of a 2D shape or the surface area of a 3D shape.
//
// Parameters:
//   - s: the shape to measure
//
// Returns:
//   - float64: the metric in unit²
//   - error: domain.ErrUnsupportedShape if s exposes neither capability
func PrimaryMetric(s Shape) (float64, error) {
	switch v := s.(type) {
	case Shape2D:
		if isNilShape(v) {
			return 0, domain.ErrUnsupportedShape
		}
		return v.Area(), nil
	case Shape3D:
		if isNilShape(v) {
			return 0, domain.ErrUnsupportedShape
		}
		return v.SurfaceArea(), nil
	default:
		return 0, domain.ErrUnsupportedShape
	}
}

// isNilShape catches typed nil pointers stored in the interface.
func isNilShape(s Shape) bool {
	switch v := s.(type) {
	case *Rectangle:
		return v == nil
	case *Circle:
		return v == nil
	case *Cube:
		return v == nil
	case *Sphere:
		return v == nil
	}
	return s == nil
}

// Equal reports whether the primary metrics of a and b differ by less than
// EqualityTolerance. Units are not normalized.
// Shapes without a recognized metric are never equal.
func Equal(a, b Shape) bool {
	m1, err := PrimaryMetric(a)
	if err != nil {
		return false
	}
	m2, err := PrimaryMetric(b)
	if err != nil {
		return false
	}
	return math.Abs(m1-m2) < EqualityTolerance
}

// Less reports whether the primary metric of a is smaller than that of b.
// Units are not normalized.
func Less(a, b Shape) bool {
	m1, m2, ok := metrics(a, b)
	return ok && m1 < m2
}

// Greater reports whether the primary metric of a is larger than that of b.
// Units are not normalized.
func Greater(a, b Shape) bool {
	m1, m2, ok := metrics(a, b)
	return ok && m1 > m2
}

func metrics(a, b Shape) (float64, float64, bool) {
	m1, err := PrimaryMetric(a)
	if err != nil {
		return 0, 0, false
	}
	m2, err := PrimaryMetric(b)
	if err != nil {
		return 0, 0, false
	}
	return m1, m2, true
}

// validateDimension checks a single dimension.
func validateDimension(field string, value float64) error {
	return valueobject.NewLength(value, valueobject.DefaultUnit).Validate(field)
}

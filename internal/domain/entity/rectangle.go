package entity

import (
	"fmt"
	"math"

	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// Rectangle is an axis-free rectangle with width and height.
type Rectangle struct {
	base
	width  float64
	height float64
}

// NewRectangle creates a new Rectangle.
//
// Parameters:
//   - width: width (must be positive)
//   - height: height (must be positive)
//   - unit: unit label; empty means valueobject.DefaultUnit
//
// Returns:
//   - *Rectangle: the new rectangle
//   - error: validation error if a dimension is not positive
func NewRectangle(width, height float64, unit valueobject.Unit) (*Rectangle, error) {
	if err := validateDimension("width", width); err != nil {
		return nil, err
	}
	if err := validateDimension("height", height); err != nil {
		return nil, err
	}
	return &Rectangle{base: newBase(unit), width: width, height: height}, nil
}

// Kind implements Shape.
func (r *Rectangle) Kind() Kind { return KindRectangle }

// Width returns the width.
func (r *Rectangle) Width() float64 { return r.width }

// Height returns the height.
func (r *Rectangle) Height() float64 { return r.height }

// SetWidth updates the width.
//
// Returns:
//   - error: validation error if width is not positive
func (r *Rectangle) SetWidth(width float64) error {
	if err := validateDimension("width", width); err != nil {
		return err
	}
	r.width = width
	return nil
}

// SetHeight updates the height.
//
// Returns:
//   - error: validation error if height is not positive
func (r *Rectangle) SetHeight(height float64) error {
	if err := validateDimension("height", height); err != nil {
		return err
	}
	r.height = height
	return nil
}

// Area returns width * height.
func (r *Rectangle) Area() float64 {
	return r.width * r.height
}

// Perimeter returns 2 * (width + height).
func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

// Diagonal returns sqrt(width² + height²).
func (r *Rectangle) Diagonal() float64 {
	return math.Sqrt(r.width*r.width + r.height*r.height)
}

// String implements fmt.Stringer.
func (r *Rectangle) String() string {
	u := r.Unit()
	return fmt.Sprintf("Rectangle(width=%s%s, height=%s%s, area=%.2f%s, perimeter=%.2f%s)",
		valueobject.FormatNumber(r.width), u, valueobject.FormatNumber(r.height), u,
		r.Area(), u.Squared(), r.Perimeter(), u)
}

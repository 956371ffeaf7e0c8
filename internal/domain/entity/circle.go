package entity

import (
	"fmt"
	"math"

	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// Circle is a flat disc described by its radius.
type Circle struct {
	base
	radius float64
}

// NewCircle creates a new Circle.
//
// Parameters:
//   - radius: radius (must be positive)
//   - unit: unit label; empty means valueobject.DefaultUnit
//
// Returns:
//   - *Circle: the new circle
//   - error: validation error if radius is not positive
func NewCircle(radius float64, unit valueobject.Unit) (*Circle, error) {
	if err := validateDimension("radius", radius); err != nil {
		return nil, err
	}
	return &Circle{base: newBase(unit), radius: radius}, nil
}

// Kind implements Shape.
func (c *Circle) Kind() Kind { return KindCircle }

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius updates the radius.
func (c *Circle) SetRadius(radius float64) error {
	if err := validateDimension("radius", radius); err != nil {
		return err
	}
	c.radius = radius
	return nil
}

// Area returns pi * r².
func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Perimeter returns the circumference, 2 * pi * r.
func (c *Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

// Diameter returns 2 * r.
func (c *Circle) Diameter() float64 {
	return 2 * c.radius
}

// String implements fmt.Stringer.
func (c *Circle) String() string {
	u := c.Unit()
	return fmt.Sprintf("Circle(radius=%s%s, area=%.2f%s, circumference=%.2f%s)",
		valueobject.FormatNumber(c.radius), u, c.Area(), u.Squared(), c.Perimeter(), u)
}

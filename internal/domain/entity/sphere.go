package entity

import (
	"fmt"
	"math"

	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// Sphere is a ball described by its radius.
type Sphere struct {
	base
	radius float64
}

// NewSphere creates a new Sphere.
//
// Parameters:
//   - radius: radius (must be positive)
//   - unit: unit label; empty means valueobject.DefaultUnit
//
// Returns:
//   - *Sphere: the new sphere
//   - error: validation error if radius is not positive
func NewSphere(radius float64, unit valueobject.Unit) (*Sphere, error) {
	if err := validateDimension("radius", radius); err != nil {
		return nil, err
	}
	return &Sphere{base: newBase(unit), radius: radius}, nil
}

// Kind implements Shape.
func (s *Sphere) Kind() Kind { return KindSphere }

// Radius returns the radius.
func (s *Sphere) Radius() float64 { return s.radius }

// SetRadius updates the radius.
func (s *Sphere) SetRadius(radius float64) error {
	if err := validateDimension("radius", radius); err != nil {
		return err
	}
	s.radius = radius
	return nil
}

// Diameter returns 2 * r.
func (s *Sphere) Diameter() float64 {
	return 2 * s.radius
}

// Volume returns 4/3 * pi * r³.
func (s *Sphere) Volume() float64 {
	return (4.0 / 3.0) * math.Pi * s.radius * s.radius * s.radius
}

// SurfaceArea returns 4 * pi * r².
func (s *Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.radius * s.radius
}

// ConvertUnits scales the radius by a caller-supplied factor and relabels
// the unit. Same contract as Cube.ConvertUnits.
func (s *Sphere) ConvertUnits(factor float64, unit valueobject.Unit) error {
	scaled, err := scaleDimension("radius", s.radius, factor)
	if err != nil {
		return err
	}
	s.radius = scaled
	s.SetUnit(unit)
	return nil
}

// String implements fmt.Stringer.
func (s *Sphere) String() string {
	u := s.Unit()
	return fmt.Sprintf("Sphere(radius=%s%s, volume=%.2f%s, surface_area=%.2f%s)",
		valueobject.FormatNumber(s.radius), u, s.Volume(), u.Cubed(), s.SurfaceArea(), u.Squared())
}

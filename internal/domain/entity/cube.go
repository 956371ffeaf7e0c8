package entity

import (
	"fmt"

	"github.com/hapkiduki/geoshapes/internal/domain"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// Cube is a regular hexahedron described by its side length.
type Cube struct {
	base
	side float64
}

// NewCube creates a new Cube.
//
// Parameters:
//   - side: side length (must be positive)
//   - unit: unit label; empty means valueobject.DefaultUnit
//
// Returns:
//   - *Cube: the new cube
//   - error: validation error if side is not positive
func NewCube(side float64, unit valueobject.Unit) (*Cube, error) {
	if err := validateDimension("side", side); err != nil {
		return nil, err
	}
	return &Cube{base: newBase(unit), side: side}, nil
}

// Kind implements Shape.
func (c *Cube) Kind() Kind { return KindCube }

// Side returns the side length.
func (c *Cube) Side() float64 { return c.side }

// SetSide updates the side length.
func (c *Cube) SetSide(side float64) error {
	if err := validateDimension("side", side); err != nil {
		return err
	}
	c.side = side
	return nil
}

// Volume returns side³.
func (c *Cube) Volume() float64 {
	return c.side * c.side * c.side
}

// SurfaceArea returns 6 * side².
func (c *Cube) SurfaceArea() float64 {
	return 6 * c.side * c.side
}

// ConvertUnits scales the side by a caller-supplied factor and relabels the
// unit. The factor is trusted, not looked up; use valueobject.ConversionFactor
// to obtain one.
//
// Parameters:
//   - factor: multiplier applied to the side (must be positive and finite)
//   - unit: the new unit label
//
// Returns:
//   - error: ErrInvalidScaleFactor if factor would break the side invariant
func (c *Cube) ConvertUnits(factor float64, unit valueobject.Unit) error {
	scaled, err := scaleDimension("side", c.side, factor)
	if err != nil {
		return err
	}
	c.side = scaled
	c.SetUnit(unit)
	return nil
}

// String implements fmt.Stringer.
func (c *Cube) String() string {
	u := c.Unit()
	return fmt.Sprintf("Cube(side=%s%s, volume=%.2f%s, surface_area=%.2f%s)",
		valueobject.FormatNumber(c.side), u, c.Volume(), u.Cubed(), c.SurfaceArea(), u.Squared())
}

// scaleDimension multiplies value by factor, keeping the result valid.
func scaleDimension(field string, value, factor float64) (float64, error) {
	if err := validateDimension("factor", factor); err != nil {
		return 0, domain.NewValidationError("factor", factor, ErrInvalidScaleFactor)
	}
	scaled := value * factor
	if err := validateDimension(field, scaled); err != nil {
		return 0, err
	}
	return scaled, nil
}

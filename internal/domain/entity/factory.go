package entity

import (
	"fmt"
	"strings"

	"github.com/hapkiduki/geoshapes/internal/domain"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// dimensionCount is the number of dimensions each kind is built from.
var dimensionCount = map[Kind]int{
	KindRectangle: 2,
	KindCircle:    1,
	KindCube:      1,
	KindSphere:    1,
}

// Kinds returns every shape kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindRectangle, KindCircle, KindCube, KindSphere}
}

// ParseKind resolves a case-insensitive kind name (e.g. "circle").
//
// Returns:
//   - Kind: the matching kind
//   - error: ErrUnknownKind (validation) if no kind matches
func ParseKind(name string) (Kind, error) {
	n := strings.TrimSpace(name)
	for _, k := range Kinds() {
		if strings.EqualFold(string(k), n) {
			return k, nil
		}
	}
	return "", domain.NewValidationError("kind", name, ErrUnknownKind)
}

// New builds a shape of the given kind from its dimensions.
// Rectangles take width and height; every other kind takes a single value
// (radius or side).
//
// Example usage:
//
//	s, err := entity.New(entity.KindRectangle, valueobject.UnitCentimeter, 10, 5)
//
// Parameters:
//   - kind: the shape kind
//   - unit: unit label; empty means valueobject.DefaultUnit
//   - dims: dimensions in construction order
//
// Returns:
//   - Shape: the new shape
//   - error: ErrUnknownKind, ErrDimensionCount or a dimension validation error
func New(kind Kind, unit valueobject.Unit, dims ...float64) (Shape, error) {
	want, ok := dimensionCount[kind]
	if !ok {
		return nil, domain.NewValidationError("kind", string(kind), ErrUnknownKind)
	}
	if len(dims) != want {
		return nil, domain.NewValidationError("dimensions", dims,
			fmt.Errorf("%w: %s takes %d, got %d", ErrDimensionCount, kind, want, len(dims)))
	}

	var (
		s   Shape
		err error
	)
	// Assign through typed results so a failed constructor yields a nil
	// interface rather than a typed nil pointer.
	switch kind {
	case KindRectangle:
		var r *Rectangle
		if r, err = NewRectangle(dims[0], dims[1], unit); err == nil {
			s = r
		}
	case KindCircle:
		var c *Circle
		if c, err = NewCircle(dims[0], unit); err == nil {
			s = c
		}
	case KindCube:
		var c *Cube
		if c, err = NewCube(dims[0], unit); err == nil {
			s = c
		}
	default:
		var sp *Sphere
		if sp, err = NewSphere(dims[0], unit); err == nil {
			s = sp
		}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Dimensions returns the construction dimensions of s, in the order New
// expects them.
func Dimensions(s Shape) []float64 {
	switch v := s.(type) {
	case *Rectangle:
		return []float64{v.Width(), v.Height()}
	case *Circle:
		return []float64{v.Radius()}
	case *Cube:
		return []float64{v.Side()}
	case *Sphere:
		return []float64{v.Radius()}
	}
	return nil
}

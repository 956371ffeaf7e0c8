// Package dto contains data transfer objects exchanged between the CLI and
// the domain layer. They carry JSON and YAML tags for the CLI's structured output.
package dto

import (
	"github.com/hapkiduki/geoshapes/internal/domain/entity"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// ShapeSpec is the transport form of a shape: kind, dimensions and unit.
type ShapeSpec struct {
	// Kind is a case-insensitive kind name (rectangle, circle, cube, sphere).
	Kind string `json:"kind" yaml:"kind"`

	// Dimensions in construction order (width, height | radius | side).
	Dimensions []float64 `json:"dimensions" yaml:"dimensions"`

	// Unit is the unit label; empty means the default unit.
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Build checks the kind and dimension count, then constructs the shape.
//
// Returns:
//   - entity.Shape: the new shape
//   - error: entity.ErrUnknownKind, entity.ErrDimensionCount or a dimension error
func (s ShapeSpec) Build() (entity.Shape, error) {
	kind, err := entity.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	return entity.New(kind, valueobject.Unit(s.Unit), s.Dimensions...)
}

// ShapeSummary is a flat projection of a shape and its derived metrics.
// Metrics a variant does not have are nil.
type ShapeSummary struct {
	Kind        string    `json:"kind" yaml:"kind"`
	Unit        string    `json:"unit" yaml:"unit"`
	Dimensions  []float64 `json:"dimensions" yaml:"dimensions"`
	Area        *float64  `json:"area,omitempty" yaml:"area,omitempty"`
	Perimeter   *float64  `json:"perimeter,omitempty" yaml:"perimeter,omitempty"`
	SurfaceArea *float64  `json:"surface_area,omitempty" yaml:"surface_area,omitempty"`
	Volume      *float64  `json:"volume,omitempty" yaml:"volume,omitempty"`
}

// NewShapeSummary projects a shape into a ShapeSummary.
func NewShapeSummary(s entity.Shape) ShapeSummary {
	sum := ShapeSummary{
		Kind:       string(s.Kind()),
		Unit:       string(s.Unit()),
		Dimensions: entity.Dimensions(s),
	}
	switch v := s.(type) {
	case entity.Shape2D:
		sum.Area = ptr(v.Area())
		sum.Perimeter = ptr(v.Perimeter())
	case entity.Shape3D:
		sum.SurfaceArea = ptr(v.SurfaceArea())
		sum.Volume = ptr(v.Volume())
	}
	return sum
}

// NewShapeSummaries projects every shape.
func NewShapeSummaries(shapes []entity.Shape) []ShapeSummary {
	out := make([]ShapeSummary, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, NewShapeSummary(s))
	}
	return out
}

// ConversionResult is the outcome of a unit conversion.
type ConversionResult struct {
	Value     float64 `json:"value" yaml:"value"`
	From      string  `json:"from" yaml:"from"`
	Converted float64 `json:"converted" yaml:"converted"`
	To        string  `json:"to" yaml:"to"`
}

func ptr(v float64) *float64 {
	return &v
}

package cli

import (
	"fmt"
	"io"

	"github.com/hapkiduki/geoshapes/internal/application/dto"
	"github.com/hapkiduki/geoshapes/internal/application/port"
	"github.com/hapkiduki/geoshapes/internal/domain/entity"
	"github.com/hapkiduki/geoshapes/internal/domain/service"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// DefaultSampleSet is the built-in demo set.
func DefaultSampleSet() []dto.ShapeSpec {
	return []dto.ShapeSpec{
		{Kind: "rectangle", Dimensions: []float64{10, 5}, Unit: "cm"},
		{Kind: "circle", Dimensions: []float64{7}, Unit: "cm"},
		{Kind: "cube", Dimensions: []float64{5}, Unit: "cm"},
		{Kind: "sphere", Dimensions: []float64{4}, Unit: "cm"},
	}
}

// unitScaler is implemented by shapes that rescale in place.
type unitScaler interface {
	ConvertUnits(factor float64, unit valueobject.Unit) error
}

// Demo walks a sample set through every library feature and prints the
// results.
type Demo struct {
	log   port.Logger
	out   io.Writer
	table TableOptions
	unit  valueobject.Unit
}

// NewDemo creates a new Demo.
//
// Parameters:
//   - log: logger for diagnostics (stdout is reserved for the report)
//   - out: report destination
//   - table: table and number formatting
//   - unit: target unit of the conversion round trip
func NewDemo(log port.Logger, out io.Writer, table TableOptions, unit valueobject.Unit) *Demo {
	return &Demo{log: log, out: out, table: table, unit: unit}
}

// Build constructs the shapes described by specs, stopping at the first
// invalid one.
func (d *Demo) Build(specs []dto.ShapeSpec) ([]entity.Shape, error) {
	shapes := make([]entity.Shape, 0, len(specs))
	for i, spec := range specs {
		s, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i+1, spec.Kind, err)
		}
		d.log.Debug("Shape created", "kind", s.Kind(), "unit", s.Unit())
		shapes = append(shapes, s)
	}
	d.log.Info("Sample set built", "count", len(shapes))
	return shapes, nil
}

// Run prints the five demo sections for shapes.
func (d *Demo) Run(shapes []entity.Shape) error {
	d.printf("Geometric shapes\n")

	d.printf("\n1. Shapes:\n")
	for _, s := range shapes {
		d.printf("Created: %s\n", s)
	}

	d.printf("\n2. Calculations:\n")
	RenderTable(d.out, dto.NewShapeSummaries(shapes), d.table)

	d.printf("\n3. Comparisons:\n")
	if err := d.compareAll(shapes); err != nil {
		return err
	}

	d.printf("\n4. Unit conversion:\n")
	if err := d.roundTrip(shapes); err != nil {
		return err
	}

	d.printf("\n5. Details:\n")
	for _, s := range shapes {
		d.printf("%s\n", Describe(s, d.table.DisplayOptions))
	}

	d.printf("Done\n")
	return nil
}

// compareAll compares the shapes pairwise: first with second, third with
// fourth, and so on.
func (d *Demo) compareAll(shapes []entity.Shape) error {
	for i := 0; i+1 < len(shapes); i += 2 {
		a, b := shapes[i], shapes[i+1]
		c, err := service.Compare(a, b)
		if err != nil {
			return err
		}
		if c.UnitMismatch {
			d.log.Warn("Comparing shapes recorded in different units",
				"first", a.Kind(), "first_unit", a.Unit(),
				"second", b.Kind(), "second_unit", b.Unit())
		}
		d.printf("%s vs %s: %s\n", a.Kind(), b.Kind(), c)
	}
	return nil
}

// roundTrip converts the first solid (or the first shape) into the target
// unit and back. The forward step builds a new shape from looked-up values;
// the backward step rescales that copy in place with a precomputed factor.
func (d *Demo) roundTrip(shapes []entity.Shape) error {
	if len(shapes) == 0 {
		return nil
	}
	src := shapes[0]
	for _, s := range shapes {
		if _, ok := s.(entity.Shape3D); ok {
			src = s
			break
		}
	}

	converted, err := ConvertShape(src, d.unit)
	if err != nil {
		return err
	}
	d.printf("Before:   %s\n", src)
	d.printf("After:    %s\n", converted)

	restored, err := restore(converted, src.Unit())
	if err != nil {
		return err
	}
	d.printf("Restored: %s\n", restored)

	d.log.Debug("Unit round trip complete", "kind", src.Kind(), "from", src.Unit(), "to", d.unit)
	return nil
}

// ConvertShape returns a copy of s with every dimension converted to unit.
// s is not modified.
func ConvertShape(s entity.Shape, unit valueobject.Unit) (entity.Shape, error) {
	dims := entity.Dimensions(s)
	for i, v := range dims {
		c, err := valueobject.Convert(v, s.Unit(), unit)
		if err != nil {
			return nil, err
		}
		dims[i] = c
	}
	return entity.New(s.Kind(), unit, dims...)
}

func restore(s entity.Shape, unit valueobject.Unit) (entity.Shape, error) {
	scaler, ok := s.(unitScaler)
	if !ok {
		return ConvertShape(s, unit)
	}
	factor, err := valueobject.ConversionFactor(s.Unit(), unit)
	if err != nil {
		return nil, err
	}
	if err := scaler.ConvertUnits(factor, unit); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *Demo) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

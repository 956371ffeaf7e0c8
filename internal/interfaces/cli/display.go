// Package cli contains the console adapters: shape descriptions, summary
// tables, argument parsing and the cobra subcommands built on them.
package cli

import (
	"fmt"
	"strings"

	"github.com/hapkiduki/geoshapes/internal/domain/entity"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// DisplayOptions controls number formatting.
type DisplayOptions struct {
	// Compact renders metrics of 1000 and more with K/M suffixes.
	Compact bool
}

// FormatMetric renders a derived metric with two decimals.
// In compact mode values of at least 1e3 and 1e6 get a K or M suffix.
func FormatMetric(v float64, opts DisplayOptions) string {
	if opts.Compact {
		switch {
		case v >= 1_000_000:
			return fmt.Sprintf("%.2fM", v/1_000_000)
		case v >= 1_000:
			return fmt.Sprintf("%.2fK", v/1_000)
		}
	}
	return fmt.Sprintf("%.2f", v)
}

// Describe renders a multi-line summary of a shape:
//
//	Shape: Rectangle
//	  Width: 10cm
//	  Height: 5cm
//	  Diagonal: 11.18cm
//	  Area: 50.00cm²
//	  Perimeter: 30.00cm
func Describe(s entity.Shape, opts DisplayOptions) string {
	var b strings.Builder
	u := s.Unit()

	dim := func(label string, v float64) {
		fmt.Fprintf(&b, "  %s: %s%s\n", label, valueobject.FormatNumber(v), u)
	}
	metric := func(label string, v float64, suffix string) {
		fmt.Fprintf(&b, "  %s: %s%s\n", label, FormatMetric(v, opts), suffix)
	}

	fmt.Fprintf(&b, "Shape: %s\n", s.Kind())

	switch v := s.(type) {
	case *entity.Rectangle:
		dim("Width", v.Width())
		dim("Height", v.Height())
		metric("Diagonal", v.Diagonal(), string(u))
	case *entity.Circle:
		dim("Radius", v.Radius())
		metric("Diameter", v.Diameter(), string(u))
	case *entity.Cube:
		dim("Side", v.Side())
	case *entity.Sphere:
		dim("Radius", v.Radius())
		metric("Diameter", v.Diameter(), string(u))
	}

	switch v := s.(type) {
	case entity.Shape2D:
		metric("Area", v.Area(), u.Squared())
		metric("Perimeter", v.Perimeter(), string(u))
	case entity.Shape3D:
		metric("Surface area", v.SurfaceArea(), u.Squared())
		metric("Volume", v.Volume(), u.Cubed())
	}

	return b.String()
}

package valueobject

import (
	"math"
	"strconv"

	"github.com/hapkiduki/geoshapes/internal/domain"
)

// Length represents a measured length with its unit.
//
// Example usage:
//
//	side := valueobject.NewLength(5, valueobject.UnitCentimeter)
//	inMeters, err := side.ConvertTo(valueobject.UnitMeter) // 0.05 m
type Length struct {
	// Value is the numeric length.
	Value float64 `json:"value" yaml:"value"`

	// Unit is the unit label of Value.
	Unit Unit `json:"unit" yaml:"unit"`
}

// NewLength creates a new Length value object.
// An empty unit is replaced by DefaultUnit.
func NewLength(value float64, unit Unit) Length {
	return Length{
		Value: value,
		Unit:  unit.OrDefault(),
	}
}

// ConvertTo returns the same length expressed in another unit.
//
// Parameters:
//   - unit: target unit
//
// Returns:
//   - Length: the converted length, labeled with unit
//   - error: ErrUnknownUnit if either unit is not supported
func (l Length) ConvertTo(unit Unit) (Length, error) {
	v, err := Convert(l.Value, l.Unit, unit)
	if err != nil {
		return Length{}, err
	}
	return Length{Value: v, Unit: unit}, nil
}

// Validate checks that the length is a finite, strictly positive number.
// field names the dimension in the returned error.
func (l Length) Validate(field string) error {
	if math.IsNaN(l.Value) || math.IsInf(l.Value, 0) {
		return domain.NewArgumentError(field, l.Value, ErrNonFiniteValue)
	}
	if l.Value <= 0 {
		return domain.NewValidationError(field, l.Value, ErrNonPositiveLength)
	}
	return nil
}

// IsZero checks if the length is zero.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// Equals checks if two lengths have the same value and unit label.
func (l Length) Equals(other Length) bool {
	return l.Value == other.Value && l.Unit == other.Unit
}

// String returns the length with its unit appended (e.g. "10cm", "2.5m").
func (l Length) String() string {
	return FormatNumber(l.Value) + string(l.Unit)
}

// FormatNumber renders a dimension with the shortest exact representation.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Package valueobject contains value objects that represent concepts without identity.
// Value objects are compared by their attributes and validate their own data
// upon creation.
//
// This package holds the length unit table and the unit converter:
//   - Every supported unit is anchored to the meter (its meter-factor).
//   - Conversion multiplies by the source factor and divides by the target factor.
//   - Lookups are case-insensitive.
package valueobject

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hapkiduki/geoshapes/internal/domain"
)

// Unit is a length unit symbol (e.g. "cm").
// On a shape it is a free-form label; only the converter checks it
// against the supported table.
type Unit string

// Supported units.
const (
	UnitMillimeter Unit = "mm" // millimeter
	UnitCentimeter Unit = "cm" // centimeter
	UnitDecimeter  Unit = "dm" // decimeter
	UnitMeter      Unit = "m"  // meter
	UnitKilometer  Unit = "km" // kilometer
	UnitInch       Unit = "in" // international inch
	UnitFoot       Unit = "ft" // international foot
)

// DefaultUnit is used when no unit is given.
const DefaultUnit = UnitCentimeter

// Unit errors.
var (
	ErrUnknownUnit    = errors.New("unknown unit")
	ErrNonFiniteValue = errors.New("value must be a finite number")

	// ErrNonPositiveLength is returned when a dimension is zero or negative.
	ErrNonPositiveLength = errors.New("dimension must be positive")
)

// meterFactors maps each supported unit to its length in meters.
var meterFactors = map[Unit]float64{
	UnitMillimeter: 0.001,
	UnitCentimeter: 0.01,
	UnitDecimeter:  0.1,
	UnitMeter:      1.0,
	UnitKilometer:  1000.0,
	UnitInch:       0.0254,
	UnitFoot:       0.3048,
}

// Normalize returns the lowercase form of the unit used for table lookups.
func (u Unit) Normalize() Unit {
	return Unit(strings.ToLower(strings.TrimSpace(string(u))))
}

// IsSupported reports whether the converter knows the unit.
func (u Unit) IsSupported() bool {
	_, ok := meterFactors[u.Normalize()]
	return ok
}

// OrDefault returns DefaultUnit when u is empty.
func (u Unit) OrDefault() Unit {
	if u == "" {
		return DefaultUnit
	}
	return u
}

// Squared returns the label for an area in this unit (e.g. "cm²").
func (u Unit) Squared() string {
	return string(u) + "²"
}

// Cubed returns the label for a volume in this unit (e.g. "cm³").
func (u Unit) Cubed() string {
	return string(u) + "³"
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// ParseUnit validates a unit symbol and returns its normalized form.
//
// Parameters:
//   - s: unit symbol, any case
//
// Returns:
//   - Unit: the normalized unit
//   - error: ErrUnknownUnit (validation) if the symbol is not supported
func ParseUnit(s string) (Unit, error) {
	u := Unit(s).Normalize()
	if _, ok := meterFactors[u]; !ok {
		return "", domain.NewValidationError("unit", s, ErrUnknownUnit)
	}
	return u, nil
}

// MeterFactor returns the length of one unit in meters.
//
// Parameters:
//   - u: unit symbol, any case
//
// Returns:
//   - float64: the meter-factor
//   - error: ErrUnknownUnit (validation) if the symbol is not supported
func MeterFactor(u Unit) (float64, error) {
	f, ok := meterFactors[u.Normalize()]
	if !ok {
		return 0, domain.NewValidationError("unit", string(u), ErrUnknownUnit)
	}
	return f, nil
}

// SupportedUnits returns all supported unit symbols ordered by size.
func SupportedUnits() []Unit {
	units := make([]Unit, 0, len(meterFactors))
	for u := range meterFactors {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool {
		return meterFactors[units[i]] < meterFactors[units[j]]
	})
	return units
}

// ConversionFactor returns the multiplier that converts a length in from
// into a length in to.
//
// Parameters:
//   - from: source unit
//   - to: destination unit
//
// Returns:
//   - float64: the factor (exactly 1 when both units normalize to the same symbol)
//   - error: ErrUnknownUnit (validation) if either unit is not supported
func ConversionFactor(from, to Unit) (float64, error) {
	ff, err := MeterFactor(from)
	if err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	tf, err := MeterFactor(to)
	if err != nil {
		return 0, fmt.Errorf("destination: %w", err)
	}
	if from.Normalize() == to.Normalize() {
		return 1, nil
	}
	return ff / tf, nil
}

// Convert converts a length value between units.
// It is pure: composing the result into a shape is the caller's job.
//
// Example usage:
//
//	m, err := valueobject.Convert(250, "cm", "m") // 2.5
//
// Parameters:
//   - value: the length to convert
//   - from: source unit
//   - to: destination unit
//
// Returns:
//   - float64: the converted value; value itself when from and to match
//   - error: ErrUnknownUnit (validation) or ErrNonFiniteValue (invalid argument)
func Convert(value float64, from, to Unit) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, domain.NewArgumentError("value", value, ErrNonFiniteValue)
	}

	ff, err := MeterFactor(from)
	if err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	tf, err := MeterFactor(to)
	if err != nil {
		return 0, fmt.Errorf("destination: %w", err)
	}

	if from.Normalize() == to.Normalize() {
		return value, nil
	}

	// Convert to meters first, then to the target unit
	meters := value * ff
	return meters / tf, nil
}

// ConvertArea converts an area expressed in from² into to².
func ConvertArea(value float64, from, to Unit) (float64, error) {
	return convertPower(value, from, to, 2)
}

// ConvertVolume converts a volume expressed in from³ into to³.
func ConvertVolume(value float64, from, to Unit) (float64, error) {
	return convertPower(value, from, to, 3)
}

func convertPower(value float64, from, to Unit, power float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, domain.NewArgumentError("value", value, ErrNonFiniteValue)
	}
	factor, err := ConversionFactor(from, to)
	if err != nil {
		return 0, err
	}
	if factor == 1 {
		return value, nil
	}
	return value * math.Pow(factor, power), nil
}

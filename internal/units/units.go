// Package units converts roof areas between the supported display units and
// the canonical unit all calculations run in.
//
// Square meters are canonical. Square feet convert through a fixed constant.
// Validation bounds are deliberately per-unit round numbers rather than
// conversions of a single canonical bound, so each unit shows clean limits.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit identifies a supported area unit.
type Unit int

const (
	// SquareMeters is the canonical unit.
	SquareMeters Unit = iota

	// SquareFeet converts to canonical via SquareFeetPerSquareMeter.
	SquareFeet
)

// SquareFeetPerSquareMeter is the fixed conversion constant: 1 m² = 10.7639 ft².
const SquareFeetPerSquareMeter = 10.7639

// Per-unit validation bounds. Round numbers in each unit, not conversions
// of a shared canonical bound.
const (
	MinSquareMeters = 1.0
	MaxSquareMeters = 100000.0
	MinSquareFeet   = 10.0
	MaxSquareFeet   = 1000000.0
)

// String returns the display symbol for the unit.
func (u Unit) String() string {
	switch u {
	case SquareMeters:
		return "m²"
	case SquareFeet:
		return "ft²"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit maps a unit name to a Unit. Accepted spellings are
// case-insensitive: m2, sqm, ft2, sqft, plus the display symbols.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "m2", "m²", "sqm", "square-meters":
		return SquareMeters, nil
	case "ft2", "ft²", "sqft", "square-feet":
		return SquareFeet, nil
	default:
		return SquareMeters, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
}

// ToCanonical converts a value in the given unit to square meters.
func ToCanonical(value float64, unit Unit) float64 {
	if unit == SquareFeet {
		return value / SquareFeetPerSquareMeter
	}
	return value
}

// FromCanonical converts a square-meter value to the given display unit.
func FromCanonical(value float64, unit Unit) float64 {
	if unit == SquareFeet {
		return value * SquareFeetPerSquareMeter
	}
	return value
}

// Bounds returns the inclusive validation range for the unit.
func Bounds(unit Unit) (minValue, maxValue float64) {
	if unit == SquareFeet {
		return MinSquareFeet, MaxSquareFeet
	}
	return MinSquareMeters, MaxSquareMeters
}

// Validate parses raw user text as an area in the given unit and checks it
// against the unit's bounds.
//
// The returned value is in the input unit, not canonical; conversion happens
// downstream. Failures are reported through the package sentinel errors:
// ErrEmptyInput, ErrNotANumber, ErrBelowMinimum, ErrAboveMaximum.
func Validate(raw string, unit Unit) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrEmptyInput
	}

	// Accept comma decimal separators from European locales.
	normalized := strings.ReplaceAll(trimmed, ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}

	minValue, maxValue := Bounds(unit)
	if value < minValue {
		return 0, fmt.Errorf("%w: %g < %g %s", ErrBelowMinimum, value, minValue, unit)
	}
	if value > maxValue {
		return 0, fmt.Errorf("%w: %g > %g %s", ErrAboveMaximum, value, maxValue, unit)
	}

	return value, nil
}

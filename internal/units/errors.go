package units

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation errors for raw area input.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrEmptyInput indicates a blank area field.
	ErrEmptyInput = constError("area input is empty")

	// ErrNotANumber indicates the area text could not be parsed as a number.
	ErrNotANumber = constError("area input is not a number")

	// ErrBelowMinimum indicates an area below the unit's lower bound.
	ErrBelowMinimum = constError("area below minimum for unit")

	// ErrAboveMaximum indicates an area above the unit's upper bound.
	ErrAboveMaximum = constError("area above maximum for unit")

	// ErrUnknownUnit indicates an unrecognized area unit name.
	ErrUnknownUnit = constError("unknown area unit")
)

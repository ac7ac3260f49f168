package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Catalog errors.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrUnknownRoofType indicates a roof-type key with no catalog entry.
	// This is fatal to a computation: it signals a data/version mismatch,
	// not a recoverable input problem.
	ErrUnknownRoofType = constError("unknown roof type")

	// ErrCostInvariant indicates a record whose total cost does not equal
	// material cost plus labor cost.
	ErrCostInvariant = constError("total cost does not equal material plus labor cost")

	// ErrIncompatibleSchema indicates a catalog schema version outside the
	// supported range.
	ErrIncompatibleSchema = constError("incompatible catalog schema version")
)

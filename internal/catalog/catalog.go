// Package catalog holds the static roof-type coefficient table.
//
// The catalog is pure data: a fixed mapping from roof-type key to physical
// and financial coefficients, populated once at startup and never mutated.
// Load validates the cost invariant and schema version so bad data fails at
// process start, not mid-computation.
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Record holds the coefficients for one roofing technology.
type Record struct {
	// Key is the stable catalog identifier, used as a foreign key by
	// persisted projects.
	Key string `json:"key"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	CO2PerM2Year    float64 `json:"co2_per_m2_year"`
	NOxPerM2Year    float64 `json:"nox_per_m2_year"`
	EnergyPerM2Year float64 `json:"energy_per_m2_year"`
	LifespanYears   int     `json:"lifespan_years"`

	MaterialCostPerM2 float64 `json:"material_cost_per_m2"`
	LaborCostPerM2    float64 `json:"labor_cost_per_m2"`
	TotalCostPerM2    float64 `json:"total_cost_per_m2"`

	// InstallRateM2PerHour is the crew throughput. Zero means the rate is
	// not defined for this technology; the engine reports installation time
	// as unknown rather than dividing by it.
	InstallRateM2PerHour float64 `json:"install_rate_m2_per_hour"`
}

// Catalog is an immutable roof-type lookup table.
type Catalog struct {
	records map[string]Record
	keys    []string
}

// costEpsilon is the tolerance for the total-cost invariant check.
const costEpsilon = 1e-9

// Load builds the built-in catalog after validating every record.
//
// It enforces two invariants the data table cannot express on its own:
// the schema version must satisfy SupportedSchema, and each record's total
// cost must equal material plus labor cost. Either violation is a data bug
// and returns an error instead of a working catalog.
func Load() (*Catalog, error) {
	if err := checkSchema(SchemaVersion); err != nil {
		return nil, err
	}
	return loadRecords(records)
}

// checkSchema validates a catalog schema version against SupportedSchema.
func checkSchema(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("parsing catalog schema version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint %q: %w", SupportedSchema, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrIncompatibleSchema, version, SupportedSchema)
	}
	return nil
}

// loadRecords validates a record set and builds a Catalog from it.
func loadRecords(source map[string]Record) (*Catalog, error) {
	validated := make(map[string]Record, len(source))
	keys := make([]string, 0, len(source))

	for key, rec := range source {
		sum := rec.MaterialCostPerM2 + rec.LaborCostPerM2
		if math.Abs(sum-rec.TotalCostPerM2) > costEpsilon {
			return nil, fmt.Errorf("%w: %s (%g + %g != %g)",
				ErrCostInvariant, key, rec.MaterialCostPerM2, rec.LaborCostPerM2, rec.TotalCostPerM2)
		}
		validated[key] = rec
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return &Catalog{records: validated, keys: keys}, nil
}

// Lookup returns the record for a roof-type key.
// Unknown keys return ErrUnknownRoofType; there is no silent default.
func (c *Catalog) Lookup(key string) (Record, error) {
	rec, ok := c.records[key]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownRoofType, key)
	}
	return rec, nil
}

// Keys returns all roof-type keys in sorted order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Records returns all records in key order.
func (c *Catalog) Records() []Record {
	out := make([]Record, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.records[key])
	}
	return out
}

// Len returns the number of roof types in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

package engine

import (
	"encoding/json"
	"math"

	"github.com/tbakker/roofscope/internal/units"
)

// Configuration is the user's working input to a calculation.
type Configuration struct {
	// AreaValue is the roof area in AreaUnit.
	AreaValue float64 `json:"area_value"`

	// AreaUnit is the unit AreaValue was entered in; calculations convert
	// to canonical square meters first.
	AreaUnit units.Unit `json:"area_unit"`

	// RoofType keys into the catalog and must exist there.
	RoofType string `json:"roof_type"`

	// IncludeSolar adds the solar package to cost and yield calculations.
	IncludeSolar bool `json:"include_solar"`
}

// AreaCanonical returns the configured area in square meters.
func (c Configuration) AreaCanonical() float64 {
	return units.ToCanonical(c.AreaValue, c.AreaUnit)
}

// Environmental holds the per-year environmental metrics.
type Environmental struct {
	// CO2PerYear is the offset in kg CO₂ per year.
	CO2PerYear float64 `json:"co2_per_year"`

	// EnergyPerYear is saved energy in kWh per year (insulation and
	// reflection effects, excluding solar production).
	EnergyPerYear float64 `json:"energy_per_year"`

	// NOxPerYear is depolluted NOₓ in kg per year.
	NOxPerYear float64 `json:"nox_per_year"`

	// NeutralYear is the first year the cumulative CO₂ offset covers the
	// roof's embodied carbon, or nil when that never happens within the
	// catalog lifespan.
	NeutralYear *int `json:"neutral_year,omitempty"`
}

// Financial holds the cost metrics.
type Financial struct {
	// TotalInstallationCost is the one-time cost in EUR, solar included
	// when configured.
	TotalInstallationCost float64 `json:"total_installation_cost"`

	// AnnualSavings is energy value minus maintenance, in EUR per year.
	// May be negative when maintenance exceeds the energy value.
	AnnualSavings float64 `json:"annual_savings"`

	// PaybackYears is cost divided by savings. When savings are zero or
	// negative it is +Inf and PaybackUnattainable is set; it is never NaN.
	PaybackYears float64 `json:"payback_years"`

	// PaybackUnattainable marks a payback that never arrives.
	PaybackUnattainable bool `json:"payback_unattainable"`

	// MaintenanceCost is the annual upkeep in EUR.
	MaintenanceCost float64 `json:"maintenance_cost"`
}

// financialJSON mirrors Financial with a nullable payback so the +Inf
// sentinel survives JSON encoding (encoding/json rejects infinities).
type financialJSON struct {
	TotalInstallationCost float64  `json:"total_installation_cost"`
	AnnualSavings         float64  `json:"annual_savings"`
	PaybackYears          *float64 `json:"payback_years"`
	PaybackUnattainable   bool     `json:"payback_unattainable"`
	MaintenanceCost       float64  `json:"maintenance_cost"`
}

// MarshalJSON encodes an unattainable payback as null.
func (f Financial) MarshalJSON() ([]byte, error) {
	out := financialJSON{
		TotalInstallationCost: f.TotalInstallationCost,
		AnnualSavings:         f.AnnualSavings,
		PaybackUnattainable:   f.PaybackUnattainable,
		MaintenanceCost:       f.MaintenanceCost,
	}
	if !f.PaybackUnattainable && !math.IsInf(f.PaybackYears, 0) {
		out.PaybackYears = &f.PaybackYears
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the +Inf sentinel from a null payback.
func (f *Financial) UnmarshalJSON(data []byte) error {
	var in financialJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	f.TotalInstallationCost = in.TotalInstallationCost
	f.AnnualSavings = in.AnnualSavings
	f.PaybackUnattainable = in.PaybackUnattainable
	f.MaintenanceCost = in.MaintenanceCost
	if in.PaybackYears != nil {
		f.PaybackYears = *in.PaybackYears
	} else if in.PaybackUnattainable {
		f.PaybackYears = math.Inf(1)
	}
	return nil
}

// Technical holds the installation metrics.
type Technical struct {
	// InstallationDays is whole crew days, at least 1 for any positive
	// area with a defined rate.
	InstallationDays int `json:"installation_days"`

	// RateUndefined is set when the catalog has no installation rate for
	// the roof type; InstallationDays is 0 and means unknown, not instant.
	RateUndefined bool `json:"rate_undefined"`

	// SolarEnergyPerYear is PV production in kWh per year, zero without
	// solar or without location data.
	SolarEnergyPerYear float64 `json:"solar_energy_per_year"`
}

// Bundle is the full derived metric set for one configuration.
//
// A Bundle has no identity of its own: it is a pure function of the
// configuration, catalog, and location, recomputed on every input change
// and never persisted.
type Bundle struct {
	Environmental Environmental `json:"environmental"`
	Financial     Financial     `json:"financial"`
	Technical     Technical     `json:"technical"`

	// RoofType echoes the catalog record the bundle was computed from.
	RoofType string `json:"roof_type"`

	// AreaM2 echoes the canonical area used.
	AreaM2 float64 `json:"area_m2"`
}

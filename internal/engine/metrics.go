// Package engine derives the metric bundle from a roof configuration, the
// static catalog, and optional location data.
//
// Compute is pure and deterministic: same inputs always produce identical
// outputs. Numeric edge cases (zero installation rate, zero savings) come
// back as sentinel fields, never as panics or errors; only a structurally
// invalid input, an unknown roof type, fails the computation.
package engine

import (
	"fmt"
	"math"

	"github.com/tbakker/roofscope/internal/catalog"
	"github.com/tbakker/roofscope/internal/location"
)

// Engine computes metric bundles against one loaded catalog and one
// constants table.
type Engine struct {
	catalog   *catalog.Catalog
	constants Constants
}

// New creates an Engine over the given catalog and constants.
func New(cat *catalog.Catalog, constants Constants) *Engine {
	return &Engine{catalog: cat, constants: constants}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Constants returns the engine's constants table.
func (e *Engine) Constants() Constants {
	return e.constants
}

// Compute derives the full metric bundle for a configuration.
//
// loc may be nil; solar production is then zero. An unknown roof type
// returns catalog.ErrUnknownRoofType and no bundle.
func (e *Engine) Compute(cfg Configuration, loc *location.Location) (Bundle, error) {
	rec, err := e.catalog.Lookup(cfg.RoofType)
	if err != nil {
		return Bundle{}, fmt.Errorf("computing metrics: %w", err)
	}

	if cfg.AreaValue < 0 || math.IsNaN(cfg.AreaValue) || math.IsInf(cfg.AreaValue, 0) {
		return Bundle{}, fmt.Errorf("computing metrics: invalid area %g", cfg.AreaValue)
	}

	area := cfg.AreaCanonical()

	env := e.computeEnvironmental(area, rec)
	tech := e.computeTechnical(area, rec, cfg.IncludeSolar, loc)
	fin := e.computeFinancial(area, rec, cfg.IncludeSolar, env, tech)

	return Bundle{
		Environmental: env,
		Financial:     fin,
		Technical:     tech,
		RoofType:      rec.Key,
		AreaM2:        area,
	}, nil
}

// computeEnvironmental derives the per-year environmental metrics and the
// carbon-neutral year.
func (e *Engine) computeEnvironmental(area float64, rec catalog.Record) Environmental {
	env := Environmental{
		CO2PerYear:    area * rec.CO2PerM2Year,
		EnergyPerYear: area * rec.EnergyPerM2Year,
		NOxPerYear:    area * rec.NOxPerM2Year,
	}
	env.NeutralYear = e.neutralYear(area, rec, env.CO2PerYear)
	return env
}

// neutralYear finds the smallest year count whose cumulative CO₂ offset
// covers the roof's embodied carbon. The search is bounded by the catalog
// lifespan; an unreachable target returns nil rather than searching forever.
func (e *Engine) neutralYear(area float64, rec catalog.Record, co2PerYear float64) *int {
	if co2PerYear <= 0 || area <= 0 {
		return nil
	}
	target := area * e.constants.EmbodiedCO2PerM2
	for year := 1; year <= rec.LifespanYears; year++ {
		if co2PerYear*float64(year) >= target {
			y := year
			return &y
		}
	}
	return nil
}

// computeTechnical derives installation duration and solar yield.
func (e *Engine) computeTechnical(
	area float64,
	rec catalog.Record,
	includeSolar bool,
	loc *location.Location,
) Technical {
	tech := Technical{}

	if rec.InstallRateM2PerHour <= 0 {
		tech.RateUndefined = true
	} else if area > 0 {
		perDay := rec.InstallRateM2PerHour * e.constants.WorkHoursPerDay
		tech.InstallationDays = int(math.Ceil(area / perDay))
	}

	if includeSolar && loc != nil {
		tech.SolarEnergyPerYear = area * loc.SolarIrradiance * e.constants.PanelEfficiency
	}

	return tech
}

// computeFinancial derives cost, savings, and payback.
func (e *Engine) computeFinancial(
	area float64,
	rec catalog.Record,
	includeSolar bool,
	env Environmental,
	tech Technical,
) Financial {
	fin := Financial{
		TotalInstallationCost: area * rec.TotalCostPerM2,
		MaintenanceCost:       area * e.constants.MaintenancePerM2Year,
	}
	if includeSolar {
		fin.TotalInstallationCost += area * e.constants.SolarSurchargePerM2
	}

	energyValue := (env.EnergyPerYear + tech.SolarEnergyPerYear) * e.constants.EnergyPricePerKWh
	fin.AnnualSavings = energyValue - fin.MaintenanceCost

	switch {
	case fin.AnnualSavings > 0:
		fin.PaybackYears = fin.TotalInstallationCost / fin.AnnualSavings
	case fin.TotalInstallationCost == 0:
		// Zero cost pays back immediately regardless of savings.
		fin.PaybackYears = 0
	default:
		fin.PaybackYears = math.Inf(1)
		fin.PaybackUnattainable = true
	}

	return fin
}

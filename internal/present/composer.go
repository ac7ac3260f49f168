// Package present composes the role-adapted, view-ready presentation from a
// computed metric bundle.
//
// The composer is the single seam between calculation and rendering: the CLI
// table, the TUI, the JSON output, and the report generator all consume the
// same composed sections instead of re-deriving metrics.
package present

import (
	"github.com/tbakker/roofscope/internal/engine"
	"github.com/tbakker/roofscope/internal/role"
)

// Metric is one display-ready value inside a section.
type Metric struct {
	// Key is the stable metric identifier.
	Key string `json:"key"`

	// Label is the human-readable metric name.
	Label string `json:"label"`

	// Value is the raw numeric value (JSON consumers use this).
	Value float64 `json:"value"`

	// Formatted is the display string including unit and separators.
	Formatted string `json:"formatted"`

	// Unit names the measurement unit, empty for dimensionless values.
	Unit string `json:"unit,omitempty"`
}

// Section is one ordered, labeled metric category.
type Section struct {
	ID          role.Section `json:"id"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Items       []Metric     `json:"items"`
}

// Compose projects a bundle into role-ordered sections. Content is
// metrics-driven; only ordering, labels, and descriptions vary by role.
// Compose is a pure transform.
func Compose(bundle engine.Bundle, r role.Role) []Section {
	labels := role.Labels(r)
	descriptions := role.Descriptions(r)

	sections := make([]Section, 0, 3)
	for _, id := range role.MetricOrder(r) {
		section := Section{
			ID:          id,
			Label:       labels[id],
			Description: descriptions[id],
		}

		switch id {
		case role.SectionEnvironmental:
			section.Items = environmentalItems(bundle.Environmental)
		case role.SectionFinancial:
			section.Items = financialItems(bundle.Financial)
		case role.SectionTechnical:
			section.Items = technicalItems(bundle.Technical)
		case role.SectionRoofSize, role.SectionRoofType, role.SectionLocation, role.SectionSolar:
			// input sections carry no metrics
			continue
		}

		sections = append(sections, section)
	}
	return sections
}

func environmentalItems(env engine.Environmental) []Metric {
	items := []Metric{
		{Key: "co2_per_year", Label: "CO₂ offset", Value: env.CO2PerYear,
			Formatted: FormatFloat(env.CO2PerYear, 0) + " kg/year", Unit: "kg/year"},
		{Key: "nox_per_year", Label: "NOₓ reduction", Value: env.NOxPerYear,
			Formatted: FormatFloat(env.NOxPerYear, 1) + " kg/year", Unit: "kg/year"},
		{Key: "energy_per_year", Label: "Energy saved", Value: env.EnergyPerYear,
			Formatted: FormatFloat(env.EnergyPerYear, 0) + " kWh/year", Unit: "kWh/year"},
	}

	neutral := Metric{Key: "neutral_year", Label: "Carbon neutral after", Formatted: "not within lifespan"}
	if env.NeutralYear != nil {
		neutral.Value = float64(*env.NeutralYear)
		neutral.Formatted = FormatNumber(int64(*env.NeutralYear)) + " years"
		neutral.Unit = "years"
	}
	return append(items, neutral)
}

func financialItems(fin engine.Financial) []Metric {
	// JSON cannot carry +Inf; the unattainable sentinel travels through the
	// formatted string and the raw value stays zero.
	payback := fin.PaybackYears
	if fin.PaybackUnattainable {
		payback = 0
	}

	return []Metric{
		{Key: "total_installation_cost", Label: "Installation cost", Value: fin.TotalInstallationCost,
			Formatted: FormatMoney(fin.TotalInstallationCost), Unit: "EUR"},
		{Key: "annual_savings", Label: "Annual savings", Value: fin.AnnualSavings,
			Formatted: FormatMoney(fin.AnnualSavings) + "/year", Unit: "EUR/year"},
		{Key: "payback_years", Label: "Payback period", Value: payback,
			Formatted: FormatYears(fin.PaybackYears, fin.PaybackUnattainable), Unit: "years"},
		{Key: "maintenance_cost", Label: "Maintenance", Value: fin.MaintenanceCost,
			Formatted: FormatMoney(fin.MaintenanceCost) + "/year", Unit: "EUR/year"},
	}
}

func technicalItems(tech engine.Technical) []Metric {
	days := Metric{Key: "installation_days", Label: "Installation time",
		Value: float64(tech.InstallationDays), Unit: "days"}
	if tech.RateUndefined {
		days.Formatted = "unknown"
	} else {
		days.Formatted = FormatNumber(int64(tech.InstallationDays)) + " days"
	}

	return []Metric{
		days,
		{Key: "solar_energy_per_year", Label: "Solar production", Value: tech.SolarEnergyPerYear,
			Formatted: FormatFloat(tech.SolarEnergyPerYear, 0) + " kWh/year", Unit: "kWh/year"},
	}
}

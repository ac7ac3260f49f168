package engine

// Constants is the single named table of tunable calculation values.
//
// None of these are derived; they are pricing and policy assumptions. Keeping
// them in one struct makes every assumption overridable from configuration
// instead of being scattered as magic numbers through the formulas.
type Constants struct {
	// SolarSurchargePerM2 is the extra installation cost per m² when solar
	// is included, in EUR.
	SolarSurchargePerM2 float64 `yaml:"solar_surcharge_per_m2"`

	// PanelEfficiency is the fraction of irradiance converted to usable
	// energy by the assumed panel package.
	PanelEfficiency float64 `yaml:"panel_efficiency"`

	// EnergyPricePerKWh values saved or produced energy, in EUR.
	EnergyPricePerKWh float64 `yaml:"energy_price_per_kwh"`

	// MaintenancePerM2Year is the annual upkeep cost per m², in EUR.
	MaintenancePerM2Year float64 `yaml:"maintenance_per_m2_year"`

	// WorkHoursPerDay converts the catalog's hourly installation rate into
	// crew days.
	WorkHoursPerDay float64 `yaml:"work_hours_per_day"`

	// EmbodiedCO2PerM2 is the production footprint a roof must offset
	// before counting as carbon neutral, in kg per m².
	EmbodiedCO2PerM2 float64 `yaml:"embodied_co2_per_m2"`
}

// DefaultConstants returns the built-in assumption set.
func DefaultConstants() Constants {
	return Constants{
		SolarSurchargePerM2:  180,
		PanelEfficiency:      0.18,
		EnergyPricePerKWh:    0.30,
		MaintenancePerM2Year: 1.50,
		WorkHoursPerDay:      8,
		EmbodiedCO2PerM2:     28,
	}
}

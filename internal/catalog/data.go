package catalog

// SchemaVersion is the version of the built-in catalog data. Loaders check
// it against SupportedSchema before serving lookups, so a stale binary fails
// loudly instead of computing against coefficients it does not understand.
const SchemaVersion = "1.2.0"

// SupportedSchema is the semver constraint the loader accepts.
const SupportedSchema = ">= 1.0.0, < 2.0.0"

// Coefficient units: CO2/NOx in kg per m² per year, energy in kWh per m² per
// year, costs in EUR per m², installation rate in m² per hour.
//
// Roof-type keys are persisted as foreign keys in saved projects and must
// stay stable across releases.
var records = map[string]Record{
	"photocatalytic-coating": {
		Key:                  "photocatalytic-coating",
		Name:                 "Photocatalytic Coating",
		CO2PerM2Year:         1.94,
		NOxPerM2Year:         0.071,
		EnergyPerM2Year:      2.5,
		LifespanYears:        15,
		MaterialCostPerM2:    28,
		LaborCostPerM2:       12,
		TotalCostPerM2:       40,
		InstallRateM2PerHour: 25,
	},
	"green-roof-extensive": {
		Key:                  "green-roof-extensive",
		Name:                 "Extensive Green Roof",
		CO2PerM2Year:         2.3,
		NOxPerM2Year:         0.027,
		EnergyPerM2Year:      4.2,
		LifespanYears:        40,
		MaterialCostPerM2:    95,
		LaborCostPerM2:       45,
		TotalCostPerM2:       140,
		InstallRateM2PerHour: 6,
	},
	"green-roof-intensive": {
		Key:                  "green-roof-intensive",
		Name:                 "Intensive Green Roof",
		CO2PerM2Year:         3.1,
		NOxPerM2Year:         0.035,
		EnergyPerM2Year:      5.8,
		LifespanYears:        50,
		MaterialCostPerM2:    240,
		LaborCostPerM2:       110,
		TotalCostPerM2:       350,
		InstallRateM2PerHour: 3,
	},
	"solar-tile": {
		Key:                  "solar-tile",
		Name:                 "Solar Tile",
		CO2PerM2Year:         1.1,
		NOxPerM2Year:         0.004,
		EnergyPerM2Year:      1.0,
		LifespanYears:        30,
		MaterialCostPerM2:    310,
		LaborCostPerM2:       90,
		TotalCostPerM2:       400,
		InstallRateM2PerHour: 4,
	},
	"white-membrane": {
		Key:                  "white-membrane",
		Name:                 "White Reflective Membrane",
		CO2PerM2Year:         0.9,
		NOxPerM2Year:         0.002,
		EnergyPerM2Year:      6.5,
		LifespanYears:        20,
		MaterialCostPerM2:    42,
		LaborCostPerM2:       18,
		TotalCostPerM2:       60,
		InstallRateM2PerHour: 15,
	},
	"clay-tile": {
		Key:                  "clay-tile",
		Name:                 "Clay Tile",
		CO2PerM2Year:         0.2,
		NOxPerM2Year:         0.001,
		EnergyPerM2Year:      1.8,
		LifespanYears:        60,
		MaterialCostPerM2:    65,
		LaborCostPerM2:       55,
		TotalCostPerM2:       120,
		InstallRateM2PerHour: 5,
	},
	"metal-standing-seam": {
		Key:                  "metal-standing-seam",
		Name:                 "Metal Standing Seam",
		CO2PerM2Year:         0.4,
		NOxPerM2Year:         0.001,
		EnergyPerM2Year:      2.2,
		LifespanYears:        45,
		MaterialCostPerM2:    88,
		LaborCostPerM2:       42,
		TotalCostPerM2:       130,
		InstallRateM2PerHour: 9,
	},
	"bitumen-felt": {
		Key:                  "bitumen-felt",
		Name:                 "Bitumen Felt",
		CO2PerM2Year:         0.05,
		NOxPerM2Year:         0.0005,
		EnergyPerM2Year:      0.8,
		LifespanYears:        25,
		MaterialCostPerM2:    24,
		LaborCostPerM2:       16,
		TotalCostPerM2:       40,
		InstallRateM2PerHour: 18,
	},
}

// Package location models site data consumed by the metrics engine.
//
// Real geocoding and irradiance services are external collaborators; this
// package defines the read-only value they produce plus an offline resolver
// backed by a static per-country table so the calculator works without any
// network access.
package location

import (
	"fmt"
	"sort"
	"strings"
)

// Location is read-only site input to the metrics engine.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Country   string  `json:"country"`

	// SolarIrradiance is the usable yield in kWh per m² per year.
	SolarIrradiance float64 `json:"solar_irradiance"`

	ClimateZone string  `json:"climate_zone"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
}

// Resolver turns a user-supplied place reference into a Location.
type Resolver interface {
	Resolve(query string) (Location, error)
}

// StaticResolver resolves country codes against a built-in table.
// It backs the CLI when no live geocoding collaborator is wired in.
type StaticResolver struct{}

// NewStaticResolver returns the offline country-table resolver.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

// countryTable holds representative irradiance and climate values per
// country code. Values are national averages, good enough for an estimate.
var countryTable = map[string]Location{
	"dk": {Latitude: 56.0, Longitude: 10.0, Country: "Denmark", SolarIrradiance: 1000, ClimateZone: "temperate-oceanic", TempMin: -5, TempMax: 25},
	"de": {Latitude: 51.0, Longitude: 10.5, Country: "Germany", SolarIrradiance: 1050, ClimateZone: "temperate-oceanic", TempMin: -8, TempMax: 30},
	"nl": {Latitude: 52.2, Longitude: 5.3, Country: "Netherlands", SolarIrradiance: 1020, ClimateZone: "temperate-oceanic", TempMin: -4, TempMax: 28},
	"es": {Latitude: 40.2, Longitude: -3.7, Country: "Spain", SolarIrradiance: 1650, ClimateZone: "mediterranean", TempMin: 2, TempMax: 38},
	"it": {Latitude: 42.5, Longitude: 12.5, Country: "Italy", SolarIrradiance: 1450, ClimateZone: "mediterranean", TempMin: 0, TempMax: 35},
	"fr": {Latitude: 46.6, Longitude: 2.3, Country: "France", SolarIrradiance: 1250, ClimateZone: "temperate-oceanic", TempMin: -3, TempMax: 32},
	"uk": {Latitude: 54.0, Longitude: -2.5, Country: "United Kingdom", SolarIrradiance: 950, ClimateZone: "temperate-oceanic", TempMin: -3, TempMax: 26},
	"se": {Latitude: 62.0, Longitude: 15.0, Country: "Sweden", SolarIrradiance: 950, ClimateZone: "boreal", TempMin: -15, TempMax: 24},
	"no": {Latitude: 64.5, Longitude: 11.0, Country: "Norway", SolarIrradiance: 900, ClimateZone: "boreal", TempMin: -18, TempMax: 23},
	"us": {Latitude: 39.8, Longitude: -98.6, Country: "United States", SolarIrradiance: 1500, ClimateZone: "continental", TempMin: -10, TempMax: 38},
}

// Resolve looks up a country code (case-insensitive). Unknown codes return
// an error listing the supported set.
func (r *StaticResolver) Resolve(query string) (Location, error) {
	code := strings.ToLower(strings.TrimSpace(query))
	loc, ok := countryTable[code]
	if !ok {
		return Location{}, fmt.Errorf("unknown country code %q (supported: %s)", query, strings.Join(Countries(), ", "))
	}
	return loc, nil
}

// Countries returns the supported country codes in sorted order.
func Countries() []string {
	codes := make([]string, 0, len(countryTable))
	for code := range countryTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

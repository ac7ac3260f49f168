package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbakker/roofscope/internal/catalog"
	"github.com/tbakker/roofscope/internal/engine"
	"github.com/tbakker/roofscope/internal/location"
	"github.com/tbakker/roofscope/internal/role"
	"github.com/tbakker/roofscope/internal/units"
)

func newTestModel(t *testing.T, cfg engine.Configuration) *CalcModel {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	eng := engine.New(cat, engine.DefaultConstants())
	return NewCalcModel(eng, cfg, nil, role.Unset)
}

func seededConfig() engine.Configuration {
	return engine.Configuration{
		AreaValue: 1000,
		AreaUnit:  units.SquareMeters,
		RoofType:  "photocatalytic-coating",
	}
}

func keyMsg(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func TestNewCalcModelSeedsAndComputes(t *testing.T) {
	m := newTestModel(t, seededConfig())

	require.NotNil(t, m.Bundle())
	assert.InDelta(t, 1940, m.Bundle().Environmental.CO2PerYear, 1e-9)
	assert.Equal(t, "1000", m.areaInput.Value())
	assert.Equal(t, "photocatalytic-coating", m.Configuration().RoofType)
}

func TestEmptyAreaClearsResults(t *testing.T) {
	m := newTestModel(t, engine.Configuration{AreaUnit: units.SquareMeters})
	assert.Nil(t, m.Bundle())
	assert.Equal(t, "enter a roof area", m.inputError())
}

func TestTypingAreaRecomputes(t *testing.T) {
	m := newTestModel(t, engine.Configuration{AreaUnit: units.SquareMeters, RoofType: "photocatalytic-coating"})
	require.Nil(t, m.Bundle())

	for _, r := range "500" {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(*CalcModel)
	}

	require.NotNil(t, m.Bundle())
	assert.InDelta(t, 500, m.Bundle().AreaM2, 1e-9)
	assert.Empty(t, m.inputError())
}

func TestNavigationWraps(t *testing.T) {
	m := newTestModel(t, seededConfig())
	assert.Equal(t, rowArea, m.focusedRow)

	updated, _ := m.Update(keyMsg(tea.KeyUp))
	m = updated.(*CalcModel)
	assert.Equal(t, rowSolar, m.focusedRow)

	updated, _ = m.Update(keyMsg(tea.KeyDown))
	m = updated.(*CalcModel)
	assert.Equal(t, rowArea, m.focusedRow)

	updated, _ = m.Update(keyMsg(tea.KeyTab))
	m = updated.(*CalcModel)
	assert.Equal(t, rowUnit, m.focusedRow)
}

func TestToggleUnitPreservesPhysicalArea(t *testing.T) {
	m := newTestModel(t, seededConfig())

	// Focus the unit row, then toggle it.
	updated, _ := m.Update(keyMsg(tea.KeyTab))
	m = updated.(*CalcModel)
	updated, _ = m.Update(keyMsg(tea.KeyEnter))
	m = updated.(*CalcModel)

	assert.Equal(t, units.SquareFeet, m.unit)
	assert.Equal(t, "10763.9", m.areaInput.Value())

	// Canonical area is unchanged within rounding of the displayed value.
	require.NotNil(t, m.Bundle())
	assert.InDelta(t, 1000, m.Bundle().AreaM2, 0.01)
}

func TestCycleRoofType(t *testing.T) {
	m := newTestModel(t, seededConfig())
	first := m.Configuration().RoofType

	updated, _ := m.Update(keyMsg(tea.KeyTab)) // unit
	m = updated.(*CalcModel)
	updated, _ = m.Update(keyMsg(tea.KeyTab)) // roof type
	m = updated.(*CalcModel)

	updated, _ = m.Update(keyMsg(tea.KeyRight))
	m = updated.(*CalcModel)
	second := m.Configuration().RoofType
	assert.NotEqual(t, first, second)

	updated, _ = m.Update(keyMsg(tea.KeyLeft))
	m = updated.(*CalcModel)
	assert.Equal(t, first, m.Configuration().RoofType)
}

func TestToggleSolar(t *testing.T) {
	m := newTestModel(t, seededConfig())
	require.False(t, m.Configuration().IncludeSolar)

	for _, kt := range []tea.KeyType{tea.KeyTab, tea.KeyTab, tea.KeyTab} {
		updated, _ := m.Update(keyMsg(kt))
		m = updated.(*CalcModel)
	}
	assert.Equal(t, rowSolar, m.focusedRow)

	updated, _ := m.Update(keyMsg(tea.KeySpace))
	m = updated.(*CalcModel)
	assert.True(t, m.Configuration().IncludeSolar)
}

func TestQuitKeys(t *testing.T) {
	for name, msg := range map[string]tea.KeyMsg{
		"CtrlC": keyMsg(tea.KeyCtrlC),
		"Esc":   keyMsg(tea.KeyEsc),
	} {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t, seededConfig())
			updated, cmd := m.Update(msg)
			m = updated.(*CalcModel)
			assert.NotNil(t, cmd)
			assert.Empty(t, m.View())
		})
	}
}

func TestViewRendersFormAndResults(t *testing.T) {
	m := newTestModel(t, seededConfig())
	view := m.View()
	assert.Contains(t, view, "Photocatalytic Coating")
	assert.Contains(t, view, "m²")
	assert.Contains(t, view, "Environment")

	t.Run("InvalidAreaShowsError", func(t *testing.T) {
		m := newTestModel(t, engine.Configuration{AreaUnit: units.SquareMeters})
		assert.Contains(t, m.View(), "enter a roof area")
	})
}

func TestBundleWithLocationIncludesSolarYield(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	eng := engine.New(cat, engine.DefaultConstants())

	cfg := seededConfig()
	cfg.IncludeSolar = true
	loc := &location.Location{Country: "Denmark", SolarIrradiance: 1000}
	m := NewCalcModel(eng, cfg, loc, role.ESGExpert)

	require.NotNil(t, m.Bundle())
	assert.InDelta(t, 180000, m.Bundle().Technical.SolarEnergyPerYear, 1e-6)
}

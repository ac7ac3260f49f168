// Package tui implements the interactive calculator form.
//
// The form edits one roof configuration. Every committed change recomputes
// the metric bundle synchronously; the calculation is pure and immediate, so
// no spinner or background command is needed.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbakker/roofscope/internal/engine"
	"github.com/tbakker/roofscope/internal/location"
	"github.com/tbakker/roofscope/internal/present"
	"github.com/tbakker/roofscope/internal/role"
	"github.com/tbakker/roofscope/internal/units"
)

// Form rows, in navigation order.
const (
	rowArea = iota
	rowUnit
	rowRoofType
	rowSolar
	rowCount
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// CalcModel is the Bubble Tea model for the interactive calculator.
type CalcModel struct {
	engine *engine.Engine
	role   role.Role
	loc    *location.Location

	areaInput textinput.Model
	unit      units.Unit
	roofTypes []string
	roofIdx   int
	solar     bool

	focusedRow int

	bundle   *engine.Bundle
	sections []present.Section

	// inputErr is a recoverable validation problem shown inline next to
	// the area field; it never blocks the rest of the form.
	inputErr error

	width    int
	height   int
	quitting bool
}

// NewCalcModel creates the calculator form over an engine, an optional
// location, and the presentation role. The initial configuration seeds the
// form fields.
func NewCalcModel(
	eng *engine.Engine,
	cfg engine.Configuration,
	loc *location.Location,
	r role.Role,
) *CalcModel {
	input := textinput.New()
	input.Placeholder = "roof area"
	input.CharLimit = 12
	input.Width = 14
	if cfg.AreaValue > 0 {
		input.SetValue(fmt.Sprintf("%g", cfg.AreaValue))
	}
	input.Focus()

	keys := eng.Catalog().Keys()
	roofIdx := 0
	for i, key := range keys {
		if key == cfg.RoofType {
			roofIdx = i
			break
		}
	}

	m := &CalcModel{
		engine:    eng,
		role:      r,
		loc:       loc,
		areaInput: input,
		unit:      cfg.AreaUnit,
		roofTypes: keys,
		roofIdx:   roofIdx,
		solar:     cfg.IncludeSolar,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.recompute()
	return m
}

// Configuration returns the form's current configuration. The area is zero
// while the field fails validation.
func (m *CalcModel) Configuration() engine.Configuration {
	cfg := engine.Configuration{
		AreaUnit:     m.unit,
		RoofType:     m.roofTypes[m.roofIdx],
		IncludeSolar: m.solar,
	}
	if value, err := units.Validate(m.areaInput.Value(), m.unit); err == nil {
		cfg.AreaValue = value
	}
	return cfg
}

// Bundle returns the latest computed bundle, or nil before the first valid
// input.
func (m *CalcModel) Bundle() *engine.Bundle {
	return m.bundle
}

// Init implements tea.Model.
func (m *CalcModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *CalcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey routes keyboard input to navigation or the focused row.
//
//nolint:exhaustive // Only the navigation-relevant key types are handled.
func (m *CalcModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp, tea.KeyShiftTab:
		m.setFocus((m.focusedRow + rowCount - 1) % rowCount)
		return m, nil

	case tea.KeyDown, tea.KeyTab:
		m.setFocus((m.focusedRow + 1) % rowCount)
		return m, nil

	case tea.KeyLeft, tea.KeyRight:
		if m.focusedRow != rowArea {
			m.cycleRow(msg.Type == tea.KeyRight)
			m.recompute()
			return m, nil
		}

	case tea.KeyEnter, tea.KeySpace:
		if m.focusedRow != rowArea {
			m.cycleRow(true)
			m.recompute()
			return m, nil
		}

	case tea.KeyRunes:
		if m.focusedRow != rowArea && string(msg.Runes) == "q" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.focusedRow == rowArea {
		var cmd tea.Cmd
		m.areaInput, cmd = m.areaInput.Update(msg)
		m.recompute()
		return m, cmd
	}
	return m, nil
}

// setFocus moves focus and toggles the text input accordingly.
func (m *CalcModel) setFocus(row int) {
	m.focusedRow = row
	if row == rowArea {
		m.areaInput.Focus()
	} else {
		m.areaInput.Blur()
	}
}

// cycleRow advances the focused non-text row.
func (m *CalcModel) cycleRow(forward bool) {
	switch m.focusedRow {
	case rowUnit:
		m.toggleUnit()
	case rowRoofType:
		step := 1
		if !forward {
			step = len(m.roofTypes) - 1
		}
		m.roofIdx = (m.roofIdx + step) % len(m.roofTypes)
	case rowSolar:
		m.solar = !m.solar
	}
}

// toggleUnit switches the display unit and converts the entered area so the
// physical roof stays the same size.
func (m *CalcModel) toggleUnit() {
	value, err := units.Validate(m.areaInput.Value(), m.unit)
	next := units.SquareFeet
	if m.unit == units.SquareFeet {
		next = units.SquareMeters
	}
	if err == nil {
		canonical := units.ToCanonical(value, m.unit)
		converted := units.FromCanonical(canonical, next)
		m.areaInput.SetValue(fmt.Sprintf("%.1f", converted))
	}
	m.unit = next
}

// recompute validates the area and refreshes the bundle and sections.
// Validation failures only clear the results; the form stays editable.
func (m *CalcModel) recompute() {
	value, err := units.Validate(m.areaInput.Value(), m.unit)
	if err != nil {
		m.inputErr = err
		m.bundle = nil
		m.sections = nil
		return
	}
	m.inputErr = nil

	cfg := engine.Configuration{
		AreaValue:    value,
		AreaUnit:     m.unit,
		RoofType:     m.roofTypes[m.roofIdx],
		IncludeSolar: m.solar,
	}
	bundle, err := m.engine.Compute(cfg, m.loc)
	if err != nil {
		// Unknown roof type cannot happen here (keys come from the
		// catalog), so any error is a data mismatch worth surfacing.
		m.inputErr = err
		m.bundle = nil
		m.sections = nil
		return
	}

	m.bundle = &bundle
	m.sections = present.Compose(bundle, m.role)
}

// inputError formats the inline validation message for the area field.
func (m *CalcModel) inputError() string {
	if m.inputErr == nil {
		return ""
	}
	switch {
	case errors.Is(m.inputErr, units.ErrEmptyInput):
		return "enter a roof area"
	case errors.Is(m.inputErr, units.ErrNotANumber):
		return "not a number"
	case errors.Is(m.inputErr, units.ErrBelowMinimum):
		return "too small"
	case errors.Is(m.inputErr, units.ErrAboveMaximum):
		return "too large"
	default:
		return m.inputErr.Error()
	}
}

// View implements tea.Model.
func (m *CalcModel) View() string {
	if m.quitting {
		return ""
	}
	return m.renderForm()
}

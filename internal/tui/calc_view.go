package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tbakker/roofscope/internal/role"
)

// Styles for the calculator form.
//
//nolint:gochecknoglobals // Lipgloss styles are conventionally package globals.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(lipgloss.Color("245"))

	focusedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			MarginTop(1)

	metricLabelStyle = lipgloss.NewStyle().
				Width(22).
				Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// renderForm renders the whole calculator view.
func (m *CalcModel) renderForm() string {
	var b strings.Builder

	labels := role.Labels(m.role)

	b.WriteString(titleStyle.Render("Roof impact calculator"))
	b.WriteString("\n")

	b.WriteString(m.renderRow(rowArea, labels[role.SectionRoofSize], m.renderAreaField()))
	b.WriteString(m.renderRow(rowUnit, "Unit", m.unit.String()))
	b.WriteString(m.renderRow(rowRoofType, labels[role.SectionRoofType], m.currentRoofName()))
	b.WriteString(m.renderRow(rowSolar, labels[role.SectionSolar], onOff(m.solar)))

	if m.loc != nil {
		b.WriteString(labelStyle.Render(labels[role.SectionLocation]))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%s, %.0f kWh/m²/yr)",
			m.loc.Country, m.loc.ClimateZone, m.loc.SolarIrradiance)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSections())
	b.WriteString(helpStyle.Render("↑/↓ move · ←/→ change · esc quit"))
	b.WriteString("\n")

	return b.String()
}

// renderRow renders one form row with a focus marker.
func (m *CalcModel) renderRow(row int, label, value string) string {
	marker := "  "
	style := valueStyle
	if m.focusedRow == row {
		marker = "> "
		style = focusedStyle
	}
	return marker + labelStyle.Render(label) + " " + style.Render(value) + "\n"
}

// renderAreaField renders the text input plus any inline validation error.
func (m *CalcModel) renderAreaField() string {
	field := m.areaInput.View()
	if msg := m.inputError(); msg != "" {
		field += "  " + errorStyle.Render(msg)
	}
	return field
}

// renderSections renders the composed, role-ordered metric sections.
func (m *CalcModel) renderSections() string {
	if len(m.sections) == 0 {
		return "\n"
	}

	var b strings.Builder
	for _, section := range m.sections {
		b.WriteString(sectionStyle.Render(section.Label))
		b.WriteString("\n")
		for _, item := range section.Items {
			b.WriteString("  ")
			b.WriteString(metricLabelStyle.Render(item.Label))
			b.WriteString(valueStyle.Render(item.Formatted))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// currentRoofName returns the display name of the selected roof type.
func (m *CalcModel) currentRoofName() string {
	key := m.roofTypes[m.roofIdx]
	rec, err := m.engine.Catalog().Lookup(key)
	if err != nil {
		return key
	}
	return rec.Name
}

func onOff(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

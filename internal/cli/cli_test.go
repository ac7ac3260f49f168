package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbakker/roofscope/internal/engine"
	"github.com/tbakker/roofscope/internal/present"
	"github.com/tbakker/roofscope/internal/project"
	"github.com/tbakker/roofscope/internal/units"
)

func TestBuildConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		params  CalcParams
		want    engine.Configuration
		wantErr string
	}{
		{
			name:   "SquareMeters",
			params: CalcParams{Area: "1000", Unit: "m2", RoofType: "clay-tile", Solar: true},
			want: engine.Configuration{
				AreaValue: 1000, AreaUnit: units.SquareMeters,
				RoofType: "clay-tile", IncludeSolar: true,
			},
		},
		{
			name:   "SquareFeet",
			params: CalcParams{Area: "5000", Unit: "ft2", RoofType: "solar-tile"},
			want: engine.Configuration{
				AreaValue: 5000, AreaUnit: units.SquareFeet, RoofType: "solar-tile",
			},
		},
		{
			name:   "CommaDecimal",
			params: CalcParams{Area: "1250,5", Unit: "m2"},
			want:   engine.Configuration{AreaValue: 1250.5, AreaUnit: units.SquareMeters},
		},
		{
			name:   "InteractiveWithoutArea",
			params: CalcParams{Unit: "m2", Interactive: true},
			want:   engine.Configuration{AreaUnit: units.SquareMeters},
		},
		{
			name:    "UnknownUnit",
			params:  CalcParams{Area: "1000", Unit: "acre"},
			wantErr: "unknown area unit",
		},
		{
			name:    "EmptyArea",
			params:  CalcParams{Unit: "m2"},
			wantErr: "invalid --area",
		},
		{
			name:    "NonNumericArea",
			params:  CalcParams{Area: "big", Unit: "m2"},
			wantErr: "invalid --area",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildConfiguration(tt.params)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildProject(t *testing.T) {
	p, err := BuildProject(ProjectSaveParams{
		Name: "Harbor warehouse", Area: "1000", Unit: "m2",
		RoofType: "clay-tile", Solar: true, Country: "dk",
		Status: "draft",
	})
	require.NoError(t, err)
	assert.Equal(t, "Harbor warehouse", p.Name)
	assert.Equal(t, project.StatusDraft, p.Status)
	assert.InDelta(t, 1000, p.AreaValue, 1e-9)
	assert.Equal(t, units.SquareMeters, p.AreaUnit)
	assert.True(t, p.IncludeSolar)

	t.Run("InvalidStatus", func(t *testing.T) {
		_, err := BuildProject(ProjectSaveParams{
			Name: "x", Area: "10", Unit: "m2", Status: "finished",
		})
		require.ErrorIs(t, err, project.ErrInvalidStatus)
	})

	t.Run("InvalidArea", func(t *testing.T) {
		_, err := BuildProject(ProjectSaveParams{Name: "x", Area: "-5", Unit: "m2", Status: "draft"})
		require.Error(t, err)
	})
}

func sampleSections() []present.Section {
	return []present.Section{
		{
			ID:    "financial",
			Label: "Financial overview",
			Items: []present.Metric{
				{Key: "total_installation_cost", Label: "Installation cost", Value: 40000, Formatted: "€40,000.00", Unit: "EUR"},
			},
		},
		{
			ID:    "technical",
			Label: "Technical details",
			Items: []present.Metric{
				{Key: "installation_days", Label: "Installation time", Value: 5, Formatted: "5 days", Unit: "days"},
			},
		},
	}
}

func TestRenderSectionsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSections(&buf, outputFormatTable, engine.Bundle{}, sampleSections()))

	out := buf.String()
	assert.Contains(t, out, "Financial overview\n------------------\n")
	assert.Contains(t, out, "Installation cost")
	assert.Contains(t, out, "€40,000.00")
	assert.Contains(t, out, "Technical details")
	// Blank line between sections.
	assert.Contains(t, out, "€40,000.00\n\nTechnical details")
}

func TestRenderSectionsJSON(t *testing.T) {
	var buf bytes.Buffer
	bundle := engine.Bundle{RoofType: "clay-tile", AreaM2: 1000}
	require.NoError(t, renderSections(&buf, outputFormatJSON, bundle, sampleSections()))

	var result calcResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "clay-tile", result.Bundle.RoofType)
	require.Len(t, result.Sections, 2)
	assert.Equal(t, "financial", string(result.Sections[0].ID))
}

func TestRenderSectionsNDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSections(&buf, outputFormatNDJSON, engine.Bundle{}, sampleSections()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var section present.Section
		require.NoError(t, json.Unmarshal([]byte(line), &section))
	}
}

func TestRenderComparisonsTable(t *testing.T) {
	comparisons := []engine.Comparison{
		{
			RoofType: "clay-tile",
			Name:     "Clay tile",
			Bundle: engine.Bundle{
				Environmental: engine.Environmental{CO2PerYear: 200},
				Financial: engine.Financial{
					TotalInstallationCost: 120000,
					AnnualSavings:         300,
					PaybackYears:          400,
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderComparisons(&buf, outputFormatTable, comparisons))
	out := buf.String()
	assert.Contains(t, out, "Roof type")
	assert.Contains(t, out, "Clay tile")
	assert.Contains(t, out, "€120,000.00")

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderComparisons(&buf, outputFormatTable, nil))
		assert.Contains(t, buf.String(), "Nothing to compare")
	})
}

func TestRenderProjects(t *testing.T) {
	projects := []project.Project{
		{ID: "project_1_A", Name: "East wing", RoofType: "clay-tile", Status: project.StatusDraft},
	}

	t.Run("Table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderProjects(&buf, outputFormatTable, projects))
		assert.Contains(t, buf.String(), "East wing")
		assert.Contains(t, buf.String(), "draft")
	})

	t.Run("TableEmpty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderProjects(&buf, outputFormatTable, nil))
		assert.Contains(t, buf.String(), "No saved projects")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderProjects(&buf, outputFormatJSON, projects))
		var got []project.Project
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "project_1_A", got[0].ID)
	})
}

func TestResolveLocation(t *testing.T) {
	loc, err := resolveLocation("")
	require.NoError(t, err)
	assert.Nil(t, loc)

	loc, err = resolveLocation("dk")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "Denmark", loc.Country)

	_, err = resolveLocation("xx")
	require.Error(t, err)
}

// runCommand executes the full command tree with an isolated home directory.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCalcCommandJSON(t *testing.T) {
	out, err := runCommand(t,
		"calc", "--area", "1000", "--roof-type", "photocatalytic-coating", "--output", "json")
	require.NoError(t, err)

	var result calcResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 1940, result.Bundle.Environmental.CO2PerYear, 1e-9)
	assert.InDelta(t, 1000, result.Bundle.AreaM2, 1e-9)
	assert.NotEmpty(t, result.Sections)
}

func TestCalcCommandTableWithRole(t *testing.T) {
	out, err := runCommand(t,
		"calc", "--area", "1000", "--roof-type", "green-roof-extensive",
		"--country", "dk", "--solar", "--role", "esg-expert")
	require.NoError(t, err)
	assert.Contains(t, out, "Environmental impact")
	// ESG ordering puts environmental metrics before financial ones.
	assert.Less(t,
		strings.Index(out, "Environmental impact"),
		strings.Index(out, "Financial case"))
}

func TestCalcCommandUnknownRoofType(t *testing.T) {
	_, err := runCommand(t, "calc", "--area", "1000", "--roof-type", "thatched")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown roof type")
}

func TestCalcCommandEmitHeight(t *testing.T) {
	out, err := runCommand(t,
		"calc", "--area", "1000", "--roof-type", "clay-tile", "--emit-height")
	require.NoError(t, err)
	assert.Contains(t, out, `"type":"height-update"`)
	assert.Contains(t, out, `"iframeHeight"`)
}

func TestCompareCommand(t *testing.T) {
	out, err := runCommand(t, "compare", "--area", "450", "--unit", "ft2", "--output", "json")
	require.NoError(t, err)

	var comparisons []engine.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &comparisons))
	assert.Len(t, comparisons, 8)
}

func TestProjectSaveAndList(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	run := func(args ...string) (string, error) {
		var buf bytes.Buffer
		cmd := NewRootCmd("test")
		cmd.SetOut(&buf)
		cmd.SetErr(&buf)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return buf.String(), err
	}

	out, err := run("project", "save", "--name", "Harbor warehouse",
		"--area", "1000", "--roof-type", "clay-tile")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved project Harbor warehouse")

	out, err = run("project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Harbor warehouse")
	assert.Contains(t, out, "clay-tile")
}

func TestProjectSaveUnknownRoofType(t *testing.T) {
	_, err := runCommand(t, "project", "save", "--name", "x",
		"--area", "1000", "--roof-type", "thatched")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown roof type")
}

func TestCatalogListCommand(t *testing.T) {
	out, err := runCommand(t, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "photocatalytic-coating")
	assert.Contains(t, out, "green-roof-extensive")
}

func TestReportCommand(t *testing.T) {
	out, err := runCommand(t, "report", "--area", "1000",
		"--roof-type", "solar-tile", "--solar", "--country", "dk", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Solar Tile")
}

func TestInvalidRoleFlag(t *testing.T) {
	_, err := runCommand(t, "calc", "--area", "1000",
		"--roof-type", "clay-tile", "--role", "astronaut")
	require.Error(t, err)
}

func TestEmitHeightAfterSections(t *testing.T) {
	sections := sampleSections()
	var buf bytes.Buffer
	require.NoError(t, emitHeightSignal(&buf, sections))

	var msg struct {
		IframeHeight int    `json:"iframeHeight"`
		Type         string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))
	assert.Equal(t, "height-update", msg.Type)
	// 2 sections × (1 item + 2 chrome lines) × 24 px.
	assert.Equal(t, 6*lineHeightPx, msg.IframeHeight)
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tbakker/roofscope/internal/embed"
	"github.com/tbakker/roofscope/internal/engine"
	"github.com/tbakker/roofscope/internal/location"
	"github.com/tbakker/roofscope/internal/logging"
	"github.com/tbakker/roofscope/internal/present"
	"github.com/tbakker/roofscope/internal/role"
	"github.com/tbakker/roofscope/internal/tui"
	"github.com/tbakker/roofscope/internal/units"
)

// CalcParams holds the parsed flags for the calc command.
// Exported for testing.
type CalcParams struct {
	Area        string
	Unit        string
	RoofType    string
	Solar       bool
	Country     string
	Output      string
	Interactive bool
	EmitHeight  bool
}

// NewCalcCmd creates the "calc" command: validate inputs, compute the metric
// bundle, compose it for the selected role, and render.
func NewCalcCmd() *cobra.Command {
	var params CalcParams

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate roof impact metrics",
		Long: `Calculate the environmental, financial, and technical impact of a roof.

Metrics are derived from the static roof-type catalog plus optional location
data, then ordered and labeled for the selected role.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalc(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Area, "area", "", "roof area in the selected unit")
	cmd.Flags().StringVar(&params.Unit, "unit", "m2", "area unit: m2 or ft2")
	cmd.Flags().StringVar(&params.RoofType, "roof-type", "", "catalog roof type key (see: roofscope catalog list)")
	cmd.Flags().BoolVar(&params.Solar, "solar", false, "include solar panels")
	cmd.Flags().StringVar(&params.Country, "country", "", "country code for irradiance and climate data")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format: table, json, ndjson")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "launch the interactive form")
	cmd.Flags().BoolVar(&params.EmitHeight, "emit-height", false,
		"post a height-update signal for a hosting frame after rendering")

	return cmd
}

// BuildConfiguration validates calc flags into an engine configuration.
// Exported for testing.
func BuildConfiguration(params CalcParams) (engine.Configuration, error) {
	unit, err := units.ParseUnit(params.Unit)
	if err != nil {
		return engine.Configuration{}, err
	}

	cfg := engine.Configuration{
		AreaUnit:     unit,
		RoofType:     params.RoofType,
		IncludeSolar: params.Solar,
	}

	if params.Area != "" || !params.Interactive {
		value, err := units.Validate(params.Area, unit)
		if err != nil {
			return engine.Configuration{}, fmt.Errorf("invalid --area: %w", err)
		}
		cfg.AreaValue = value
	}
	return cfg, nil
}

// executeCalc runs the calc workflow.
func executeCalc(cmd *cobra.Command, params CalcParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	appCfg, eng, err := loadAppContext()
	if err != nil {
		return err
	}
	if params.Output == "" {
		params.Output = appCfg.Output.Format
	}

	selectedRole, err := resolveRole(cmd)
	if err != nil {
		return err
	}
	loc, err := resolveLocation(params.Country)
	if err != nil {
		return err
	}

	cfg, err := BuildConfiguration(params)
	if err != nil {
		return err
	}

	log.Debug().
		Str("operation", "calc").
		Str("roof_type", cfg.RoofType).
		Float64("area", cfg.AreaValue).
		Str("role", selectedRole.String()).
		Bool("interactive", params.Interactive).
		Msg("starting calculation")

	if params.Interactive {
		if !isTerminal(os.Stdin) {
			return fmt.Errorf("--interactive requires a terminal")
		}
		return executeInteractiveCalc(cmd, eng, cfg, loc, selectedRole, params)
	}

	bundle, err := eng.Compute(cfg, loc)
	if err != nil {
		log.Error().Err(err).Msg("calculation failed")
		return err
	}

	sections := present.Compose(bundle, selectedRole)
	if err := renderSections(cmd.OutOrStdout(), params.Output, bundle, sections); err != nil {
		return err
	}

	if params.EmitHeight {
		if err := emitHeightSignal(cmd.OutOrStdout(), sections); err != nil {
			return err
		}
	}

	log.Info().
		Str("operation", "calc").
		Dur("duration_ms", time.Since(start)).
		Msg("calculation complete")
	return nil
}

// executeInteractiveCalc runs the TUI form and prints the final result.
func executeInteractiveCalc(
	cmd *cobra.Command,
	eng *engine.Engine,
	cfg engine.Configuration,
	loc *location.Location,
	selectedRole role.Role,
	params CalcParams,
) error {
	model := tui.NewCalcModel(eng, cfg, loc, selectedRole)
	program := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running interactive form: %w", err)
	}

	calcModel, ok := finalModel.(*tui.CalcModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T", finalModel)
	}

	bundle := calcModel.Bundle()
	if bundle == nil {
		return nil
	}

	cmd.Println("\nFinal result:")
	sections := present.Compose(*bundle, selectedRole)
	return renderSections(cmd.OutOrStdout(), params.Output, *bundle, sections)
}

// emitHeightSignal posts the rendered section count as a host-frame height
// update. The reporter has an explicit lifecycle: started, used, stopped.
func emitHeightSignal(w io.Writer, sections []present.Section) error {
	reporter := embed.NewReporter(w)
	reporter.Start()
	defer reporter.Stop()

	height := 0
	for _, s := range sections {
		height += len(s.Items) + 2
	}
	return reporter.Report(height * lineHeightPx)
}

// lineHeightPx approximates rendered pixels per output line for the
// host-frame height signal.
const lineHeightPx = 24

// calcResult is the JSON envelope for calc output.
type calcResult struct {
	Bundle   engine.Bundle     `json:"bundle"`
	Sections []present.Section `json:"sections"`
}

// renderSections renders a composed result in the requested format.
func renderSections(w io.Writer, format string, bundle engine.Bundle, sections []present.Section) error {
	switch format {
	case outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(calcResult{Bundle: bundle, Sections: sections})
	case outputFormatNDJSON:
		enc := json.NewEncoder(w)
		for _, section := range sections {
			if err := enc.Encode(section); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderSectionsTable(w, sections)
	}
}

// renderSectionsTable renders composed sections as an aligned text table.
func renderSectionsTable(w io.Writer, sections []present.Section) error {
	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, section.Label)
		fmt.Fprintln(w, divider(len(section.Label)))
		for _, item := range section.Items {
			fmt.Fprintf(w, "  %-24s %s\n", item.Label, item.Formatted)
		}
	}
	return nil
}

// divider returns a dashed underline of the given width.
func divider(n int) string {
	line := make([]byte, n)
	for i := range line {
		line[i] = '-'
	}
	return string(line)
}

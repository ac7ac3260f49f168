package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tbakker/roofscope/internal/engine"
	"github.com/tbakker/roofscope/internal/logging"
	"github.com/tbakker/roofscope/internal/present"
	"github.com/tbakker/roofscope/internal/units"
)

// CompareParams holds the parsed flags for the compare command.
// Exported for testing.
type CompareParams struct {
	Area    string
	Unit    string
	Solar   bool
	Country string
	Output  string
}

// NewCompareCmd creates the "compare" command: compute a bundle for every
// catalog roof type against the same roof.
func NewCompareCmd() *cobra.Command {
	var params CompareParams

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every roof type for one roof",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCompare(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Area, "area", "", "roof area in the selected unit")
	cmd.Flags().StringVar(&params.Unit, "unit", "m2", "area unit: m2 or ft2")
	cmd.Flags().BoolVar(&params.Solar, "solar", false, "include solar panels")
	cmd.Flags().StringVar(&params.Country, "country", "", "country code for irradiance and climate data")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format: table, json, ndjson")

	return cmd
}

func executeCompare(cmd *cobra.Command, params CompareParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	appCfg, eng, err := loadAppContext()
	if err != nil {
		return err
	}
	if params.Output == "" {
		params.Output = appCfg.Output.Format
	}

	unit, err := units.ParseUnit(params.Unit)
	if err != nil {
		return err
	}
	area, err := units.Validate(params.Area, unit)
	if err != nil {
		return fmt.Errorf("invalid --area: %w", err)
	}
	loc, err := resolveLocation(params.Country)
	if err != nil {
		return err
	}

	cfg := engine.Configuration{
		AreaValue:    area,
		AreaUnit:     unit,
		IncludeSolar: params.Solar,
	}

	log.Debug().
		Str("operation", "compare").
		Float64("area", area).
		Msg("starting comparison")

	comparisons, err := eng.CompareAll(ctx, cfg, loc)
	if err != nil {
		return err
	}
	return renderComparisons(cmd.OutOrStdout(), params.Output, comparisons)
}

// renderComparisons renders the comparison in the requested format.
func renderComparisons(w io.Writer, format string, comparisons []engine.Comparison) error {
	switch format {
	case outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(comparisons)
	case outputFormatNDJSON:
		enc := json.NewEncoder(w)
		for _, c := range comparisons {
			if err := enc.Encode(c); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderComparisonsTable(w, comparisons)
	}
}

// renderComparisonsTable renders one line per roof type.
func renderComparisonsTable(w io.Writer, comparisons []engine.Comparison) error {
	if len(comparisons) == 0 {
		fmt.Fprintln(w, "Nothing to compare")
		return nil
	}

	fmt.Fprintf(w, "%-28s %14s %14s %12s %10s\n",
		"Roof type", "CO₂ kg/yr", "Cost", "Savings/yr", "Payback")
	for _, c := range comparisons {
		fin := c.Bundle.Financial
		fmt.Fprintf(w, "%-28s %14s %14s %12s %10s\n",
			c.Name,
			present.FormatFloat(c.Bundle.Environmental.CO2PerYear, 0),
			present.FormatMoney(fin.TotalInstallationCost),
			present.FormatMoney(fin.AnnualSavings),
			present.FormatYears(fin.PaybackYears, fin.PaybackUnattainable),
		)
	}
	return nil
}

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbakker/roofscope/internal/logging"
	"github.com/tbakker/roofscope/internal/present"
	"github.com/tbakker/roofscope/internal/report"
)

// Report format names.
const (
	reportFormatHTML = "html"
	reportFormatText = "text"
)

// ReportParams holds the parsed flags for the report command.
// Exported for testing.
type ReportParams struct {
	CalcParams
	Name   string
	Format string
	Out    string
}

// NewReportCmd creates the "report" command: compute, compose, and render an
// email-ready document.
func NewReportCmd() *cobra.Command {
	var params ReportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate an email-ready impact report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Area, "area", "", "roof area in the selected unit")
	cmd.Flags().StringVar(&params.Unit, "unit", "m2", "area unit: m2 or ft2")
	cmd.Flags().StringVar(&params.RoofType, "roof-type", "", "catalog roof type key")
	cmd.Flags().BoolVar(&params.Solar, "solar", false, "include solar panels")
	cmd.Flags().StringVar(&params.Country, "country", "", "country code")
	cmd.Flags().StringVar(&params.Name, "name", "", "report title")
	cmd.Flags().StringVar(&params.Format, "format", reportFormatText, "report format: html or text")
	cmd.Flags().StringVar(&params.Out, "out", "", "write to file instead of stdout")

	return cmd
}

func executeReport(cmd *cobra.Command, params ReportParams) error {
	log := logging.FromContext(cmd.Context())

	_, eng, err := loadAppContext()
	if err != nil {
		return err
	}
	selectedRole, err := resolveRole(cmd)
	if err != nil {
		return err
	}
	loc, err := resolveLocation(params.Country)
	if err != nil {
		return err
	}
	cfg, err := BuildConfiguration(params.CalcParams)
	if err != nil {
		return err
	}

	bundle, err := eng.Compute(cfg, loc)
	if err != nil {
		return err
	}

	rec, err := eng.Catalog().Lookup(cfg.RoofType)
	if err != nil {
		return err
	}

	input := report.Input{
		ProjectName: params.Name,
		RoofType:    rec.Name,
		AreaM2:      bundle.AreaM2,
		Location:    loc,
		Sections:    present.Compose(bundle, selectedRole),
		GeneratedAt: time.Now(),
	}

	var body string
	switch params.Format {
	case reportFormatHTML:
		body, err = report.HTML(input)
	case reportFormatText:
		body, err = report.Text(input)
	default:
		return fmt.Errorf("unknown report format %q (want html or text)", params.Format)
	}
	if err != nil {
		return err
	}

	if params.Out != "" {
		if err := os.WriteFile(params.Out, []byte(body), 0600); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		log.Info().
			Str("operation", "report").
			Str("path", params.Out).
			Msg("report written")
		cmd.Printf("Report written to %s\n", params.Out)
		return nil
	}

	cmd.Print(body)
	return nil
}

// Package cli wires the roofscope command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tbakker/roofscope/internal/catalog"
	"github.com/tbakker/roofscope/internal/config"
	"github.com/tbakker/roofscope/internal/engine"
	"github.com/tbakker/roofscope/internal/location"
	"github.com/tbakker/roofscope/internal/role"
)

// Output format names shared by every rendering command.
const (
	outputFormatTable  = "table"
	outputFormatJSON   = "json"
	outputFormatNDJSON = "ndjson"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the roofscope CLI.
// It wires up logging and the calc, compare, project, report, catalog, and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logCleanup func()

	cmd := &cobra.Command{
		Use:     "roofscope",
		Short:   "Roof impact calculator",
		Long:    "roofscope: calculate the environmental, financial, and technical impact of a roof renovation",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := setupLogging(cmd)
			if err != nil {
				return err
			}
			logCleanup = cleanup
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logCleanup != nil {
				logCleanup()
			}
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("role", "",
		"presentation role: esg-expert, roofing-specialist, private-individual")

	cmd.AddCommand(
		NewCalcCmd(), NewCompareCmd(), NewProjectCmd(),
		NewReportCmd(), NewCatalogCmd(), NewConfigCmd(),
	)
	return cmd
}

const rootCmdExample = `  # Calculate impact for a 1000 m² photocatalytic roof
  roofscope calc --area 1000 --roof-type photocatalytic-coating

  # Same, with solar panels and Danish irradiance, seen as an ESG expert
  roofscope calc --area 1000 --roof-type green-roof-extensive \
    --solar --country dk --role esg-expert

  # Interactive form
  roofscope calc --interactive --country dk

  # Compare every roof type for one roof
  roofscope compare --area 450 --unit ft2

  # Save and list projects
  roofscope project save --name "Harbor warehouse" --area 1000 --roof-type clay-tile
  roofscope project list

  # Email-ready report
  roofscope report --area 1000 --roof-type solar-tile --solar --country dk --format html`

// loadAppContext builds the config, catalog, and engine every command needs.
func loadAppContext() (*config.Config, *engine.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cfg, engine.New(cat, cfg.Constants), nil
}

// resolveRole reads the persistent --role flag.
func resolveRole(cmd *cobra.Command) (role.Role, error) {
	name, _ := cmd.Flags().GetString("role")
	return role.Parse(name)
}

// resolveLocation turns an optional country flag into location data.
// An empty country means no location: solar yield is then zero.
func resolveLocation(country string) (*location.Location, error) {
	if country == "" {
		return nil, nil //nolint:nilnil // Absent location is a valid state, not an error.
	}
	loc, err := location.NewStaticResolver().Resolve(country)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

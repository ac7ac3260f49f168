package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tbakker/roofscope/internal/catalog"
	"github.com/tbakker/roofscope/internal/present"
)

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "catalog", Short: "Roof-type catalog commands"}
	cmd.AddCommand(newCatalogListCmd())
	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available roof types and their coefficients",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			return renderCatalog(cmd.OutOrStdout(), output, cat.Records())
		},
	}
	cmd.Flags().StringVar(&output, "output", outputFormatTable, "output format: table, json")
	return cmd
}

// renderCatalog renders the roof-type table.
func renderCatalog(w io.Writer, format string, records []catalog.Record) error {
	if format == outputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	fmt.Fprintf(w, "%-24s %-28s %10s %10s %9s %10s\n",
		"Key", "Name", "CO₂/m²/yr", "kWh/m²/yr", "Lifespan", "Cost/m²")
	for _, rec := range records {
		fmt.Fprintf(w, "%-24s %-28s %10s %10s %8dy %10s\n",
			rec.Key, rec.Name,
			present.FormatFloat(rec.CO2PerM2Year, 2),
			present.FormatFloat(rec.EnergyPerM2Year, 1),
			rec.LifespanYears,
			present.FormatMoney(rec.TotalCostPerM2),
		)
	}
	return nil
}

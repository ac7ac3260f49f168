package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tbakker/roofscope/internal/logging"
	"github.com/tbakker/roofscope/internal/project"
	"github.com/tbakker/roofscope/internal/units"
)

// NewProjectCmd creates the project command group.
func NewProjectCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "project", Short: "Saved project commands"}
	cmd.AddCommand(
		newProjectSaveCmd(), newProjectListCmd(),
		newProjectShowCmd(), newProjectDeleteCmd(),
	)
	return cmd
}

// ProjectSaveParams holds the parsed flags for project save.
// Exported for testing.
type ProjectSaveParams struct {
	Name     string
	Area     string
	Unit     string
	RoofType string
	Solar    bool
	Country  string
	Status   string
}

func newProjectSaveCmd() *cobra.Command {
	var params ProjectSaveParams

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a roof configuration as a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeProjectSave(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "project name (required)")
	cmd.Flags().StringVar(&params.Area, "area", "", "roof area in the selected unit")
	cmd.Flags().StringVar(&params.Unit, "unit", "m2", "area unit: m2 or ft2")
	cmd.Flags().StringVar(&params.RoofType, "roof-type", "", "catalog roof type key")
	cmd.Flags().BoolVar(&params.Solar, "solar", false, "include solar panels")
	cmd.Flags().StringVar(&params.Country, "country", "", "country code")
	cmd.Flags().StringVar(&params.Status, "status", string(project.StatusDraft),
		"project status: draft, calculating, completed, archived")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// BuildProject validates save flags into a project record.
// Exported for testing.
func BuildProject(params ProjectSaveParams) (project.Project, error) {
	unit, err := units.ParseUnit(params.Unit)
	if err != nil {
		return project.Project{}, err
	}
	area, err := units.Validate(params.Area, unit)
	if err != nil {
		return project.Project{}, fmt.Errorf("invalid --area: %w", err)
	}

	p := project.Project{
		Name:         params.Name,
		Status:       project.Status(params.Status),
		AreaValue:    area,
		AreaUnit:     unit,
		RoofType:     params.RoofType,
		IncludeSolar: params.Solar,
		Country:      params.Country,
	}
	if !project.ValidStatus(p.Status) {
		return project.Project{}, fmt.Errorf("%w: %q", project.ErrInvalidStatus, params.Status)
	}
	return p, nil
}

func executeProjectSave(cmd *cobra.Command, params ProjectSaveParams) error {
	log := logging.FromContext(cmd.Context())

	cfg, eng, err := loadAppContext()
	if err != nil {
		return err
	}

	p, err := BuildProject(params)
	if err != nil {
		return err
	}

	// Saving an unknown roof type would plant a dangling foreign key.
	if p.RoofType != "" {
		if _, err := eng.Catalog().Lookup(p.RoofType); err != nil {
			return err
		}
	}

	store, err := project.NewStore(cfg.StoreDir)
	if err != nil {
		return err
	}

	saved, err := store.Save(p)
	if err != nil {
		return err
	}

	log.Info().
		Str("operation", "project_save").
		Str("project_id", saved.ID).
		Msg("project saved")
	cmd.Printf("Saved project %s (%s)\n", saved.Name, saved.ID)
	return nil
}

func newProjectListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadAppContext()
			if err != nil {
				return err
			}
			store, err := project.NewStore(cfg.StoreDir)
			if err != nil {
				return err
			}
			projects, err := store.List()
			if err != nil {
				return err
			}
			return renderProjects(cmd.OutOrStdout(), output, projects)
		},
	}
	cmd.Flags().StringVar(&output, "output", outputFormatTable, "output format: table, json")
	return cmd
}

func newProjectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadAppContext()
			if err != nil {
				return err
			}
			store, err := project.NewStore(cfg.StoreDir)
			if err != nil {
				return err
			}
			p, err := store.Get(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadAppContext()
			if err != nil {
				return err
			}
			store, err := project.NewStore(cfg.StoreDir)
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted project %s\n", args[0])
			return nil
		},
	}
}

// renderProjects renders the project list.
func renderProjects(w io.Writer, format string, projects []project.Project) error {
	if format == outputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	}

	if len(projects) == 0 {
		fmt.Fprintln(w, "No saved projects")
		return nil
	}

	fmt.Fprintf(w, "%-40s %-24s %-22s %-10s\n", "ID", "Name", "Roof type", "Status")
	for _, p := range projects {
		fmt.Fprintf(w, "%-40s %-24s %-22s %-10s\n", p.ID, p.Name, p.RoofType, p.Status)
	}
	return nil
}

package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zhachu16/wdg-pm/internal/format"
	"github.com/zhachu16/wdg-pm/internal/printer"
	"github.com/zhachu16/wdg-pm/pkg/project"
)

var (
	listJSON   bool
	listStatus string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked projects",
	Long: `List all projects registered in the store.

For each project, displays the composite id, name, status, quantity,
current file version, and the number of recorded changes.

Use --status to only show projects in a given status, and --json for
machine-readable line-delimited output.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format (one object per line)")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Only show projects with this status")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	var projects []*project.Project
	for _, id := range s.List() {
		p, err := s.Get(id)
		if err != nil {
			printer.Warning("skipping %s: %v\n", id, err)
			continue
		}
		if listStatus != "" && p.Status != listStatus {
			continue
		}
		projects = append(projects, p)
	}

	if listJSON {
		return format.FormatJSONL(os.Stdout, projects)
	}

	format.FormatTable(os.Stdout, projects)
	return nil
}

package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhachu16/wdg-pm/internal/format"
	"github.com/zhachu16/wdg-pm/internal/printer"
)

var (
	infoJSON     bool
	infoComments bool
	infoLog      bool
)

var infoCmd = &cobra.Command{
	Use:   "info <project-id>",
	Short: "Show the details of a project",
	Long: `Show the full details of a single project.

The project id may be abbreviated to any unique prefix, for example
'wdgpm info HAM' when only one project id starts with HAM.

Examples:
  wdgpm info HAM_1
  wdgpm info HAM_1 --comments
  wdgpm info HAM_1 --log
  wdgpm info HAM_1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
	infoCmd.Flags().BoolVar(&infoComments, "comments", false, "Also show the project's comments")
	infoCmd.Flags().BoolVar(&infoLog, "log", false, "Also show the project's change log")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveProjectID(s, args[0])
	if err != nil {
		return err
	}

	p, err := s.Get(id)
	if err != nil {
		return printer.Error("failed to load project", err.Error(), nil)
	}

	if infoJSON {
		return format.FormatSingleJSON(os.Stdout, p)
	}

	snap := p.Info()
	printer.Info("Project %s\n\n", snap.ProjectID)
	printer.Field("Name", orDash(snap.ProjectName))
	printer.Field("Customer", orDash(snap.CustomerID))
	printer.Field("Status", snap.Status)
	printer.Field("Quantity", snap.Quantity)
	printer.Field("Volume", snap.Volume)
	printer.Field("File", snap.File)
	printer.Field("File version", snap.FileVersion)
	printer.Field("Archive dir", snap.ArchiveDir)
	for role, names := range snap.Responsible {
		printer.Field(role, strings.Join(names, ", "))
	}
	for key, value := range snap.ShippingInfo {
		printer.Field(key, value)
	}
	printer.Field("Comments", len(snap.Comments))

	if infoComments {
		printer.Info("\nComments:\n")
		format.FormatComments(os.Stdout, p)
	}
	if infoLog {
		printer.Info("\nChange log:\n")
		format.FormatChangeLog(os.Stdout, p)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

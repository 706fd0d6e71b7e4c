package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhachu16/wdg-pm/internal/printer"
	"github.com/zhachu16/wdg-pm/pkg/project"
)

var (
	createMasterID    string
	createSubID       int
	createFile        string
	createArchiveDir  string
	createResponsible []string
	createQuantity    int
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new production project",
	Long: `Create a new production project and register it in the store.

The project starts at file version 1 with status "Created". The archive
directory receives superseded file revisions as the printable file is
updated over the project's life.

Examples:
  # Minimal project
  wdgpm create --master-id HAM --sub-id 1 --file parts/wheel.stl --archive-dir archive/HAM_1

  # With responsible roles and quantity
  wdgpm create --master-id HAM --sub-id 1 --file parts/wheel.stl --archive-dir archive/HAM_1 \
    --responsible "manager=Alice" --responsible "factory=Factory A,Factory B" --quantity 25`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createMasterID, "master-id", "", "Master identifier shared by related jobs (required)")
	createCmd.Flags().IntVar(&createSubID, "sub-id", 1, "Sub-identifier of this job under the master id")
	createCmd.Flags().StringVar(&createFile, "file", "", "Path to the printable file (required)")
	createCmd.Flags().StringVar(&createArchiveDir, "archive-dir", "", "Directory for superseded file revisions (required)")
	createCmd.Flags().StringArrayVar(&createResponsible, "responsible", nil, "Responsible parties as 'role=name[,name...]' (repeatable)")
	createCmd.Flags().IntVar(&createQuantity, "quantity", 0, "Number of pieces to produce")
	createCmd.MarkFlagRequired("master-id")
	createCmd.MarkFlagRequired("file")
	createCmd.MarkFlagRequired("archive-dir")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	responsible, err := parseResponsible(createResponsible)
	if err != nil {
		return printer.Error(
			"invalid --responsible value",
			err.Error(),
			[]string{"Use the form 'role=name' or 'role=name1,name2'"},
		)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	p, err := s.Create(createMasterID, createSubID, createFile, createArchiveDir, responsible, createQuantity)
	if err != nil {
		if project.IsInvalidArgument(err) {
			return printer.Error("cannot create project", err.Error(), nil)
		}
		return printer.Error("failed to create project", err.Error(), nil)
	}

	printer.Success("Project '%s' created (file version %d, status %q)\n", p.ID(), p.FileVersion, p.Status)
	return nil
}

// parseResponsible turns repeated 'role=name[,name...]' flags into the
// role-to-assignees map used by project records.
func parseResponsible(values []string) (map[string][]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	responsible := make(map[string][]string, len(values))
	for _, v := range values {
		role, names, ok := strings.Cut(v, "=")
		role = strings.TrimSpace(role)
		if !ok || role == "" {
			return nil, fmt.Errorf("malformed responsible entry %q", v)
		}

		var assignees []string
		for _, name := range strings.Split(names, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				assignees = append(assignees, name)
			}
		}
		responsible[role] = assignees
	}
	return responsible, nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhachu16/wdg-pm/internal/printer"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project from the store",
	Long: `Delete a project record and its index entry.

Archived file revisions are left in place; only the tracking record
is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveProjectID(s, args[0])
	if err != nil {
		return err
	}

	existed, err := s.Delete(id)
	if err != nil {
		return printer.Error(fmt.Sprintf("failed to delete '%s'", id), err.Error(), nil)
	}
	if !existed {
		printer.Warning("record file for '%s' was already missing, index entry removed\n", id)
		return nil
	}

	printer.Success("Project '%s' deleted\n", id)
	return nil
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhachu16/wdg-pm/internal/printer"
	"github.com/zhachu16/wdg-pm/internal/store"
	"github.com/zhachu16/wdg-pm/pkg/project"
)

var updateCmd = &cobra.Command{
	Use:   "update <project-id> <operation> [args...]",
	Short: "Apply an update operation to a project",
	Long: `Apply a named update operation to a project and record it
in the project's change log.

Examples:
  wdgpm update HAM_1 update_status "In Production"
  wdgpm update HAM_1 update_quantity 25
  wdgpm update HAM_1 update_master_id MAAS
  wdgpm update HAM_1 update_responsible manager Alice Bob
  wdgpm update HAM_1 update_shipping_info "Post Code=1017 AB" "Street=Herengracht 1"
  wdgpm update HAM_1 update_file parts/wheel_v2.stl true
  wdgpm update HAM_1 update_file_directories active=parts archive=archive/HAM_1

Run 'wdgpm update --operations' to list every supported operation.`,
	RunE: runUpdate,
}

var updateListOps bool

func init() {
	updateCmd.Flags().BoolVar(&updateListOps, "operations", false, "List the supported operations and exit")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if updateListOps {
		for _, name := range store.OperationNames() {
			printer.Println(name)
		}
		return nil
	}

	if len(args) < 2 {
		return printer.Error(
			"missing project id or operation",
			"Usage:\n  wdgpm update <project-id> <operation> [args...]",
			[]string{"Run 'wdgpm update --operations' to list supported operations"},
		)
	}

	mutation, err := store.ParseMutation(args[1], args[2:])
	if err != nil {
		if project.IsUnsupportedOperation(err) {
			return printer.Error(
				fmt.Sprintf("unknown operation '%s'", args[1]),
				fmt.Sprintf("Supported operations:\n  %s", strings.Join(store.OperationNames(), "\n  ")),
				nil,
			)
		}
		return printer.Error(fmt.Sprintf("invalid arguments for '%s'", args[1]), err.Error(), nil)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveProjectID(s, args[0])
	if err != nil {
		return err
	}

	if err := s.Apply(id, mutation); err != nil {
		switch {
		case project.IsNotFound(err):
			return printer.Error(fmt.Sprintf("'%s' failed", mutation.Name()), err.Error(),
				[]string{"Check the referenced file or comment id"})
		case project.IsInvalidArgument(err):
			return printer.Error(fmt.Sprintf("'%s' rejected", mutation.Name()), err.Error(), nil)
		default:
			return printer.Error(fmt.Sprintf("'%s' failed", mutation.Name()), err.Error(), nil)
		}
	}

	printer.Success("Applied %s to %s\n", mutation.Name(), id)
	return nil
}

package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhachu16/wdg-pm/internal/printer"
	"github.com/zhachu16/wdg-pm/internal/store"
	"github.com/zhachu16/wdg-pm/pkg/project"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage project comments",
	Long: `Add, edit, or remove comments on a project.

Comment ids are assigned in order of creation and are never reused,
so a removed comment leaves a gap in the numbering.`,
}

var commentAddCmd = &cobra.Command{
	Use:   "add <project-id> <text>...",
	Short: "Add a comment to a project",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCommentAdd,
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <project-id> <comment-id> <text>...",
	Short: "Replace the text of an existing comment",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runCommentEdit,
}

var commentRemoveCmd = &cobra.Command{
	Use:   "remove <project-id> <comment-id>",
	Short: "Remove a comment from a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentRemove,
}

func init() {
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentRemoveCmd)
	rootCmd.AddCommand(commentCmd)
}

func runCommentAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveProjectID(s, args[0])
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	if err := s.Apply(id, store.AddComment{Text: text}); err != nil {
		return printer.Error("failed to add comment", err.Error(), nil)
	}

	printer.Success("Comment added to %s\n", id)
	return nil
}

func runCommentEdit(cmd *cobra.Command, args []string) error {
	commentID, err := strconv.Atoi(args[1])
	if err != nil {
		return printer.Error(
			"invalid comment id",
			"The comment id must be a number, for example 'wdgpm comment edit HAM_1 2 new text'",
			nil,
		)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveProjectID(s, args[0])
	if err != nil {
		return err
	}

	text := strings.Join(args[2:], " ")
	if err := s.Apply(id, store.EditComment{ID: commentID, Text: text}); err != nil {
		if project.IsNotFound(err) {
			return printer.Error("comment not found", err.Error(),
				[]string{"Run 'wdgpm info " + id + " --comments' to see comment ids"})
		}
		return printer.Error("failed to edit comment", err.Error(), nil)
	}

	printer.Success("Comment %d on %s updated\n", commentID, id)
	return nil
}

func runCommentRemove(cmd *cobra.Command, args []string) error {
	commentID, err := strconv.Atoi(args[1])
	if err != nil {
		return printer.Error(
			"invalid comment id",
			"The comment id must be a number, for example 'wdgpm comment remove HAM_1 2'",
			nil,
		)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveProjectID(s, args[0])
	if err != nil {
		return err
	}

	if err := s.Apply(id, store.RemoveComment{ID: commentID}); err != nil {
		if project.IsNotFound(err) {
			return printer.Error("comment not found", err.Error(),
				[]string{"Run 'wdgpm info " + id + " --comments' to see comment ids"})
		}
		return printer.Error("failed to remove comment", err.Error(), nil)
	}

	printer.Success("Comment %d removed from %s\n", commentID, id)
	return nil
}

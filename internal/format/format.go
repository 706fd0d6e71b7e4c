// Package format renders project records for CLI output.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/zhachu16/wdg-pm/pkg/project"
)

// FormatTable writes projects as a formatted table to the provided writer.
// The table includes columns: ID, NAME, STATUS, QTY, FILE VERSION, and CHANGES.
// Returns the number of projects formatted.
func FormatTable(w io.Writer, projects []*project.Project) int {
	if len(projects) == 0 {
		fmt.Fprintf(w, "No projects found\n")
		return 0
	}

	// Print header row
	fmt.Fprintf(w, "%-14s %-20s %-12s %-5s %-8s %s\n",
		"ID", "NAME", "STATUS", "QTY", "FILEVER", "CHANGES")
	fmt.Fprintf(w, "%-14s %-20s %-12s %-5s %-8s %s\n",
		"--------------", "--------------------", "------------", "-----", "--------", "-------")

	// Print data rows
	for _, p := range projects {
		fmt.Fprintf(w, "%-14s %-20s %-12s %-5d %-8d %d\n",
			truncate(p.ID(), 14),
			truncate(displayName(p), 20),
			truncate(p.Status, 12),
			p.Quantity,
			p.FileVersion,
			len(p.ChangeLog),
		)
	}

	// Print count
	countMsg := "project"
	if len(projects) != 1 {
		countMsg = "projects"
	}
	fmt.Fprintf(w, "\n%d %s found\n", len(projects), countMsg)

	return len(projects)
}

// FormatJSONL writes projects as line-delimited JSON (JSONL) to the provided writer.
// Each project snapshot is written as a single JSON object on its own line.
// This format is ideal for streaming and processing with tools like jq.
func FormatJSONL(w io.Writer, projects []*project.Project) error {
	for _, p := range projects {
		data, err := json.Marshal(p.Info())
		if err != nil {
			return fmt.Errorf("failed to marshal project to JSON: %w", err)
		}

		_, err = fmt.Fprintf(w, "%s\n", string(data))
		if err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}

	return nil
}

// FormatSingleJSON writes a single project snapshot as pretty-printed JSON.
// Used by the info command to display complete project details.
func FormatSingleJSON(w io.Writer, p *project.Project) error {
	data, err := json.MarshalIndent(p.Info(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project to JSON: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	fmt.Fprintln(w)

	return nil
}

// FormatComments writes the live comments of a project in ascending id order.
func FormatComments(w io.Writer, p *project.Project) int {
	ids := p.CommentIDs()
	if len(ids) == 0 {
		fmt.Fprintf(w, "No comments for project '%s'\n", p.ID())
		return 0
	}

	for _, id := range ids {
		fmt.Fprintf(w, "comment_%d: %s\n", id, p.Comments[id])
	}

	return len(ids)
}

// FormatChangeLog writes the project's change log grouped by category,
// entries in sequence order within each category.
func FormatChangeLog(w io.Writer, p *project.Project) int {
	entries := p.SortedChangeLog()
	if len(entries) == 0 {
		fmt.Fprintf(w, "No changes recorded for project '%s'\n", p.ID())
		return 0
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%-28s %s\n", e.Key()+":", e.Description)
	}

	return len(entries)
}

// displayName falls back to the project id when no name has been set.
func displayName(p *project.Project) string {
	if strings.TrimSpace(p.ProjectName) == "" {
		return "-"
	}
	return p.ProjectName
}

// truncate shortens a string to max characters for table display.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

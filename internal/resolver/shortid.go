package resolver

import (
	"fmt"
	"strings"
)

// ResolveProjectID resolves a project id or unique prefix against the known ids.
// Returns the full id if exactly one match found.
// Returns error if zero or multiple matches found.
//
// The function handles three cases:
// 1. Input is an exact known id - returned as-is
// 2. Input is a prefix with a single match - resolved to the full id
// 3. Input matches zero or several ids - NotFoundError or AmbiguousError
func ResolveProjectID(known []string, shortID string) (string, error) {
	if shortID == "" {
		return "", fmt.Errorf("project id must not be empty")
	}

	// An exact id always wins, even when it is a prefix of another id
	var matches []string
	for _, id := range known {
		if id == shortID {
			return id, nil
		}
		if strings.HasPrefix(id, shortID) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: shortID}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{ShortID: shortID, Matches: matches}
	}
}

// NotFoundError indicates no projects matched the short ID.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no projects found matching '%s'", e.ShortID)
}

// AmbiguousError indicates multiple projects matched the short ID.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous project id '%s' matches %d projects", e.ShortID, len(e.Matches))
}

// FormatAmbiguousError creates a user-friendly error message for ambiguous ids.
// Lists all matching project ids (up to 10, then "...and N more").
func FormatAmbiguousError(err *AmbiguousError) string {
	msg := fmt.Sprintf("Error: ambiguous project id '%s' matches %d projects:\n", err.ShortID, len(err.Matches))

	displayCount := len(err.Matches)
	if displayCount > 10 {
		displayCount = 10
	}

	for i := 0; i < displayCount; i++ {
		msg += fmt.Sprintf("  %s\n", err.Matches[i])
	}

	if len(err.Matches) > 10 {
		msg += fmt.Sprintf("  ...and %d more\n", len(err.Matches)-10)
	}

	msg += "\nUse a longer prefix to uniquely identify the project."
	return msg
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	_, ok := err.(*AmbiguousError)
	return ok
}

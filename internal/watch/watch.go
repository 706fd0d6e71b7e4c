// Package watch observes the project index file and reports changes
// to project membership and status as they happen.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"

	"github.com/zhachu16/wdg-pm/internal/store"
)

// EventType classifies a change observed in the index.
type EventType string

const (
	ProjectAdded   EventType = "added"
	ProjectRemoved EventType = "removed"
	StatusChanged  EventType = "status"
)

// Event describes a single observed change.
type Event struct {
	Type      EventType
	ProjectID string
	OldStatus string
	NewStatus string
}

func (e Event) String() string {
	switch e.Type {
	case ProjectAdded:
		return fmt.Sprintf("project %s added (status %q)", e.ProjectID, e.NewStatus)
	case ProjectRemoved:
		return fmt.Sprintf("project %s removed", e.ProjectID)
	default:
		return fmt.Sprintf("project %s status %q -> %q", e.ProjectID, e.OldStatus, e.NewStatus)
	}
}

// Diff compares two id-to-status snapshots and returns the events that
// turn the old one into the new one, sorted by project id.
func Diff(old, current map[string]string) []Event {
	var events []Event

	for id, status := range current {
		prev, existed := old[id]
		if !existed {
			events = append(events, Event{Type: ProjectAdded, ProjectID: id, NewStatus: status})
			continue
		}
		if prev != status {
			events = append(events, Event{Type: StatusChanged, ProjectID: id, OldStatus: prev, NewStatus: status})
		}
	}
	for id, status := range old {
		if _, exists := current[id]; !exists {
			events = append(events, Event{Type: ProjectRemoved, ProjectID: id, OldStatus: status})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].ProjectID != events[j].ProjectID {
			return events[i].ProjectID < events[j].ProjectID
		}
		return events[i].Type < events[j].Type
	})
	return events
}

// Watch observes the index file at indexPath and delivers change events
// until ctx is cancelled. The index is rewritten atomically via rename,
// so the watch is placed on the containing directory and filtered by name.
func Watch(ctx context.Context, indexPath, recordsDir string) (<-chan Event, error) {
	// The index directory may not exist yet on a fresh workspace
	if err := os.MkdirAll(filepath.Dir(indexPath), 0o755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(indexPath)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %q: %w", filepath.Dir(indexPath), err)
	}

	last, err := snapshot(indexPath, recordsDir)
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(indexPath) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				current, err := snapshot(indexPath, recordsDir)
				if err != nil {
					continue
				}
				for _, e := range Diff(last, current) {
					select {
					case events <- e:
					case <-ctx.Done():
						return
					}
				}
				last = current

			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}

// snapshot loads the current id-to-status view from the index.
// A corrupt index is treated as empty, matching store.Open.
func snapshot(indexPath, recordsDir string) (map[string]string, error) {
	s, err := store.Open(indexPath, recordsDir)
	if s == nil {
		return nil, err
	}
	return s.Statuses(), nil
}

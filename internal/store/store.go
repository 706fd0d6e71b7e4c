// Package store provides index-backed flat-file persistence for project
// records.
//
// Each record is one opaque msgpack blob in the records directory, named by
// a stable hash of the record's composite id so identity changes never
// require file renames. A single index blob maps id → (filename, cached
// status) and is replaced atomically (write-to-temp then rename) on every
// update. The store assumes one in-process caller at a time; there is no
// lock or transaction spanning the record file and the index, so the two
// can diverge if a write fails partway (the returned errors say so
// explicitly).
package store

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/zhachu16/wdg-pm/pkg/project"
)

// recordExt is the filename extension for record blobs.
const recordExt = ".rec"

// indexEntry is one row of the lookup index.
type indexEntry struct {
	Filename string `msgpack:"filename"`
	Status   string `msgpack:"status"` // cached copy of the record's status, for listing without loading
}

// Store owns the id→file index and per-record persistence.
type Store struct {
	indexPath  string
	recordsDir string
	index      map[string]indexEntry
}

// Open loads (or initializes) a store. A missing index yields an empty
// store. A corrupt index also yields an empty, usable store, but the
// returned error reports the corruption so the caller can surface it; the
// *Store return value is non-nil in that case.
func Open(indexPath, recordsDir string) (*Store, error) {
	s := &Store{
		indexPath:  indexPath,
		recordsDir: recordsDir,
		index:      map[string]indexEntry{},
	}
	idx, err := loadIndex(indexPath)
	if err != nil {
		return s, fmt.Errorf("failed to load project index (treating as empty): %w", err)
	}
	if idx != nil {
		s.index = idx
	}
	return s, nil
}

// RecordFilename derives the deterministic storage filename for an id.
// The scheme is a stable content-free hash, so renaming a project's master
// id never moves its record file.
func RecordFilename(id string) string {
	sum := md5.Sum([]byte(id))
	return hex.EncodeToString(sum[:]) + recordExt
}

// recordPath returns the on-disk path for an id already present in the
// index, or the path a new record for the id would get.
func (s *Store) recordPath(id string) string {
	if entry, ok := s.index[id]; ok {
		return filepath.Join(s.recordsDir, entry.Filename)
	}
	return filepath.Join(s.recordsDir, RecordFilename(id))
}

// Create constructs, persists, and indexes a new project. A duplicate
// composite id fails with ErrInvalidArgument and leaves the existing record
// untouched. If the record file is written but the index flush fails, the
// record is orphaned on disk; the returned error names the file.
func (s *Store) Create(masterID string, subID int, filePath, archiveDir string, responsible map[string][]string, quantity int) (*project.Project, error) {
	p, err := project.New(masterID, subID, filePath, archiveDir, responsible, quantity)
	if err != nil {
		return nil, err
	}
	id := p.ID()
	if _, exists := s.index[id]; exists {
		return nil, fmt.Errorf("project %q already exists: %w", id, project.ErrInvalidArgument)
	}

	if err := s.saveRecord(p); err != nil {
		return nil, err
	}
	s.index[id] = indexEntry{Filename: RecordFilename(id), Status: p.Status}
	if err := s.flushIndex(); err != nil {
		return p, fmt.Errorf("project %s saved but index update failed, record file %s is orphaned: %w",
			id, s.recordPath(id), err)
	}
	return p, nil
}

// Get loads and deserializes a record by id. Returns ErrNotFound for an
// unknown id. A corrupt record file fails this fetch only; other records
// stay accessible.
func (s *Store) Get(id string) (*project.Project, error) {
	entry, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("project %q: %w", id, project.ErrNotFound)
	}
	path := filepath.Join(s.recordsDir, entry.Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project %s: %w", id, err)
	}
	p, err := project.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", id, err)
	}
	return p, nil
}

// Delete removes the record's backing file and drops it from the index.
// Returns ErrNotFound for an unknown id. The boolean reports whether the
// backing file actually existed on disk; a missing file is not a hard
// failure. If the index flush fails after the file is gone, filesystem and
// index diverge; the returned error says so.
func (s *Store) Delete(id string) (bool, error) {
	if _, ok := s.index[id]; !ok {
		return false, fmt.Errorf("project %q: %w", id, project.ErrNotFound)
	}

	path := s.recordPath(id)
	existed := true
	if err := os.Remove(path); err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("failed to delete record file for %s: %w", id, err)
		}
		existed = false
	}

	delete(s.index, id)
	if err := s.flushIndex(); err != nil {
		return existed, fmt.Errorf("record file for %s removed but index update failed: %w", id, err)
	}
	return existed, nil
}

// Apply loads the record, applies one typed mutation, and persists the
// result. A mutation failure aborts the operation with the record's on-disk
// state unchanged. On success the record is written back first, then the
// index's cached status is refreshed and flushed.
func (s *Store) Apply(id string, m Mutation) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := m.Apply(p); err != nil {
		return fmt.Errorf("failed to apply %s to %s: %w", m.Name(), id, err)
	}

	// A master-id change alters the composite id; keep the index keyed by
	// the current id while the filename (hashed from the original id)
	// stays put.
	newID := p.ID()
	entry := s.index[id]
	if newID != id {
		if _, exists := s.index[newID]; exists {
			return fmt.Errorf("cannot rename %s: project %q already exists: %w", id, newID, project.ErrInvalidArgument)
		}
		delete(s.index, id)
	}
	entry.Status = p.Status
	s.index[newID] = entry

	if err := s.writeRecord(p, entry.Filename); err != nil {
		return err
	}
	if err := s.flushIndex(); err != nil {
		return fmt.Errorf("project %s updated but index update failed: %w", newID, err)
	}
	return nil
}

// List returns all known project ids in ascending order.
func (s *Store) List() []string {
	ids := make([]string, 0, len(s.index))
	for id := range s.index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Statuses returns a copy of the id → cached-status table.
func (s *Store) Statuses() map[string]string {
	out := make(map[string]string, len(s.index))
	for id, entry := range s.index {
		out[id] = entry.Status
	}
	return out
}

// Len returns the number of indexed projects.
func (s *Store) Len() int {
	return len(s.index)
}

// saveRecord persists a record under its id-derived filename.
func (s *Store) saveRecord(p *project.Project) error {
	return s.writeRecord(p, RecordFilename(p.ID()))
}

// writeRecord persists a record under an explicit filename. Needed after an
// identity change, where the filename no longer derives from the current id.
func (s *Store) writeRecord(p *project.Project, filename string) error {
	if err := os.MkdirAll(s.recordsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create records directory: %w", err)
	}
	data, err := p.Encode()
	if err != nil {
		return err
	}
	path := filepath.Join(s.recordsDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record file for %s: %w", p.ID(), err)
	}
	return nil
}

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Index persistence. The index is a single opaque msgpack blob, replaced
// atomically on every update: write to a temp file, round-trip check it,
// then rename into place. A crash leaves either the old index or the new
// one, never a torn file.

// loadIndex reads and parses the index file. Returns nil,nil if not found.
func loadIndex(path string) (map[string]indexEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read index file: %w", err)
	}
	var idx map[string]indexEntry
	if err := msgpack.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse index file: %w", err)
	}
	if idx == nil {
		idx = map[string]indexEntry{}
	}
	return idx, nil
}

// flushIndex atomically writes the index to disk with round-trip validation.
func (s *Store) flushIndex() error {
	dir := filepath.Dir(s.indexPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index directory: %w", err)
	}

	data, err := msgpack.Marshal(s.index)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	tmpPath := s.indexPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp index file: %w", err)
	}

	// Round-trip validation: re-read and verify it decodes.
	check, err := os.ReadFile(tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("read-back temp index file: %w", err)
	}
	var verify map[string]indexEntry
	if err := msgpack.Unmarshal(check, &verify); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("round-trip validation failed: %w", err)
	}

	if err := os.Rename(tmpPath, s.indexPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename index file: %w", err)
	}
	return nil
}

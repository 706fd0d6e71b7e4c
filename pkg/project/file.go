package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// File handling: version-flagged updates with archiving, and relocation of
// the active and archive directories. The archive move always completes
// before any record state changes, so a failed move leaves the record in
// its prior, consistent state.

// UpdateFile points the project at a new design file.
//
// With newVersion true, the currently active file is first moved into the
// archive directory under the current version label (keeping its original
// extension), and only after that move succeeds does the record advance:
// FileVersion increments, FilePath is replaced, the volume is recomputed,
// and one change entry is appended. With newVersion false the path is simply
// swapped, the volume recomputed, and the update logged; no archiving and
// no version bump.
//
// Returns ErrNotFound if newPath does not exist on disk, and
// ErrInvalidArgument if newPath equals the current file path.
func (p *Project) UpdateFile(newPath string, newVersion bool) error {
	if _, err := os.Stat(newPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %s does not exist: %w", newPath, ErrNotFound)
		}
		return fmt.Errorf("stat %s: %w", newPath, err)
	}
	if filepath.Clean(newPath) == filepath.Clean(p.FilePath) {
		return fmt.Errorf("new file cannot be the same as current file: %w", ErrInvalidArgument)
	}
	ts := time.Now()

	if newVersion {
		archivedName := p.FileVersionLabel() + filepath.Ext(p.FilePath)
		if err := os.MkdirAll(p.ArchiveDir, 0o755); err != nil {
			return fmt.Errorf("create archive directory %s: %w", p.ArchiveDir, err)
		}
		if err := moveFile(p.FilePath, filepath.Join(p.ArchiveDir, archivedName)); err != nil {
			return fmt.Errorf("archive %s: %w", p.FilePath, err)
		}
		p.FileVersion++
		p.FilePath = newPath
		p.refreshVolume()
		p.appendChange(CategoryFile, ts, fmt.Sprintf(
			"%s: File version updated to %s, new volume %g", stamp(ts), p.FileVersionLabel(), p.Volume))
		return nil
	}

	p.FilePath = newPath
	p.refreshVolume()
	p.appendChange(CategoryFile, ts, fmt.Sprintf(
		"%s: File updated (same version), new volume %g", stamp(ts), p.Volume))
	return nil
}

// UpdateFileDirectories relocates the active file and/or the archive
// directory. An empty string means "leave that directory alone"; passing
// both empty returns ErrInvalidArgument.
//
// For the active directory the current file is moved in under its existing
// name. For the archive directory every file present in the old archive
// directory is moved across; archived files are immutable artifacts once
// created, so matching by name is sufficient. Each directory actually
// changed produces its own change entry under the file category.
func (p *Project) UpdateFileDirectories(newActiveDir, newArchiveDir string) error {
	if newActiveDir == "" && newArchiveDir == "" {
		return fmt.Errorf("must provide at least one new directory: %w", ErrInvalidArgument)
	}
	ts := time.Now()

	if newActiveDir != "" {
		if err := os.MkdirAll(newActiveDir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", newActiveDir, err)
		}
		target := filepath.Join(newActiveDir, filepath.Base(p.FilePath))
		if err := moveFile(p.FilePath, target); err != nil {
			return fmt.Errorf("move active file: %w", err)
		}
		p.FilePath = target
		p.appendChange(CategoryFile, ts, fmt.Sprintf("%s: File directory changed to %s", stamp(ts), newActiveDir))
	}

	if newArchiveDir != "" {
		if err := os.MkdirAll(newArchiveDir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", newArchiveDir, err)
		}
		entries, err := os.ReadDir(p.ArchiveDir)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read archive directory %s: %w", p.ArchiveDir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			src := filepath.Join(p.ArchiveDir, entry.Name())
			dst := filepath.Join(newArchiveDir, entry.Name())
			if err := moveFile(src, dst); err != nil {
				return fmt.Errorf("move archived file %s: %w", entry.Name(), err)
			}
		}
		p.ArchiveDir = newArchiveDir
		p.appendChange(CategoryFile, ts, fmt.Sprintf("%s: Archive directory changed to %s", stamp(ts), newArchiveDir))
	}
	return nil
}

// moveFile renames src to dst, falling back to copy-then-remove when the
// rename crosses filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}

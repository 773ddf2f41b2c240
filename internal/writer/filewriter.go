// Package writer provides sinks for serialized archives.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives a complete serialized archive.
type Sink interface {
	WriteArchive(b []byte) error
}

// DefaultPerm is the mode of files created by FileWriter when Perm is zero.
const DefaultPerm os.FileMode = 0o644

// FileWriter writes archive bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
	Perm os.FileMode
}

// WriteArchive writes b to a temporary file next to Path, flushes it to
// disk, and renames it over Path. On failure Path is left untouched.
func (w *FileWriter) WriteArchive(b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(w.Path), ".sarckit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	perm := w.Perm
	if perm == 0 {
		perm = DefaultPerm
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := syncData(tmp); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

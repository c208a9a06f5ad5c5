// Package memory stores datafiles in process memory, keyed by path. It is
// meant for tests and for documents that must never touch the filesystem.
package memory

import (
	"fmt"
	"io/fs"
)

// Storage holds datafile lines per path. Like the File it backs, a Storage
// is not safe for concurrent use.
type Storage struct {
	files map[string][]string
}

// New creates an empty in-memory Storage.
func New() *Storage {
	return &Storage{
		files: make(map[string][]string),
	}
}

// ReadLines returns a copy of the lines stored under path. A copy is
// returned to prevent callers from mutating the stored data. A path that was
// never written reports fs.ErrNotExist.
func (s *Storage) ReadLines(path string) ([]string, error) {
	lines, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("reading %q: %w", path, fs.ErrNotExist)
	}

	out := make([]string, len(lines))
	copy(out, lines)

	return out, nil
}

// WriteLines stores a copy of lines under path, replacing whatever was there.
func (s *Storage) WriteLines(path string, lines []string) error {
	stored := make([]string, len(lines))
	copy(stored, lines)
	s.files[path] = stored

	return nil
}

// Exists reports whether path holds stored lines.
func (s *Storage) Exists(path string) bool {
	_, ok := s.files[path]

	return ok
}

// Remove drops the lines stored under path. Removing an unknown path is a
// no-op.
func (s *Storage) Remove(path string) {
	delete(s.files, path)
}

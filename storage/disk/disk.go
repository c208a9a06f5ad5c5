// Package disk stores datafiles on the local filesystem. It is the default
// storage of a datafile.File.
package disk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathIsDirectory is returned when a path points to a directory instead
// of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// FileMode is the permission mode datafiles are created with.
const FileMode = 0o644

// Storage reads and writes datafiles on the local filesystem. The zero value
// is ready to use.
type Storage struct{}

// New creates a disk Storage.
func New() Storage {
	return Storage{}
}

// ReadLines reads the file at path and returns its text lines. Returns an
// error when the file cannot be read or the path points to a directory.
func (Storage) ReadLines(path string) ([]string, error) {
	cleanPath := filepath.Clean(path)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return strings.Split(string(data), "\n"), nil
}

// WriteLines replaces the file at path with the given lines joined by
// newlines, creating the file when it does not exist. No lines produce an
// empty file.
func (Storage) WriteLines(path string, lines []string) error {
	cleanPath := filepath.Clean(path)

	var data []byte
	if len(lines) > 0 {
		data = []byte(strings.Join(lines, "\n") + "\n")
	}

	err := os.WriteFile(cleanPath, data, FileMode)
	if err != nil {
		return fmt.Errorf("writing file %q: %w", cleanPath, err)
	}

	return nil
}

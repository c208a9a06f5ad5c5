package datafile

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/datafile/storage/disk"
)

// File is an in-memory datafile document, optionally bound to a file name.
//
// A File exclusively owns its sections: accessors hand out copies, so the
// only way to change the document is through the File's own methods. A File
// is not safe for concurrent use; callers that share one across goroutines
// must serialize access themselves.
type File struct {
	sections []Section
	path     string
	dirty    bool

	autoCreateSections bool
	autoCreateKeys     bool
	storage            Storage
	logger             *slog.Logger
}

// Storage is the I/O collaborator of a File: Load reads raw text lines
// through it and Save writes them back. The engine itself never touches the
// filesystem. Implementations are provided by the storage/disk and
// storage/memory packages.
type Storage interface {
	// ReadLines returns the text lines of the datafile at path.
	ReadLines(path string) ([]string, error)
	// WriteLines replaces the datafile at path with the given lines.
	WriteLines(path string, lines []string) error
}

// New creates an empty File. By default both autocreate flags are enabled,
// storage is the local disk and diagnostics go to slog.Default().
func New(opts ...Option) *File {
	options := Options{
		AutoCreateSections: true,
		AutoCreateKeys:     true,
	}

	for _, apply := range opts {
		apply(&options)
	}

	if options.Storage == nil {
		options.Storage = disk.New()
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &File{
		autoCreateSections: options.AutoCreateSections,
		autoCreateKeys:     options.AutoCreateKeys,
		storage:            options.Storage,
		logger:             options.Logger,
	}
}

// Load reads and parses the datafile at path, replacing the current document
// wholesale and binding the File to path. The freshly loaded document is not
// dirty. On a read failure the prior document, file name and dirty state are
// left untouched.
func (f *File) Load(path string) error {
	lines, err := f.storage.ReadLines(path)
	if err != nil {
		f.logger.Debug("unable to read datafile",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return fmt.Errorf("loading datafile %q: %w", path, err)
	}

	f.sections = parseLines(lines, f.logger)
	f.path = path
	f.dirty = false

	return nil
}

// Save serializes the document to its file name. It is a no-op success when
// nothing has changed since the last Load, Save or ClearDirty; use WriteTo
// to serialize unconditionally. Saving a dirty document without a file name
// fails with ErrNoFileName.
func (f *File) Save() error {
	if !f.dirty {
		f.logger.Debug("datafile save skipped, document unchanged",
			slog.String("path", f.path),
		)

		return nil
	}

	if f.path == "" {
		return ErrNoFileName
	}

	err := f.storage.WriteLines(f.path, serializeLines(f.sections))
	if err != nil {
		return fmt.Errorf("saving datafile %q: %w", f.path, err)
	}

	f.dirty = false

	return nil
}

// Clear resets the File to an empty document with no file name and no
// unsaved changes. The configured options are kept.
func (f *File) Clear() {
	f.sections = nil
	f.path = ""
	f.dirty = false
}

// ClearDirty marks the document as unchanged, so the next Save is a no-op.
// Useful when a loaded file is edited for inspection only and must never be
// written back.
func (f *File) ClearDirty() {
	f.dirty = false
}

// Dirty reports whether the document has unsaved changes.
func (f *File) Dirty() bool {
	return f.dirty
}

// SetFileName binds the File to path without loading anything, for documents
// built programmatically and saved later.
func (f *File) SetFileName(path string) {
	f.path = path
}

// FileName returns the path the next Save writes to. It is empty until
// Load or SetFileName binds one.
func (f *File) FileName() string {
	return f.path
}

// SetAutoCreate adjusts both autocreate flags on a live File, overriding
// whatever the construction options set.
func (f *File) SetAutoCreate(sections, keys bool) {
	f.autoCreateSections = sections
	f.autoCreateKeys = keys
}

package datafile

import "log/slog"

// Options holds the configuration of a File.
type Options struct {
	// AutoCreateSections allows the Set* methods to create a missing target
	// section. Enabled by default.
	AutoCreateSections bool
	// AutoCreateKeys allows the Set* methods to create a missing target key.
	// Enabled by default.
	AutoCreateKeys bool
	// Storage performs the raw line reads and writes for Load and Save.
	// Defaults to local disk storage.
	Storage Storage
	// Logger receives parser and lifecycle diagnostics. Defaults to
	// slog.Default(). Logging is a side channel: no operation's outcome
	// depends on it.
	Logger *slog.Logger
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithAutoCreateSections controls whether the Set* methods may create a
// missing target section.
func WithAutoCreateSections(enabled bool) Option {
	return func(opts *Options) {
		opts.AutoCreateSections = enabled
	}
}

// WithAutoCreateKeys controls whether the Set* methods may create a missing
// target key.
func WithAutoCreateKeys(enabled bool) Option {
	return func(opts *Options) {
		opts.AutoCreateKeys = enabled
	}
}

// WithStorage replaces the storage collaborator used by Load and Save.
// Useful for keeping documents in memory or behind a custom backend.
func WithStorage(storage Storage) Option {
	return func(opts *Options) {
		opts.Storage = storage
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

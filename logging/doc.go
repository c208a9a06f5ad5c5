// Package logging builds the structured loggers used around datafile, on
// top of Go's standard library log/slog. The datafile engine itself accepts
// any *slog.Logger via datafile.WithLogger; this package exists so tools
// like cmd/datafile construct theirs consistently.
package logging

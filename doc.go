// Package datafile reads, edits and writes INI-style configuration files
// while preserving what makes them human: entity order, comments and the
// exact text of values.
//
// A document is an ordered list of sections, each an ordered list of keys.
// Comment lines attach to the section or key that follows them and are
// written back in front of it. Keys appearing before the first [section]
// header belong to the implicit global section, addressed by the empty
// section name. All name lookups are case-insensitive; writes preserve the
// original spelling.
//
// # Format
//
// A line is one of four things after trimming: blank, a comment (first
// character ';' or '#'), a section header ("[name]"), or an assignment
// ("key=value", ':' works too). Anything else is skipped; parsing never
// fails. Files are rewritten in canonical form: "; " comments, '='
// assignments, one blank line between sections.
//
// # Example
//
// A typical edit cycle:
//
//	f := datafile.New()
//	if err := f.Load("app.ini"); err != nil {
//	    // ...
//	}
//
//	port := f.GetInt("port", "network")
//
//	if err := f.SetInt("port", port+1, "moved one up", "network"); err != nil {
//	    // ...
//	}
//
//	if err := f.Save(); err != nil { // writes only because the document changed
//	    // ...
//	}
//
// The Set* methods respect the autocreate options: with
// WithAutoCreateSections(false) or WithAutoCreateKeys(false) they fail with
// ErrSectionNotFound or ErrKeyNotFound instead of creating missing targets.
// CreateKey and CreateSection always create. Load and Save move lines
// through the Storage interface; storage/disk (the default) and
// storage/memory provide implementations.
package datafile

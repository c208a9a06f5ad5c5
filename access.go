package datafile

import (
	"strconv"
	"strings"
)

// truthyTokens are the values GetBool recognizes as true, compared
// case-insensitively. Every other value reads as false.
var truthyTokens = []string{"true", "1", "yes", "on"} //nolint:gochecknoglobals // fixed token set of the format

// resolveSection returns the index of the section the getters should search:
// the named section when it exists, otherwise the global section. A section
// name that matches nothing degrades to a global lookup rather than failing,
// so a renamed section reads like a missing key.
func (f *File) resolveSection(section string) int {
	if idx := findSection(f.sections, section); idx >= 0 {
		return idx
	}

	if section == "" {
		return -1
	}

	return findSection(f.sections, "")
}

// GetValue returns the raw value of a key and whether it was found. The
// empty section name addresses the global section. Lookup of both names is
// case-insensitive.
func (f *File) GetValue(key, section string) (string, bool) {
	idx := f.resolveSection(section)
	if idx < 0 {
		return "", false
	}

	k := findKey(&f.sections[idx], key)
	if k < 0 {
		return "", false
	}

	return f.sections[idx].Keys[k].Value, true
}

// GetString returns the value of a key, or "" when the key is missing.
func (f *File) GetString(key, section string) string {
	value, _ := f.GetValue(key, section)

	return value
}

// GetFloat returns the value of a key parsed as a float, or 0 when the key
// is missing or its value is not numeric.
func (f *File) GetFloat(key, section string) float64 {
	value, ok := f.GetValue(key, section)
	if !ok {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return parsed
}

// GetInt returns the value of a key parsed as an int, or 0 when the key is
// missing or its value is not an integer.
func (f *File) GetInt(key, section string) int {
	value, ok := f.GetValue(key, section)
	if !ok {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return parsed
}

// GetBool returns true when the value of a key is one of "true", "1", "yes"
// or "on" in any letter case, and false for every other value including a
// missing key.
func (f *File) GetBool(key, section string) bool {
	value, ok := f.GetValue(key, section)
	if !ok {
		return false
	}

	for _, token := range truthyTokens {
		if strings.EqualFold(value, token) {
			return true
		}
	}

	return false
}

// HasSection reports whether a section with the given name exists, matched
// case-insensitively. Unlike the getters it never falls back to the global
// section.
func (f *File) HasSection(name string) bool {
	return findSection(f.sections, name) >= 0
}

// SectionCount returns the number of sections in the document. The implicit
// global section counts once it exists.
func (f *File) SectionCount() int {
	return len(f.sections)
}

// KeyCount returns the total number of keys across all sections.
func (f *File) KeyCount() int {
	total := 0
	for i := range f.sections {
		total += len(f.sections[i].Keys)
	}

	return total
}

// Section returns a copy of the named section and whether it exists. A copy
// is returned to prevent callers from mutating the document behind the
// File's back.
func (f *File) Section(name string) (Section, bool) {
	idx := findSection(f.sections, name)
	if idx < 0 {
		return Section{}, false
	}

	return f.sections[idx].clone(), true
}

// Sections returns copies of all sections in document order.
func (f *File) Sections() []Section {
	out := make([]Section, len(f.sections))
	for i := range f.sections {
		out[i] = f.sections[i].clone()
	}

	return out
}

package datafile

import "strings"

// Key is a single named value inside a Section. Comment holds the comment
// text attached to the key, without indicator characters; multi-line
// comments are joined with newlines. Comments always precede their key in
// the serialized text.
type Key struct {
	Name    string
	Value   string
	Comment string
}

// Section is a named, ordered collection of keys. The section whose name is
// empty is the implicit global section: its keys live before any [section]
// header and the header itself is never written.
type Section struct {
	Name    string
	Comment string
	Keys    []Key
}

// clone returns a deep copy of the section, detaching the key slice from the
// original.
func (s Section) clone() Section {
	out := s
	out.Keys = cloneKeys(s.Keys)

	return out
}

func cloneKeys(keys []Key) []Key {
	if keys == nil {
		return nil
	}

	out := make([]Key, len(keys))
	copy(out, keys)

	return out
}

// findSection returns the index of the first section whose name matches
// case-insensitively, or -1 when none does.
func findSection(sections []Section, name string) int {
	for i := range sections {
		if strings.EqualFold(sections[i].Name, name) {
			return i
		}
	}

	return -1
}

// findKey returns the index of the first key in s whose name matches
// case-insensitively, or -1 when none does.
func findKey(s *Section, name string) int {
	for i := range s.Keys {
		if strings.EqualFold(s.Keys[i].Name, name) {
			return i
		}
	}

	return -1
}

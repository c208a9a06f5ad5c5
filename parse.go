package datafile

import (
	"log/slog"
	"strings"
)

// Parse builds a File from in-memory datafile text. The returned File has no
// file name and no unsaved changes. Parsing is tolerant and never fails:
// lines that fit no construct are skipped.
func Parse(data []byte, opts ...Option) *File {
	f := New(opts...)
	f.sections = parseLines(strings.Split(string(data), "\n"), f.logger)

	return f
}

// parseState carries the parser state between lines: the sections built so
// far, the section new keys append to and the comment lines collected since
// the last section or key. Comments attach to whichever of the two comes
// next; a blank line neither attaches nor discards them. Pending lines are
// kept as a slice so that empty comment lines inside a block survive a round
// trip.
type parseState struct {
	sections []Section
	current  int // index into sections; -1 until the first section exists
	pending  []string
}

// parseLines runs the single-pass line parser and returns the resulting
// sections.
func parseLines(lines []string, logger *slog.Logger) []Section {
	st := parseState{current: -1}

	for n, raw := range lines {
		line := trim(raw)

		switch {
		case line == "":
			// Blank lines separate entities but keep a pending comment alive.

		case isCommentLine(line):
			st.pending = append(st.pending, commentContent(line))

		case isSectionHeader(line):
			st.enterSection(trim(line[1 : len(line)-1]))

		default:
			if !st.addAssignment(line) {
				logger.Debug("skipping malformed datafile line",
					slog.Int("line", n+1),
					slog.String("content", line),
				)
			}
		}
	}

	return st.sections
}

// takePending joins the collected comment lines into the stored comment form
// and clears them. A comment pending at end of input is simply never taken.
func (st *parseState) takePending() string {
	if st.pending == nil {
		return ""
	}

	comment := strings.Join(st.pending, "\n")
	st.pending = nil

	return comment
}

// enterSection makes the named section current, appending a new one when no
// existing section matches. A duplicate header re-selects the earlier
// section and keeps its original comment; the pending comment is consumed
// either way so it cannot leak onto a later key.
func (st *parseState) enterSection(name string) {
	comment := st.takePending()

	if idx := findSection(st.sections, name); idx >= 0 {
		st.current = idx

		return
	}

	st.sections = append(st.sections, Section{Name: name, Comment: comment})
	st.current = len(st.sections) - 1
}

// addAssignment splits an assignment line and upserts the key into the
// current section. Keys seen before any header go into the implicit global
// section, created on first use without consuming the pending comment, which
// belongs to the key itself. A duplicate key overwrites both value and
// comment in place, keeping its original position. Reports false for lines
// that carry no equal indicator or an empty key name.
func (st *parseState) addAssignment(line string) bool {
	name, value, ok := splitAssignment(line)
	if !ok || name == "" {
		return false
	}

	if st.current < 0 {
		st.sections = append(st.sections, Section{})
		st.current = len(st.sections) - 1
	}

	section := &st.sections[st.current]
	comment := st.takePending()

	if idx := findKey(section, name); idx >= 0 {
		section.Keys[idx].Value = value
		section.Keys[idx].Comment = comment

		return true
	}

	section.Keys = append(section.Keys, Key{Name: name, Value: value, Comment: comment})

	return true
}

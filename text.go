package datafile

import "strings"

// Indicator sets of the datafile format. They are fixed for the lifetime of
// the process; parser and serializer behavior is deterministic because of it.
const (
	// commentIndicators are the characters that mark a line as a comment.
	commentIndicators = ";#"
	// equalIndicators are the characters that separate a key from its value.
	equalIndicators = "=:"
	// whitespaceCutset are the characters trimmed from line and token edges.
	whitespaceCutset = " \t\n\r"
)

// Canonical write forms are the first character of each indicator set.
//
//nolint:gochecknoglobals // derived from the constant indicator sets
var (
	commentWriteIndicator = commentIndicators[:1]
	equalWriteIndicator   = equalIndicators[:1]
)

// trim strips leading and trailing whitespace-set characters from s. It is
// deliberately narrower than strings.TrimSpace: only space, tab, newline and
// carriage return count.
func trim(s string) string {
	return strings.Trim(s, whitespaceCutset)
}

// isCommentLine reports whether the already-trimmed line is a comment.
func isCommentLine(line string) bool {
	return line != "" && strings.IndexByte(commentIndicators, line[0]) >= 0
}

// commentContent strips the leading indicator and at most one following
// space, so "; note" and ";  note" keep their exact text across a round
// trip.
func commentContent(line string) string {
	content := line[1:]

	return strings.TrimPrefix(content, " ")
}

// isSectionHeader reports whether the already-trimmed line is enclosed in
// square brackets.
func isSectionHeader(line string) bool {
	return len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']'
}

// splitAssignment splits line on the first equal indicator and trims both
// halves. ok is false when the line contains no indicator at all.
func splitAssignment(line string) (key, value string, ok bool) {
	pos := strings.IndexAny(line, equalIndicators)
	if pos < 0 {
		return "", "", false
	}

	return trim(line[:pos]), trim(line[pos+1:]), true
}

// formatCommentLines renders a stored comment as writable lines. Each line
// gets the canonical indicator unless it already carries one; an empty line
// within the comment renders as a bare indicator so it survives a round
// trip. An empty comment produces no lines at all.
func formatCommentLines(comment string) []string {
	if comment == "" {
		return nil
	}

	raw := strings.Split(comment, "\n")
	lines := make([]string, len(raw))

	for i, line := range raw {
		switch {
		case line == "":
			lines[i] = commentWriteIndicator
		case strings.IndexByte(commentIndicators, line[0]) >= 0:
			lines[i] = line
		default:
			lines[i] = commentWriteIndicator + " " + line
		}
	}

	return lines
}

package datafile

import (
	"fmt"
	"io"
	"strings"
)

// serializeLines reconstructs the text lines of the document. Each section
// contributes a blank separator line (except before the first section), its
// comment lines, a [name] header unless it is the global section, and its
// keys in order, each as comment lines followed by name=value.
func serializeLines(sections []Section) []string {
	var lines []string

	for i := range sections {
		section := &sections[i]

		if i > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, formatCommentLines(section.Comment)...)

		if section.Name != "" {
			lines = append(lines, "["+section.Name+"]")
		}

		for _, key := range section.Keys {
			lines = append(lines, formatCommentLines(key.Comment)...)
			lines = append(lines, key.Name+equalWriteIndicator+key.Value)
		}
	}

	return lines
}

// String renders the document as datafile text, with a trailing newline. An
// empty document renders as the empty string. String ignores the dirty flag.
func (f *File) String() string {
	lines := serializeLines(f.sections)
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// WriteTo serializes the document to w regardless of the dirty flag and the
// file name, implementing io.WriterTo.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	if err != nil {
		return int64(n), fmt.Errorf("writing datafile: %w", err)
	}

	return int64(n), nil
}

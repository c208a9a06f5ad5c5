// Package convert bridges datafile documents to and from YAML, for tooling
// that migrates configuration between the two formats.
//
// Conversion keeps section and key order. Exporting preserves comments as
// YAML head comments; importing does not read comments back. YAML deeper
// than two levels cannot be represented and fails with ErrNestedMapping.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/datafile"
)

// ErrNestedMapping is returned by FromYAML when the document nests deeper
// than sections of keys.
var ErrNestedMapping = errors.New("yaml nests deeper than sections and keys")

// ToYAML renders the document as YAML: keys of the global section become
// top-level scalars, every named section becomes a top-level mapping of
// scalars. Section and key comments are emitted as head comments.
func ToYAML(f *datafile.File) ([]byte, error) {
	doc := yaml.MapSlice{}
	comments := yaml.CommentMap{}

	for _, section := range f.Sections() {
		if section.Name == "" {
			for _, key := range section.Keys {
				doc = append(doc, yaml.MapItem{Key: key.Name, Value: key.Value})
				addHeadComment(comments, "$."+key.Name, key.Comment)
			}

			continue
		}

		mapping := make(yaml.MapSlice, 0, len(section.Keys))
		for _, key := range section.Keys {
			mapping = append(mapping, yaml.MapItem{Key: key.Name, Value: key.Value})
			addHeadComment(comments, "$."+section.Name+"."+key.Name, key.Comment)
		}

		doc = append(doc, yaml.MapItem{Key: section.Name, Value: mapping})
		addHeadComment(comments, "$."+section.Name, section.Comment)
	}

	data, err := yaml.MarshalWithOptions(doc, yaml.WithComment(comments))
	if err != nil {
		return nil, fmt.Errorf("marshaling datafile as yaml: %w", err)
	}

	return data, nil
}

// FromYAML parses a two-level YAML document into a File: top-level scalars
// become global keys, top-level mappings become sections of scalar keys. The
// returned File is dirty and has no file name; bind one with SetFileName and
// Save to materialize it.
func FromYAML(data []byte, opts ...datafile.Option) (*datafile.File, error) {
	var doc yaml.MapSlice

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshaling yaml: %w", err)
	}

	f := datafile.New(opts...)

	for _, item := range doc {
		name := scalarString(item.Key)

		mapping, ok := item.Value.(yaml.MapSlice)
		if !ok {
			f.CreateKey(name, scalarString(item.Value), "", "")

			continue
		}

		keys := make([]datafile.Key, 0, len(mapping))

		for _, entry := range mapping {
			if _, nested := entry.Value.(yaml.MapSlice); nested {
				return nil, fmt.Errorf("section %q, key %q: %w", name, scalarString(entry.Key), ErrNestedMapping)
			}

			keys = append(keys, datafile.Key{
				Name:  scalarString(entry.Key),
				Value: scalarString(entry.Value),
			})
		}

		f.CreateSectionWithKeys(name, "", keys)
	}

	return f, nil
}

// addHeadComment registers comment as a head comment at the given yaml path.
// goccy renders each text as "#<text>", so a leading space is added to every
// line.
func addHeadComment(comments yaml.CommentMap, path, comment string) {
	if comment == "" {
		return
	}

	lines := strings.Split(comment, "\n")
	texts := make([]string, len(lines))

	for i, line := range lines {
		texts[i] = " " + line
	}

	comments[path] = []*yaml.Comment{yaml.HeadComment(texts...)}
}

// scalarString renders a decoded YAML scalar the way a datafile value reads:
// plain text. Numbers and bools use their canonical Go formatting.
func scalarString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

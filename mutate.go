package datafile

import (
	"fmt"
	"strconv"
)

// setValue is the shared path of the Set* methods: locate the target under
// the autocreate policy, then upsert. Both policy checks happen before any
// mutation, so a denied set leaves the document untouched even when the
// section alone could have been created.
func (f *File) setValue(key, value, comment, section string) error {
	idx := findSection(f.sections, section)
	if idx < 0 && !f.autoCreateSections {
		return fmt.Errorf("setting key %q: section %q: %w", key, section, ErrSectionNotFound)
	}

	k := -1
	if idx >= 0 {
		k = findKey(&f.sections[idx], key)
	}

	if k < 0 && !f.autoCreateKeys {
		return fmt.Errorf("setting key %q in section %q: %w", key, section, ErrKeyNotFound)
	}

	if idx < 0 {
		f.sections = append(f.sections, Section{Name: section})
		idx = len(f.sections) - 1
	}

	target := &f.sections[idx]

	if k < 0 {
		target.Keys = append(target.Keys, Key{Name: key, Value: value, Comment: comment})
	} else {
		target.Keys[k].Value = value
		if comment != "" {
			target.Keys[k].Comment = comment
		}
	}

	f.dirty = true

	return nil
}

// SetString sets the value of a key, creating the section and the key as the
// autocreate options allow. An existing key keeps its position; its comment
// is replaced only when the given comment is non-empty, use SetKeyComment to
// clear one.
func (f *File) SetString(key, value, comment, section string) error {
	return f.setValue(key, value, comment, section)
}

// SetFloat sets the value of a key from a float, rendered in plain decimal
// notation with the shortest exact representation.
func (f *File) SetFloat(key string, value float64, comment, section string) error {
	return f.setValue(key, strconv.FormatFloat(value, 'f', -1, 64), comment, section)
}

// SetInt sets the value of a key from an int.
func (f *File) SetInt(key string, value int, comment, section string) error {
	return f.setValue(key, strconv.Itoa(value), comment, section)
}

// SetBool sets the value of a key from a bool, written as "true" or "false".
func (f *File) SetBool(key string, value bool, comment, section string) error {
	return f.setValue(key, strconv.FormatBool(value), comment, section)
}

// SetKeyComment replaces the comment of an existing key. Unlike the Set*
// methods an empty comment is applied, clearing the stored one.
func (f *File) SetKeyComment(key, comment, section string) error {
	idx := findSection(f.sections, section)
	if idx < 0 {
		return fmt.Errorf("section %q: %w", section, ErrSectionNotFound)
	}

	k := findKey(&f.sections[idx], key)
	if k < 0 {
		return fmt.Errorf("key %q in section %q: %w", key, section, ErrKeyNotFound)
	}

	f.sections[idx].Keys[k].Comment = comment
	f.dirty = true

	return nil
}

// SetSectionComment replaces the comment of an existing section. An empty
// comment clears the stored one.
func (f *File) SetSectionComment(section, comment string) error {
	idx := findSection(f.sections, section)
	if idx < 0 {
		return fmt.Errorf("section %q: %w", section, ErrSectionNotFound)
	}

	f.sections[idx].Comment = comment
	f.dirty = true

	return nil
}

// CreateKey sets a key unconditionally, creating the section when missing.
// It bypasses the autocreate options, which gate only the Set* convenience
// path. An existing key is overwritten in place, keeping its comment when
// the given one is empty.
func (f *File) CreateKey(key, value, comment, section string) {
	idx := findSection(f.sections, section)
	if idx < 0 {
		f.sections = append(f.sections, Section{Name: section})
		idx = len(f.sections) - 1
	}

	target := &f.sections[idx]

	if k := findKey(target, key); k >= 0 {
		target.Keys[k].Value = value
		if comment != "" {
			target.Keys[k].Comment = comment
		}
	} else {
		target.Keys = append(target.Keys, Key{Name: key, Value: value, Comment: comment})
	}

	f.dirty = true
}

// CreateSection appends an empty section with the given comment. Creating a
// section that already exists is a no-op: the existing section, its comment
// and its keys stay untouched and the document is not marked dirty.
func (f *File) CreateSection(section, comment string) {
	if findSection(f.sections, section) >= 0 {
		return
	}

	f.sections = append(f.sections, Section{Name: section, Comment: comment})
	f.dirty = true
}

// CreateSectionWithKeys appends a section pre-populated with copies of the
// given keys, applied in order with a later duplicate overwriting an earlier
// one. Like CreateSection it is a no-op when the section already exists.
func (f *File) CreateSectionWithKeys(section, comment string, keys []Key) {
	if findSection(f.sections, section) >= 0 {
		return
	}

	target := Section{Name: section, Comment: comment}

	for _, key := range keys {
		if k := findKey(&target, key.Name); k >= 0 {
			target.Keys[k] = key
		} else {
			target.Keys = append(target.Keys, key)
		}
	}

	f.sections = append(f.sections, target)
	f.dirty = true
}

// DeleteKey removes a key from the given section. Both names are matched
// case-insensitively.
func (f *File) DeleteKey(key, section string) error {
	idx := findSection(f.sections, section)
	if idx < 0 {
		return fmt.Errorf("section %q: %w", section, ErrSectionNotFound)
	}

	target := &f.sections[idx]

	k := findKey(target, key)
	if k < 0 {
		return fmt.Errorf("key %q in section %q: %w", key, section, ErrKeyNotFound)
	}

	target.Keys = append(target.Keys[:k], target.Keys[k+1:]...)
	f.dirty = true

	return nil
}

// DeleteSection removes a section and all its keys.
func (f *File) DeleteSection(section string) error {
	idx := findSection(f.sections, section)
	if idx < 0 {
		return fmt.Errorf("section %q: %w", section, ErrSectionNotFound)
	}

	f.sections = append(f.sections[:idx], f.sections[idx+1:]...)
	f.dirty = true

	return nil
}

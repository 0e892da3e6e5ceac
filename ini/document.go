// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RootSection is the name of the section holding properties that appear
// before any section header.
const RootSection = "root"

// A Document is a collection of sections keyed by name. Documents returned by
// Parse always contain RootSection.
//
// A Document has no internal synchronization. Callers sharing one between
// goroutines must serialize access themselves.
type Document map[string]Section

// A Section is a map of unique keys to values.
type Section map[string]string

// NewDocument returns a Document with an empty root section.
func NewDocument() Document {
	return Document{RootSection: make(Section)}
}

// Section returns the named section. The returned map is shared with doc, so
// writes through it are visible in doc. If there is no such section, Section
// returns nil, false.
func (doc Document) Section(name string) (Section, bool) {
	s, ok := doc[name]
	return s, ok
}

// Get returns the value of the given key in the given section.
func (doc Document) Get(section, key string) (_ string, ok bool) {
	return doc[section].Get(key)
}

// Set sets the property to the given value, creating the section if
// necessary. Set will panic if IsValidSection(section), IsValidKey(key), or
// IsValidValue(value) report false.
func (doc Document) Set(section, key, value string) {
	if !IsValidSection(section) {
		panic("Document.Set invalid section: " + section)
	}
	if !IsValidKey(key) {
		panic("Document.Set invalid key: " + key)
	}
	if !IsValidValue(value) {
		panic("Document.Set invalid value: " + value)
	}
	s := doc[section]
	if s == nil {
		s = make(Section)
		doc[section] = s
	}
	s[key] = value
}

// Delete removes the given key from the given section. Empty sections are
// kept.
func (doc Document) Delete(section, key string) {
	delete(doc[section], key)
}

// DeleteSection removes the named section and all its properties. Deleting
// the root section empties it instead.
func (doc Document) DeleteSection(name string) {
	if name == RootSection {
		doc[RootSection] = make(Section)
		return
	}
	delete(doc, name)
}

// Names returns the section names in serialization order: the root section
// first (if present), then the others sorted.
func (doc Document) Names() []string {
	names := make([]string, 0, len(doc))
	for name := range doc {
		if name != RootSection {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := doc[RootSection]; ok {
		names = append(names, "")
		copy(names[1:], names)
		names[0] = RootSection
	}
	return names
}

// IsEmpty reports whether doc has no sections other than root and no
// properties in root.
func (doc Document) IsEmpty() bool {
	for name, s := range doc {
		if name != RootSection || len(s) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of doc.
func (doc Document) Clone() Document {
	if doc == nil {
		return nil
	}
	c := make(Document, len(doc))
	for name, s := range doc {
		c[name] = s.Clone()
	}
	return c
}

// Get returns the value associated with the given key.
func (sect Section) Get(key string) (_ string, ok bool) {
	v, ok := sect[key]
	return v, ok
}

// Keys returns the keys of the section in sorted order.
func (sect Section) Keys() []string {
	keys := make([]string, 0, len(sect))
	for k := range sect {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of the section.
func (sect Section) Clone() Section {
	c := make(Section, len(sect))
	for k, v := range sect {
		c[k] = v
	}
	return c
}

// IsValidSection reports whether a string can be used as a section name and
// survive a round trip through the serializer.
func IsValidSection(name string) bool {
	if name == "" || hasOuterSpace(name) {
		return false
	}
	return !strings.ContainsAny(name, "[]\n;#")
}

// IsValidKey reports whether a string can be used as a property key and
// survive a round trip through the serializer.
func IsValidKey(key string) bool {
	if key == "" || hasOuterSpace(key) {
		return false
	}
	if key[0] == '[' {
		return false
	}
	return !strings.ContainsAny(key, "=\n;#")
}

// IsValidValue reports whether a string can be stored as a property value.
// Values containing comment markers are accepted, but do not survive a round
// trip through the serializer unchanged.
func IsValidValue(value string) bool {
	return !hasOuterSpace(value) && !strings.ContainsRune(value, '\n')
}

func hasOuterSpace(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
)

// Extension is the file name suffix required by Load.
const Extension = ".ini"

// A File is a parsed INI source: the raw text it was read from and the
// Document produced from it. The raw text never changes; the Document may be
// modified freely by the caller.
type File struct {
	path string
	raw  string
	doc  Document
}

// NewFile parses raw and returns a File that retains it.
func NewFile(ctx context.Context, raw string, opts *ParseOptions) (*File, error) {
	doc, err := Parse(ctx, raw, opts)
	if err != nil {
		return nil, err
	}
	return &File{raw: raw, doc: doc}, nil
}

// Load reads and parses the file at path. The path must end in Extension.
// All errors returned by Load are of type *ConfigError.
func Load(ctx context.Context, path string, opts *ParseOptions) (*File, error) {
	if !strings.HasSuffix(path, Extension) {
		return nil, &ConfigError{Path: path, Err: ErrExtension}
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}
	f, err := NewFile(ctx, string(data), opts)
	if err != nil {
		if cerr, ok := err.(*ConfigError); ok {
			cerr.Path = path
		}
		return nil, err
	}
	f.path = path
	return f, nil
}

// Path returns the path the file was loaded from or the empty string if it
// was created by NewFile.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Raw returns the unmodified source text.
func (f *File) Raw() string {
	if f == nil {
		return ""
	}
	return f.raw
}

// Document returns the parsed document. The returned map is shared with f.
func (f *File) Document() Document {
	if f == nil {
		return nil
	}
	return f.doc
}

// Section returns the named section of the document.
func (f *File) Section(name string) (Section, bool) {
	return f.Document().Section(name)
}

// Get returns the value of the given key in the given section.
func (f *File) Get(section, key string) (string, bool) {
	return f.Document().Get(section, key)
}

// WriteTo writes the serialized document to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	return f.Document().WriteTo(w)
}

// WriteFile writes the serialized document to the file at path, creating or
// truncating it.
func (f *File) WriteFile(path string) error {
	text, err := f.Document().MarshalText()
	if err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	if err := ioutil.WriteFile(path, text, 0666); err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	return nil
}

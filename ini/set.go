// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"fmt"
	"os"
)

// FileSet is a list of files to obtain configuration from in descending order
// of precedence. Nil elements are treated as empty files.
type FileSet []*File

// LoadFiles loads the files at the given paths and returns a FileSet.
// If the returned error is nil, the returned file set's length will be the same
// as the number of arguments. LoadFiles will stop on the first error, but
// ignores missing files, instead filling the corresponding element of the set
// with a nil *File.
func LoadFiles(ctx context.Context, opts *ParseOptions, paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			fset = append(fset, nil)
			continue
		}
		f, err := Load(ctx, p, opts)
		if err != nil {
			return fset, fmt.Errorf("load ini files: %w", err)
		}
		fset = append(fset, f)
	}
	return fset, nil
}

// Get returns the value of the key from the first file that sets it.
func (fset FileSet) Get(section, key string) (string, bool) {
	for _, f := range fset {
		if v, ok := f.Get(section, key); ok {
			return v, true
		}
	}
	return "", false
}

// Names returns the sorted union of section names in every file, with the
// root section first.
func (fset FileSet) Names() []string {
	merged := make(Document)
	for _, f := range fset {
		for name := range f.Document() {
			merged[name] = nil
		}
	}
	return merged.Names()
}

// Section returns a copy of the named section merged across all files.
// Files earlier in the set take precedence. If no file has the section,
// Section returns nil, false.
func (fset FileSet) Section(name string) (Section, bool) {
	var merged Section
	for i := len(fset) - 1; i >= 0; i-- {
		s, ok := fset[i].Section(name)
		if !ok {
			continue
		}
		if merged == nil {
			merged = make(Section, len(s))
		}
		for k, v := range s {
			merged[k] = v
		}
	}
	return merged, merged != nil
}

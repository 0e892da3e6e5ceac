// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by *ConfigError. Test for them with errors.Is.
var (
	// ErrEmpty is returned when the input has no sections and no root
	// properties, which does not look like an INI payload.
	ErrEmpty = errors.New("no sections or properties")

	// ErrNotText is returned when the input cannot be interpreted as text.
	ErrNotText = errors.New("input is not UTF-8 text")

	// ErrExtension is returned by Load when the path does not end in ".ini".
	ErrExtension = errors.New("file name must end with " + Extension)

	// ErrUnreadable is returned by Load when the file cannot be read.
	ErrUnreadable = errors.New("cannot read file")
)

// ConfigError is the error returned when an INI source cannot be turned into
// a Document.
type ConfigError struct {
	// Path is the file the source came from. It is empty for in-memory
	// sources.
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse ini: %v", e.Err)
	}
	return fmt.Sprintf("parse ini %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

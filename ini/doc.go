// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for the INI file format.
See https://en.wikipedia.org/wiki/INI_file.

Parsing is a pure transformation from a string to a Document: the package
never touches the filesystem while parsing. Load and File.WriteFile are thin
helpers for callers that want the usual .ini file handling.

Syntax

An INI file is UTF-8 text split into lines on '\n'. A property is a key and
value written on a single line, separated by the first equals sign ('='):

	key = value

Whitespace around keys and values is insignificant. Properties may be grouped
into sections. A section is started by writing its name in square brackets
('[' and ']') on its own line and ends at the next section name or the end of
file:

	[section]
	key1 = value1
	key2 = value2

Properties encountered before any section name belong to the root section,
named "root". Writing "[root]" explicitly addresses the same section.

Comments

Exactly one comment marker is active per call to Parse: either a semicolon
(';', the default) or a hash ('#'). The other character has no special
meaning. Everything from an active marker to the end of the line is
discarded. A backslash immediately before the marker escapes it: the
backslash is removed and the marker is kept in the value.

	path = C:\temp\; not a comment ; but this is

Repeated names

The first occurrence of a key within a section wins; later occurrences are
reported as warnings and dropped. A repeated section header is also reported,
but properties following it are merged into the existing section.

Lines that are neither section headers nor properties are ignored.
*/
package ini

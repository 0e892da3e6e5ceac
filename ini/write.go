// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"io"
)

// MarshalText serializes the document in INI format. The root section's
// properties come first, followed by the other sections sorted by name.
// Keys are sorted within each section. Values are written verbatim, so a
// value containing a comment marker will not read back the same.
func (doc Document) MarshalText() ([]byte, error) {
	return doc.appendText(nil), nil
}

// WriteTo writes the serialized document to w.
func (doc Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(doc.appendText(nil))
	return int64(n), err
}

// String returns the serialized document.
func (doc Document) String() string {
	return string(doc.appendText(nil))
}

func (doc Document) appendText(buf []byte) []byte {
	if root := doc[RootSection]; len(root) > 0 {
		buf = root.appendProperties(buf)
		buf = append(buf, '\n')
	}
	for _, name := range doc.Names() {
		if name == RootSection {
			continue
		}
		buf = append(buf, '[')
		buf = append(buf, name...)
		buf = append(buf, "]\n"...)
		buf = doc[name].appendProperties(buf)
		buf = append(buf, '\n')
	}
	return buf
}

func (sect Section) appendProperties(buf []byte) []byte {
	for _, k := range sect.Keys() {
		buf = append(buf, k...)
		buf = append(buf, " = "...)
		buf = append(buf, sect[k]...)
		buf = append(buf, '\n')
	}
	return buf
}

// WritePretty writes doc to w for human display. Properties are indented
// and keys are right-aligned to the widest key in the document. The output
// is not meant to be parsed again.
func WritePretty(w io.Writer, doc Document) error {
	width := 0
	for _, s := range doc {
		for k := range s {
			if n := len([]rune(k)); n > width {
				width = n
			}
		}
	}
	buf := new(bytes.Buffer)
	for _, name := range doc.Names() {
		sect := doc[name]
		if name == RootSection {
			if len(sect) == 0 {
				continue
			}
		} else {
			buf.WriteString("[" + name + "]\n")
		}
		for _, k := range sect.Keys() {
			buf.WriteByte('\t')
			for pad := width - len([]rune(k)); pad > 0; pad-- {
				buf.WriteByte(' ')
			}
			buf.WriteString(k)
			buf.WriteString(" = ")
			buf.WriteString(sect[k])
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"zombiezen.com/go/log"
)

// A CommentMarker is the character that starts a trailing comment.
type CommentMarker byte

// Recognized comment markers. The zero value is treated as Semicolon.
const (
	Semicolon CommentMarker = ';'
	Hash      CommentMarker = '#'
)

// ParseCommentMarker converts ";" or "#" into a CommentMarker.
func ParseCommentMarker(s string) (CommentMarker, error) {
	switch s {
	case ";":
		return Semicolon, nil
	case "#":
		return Hash, nil
	default:
		return 0, fmt.Errorf("unknown comment marker %q (want ';' or '#')", s)
	}
}

func (m CommentMarker) String() string {
	return string(rune(m.orDefault()))
}

func (m CommentMarker) orDefault() CommentMarker {
	if m == 0 {
		return Semicolon
	}
	return m
}

// ParseOptions holds optional parameters for Parse.
type ParseOptions struct {
	// Comment is the active comment marker. The zero value means Semicolon.
	Comment CommentMarker

	// Warn is called for each recoverable problem found in the input.
	// If nil, warnings are logged to the Context's logger.
	Warn func(Warning)
}

// WarningKind identifies the kind of recoverable parse problem.
type WarningKind int

// Warning kinds.
const (
	DuplicateSection WarningKind = 1 + iota
	DuplicateKey
	InvalidSection
	EmptyKey
)

func (k WarningKind) String() string {
	switch k {
	case DuplicateSection:
		return "duplicate section"
	case DuplicateKey:
		return "duplicate key"
	case InvalidSection:
		return "invalid section name"
	case EmptyKey:
		return "empty key"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// A Warning describes a line that Parse did not apply in full.
type Warning struct {
	Line    int
	Kind    WarningKind
	Section string
	// Key is set for DuplicateKey warnings.
	Key string
}

func (w Warning) String() string {
	switch w.Kind {
	case DuplicateSection:
		return fmt.Sprintf("line %d: section [%s] already exists; merging", w.Line, w.Section)
	case DuplicateKey:
		return fmt.Sprintf("line %d: %s already exists in [%s]; skipping", w.Line, w.Key, w.Section)
	case InvalidSection:
		return fmt.Sprintf("line %d: invalid section name %q; skipping", w.Line, w.Section)
	default:
		return fmt.Sprintf("line %d: %v in [%s]; skipping", w.Line, w.Kind, w.Section)
	}
}

// parseState is the per-call state threaded through the line handlers.
type parseState struct {
	ctx      context.Context
	doc      Document
	marker   byte
	warn     func(Warning)
	section  string
	declared map[string]struct{}
	lineno   int
}

// Parse parses INI text into a Document. Nil options are treated identically
// as passing the zero value.
//
// Problems confined to a single line (duplicate keys or sections, malformed
// headers) are reported as warnings and never stop the parse. Parse returns a
// *ConfigError if text is not UTF-8 or if it contains no sections and no
// properties.
//
// See the package documentation for the format recognized by Parse.
func Parse(ctx context.Context, text string, opts *ParseOptions) (Document, error) {
	if !utf8.ValidString(text) || strings.IndexByte(text, 0) != -1 {
		return nil, &ConfigError{Err: ErrNotText}
	}
	if opts == nil {
		opts = new(ParseOptions)
	}
	st := &parseState{
		ctx:      ctx,
		doc:      NewDocument(),
		marker:   byte(opts.Comment.orDefault()),
		warn:     opts.Warn,
		section:  RootSection,
		declared: make(map[string]struct{}),
	}
	for _, line := range strings.Split(text, "\n") {
		st.lineno++
		st.line(line)
	}
	if st.doc.IsEmpty() {
		return nil, &ConfigError{Err: ErrEmpty}
	}
	return st.doc, nil
}

func (st *parseState) line(line string) {
	line = strings.TrimSpace(stripComment(line, st.marker))
	if line == "" {
		return
	}
	if len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']' {
		st.header(strings.TrimSpace(line[1 : len(line)-1]))
		return
	}
	i := strings.IndexByte(line, '=')
	if i == -1 {
		return
	}
	st.property(strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]))
}

func (st *parseState) header(name string) {
	if name == "" || strings.ContainsAny(name, "[]") {
		st.emit(Warning{Kind: InvalidSection, Section: name})
		return
	}
	st.section = name
	if _, dup := st.declared[name]; dup {
		st.emit(Warning{Kind: DuplicateSection, Section: name})
		return
	}
	st.declared[name] = struct{}{}
	if _, exists := st.doc[name]; !exists {
		st.doc[name] = make(Section)
	}
}

func (st *parseState) property(key, value string) {
	if key == "" {
		st.emit(Warning{Kind: EmptyKey, Section: st.section})
		return
	}
	sect := st.doc[st.section]
	if _, dup := sect[key]; dup {
		st.emit(Warning{Kind: DuplicateKey, Section: st.section, Key: key})
		return
	}
	sect[key] = value
}

func (st *parseState) emit(w Warning) {
	w.Line = st.lineno
	if st.warn != nil {
		st.warn(w)
		return
	}
	log.Warnf(st.ctx, "ini: %v", w)
}

// stripComment removes the first unescaped comment marker and everything
// after it. Escaped markers lose their backslash.
func stripComment(line string, marker byte) string {
	if strings.IndexByte(line, marker) == -1 {
		return line
	}
	sb := new(strings.Builder)
	sb.Grow(len(line))
	start := 0
	for {
		i := strings.IndexByte(line[start:], marker)
		if i == -1 {
			sb.WriteString(line[start:])
			return sb.String()
		}
		i += start
		if i == 0 || line[i-1] != '\\' {
			sb.WriteString(line[start:i])
			return sb.String()
		}
		sb.WriteString(line[start : i-1])
		sb.WriteByte(marker)
		start = i + 1
	}
}

// UnmarshalText parses the INI data with default options, replacing the
// contents of doc. Warnings are discarded.
func (doc *Document) UnmarshalText(data []byte) error {
	parsed, err := Parse(context.Background(), string(data), &ParseOptions{
		Warn: func(Warning) {},
	})
	if err != nil {
		return err
	}
	*doc = parsed
	return nil
}

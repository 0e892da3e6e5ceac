// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// iniparse reads an .ini file and prints it back in canonical form.
//
// Usage:
//
//	iniparse [flags] FILE.ini
//
// The default comment marker is taken from $INIPARSE_COMMENT (";" or "#").
// Setting $INIPARSE_QUIET=1 suppresses parse warnings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yourbase/iniparse/envvar"
	"github.com/yourbase/iniparse/ini"
	"zombiezen.com/go/log"
)

func main() {
	ctx := context.Background()
	err := run(ctx, os.Stdout, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Errorf(ctx, "iniparse: %v", err)
		os.Exit(1)
	}
}

type assignments []assignment

type assignment struct {
	section, key, value string
}

func (a *assignments) String() string {
	parts := make([]string, 0, len(*a))
	for _, x := range *a {
		parts = append(parts, x.section+"."+x.key+"="+x.value)
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(s string) error {
	i := strings.IndexByte(s, '=')
	if i == -1 {
		return fmt.Errorf("%q: want section.key=value", s)
	}
	section, key := splitPath(s[:i])
	value := strings.TrimSpace(s[i+1:])
	if !ini.IsValidSection(section) || !ini.IsValidKey(key) || !ini.IsValidValue(value) {
		return fmt.Errorf("%q: invalid section, key, or value", s)
	}
	*a = append(*a, assignment{section, key, value})
	return nil
}

// splitPath splits "section.key" at the last dot. A path without a dot names
// a key in the root section.
func splitPath(p string) (section, key string) {
	i := strings.LastIndexByte(p, '.')
	if i == -1 {
		return ini.RootSection, strings.TrimSpace(p)
	}
	return strings.TrimSpace(p[:i]), strings.TrimSpace(p[i+1:])
}

func run(ctx context.Context, out io.Writer, args []string) error {
	defaultComment, err := envvar.Choice("INIPARSE_COMMENT", ";", ";", "#")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("iniparse", flag.ContinueOnError)
	comment := fs.String("comment", defaultComment, "comment `marker`: ';' or '#'")
	raw := fs.Bool("raw", false, "print the file as read")
	pretty := fs.Bool("pretty", false, "print aligned properties for reading")
	get := fs.String("get", "", "print the value at `section.key`")
	output := fs.String("o", "", "write the document to `file` instead of stdout")
	var sets assignments
	fs.Var(&sets, "set", "set `section.key=value` before printing (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one file argument")
	}

	marker, err := ini.ParseCommentMarker(*comment)
	if err != nil {
		return err
	}
	opts := &ini.ParseOptions{Comment: marker}
	if envvar.Bool("INIPARSE_QUIET") {
		opts.Warn = func(ini.Warning) {}
	}
	f, err := ini.Load(ctx, fs.Arg(0), opts)
	if err != nil {
		return err
	}
	for _, a := range sets {
		f.Document().Set(a.section, a.key, a.value)
	}

	switch {
	case *raw:
		_, err = io.WriteString(out, f.Raw())
	case *get != "":
		section, key := splitPath(*get)
		v, ok := f.Get(section, key)
		if !ok {
			return fmt.Errorf("%s: no key %q in [%s]", f.Path(), key, section)
		}
		_, err = fmt.Fprintln(out, v)
	case *pretty:
		err = ini.WritePretty(out, f.Document())
	case *output == "":
		_, err = f.WriteTo(out)
	}
	if err != nil {
		return err
	}
	if *output != "" {
		if err := f.WriteFile(*output); err != nil {
			return err
		}
		log.Infof(ctx, "Wrote %s", *output)
	}
	return nil
}

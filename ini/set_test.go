// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"zombiezen.com/go/log/testlog"
)

func TestNilFileSet(t *testing.T) {
	fset := (FileSet)(nil)
	if got, ok := fset.Get("foo", "bar"); ok {
		t.Errorf("Get(...) = %q, true; want absent", got)
	}
	if got := fset.Names(); len(got) > 0 {
		t.Errorf("Names() = %q; want empty", got)
	}
	if got, ok := fset.Section("foo"); ok {
		t.Errorf("Section(...) = %v, true; want absent", got)
	}
}

func TestFileSetAccess(t *testing.T) {
	tests := []struct {
		name        string
		sources     []string
		section     string
		key         string
		wantGet     string
		wantOK      bool
		wantSection Section
	}{
		{
			name:        "ExistsInFirst",
			sources:     []string{"FOO=bar\n", "BAZ=quux\n"},
			section:     RootSection,
			key:         "FOO",
			wantGet:     "bar",
			wantOK:      true,
			wantSection: Section{"FOO": "bar", "BAZ": "quux"},
		},
		{
			name:        "ExistsInSecond",
			sources:     []string{"FOO=bar\n", "BAZ=quux\n"},
			section:     RootSection,
			key:         "BAZ",
			wantGet:     "quux",
			wantOK:      true,
			wantSection: Section{"FOO": "bar", "BAZ": "quux"},
		},
		{
			name:        "DoesNotExist",
			sources:     []string{"FOO=bar\n", "BAZ=quux\n"},
			section:     RootSection,
			key:         "bork",
			wantSection: Section{"FOO": "bar", "BAZ": "quux"},
		},
		{
			name:        "FirstWins",
			sources:     []string{"FOO=bar\n", "FOO=baz\n"},
			section:     RootSection,
			key:         "FOO",
			wantGet:     "bar",
			wantOK:      true,
			wantSection: Section{"FOO": "bar"},
		},
		{
			name: "Section",
			sources: []string{
				"[foo]\n" +
					"bar=baz\n" +
					"[xyzzy]\n" +
					"bork=bork\n",
				"[foo]\n" +
					"something=else\n",
			},
			section:     "foo",
			key:         "bar",
			wantGet:     "baz",
			wantOK:      true,
			wantSection: Section{"bar": "baz", "something": "else"},
		},
		{
			name:    "MissingSection",
			sources: []string{"FOO=bar\n"},
			section: "nope",
			key:     "FOO",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := testlog.WithTB(context.Background(), t)
			var fset FileSet
			for _, src := range test.sources {
				f, err := NewFile(ctx, src, nil)
				if err != nil {
					t.Fatal(err)
				}
				fset = append(fset, f)
			}
			got, ok := fset.Get(test.section, test.key)
			if got != test.wantGet || ok != test.wantOK {
				t.Errorf("fset.Get(%q, %q) = %q, %t; want %q, %t", test.section, test.key, got, ok, test.wantGet, test.wantOK)
			}
			sect, ok := fset.Section(test.section)
			if ok != (test.wantSection != nil) {
				t.Errorf("fset.Section(%q) present = %t; want %t", test.section, ok, test.wantSection != nil)
			}
			if diff := cmp.Diff(test.wantSection, sect, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("fset.Section(%q) (-want +got):\n%s", test.section, diff)
			}
		})
	}
}

func TestLoadFiles(t *testing.T) {
	ctx := testlog.WithTB(context.Background(), t)
	dir := t.TempDir()
	user := filepath.Join(dir, "user.ini")
	if err := ioutil.WriteFile(user, []byte("[http]\nport = 3443\n"), 0666); err != nil {
		t.Fatal(err)
	}
	system := filepath.Join(dir, "system.ini")
	if err := ioutil.WriteFile(system, []byte("[http]\nport = 80\nhost = example.com\n[log]\nlevel = info\n"), 0666); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.ini")

	fset, err := LoadFiles(ctx, nil, missing, user, system)
	if err != nil {
		t.Fatal("LoadFiles:", err)
	}
	if len(fset) != 3 || fset[0] != nil {
		t.Fatalf("LoadFiles returned %d files (first = %v); want 3 with nil first", len(fset), fset[0])
	}
	if got, _ := fset.Get("http", "port"); got != "3443" {
		t.Errorf("Get(\"http\", \"port\") = %q; want \"3443\"", got)
	}
	if diff := cmp.Diff([]string{RootSection, "http", "log"}, fset.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}
	wantHTTP := Section{"port": "3443", "host": "example.com"}
	if got, _ := fset.Section("http"); !cmp.Equal(wantHTTP, got) {
		t.Errorf("Section(\"http\") = %v; want %v", got, wantHTTP)
	}

	bad := filepath.Join(dir, "bad.ini")
	if err := ioutil.WriteFile(bad, []byte("# only a comment\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFiles(ctx, nil, user, bad); !errors.Is(err, ErrEmpty) {
		t.Errorf("LoadFiles(user, bad) = %v; want %v", err, ErrEmpty)
	}
}

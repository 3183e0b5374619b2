// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sourcegraph/go-diff/diff"

	"fillmore-labs.com/staticaccess/internal/model"
	"fillmore-labs.com/staticaccess/internal/plan"
	. "fillmore-labs.com/staticaccess/internal/report"
)

func edit(start, end int, text string) plan.Replacement {
	return plan.Replacement{Range: model.Range{Start: start, End: end}, Text: text}
}

func TestApply(t *testing.T) {
	t.Parallel()

	const src = "c1.foo(); s.x; g().y.z;"

	tests := []struct {
		name  string
		edits []plan.Replacement
		want  string
		err   error
	}{
		{
			name:  "none",
			edits: nil,
			want:  src,
		},
		{
			name:  "unordered",
			edits: []plan.Replacement{edit(10, 13, "S::x"), edit(0, 6, "C::foo")},
			want:  "C::foo(); S::x; g().y.z;",
		},
		{
			name:  "nested",
			edits: []plan.Replacement{edit(15, 20, "G::y"), edit(15, 22, "Y::z")},
			want:  "c1.foo(); s.x; Y::z;",
		},
		{
			name:  "duplicate",
			edits: []plan.Replacement{edit(10, 13, "S::x"), edit(10, 13, "S::x")},
			want:  "c1.foo(); S::x; g().y.z;",
		},
		{
			name:  "overlap",
			edits: []plan.Replacement{edit(0, 6, "C::foo"), edit(4, 8, "")},
			err:   ErrOverlappingEdits,
		},
		{
			name:  "out_of_range",
			edits: []plan.Replacement{edit(20, 40, "")},
			err:   ErrEditOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply([]byte(src), tt.edits)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.err)
			}

			if tt.err != nil {
				return
			}

			if string(got) != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	src := []byte("s.x;")
	edits := []plan.Replacement{edit(0, 3, "S::x")}

	once, err := Apply(src, edits)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// A rewritten file has no member accesses left, so the second pass has no edits.
	twice, err := Apply(once, nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if string(once) != string(twice) {
		t.Errorf("Apply() = %q, then %q", once, twice)
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	before := []byte("int a;\ns.x;\nint b;\n")
	after := []byte("int a;\nS::x;\nint b;\n")

	got, err := Diff("a.cpp", before, after)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}

	for _, want := range [...]string{"--- a/a.cpp", "+++ b/a.cpp", "-s.x;", "+S::x;"} {
		if !strings.Contains(got, want) {
			t.Errorf("Diff() = %q, missing %q", got, want)
		}
	}

	if got, err := Diff("a.cpp", before, before); err != nil || got != "" {
		t.Errorf("Diff() of equal input = %q, %v", got, err)
	}
}

func TestDiffText(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name          string
		before, after string
		want          string
	}{
		{
			name:   "trailing_newline",
			before: "int a;\ns.x;\nint b;\n",
			after:  "int a;\nS::x;\nint b;\n",
			want:   "--- a/a.cpp\n+++ b/a.cpp\n@@ -1,3 +1,3 @@\n int a;\n-s.x;\n+S::x;\n int b;\n",
		},
		{
			name:   "no_trailing_newline",
			before: "int a;\ns.x;",
			after:  "int a;\nS::x;",
			want:   "--- a/a.cpp\n+++ b/a.cpp\n@@ -1,2 +1,2 @@\n int a;\n-s.x;\n+S::x;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Diff("a.cpp", []byte(tt.before), []byte(tt.after))
			if err != nil {
				t.Fatalf("Diff() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Diff() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiffParses(t *testing.T) {
	t.Parallel()

	before := []byte("struct S { static int x; };\nint f(S s) {\n  return s.x;\n}\n")
	after := []byte("struct S { static int x; };\nint f(S s) {\n  return S::x;\n}\n")

	got, err := Diff("dir/a.cpp", before, after)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}

	fd, err := diff.ParseFileDiff([]byte(got))
	if err != nil {
		t.Fatalf("Can't parse diff %q: %v", got, err)
	}

	if fd.OrigName != "a/dir/a.cpp" || fd.NewName != "b/dir/a.cpp" {
		t.Errorf("Got names %q, %q", fd.OrigName, fd.NewName)
	}

	if len(fd.Hunks) != 1 {
		t.Fatalf("Got %d hunks, want 1", len(fd.Hunks))
	}

	h := fd.Hunks[0]
	if h.OrigStartLine != 1 || h.OrigLines != 4 || h.NewLines != 4 {
		t.Errorf("Got hunk -%d,%d +%d,%d, want -1,4 +1,4", h.OrigStartLine, h.OrigLines, h.NewStartLine, h.NewLines)
	}

	if stat := fd.Stat(); stat.Added+stat.Changed != 1 || stat.Deleted+stat.Changed != 1 {
		t.Errorf("Got stat %+v, want one changed line", stat)
	}
}

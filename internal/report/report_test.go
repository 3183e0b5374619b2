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
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/staticaccess/internal/config"
	"fillmore-labs.com/staticaccess/internal/model"
	"fillmore-labs.com/staticaccess/internal/plan"
	. "fillmore-labs.com/staticaccess/internal/report"
)

const source = "void f(Qptr p) { c.x; p->K; c.y; }\n"

func rangeOf(t *testing.T, text string) model.Range {
	t.Helper()

	start := strings.Index(source, text)
	if start < 0 {
		t.Fatalf("%q not in source", text)
	}

	return model.Range{Start: start, End: start + len(text)}
}

func TestEmitter(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	file := fset.AddFile("a.cpp", -1, len(source))
	file.SetLinesForContent([]byte(source))

	cx, pk, cy := rangeOf(t, "c.x"), rangeOf(t, "p->K"), rangeOf(t, "c.y")
	p := rangeOf(t, "p->")
	p.End = p.Start + 1

	findings := []Finding{
		{
			Access:   &model.Access{Base: model.Ref("c"), Range: cx},
			Decision: plan.Decision{Warn: true, Replacement: &plan.Replacement{Range: cx, Text: "C::x"}},
		},
		{
			Access:   &model.Access{Base: &model.Expr{Kind: model.ExprOperatorCall, Range: p}, Range: pk},
			Decision: plan.Decision{Warn: true, SideEffect: true, Replacement: &plan.Replacement{Range: pk, Text: "Q::K"}},
		},
		{
			Access:   &model.Access{Base: model.Ref("c"), Range: cy},
			Decision: plan.Decision{Status: plan.NotFlagged},
		},
	}

	var diagnostics []analysis.Diagnostic
	NewEmitter(file).Report(t.Context(), func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }, findings)

	if got, want := len(diagnostics), 2; got != want {
		t.Fatalf("Got %d diagnostics, want %d", got, want)
	}

	for _, d := range diagnostics {
		if d.Category != config.CheckName || d.Message != Message {
			t.Errorf("Got diagnostic %q (%s), want %q (%s)", d.Message, d.Category, Message, config.CheckName)
		}
	}

	first, second := diagnostics[0], diagnostics[1]

	if got, want := file.Offset(first.Pos), cx.Start; got != want {
		t.Errorf("Got diagnostic at %d, want %d", got, want)
	}

	if len(first.Related) != 0 {
		t.Errorf("Got unexpected note %q", first.Related[0].Message)
	}

	if got, want := len(second.Related), 1; got != want {
		t.Fatalf("Got %d notes, want %d", got, want)
	}

	if note := second.Related[0]; note.Message != SideEffectNote || file.Offset(note.Pos) != p.Start || file.Offset(note.End) != p.End {
		t.Errorf("Got note %q at [%d, %d), want %q at %v", note.Message, file.Offset(note.Pos), file.Offset(note.End), SideEffectNote, p)
	}

	if got, want := len(second.SuggestedFixes), 1; got != want {
		t.Fatalf("Got %d fixes, want %d", got, want)
	}

	edit := second.SuggestedFixes[0].TextEdits[0]
	if got, want := string(edit.NewText), "Q::K"; got != want {
		t.Errorf("Got fix %q, want %q", got, want)
	}

	if file.Offset(edit.Pos) != pk.Start || file.Offset(edit.End) != pk.End {
		t.Errorf("Got fix at [%d, %d), want %v", file.Offset(edit.Pos), file.Offset(edit.End), pk)
	}
}

func TestEmitterOutOfRange(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	file := fset.AddFile("a.cpp", -1, 3)

	findings := []Finding{{
		Access:   &model.Access{Base: model.Ref("c"), Range: model.Range{Start: 2, End: 10}},
		Decision: plan.Decision{Warn: true},
	}}

	var diagnostics []analysis.Diagnostic
	NewEmitter(file).Report(t.Context(), func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }, findings)

	if len(diagnostics) != 1 || !strings.HasPrefix(diagnostics[0].Message, "Internal Error: ") {
		t.Errorf("Got %v, want an internal error", diagnostics)
	}
}

func TestNested(t *testing.T) {
	t.Parallel()

	replace := func(start, end int) Finding {
		return Finding{Decision: plan.Decision{Warn: true, Replacement: &plan.Replacement{Range: model.Range{Start: start, End: end}}}}
	}

	findings := []Finding{
		replace(0, 10),
		replace(2, 5),
		{Decision: plan.Decision{Warn: true}},
		replace(12, 15),
		replace(12, 15),
	}

	got := Nested(findings)
	want := []bool{false, true, false, false, false}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Nested()[%d] = %t, want %t", i, got[i], want[i])
		}
	}
}

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

// Package report turns rewrite decisions into analysis diagnostics and source edits.
package report

import (
	"context"
	"fmt"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/staticaccess/internal/config"
	"fillmore-labs.com/staticaccess/internal/model"
	"fillmore-labs.com/staticaccess/internal/plan"
)

const (
	// Message is the primary diagnostic message.
	Message = "static member accessed through instance"

	// SideEffectNote is the message of the note attached to base expressions with possible side effects.
	SideEffectNote = "member base expression may carry some side effects"
)

// Finding is a planned access of a translation unit.
type Finding struct {
	Access   *model.Access
	Decision plan.Decision
}

// Emitter maps findings of a translation unit to diagnostics positioned in File.
type Emitter struct {
	File *token.File
}

// NewEmitter creates an [Emitter] for the registered file.
func NewEmitter(file *token.File) Emitter {
	return Emitter{File: file}
}

// Report emits a diagnostic for every finding that warrants a warning.
//
// Fixes for accesses nested in the rewritten range of another access are dropped, since the
// enclosing rewrite already removes the inner base expression.
func (e Emitter) Report(ctx context.Context, report func(analysis.Diagnostic), findings []Finding) {
	defer trace.StartRegion(ctx, "Report").End()

	nested := Nested(findings)

	for i, f := range findings {
		if !f.Decision.Warn {
			continue
		}

		diagnostic, ok := e.Diagnostic(f)
		if !ok {
			InternalError(report, e.File.Pos(0), "Access %q out of range %v", f.Access.MemberName(), f.Access.Range)
			continue
		}

		if nested[i] {
			diagnostic.SuggestedFixes = nil
		}

		report(diagnostic)
	}
}

// Diagnostic builds the diagnostic of a single finding.
func (e Emitter) Diagnostic(f Finding) (analysis.Diagnostic, bool) {
	a, d := f.Access, f.Decision

	pos, end, ok := e.span(a.Range)
	if !ok {
		return analysis.Diagnostic{}, false
	}

	diagnostic := analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: config.CheckName,
		Message:  Message,
	}

	if d.SideEffect {
		rng := a.Range
		if a.Base != nil && a.Base.Range.Len() > 0 {
			rng = a.Base.Range
		}

		if pos, end, ok := e.span(rng); ok {
			diagnostic.Related = []analysis.RelatedInformation{{Pos: pos, End: end, Message: SideEffectNote}}
		}
	}

	if r := d.Replacement; r != nil {
		if pos, end, ok := e.span(r.Range); ok {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   fmt.Sprintf("Replace with '%s'", r.Text),
				TextEdits: []analysis.TextEdit{{Pos: pos, End: end, NewText: []byte(r.Text)}},
			}}
		}
	}

	return diagnostic, true
}

// span maps a byte range to file positions.
func (e Emitter) span(r model.Range) (pos, end token.Pos, ok bool) {
	if !r.Valid() || r.End > e.File.Size() {
		return token.NoPos, token.NoPos, false
	}

	return e.File.Pos(r.Start), e.File.Pos(r.End), true
}

// Nested reports, per finding, whether its replacement lies within the replacement of another finding.
func Nested(findings []Finding) []bool {
	nested := make([]bool, len(findings))

	for i, f := range findings {
		inner := f.Decision.Replacement
		if inner == nil {
			continue
		}

		for j, g := range findings {
			outer := g.Decision.Replacement
			if i == j || outer == nil || outer.Range == inner.Range {
				continue
			}

			if outer.Range.Contains(inner.Range) {
				nested[i] = true
				break
			}
		}
	}

	return nested
}

// InternalError reports an internal error diagnostic.
// These errors indicate bugs in the host model rather than issues in the user's code.
func InternalError(report func(analysis.Diagnostic), pos token.Pos, format string, args ...any) {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	report(analysis.Diagnostic{Pos: pos, Category: config.CheckName, Message: string(msg)})
}

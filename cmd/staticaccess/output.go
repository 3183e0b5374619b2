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

package main

import (
	"bytes"
	"fmt"
	"go/token"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/tools/go/analysis"
)

// printer writes diagnostics in the style of clang.
type printer struct {
	w io.Writer

	location, warning, note, fix, caret, errorc *color.Color
}

func newPrinter(w io.Writer, noColor bool) printer {
	p := printer{
		w:        w,
		location: color.New(color.Bold),
		warning:  color.New(color.FgMagenta, color.Bold),
		note:     color.New(color.FgBlack, color.Bold),
		fix:      color.New(color.FgGreen),
		caret:    color.New(color.FgGreen, color.Bold),
		errorc:   color.New(color.FgRed, color.Bold),
	}

	if noColor {
		for _, c := range [...]*color.Color{p.location, p.warning, p.note, p.fix, p.caret, p.errorc} {
			c.DisableColor()
		}
	}

	return p
}

func (p printer) diagnostic(fset *token.FileSet, content []byte, d analysis.Diagnostic) {
	pos := fset.Position(d.Pos)

	category := ""
	if d.Category != "" {
		category = " [" + d.Category + "]"
	}

	_, _ = fmt.Fprintf(p.w, "%s %s %s%s\n", p.location.Sprintf("%s:", pos), p.warning.Sprint("warning:"), d.Message, category)
	p.snippet(fset, content, d.Pos, d.End)

	for _, r := range d.Related {
		_, _ = fmt.Fprintf(p.w, "%s %s %s\n", p.location.Sprintf("%s:", fset.Position(r.Pos)), p.note.Sprint("note:"), r.Message)
		p.snippet(fset, content, r.Pos, r.End)
	}

	for _, f := range d.SuggestedFixes {
		for _, e := range f.TextEdits {
			start, end := fset.Position(e.Pos), fset.Position(e.End)
			old := string(content[start.Offset:end.Offset])

			_, _ = fmt.Fprintf(p.w, "%s %s replace '%s' with '%s'\n", p.location.Sprintf("%s:", start), p.fix.Sprint("fix:"), old, e.NewText)
		}
	}
}

// snippet prints the source line of pos with the range up to end marked.
func (p printer) snippet(fset *token.FileSet, content []byte, pos, end token.Pos) {
	start := fset.Position(pos)
	if !start.IsValid() || start.Offset > len(content) {
		return
	}

	begin := bytes.LastIndexByte(content[:start.Offset], '\n') + 1

	stop := len(content)
	if i := bytes.IndexByte(content[start.Offset:], '\n'); i >= 0 {
		stop = start.Offset + i
	}

	width := 1
	if e := fset.Position(end); e.IsValid() && e.Offset > start.Offset {
		width = min(e.Offset, stop) - start.Offset
	}

	// keep tabs so the marker lines up
	indent := []byte(strings.Repeat(" ", start.Offset-begin))
	for i, c := range content[begin:start.Offset] {
		if c == '\t' {
			indent[i] = '\t'
		}
	}

	gutter := fmt.Sprintf("%5d | ", start.Line)
	blank := strings.Repeat(" ", len(gutter)-2) + "| "

	_, _ = fmt.Fprintf(p.w, "%s%s\n", gutter, content[begin:stop])
	_, _ = fmt.Fprintf(p.w, "%s%s%s\n", blank, indent, p.caret.Sprint("^"+strings.Repeat("~", max(width-1, 0))))
}

func (p printer) error(w io.Writer, filename string, err error) {
	_, _ = fmt.Fprintf(w, "%s %s %v\n", p.location.Sprintf("%s:", filename), p.errorc.Sprint("error:"), err)
}

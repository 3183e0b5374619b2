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

package report

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"fillmore-labs.com/staticaccess/internal/plan"
)

var (
	// ErrOverlappingEdits is returned when two edits partially overlap.
	ErrOverlappingEdits = errors.New("overlapping edits")

	// ErrEditOutOfRange is returned for an edit outside of the source.
	ErrEditOutOfRange = errors.New("edit out of range")
)

// Edits collects the replacements of findings, in source order.
func Edits(findings []Finding) []plan.Replacement {
	var edits []plan.Replacement

	for _, f := range findings {
		if r := f.Decision.Replacement; r != nil {
			edits = append(edits, *r)
		}
	}

	return edits
}

// Apply splices edits into src.
//
// Edits nested inside another edit are dropped, identical edits are applied once.
func Apply(src []byte, edits []plan.Replacement) ([]byte, error) {
	edits = slices.Clone(edits)
	slices.SortStableFunc(edits, func(a, b plan.Replacement) int {
		return cmp.Or(cmp.Compare(a.Range.Start, b.Range.Start), cmp.Compare(b.Range.End, a.Range.End))
	})

	var (
		buf  bytes.Buffer
		last = 0
		prev *plan.Replacement
	)

	for i := range edits {
		e := &edits[i]
		if !e.Range.Valid() || e.Range.End > len(src) {
			return nil, fmt.Errorf("%w: %v", ErrEditOutOfRange, e.Range)
		}

		if prev != nil {
			if prev.Range.Contains(e.Range) {
				continue
			}

			if e.Range.Start < prev.Range.End {
				return nil, ErrOverlappingEdits
			}
		}

		buf.Write(src[last:e.Range.Start]) // ignore error
		buf.WriteString(e.Text)            // ignore error

		last, prev = e.Range.End, e
	}

	buf.Write(src[last:]) // ignore error

	return buf.Bytes(), nil
}

// Diff returns a unified diff between before and after, or "" when they are equal.
func Diff(name string, before, after []byte) (string, error) {
	if bytes.Equal(before, after) {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        lines(before),
		B:        lines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}

// lines splits text after each newline. A final line without one gets one.
func lines(text []byte) []string {
	l := strings.SplitAfter(string(text), "\n")
	if last := len(l) - 1; l[last] == "" {
		l = l[:last]
	} else {
		l[last] += "\n"
	}

	return l
}

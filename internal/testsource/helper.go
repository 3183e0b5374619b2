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

// Package testsource provides utilities for building clang AST dumps of C++ source in tests.
//
// Nodes are located by searching for unique fragments of the source text, so tests
// don't need to spell out byte offsets.
package testsource

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"fillmore-labs.com/staticaccess/internal/clangast"
)

// Source is a C++ main file.
type Source struct {
	tb       testing.TB
	Filename string
	Text     string
}

// New creates a [Source] named filename.
func New(tb testing.TB, filename, text string) *Source {
	tb.Helper()

	return &Source{tb: tb, Filename: filename, Text: text}
}

// Off returns the offset of needle plus skip. needle should be unique in the source.
func (s *Source) Off(needle string, skip int) int {
	s.tb.Helper()

	i := strings.Index(s.Text, needle)
	if i < 0 {
		s.tb.Fatalf("%q not in source", needle)
	}

	return i + skip
}

// Bare returns a location in file.
func Bare(file string, offset, tokLen int) clangast.BareLoc {
	return clangast.BareLoc{Offset: offset, File: file, Line: 1, Col: offset + 1, TokLen: tokLen}
}

// At returns a location in the main file.
func (s *Source) At(offset, tokLen int) clangast.Loc {
	return clangast.Loc{BareLoc: Bare(s.Filename, offset, tokLen)}
}

// Loc returns the location of needle plus skip.
func (s *Source) Loc(needle string, skip int) *clangast.Loc {
	s.tb.Helper()

	l := s.At(s.Off(needle, skip), 1)

	return &l
}

// Span returns the range covering text. The last token is the trailing identifier, or the last byte.
func (s *Source) Span(text string) *clangast.SourceRange {
	s.tb.Helper()

	start := s.Off(text, 0)
	last := len(text) - 1

	for last > 0 && ident(text[last]) && ident(text[last-1]) {
		last--
	}

	return &clangast.SourceRange{Begin: s.At(start, 1), End: s.At(start+last, len(text)-last)}
}

func ident(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Ref returns a reference to the variable name, spelled at the start of text.
func (s *Source) Ref(text, name string, t *clangast.QualType) *clangast.Node {
	s.tb.Helper()

	start := s.Off(text, 0)

	return &clangast.Node{
		Kind:           "DeclRefExpr",
		Range:          &clangast.SourceRange{Begin: s.At(start, len(name)), End: s.At(start, len(name))},
		Type:           t,
		ReferencedDecl: &clangast.DeclRef{Name: name},
	}
}

// Member returns a member access of the declaration ref through base, spelled as text.
func (s *Source) Member(text, name, ref string, arrow bool, base *clangast.Node) *clangast.Node {
	s.tb.Helper()

	if arrow && base.Kind == "DeclRefExpr" {
		base = &clangast.Node{
			Kind:     "ImplicitCastExpr",
			CastKind: "LValueToRValue",
			Type:     base.Type,
			Range:    base.Range,
			Inner:    []*clangast.Node{base},
		}
	}

	return &clangast.Node{
		Kind:                 "MemberExpr",
		Range:                s.Span(text),
		Name:                 name,
		IsArrow:              arrow,
		ReferencedMemberDecl: ref,
		Inner:                []*clangast.Node{base},
	}
}

// Unit returns a translation unit containing decls.
func Unit(decls ...*clangast.Node) *clangast.Node {
	return &clangast.Node{ID: "0x1", Kind: "TranslationUnitDecl", Loc: &clangast.Loc{}, Range: &clangast.SourceRange{}, Inner: decls}
}

// Type returns a printed type.
func Type(qualType string) *clangast.QualType {
	return &clangast.QualType{QualType: qualType}
}

// Program is a small translation unit with a flaggable access, one through an overloaded
// operator-> and a non-static access.
const Program = `struct C { static int x; int y; };
struct Q { static int K; };
struct Qptr { Q *operator->(); };
C c;
void f(Qptr p) { c.x; c.y; p->K; }
`

// ProgramDump returns the dump of [Program] compiled as s.
func (s *Source) ProgramDump() *clangast.Node {
	s.tb.Helper()

	arrow := s.Off("p->K", 0)
	call := &clangast.Node{
		Kind:  "CXXOperatorCallExpr",
		Type:  Type("Q *"),
		Range: &clangast.SourceRange{Begin: s.At(arrow, 1), End: s.At(arrow, 1)},
		Inner: []*clangast.Node{
			{Kind: "ImplicitCastExpr", CastKind: "FunctionToPointerDecay", Inner: []*clangast.Node{
				{Kind: "DeclRefExpr", ReferencedDecl: &clangast.DeclRef{Name: "operator->"}},
			}},
			s.Ref("p->K", "p", Type("Qptr")),
		},
	}

	return Unit(
		&clangast.Node{ID: "0xC", Kind: "CXXRecordDecl", Loc: s.Loc("struct C", 7), Name: "C", Inner: []*clangast.Node{
			{ID: "0xCx", Kind: "VarDecl", Loc: s.Loc("int x", 4), Name: "x", StorageClass: "static"},
			{ID: "0xCy", Kind: "FieldDecl", Loc: s.Loc("int y", 4), Name: "y"},
		}},
		&clangast.Node{ID: "0xQ", Kind: "CXXRecordDecl", Loc: s.Loc("struct Q ", 7), Name: "Q", Inner: []*clangast.Node{
			{ID: "0xQK", Kind: "VarDecl", Loc: s.Loc("int K", 4), Name: "K", StorageClass: "static"},
		}},
		&clangast.Node{ID: "0xc", Kind: "VarDecl", Loc: s.Loc("C c;", 2), Name: "c", Type: Type("C")},
		&clangast.Node{ID: "0xf", Kind: "FunctionDecl", Loc: s.Loc("void f", 5), Name: "f", Inner: []*clangast.Node{
			{Kind: "CompoundStmt", Inner: []*clangast.Node{
				s.Member("c.x", "x", "0xCx", false, s.Ref("c.x", "c", Type("C"))),
				s.Member("c.y", "y", "0xCy", false, s.Ref("c.y", "c", Type("C"))),
				{Kind: "MemberExpr", Range: s.Span("p->K"), Name: "K", IsArrow: true, ReferencedMemberDecl: "0xQK", Inner: []*clangast.Node{call}},
			}},
		}},
	)
}

// Dumper serves fixed dumps by file name.
type Dumper map[string]*clangast.Node

// Dump implements [clangast.Dumper].
func (d Dumper) Dump(ctx context.Context, filename string) (*clangast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, ok := d[filename]
	if !ok {
		return nil, fmt.Errorf("%s: %w", filename, os.ErrNotExist)
	}

	return root, nil
}

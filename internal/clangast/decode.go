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

package clangast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNoOutput is returned when the dump is empty.
	ErrNoOutput = errors.New("empty AST dump")

	// ErrNotTranslationUnit is returned when the dump root is not a translation unit.
	ErrNotTranslationUnit = errors.New("AST dump root is not a translation unit")
)

// Decode reads a JSON AST dump and resolves its locations.
func Decode(r io.Reader) (*Node, error) {
	var root Node

	if err := json.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoOutput
		}

		return nil, fmt.Errorf("can't decode AST dump: %w", err)
	}

	if root.Kind != "TranslationUnitDecl" {
		return nil, fmt.Errorf("%w: %q", ErrNotTranslationUnit, root.Kind)
	}

	Resolve(&root)

	return &root, nil
}

// Resolve fills in the file names clang omitted from locations.
//
// Locations are visited in the order clang printed them: a node's loc, its range begin and end,
// then its children. Within a location the spelling precedes the expansion.
func Resolve(root *Node) {
	var r resolver
	r.node(root)
}

type resolver struct {
	file string
}

func (r *resolver) node(n *Node) {
	if n == nil {
		return
	}

	r.loc(n.Loc)

	if n.Range != nil {
		r.loc(&n.Range.Begin)
		r.loc(&n.Range.End)
	}

	for _, c := range n.Inner {
		r.node(c)
	}
}

func (r *resolver) loc(l *Loc) {
	if l == nil {
		return
	}

	if l.SpellingLoc == nil && l.ExpansionLoc == nil {
		r.bare(&l.BareLoc)
		return
	}

	r.bare(l.SpellingLoc)
	r.bare(l.ExpansionLoc)
}

func (r *resolver) bare(l *BareLoc) {
	if !l.Valid() {
		return
	}

	if l.File != "" {
		r.file = l.File
		return
	}

	l.File = r.file
}

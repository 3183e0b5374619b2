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
	"strconv"
)

// Node is a node of clang's JSON AST dump (-Xclang -ast-dump=json).
//
// Only the attributes needed to find member accesses are decoded.
type Node struct {
	ID    string       `json:"id"`
	Kind  string       `json:"kind"`
	Loc   *Loc         `json:"loc,omitempty"`
	Range *SourceRange `json:"range,omitempty"`

	IsImplicit bool      `json:"isImplicit,omitempty"`
	Name       string    `json:"name,omitempty"`
	Type       *QualType `json:"type,omitempty"`

	// Declarations
	TagUsed             string   `json:"tagUsed,omitempty"`
	StorageClass        string   `json:"storageClass,omitempty"`
	IsInline            bool     `json:"isInline,omitempty"`
	ScopedEnumTag       string   `json:"scopedEnumTag,omitempty"`
	ParentDeclContextID string   `json:"parentDeclContextId,omitempty"`
	PreviousDecl        string   `json:"previousDecl,omitempty"`
	Target              *DeclRef `json:"target,omitempty"`

	// Expressions
	Implicit             bool            `json:"implicit,omitempty"`
	IsArrow              bool            `json:"isArrow,omitempty"`
	Member               string          `json:"member,omitempty"`
	ReferencedMemberDecl string          `json:"referencedMemberDecl,omitempty"`
	ReferencedDecl       *DeclRef        `json:"referencedDecl,omitempty"`
	CastKind             string          `json:"castKind,omitempty"`
	Opcode               string          `json:"opcode,omitempty"`
	IsPostfix            bool            `json:"isPostfix,omitempty"`
	Value                json.RawMessage `json:"value,omitempty"`

	Inner []*Node `json:"inner,omitempty"`
}

// DeclRef is a reference to a declaration by id.
type DeclRef struct {
	ID   string    `json:"id"`
	Kind string    `json:"kind"`
	Name string    `json:"name,omitempty"`
	Type *QualType `json:"type,omitempty"`
}

// QualType is a type as printed by clang, with its desugared form and the typedef it was spelled through.
type QualType struct {
	QualType          string `json:"qualType"`
	DesugaredQualType string `json:"desugaredQualType,omitempty"`
	TypeAliasDeclID   string `json:"typeAliasDeclId,omitempty"`
}

// SourceRange is a pair of token locations. End is the start of the last token.
type SourceRange struct {
	Begin Loc `json:"begin"`
	End   Loc `json:"end"`
}

// Loc is a source location. Locations inside macro expansions carry a spelling and an expansion location.
type Loc struct {
	BareLoc

	SpellingLoc  *BareLoc `json:"spellingLoc,omitempty"`
	ExpansionLoc *BareLoc `json:"expansionLoc,omitempty"`
}

// BareLoc is a single file location.
//
// clang only prints file and line when they differ from the previously printed location,
// so File is only meaningful after [Resolve].
type BareLoc struct {
	Offset       int           `json:"offset"`
	File         string        `json:"file,omitempty"`
	Line         int           `json:"line,omitempty"`
	Col          int           `json:"col,omitempty"`
	TokLen       int           `json:"tokLen,omitempty"`
	IncludedFrom *IncludedFrom `json:"includedFrom,omitempty"`

	IsMacroArgExpansion bool `json:"isMacroArgExpansion,omitempty"`
}

// IncludedFrom names the file including the file of a location.
type IncludedFrom struct {
	File string `json:"file"`
}

// Valid reports whether l denotes a location. Invalid locations are printed as {}.
func (l *BareLoc) Valid() bool {
	return l != nil && l.Col > 0
}

// End returns the offset past the token at l.
func (l *BareLoc) End() int {
	return l.Offset + l.TokLen
}

// Macro reports whether l originates from a macro expansion.
func (l *Loc) Macro() bool {
	return l != nil && (l.SpellingLoc != nil || l.ExpansionLoc != nil)
}

// Expansion returns the location in the file being compiled, resolving macro expansions.
func (l *Loc) Expansion() *BareLoc {
	switch {
	case l == nil:
		return nil

	case l.ExpansionLoc != nil:
		return l.ExpansionLoc

	default:
		return &l.BareLoc
	}
}

// ValueString renders a literal or template argument value.
func (n *Node) ValueString() string {
	if len(n.Value) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(n.Value, &s); err == nil {
		return s
	}

	if b, err := strconv.ParseBool(string(n.Value)); err == nil {
		return strconv.FormatBool(b)
	}

	return string(n.Value)
}

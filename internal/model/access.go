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

package model

// Operator is the member access operator.
type Operator uint8

const (
	// Dot is the "." operator.
	Dot Operator = iota // .

	// Arrow is the "->" operator.
	Arrow // ->
)

// Access is a single syntactic occurrence of obj.member or ptr->member.
type Access struct {
	// Base is the expression before the operator, nil when the object is implicit (this).
	Base *Expr

	// Operator is the access operator as written.
	Operator Operator

	// Member is the referenced declaration, nil when it could not be resolved.
	Member *Member

	// Range covers the whole access, from the start of the base expression through the member name.
	Range Range

	// Name covers the member name token.
	Name Range

	// Macro is set when the access originates from a macro expansion.
	Macro bool

	// DependentContext is set when static-ness cannot be confirmed because of an enclosing template.
	DependentContext bool

	// Spelling is the base type as spelled at the access site through a typedef or alias, innermost first.
	// It is empty when the type was named directly.
	Spelling []Scope

	// Site is the chain of scopes enclosing the access, innermost first.
	Site []Scope

	// Declared lists the type and namespace names declared in each scope of Site, in the same order.
	Declared [][]string

	// Local lists the type names declared in the functions enclosing the access.
	Local []string
}

// MemberName returns the name of the referenced member, or "" when unresolved.
func (a *Access) MemberName() string {
	if a.Member == nil {
		return ""
	}

	return a.Member.Name
}

// Rewritable returns the range replaced by a qualified reference: the base, operator and member name.
func (a *Access) Rewritable() Range {
	end := a.Name.End
	if end <= a.Range.Start {
		end = a.Range.End
	}

	return Range{Start: a.Range.Start, End: end}
}

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

// MemberKind is the closed set of member declarations.
type MemberKind uint8

const (
	// Field is a data member.
	Field MemberKind = iota // field

	// Method is a member function.
	Method // method

	// Enumerator is an enumeration constant visible as a class member.
	Enumerator // enumerator
)

// Member is the declaration referenced by a member access.
//
// The member is owned by the host's semantic model; the rule only reads it.
type Member struct {
	// Name is the declared name.
	Name string

	// Kind is the declaration kind.
	Kind MemberKind

	// Static is set for static data members and static methods.
	// Enumerators are always reachable without an instance and ignore this flag.
	Static bool

	// Pseudo marks builtin per-thread, per-block or per-grid coordinate fields (threadIdx.x and friends).
	Pseudo bool

	// Dependent marks members whose static-ness depends on an unresolved template parameter.
	Dependent bool

	// Scopes is the chain of enclosing scopes, innermost first.
	Scopes []Scope
}

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

// ScopeKind discriminates the variants of a [Scope].
type ScopeKind uint8

//go:generate go tool stringer -type ScopeKind,MemberKind,Operator -linecomment -output kind_string.go
const (
	// NamedType is a class, struct or union with a name, including instantiated template arguments (e.g. "CT<int>").
	NamedType ScopeKind = iota // type

	// AnonymousInstance is an unnamed class or struct, named through the variable declared with it.
	// An empty name means there is no such variable.
	AnonymousInstance // instance

	// InlineNamespace is an inline namespace.
	InlineNamespace // inline namespace

	// Namespace is a namespace. An empty name denotes an anonymous namespace.
	Namespace // namespace
)

// Scope is one link of a scope chain.
type Scope struct {
	Kind ScopeKind
	Name string
}

// Type returns a [NamedType] scope.
func Type(name string) Scope { return Scope{Kind: NamedType, Name: name} }

// Instance returns an [AnonymousInstance] scope aliased by the variable name.
func Instance(name string) Scope { return Scope{Kind: AnonymousInstance, Name: name} }

// Inline returns an [InlineNamespace] scope.
func Inline(name string) Scope { return Scope{Kind: InlineNamespace, Name: name} }

// NS returns a [Namespace] scope.
func NS(name string) Scope { return Scope{Kind: Namespace, Name: name} }

// IsNamespace reports whether s is a (possibly inline) namespace.
func (s Scope) IsNamespace() bool {
	return s.Kind == Namespace || s.Kind == InlineNamespace
}

// Unwritten reports whether s never appears in a qualified name, like an anonymous namespace.
func (s Scope) Unwritten() bool {
	return s.Kind == Namespace && s.Name == ""
}

func (s Scope) String() string {
	if s.Name == "" {
		return "(anonymous " + s.Kind.String() + ")"
	}

	return s.Kind.String() + " " + s.Name
}

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

// Package qualifier computes the qualified name that replaces an object in a static member access.
package qualifier

import (
	"slices"
	"strings"

	"fillmore-labs.com/staticaccess/internal/model"
)

// Status reports the outcome of [Resolver.Resolve].
type Status uint8

//go:generate go tool stringer -type Status -linecomment
const (
	// Resolved indicates a qualifier was found.
	Resolved Status = iota // ok

	// NoScope indicates that the member has no enclosing type to name.
	NoScope // scp

	// NoInstanceAlias indicates an anonymous aggregate without a variable that could stand in for its name.
	NoInstanceAlias // ano

	// DepthExceeded indicates that every usable name has more segments than allowed.
	DepthExceeded // dep
)

// Resolver computes qualifiers with at most MaxDepth segments.
// A negative MaxDepth disables the limit.
type Resolver struct {
	MaxDepth int
}

// New creates a [Resolver] with the given depth limit.
func New(maxDepth int) Resolver {
	return Resolver{MaxDepth: maxDepth}
}

// Resolve returns the qualifier naming the type that declares the member of a.
//
// A typedef or alias the user spelled for the base type is preferred, since it is
// the name already present in the code. Otherwise the name is built from the
// member's declaration context. When that is too deep, namespaces shared with the
// access site are dropped as long as the shorter name can't be captured by a
// scope in between. There is never a partially qualified result.
func (r Resolver) Resolve(a *model.Access) (string, Status) {
	if len(a.Spelling) > 0 {
		if q, status := r.resolve(a.Spelling, a); status == Resolved {
			return q, status
		}
	}

	if a.Member == nil {
		return "", NoScope
	}

	return r.resolve(a.Member.Scopes, a)
}

func (r Resolver) resolve(chain []model.Scope, a *model.Access) (string, Status) {
	path := written(chain)

	named := false

	for _, s := range path {
		switch s.Kind {
		case model.AnonymousInstance:
			if s.Name == "" {
				return "", NoInstanceAlias
			}

			named = true

		case model.NamedType:
			named = true
		}
	}

	if !named {
		return "", NoScope
	}

	if !r.fits(path) {
		var ok bool
		if path, ok = r.shorten(path, a); !ok {
			return "", DepthExceeded
		}
	}

	return render(path), Resolved
}

func (r Resolver) fits(path []model.Scope) bool {
	return r.MaxDepth < 0 || len(path) <= r.MaxDepth
}

// shorten drops the fewest leading namespaces that also enclose the access site.
func (r Resolver) shorten(path []model.Scope, a *model.Access) ([]model.Scope, bool) {
	var outer []int // indices into a.Site of written scopes, outermost first
	for i, s := range slices.Backward(a.Site) {
		if !s.Unwritten() {
			outer = append(outer, i)
		}
	}

	for k := 0; k < len(path)-1 && k < len(outer); k++ {
		if !path[k].IsNamespace() || path[k] != a.Site[outer[k]] {
			break
		}

		shorter := path[k+1:]
		if !r.fits(shorter) {
			continue
		}

		if captured(shorter[0].Name, a, outer[k]) {
			return nil, false
		}

		return shorter, true
	}

	return nil, false
}

// captured reports whether lookup of name from the access site finds a declaration
// in a scope nested inside a.Site[stop].
func captured(name string, a *model.Access, stop int) bool {
	if slices.Contains(a.Local, name) {
		return true
	}

	for i, s := range a.Site[:stop] {
		if s.Name == name {
			return true
		}

		if i < len(a.Declared) && slices.Contains(a.Declared[i], name) {
			return true
		}
	}

	return false
}

// written returns the scopes of chain that appear in a qualified name, outermost first.
func written(chain []model.Scope) []model.Scope {
	path := make([]model.Scope, 0, len(chain))
	for _, s := range slices.Backward(chain) {
		if s.Unwritten() {
			continue
		}

		path = append(path, s)
	}

	return path
}

// render joins path with "::". An anonymous aggregate is named by the type of its instance.
func render(path []model.Scope) string {
	var b strings.Builder

	for i, s := range path {
		if s.Kind == model.AnonymousInstance {
			prefix := b.String()

			b.Reset()
			b.WriteString("decltype(")

			if prefix != "" {
				b.WriteString(prefix)
				b.WriteString("::")
			}

			b.WriteString(s.Name)
			b.WriteByte(')')

			continue
		}

		if i > 0 {
			b.WriteString("::")
		}

		b.WriteString(s.Name)
	}

	return b.String()
}

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

package model_test

import (
	"testing"

	. "fillmore-labs.com/staticaccess/internal/model"
)

func TestRewritable(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		access Access
		want   Range
	}{
		{name: "name", access: Access{Range: Range{10, 30}, Name: Range{18, 22}}, want: Range{10, 22}},
		{name: "no_name", access: Access{Range: Range{10, 30}}, want: Range{10, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, want := tt.access.Rewritable(), tt.want; got != want {
				t.Errorf("Rewritable() = %v, want %v", got, want)
			}
		})
	}
}

func TestUnitText(t *testing.T) {
	t.Parallel()

	u := &Unit{Filename: "a.cpp", Content: []byte("c1.foo();")}

	if got, want := u.Text(Range{0, 6}), "c1.foo"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	if got := u.Text(Range{5, 40}); got != "" {
		t.Errorf("Text() out of bounds = %q, want empty", got)
	}

	if got := u.Text(Range{5, 3}); got != "" {
		t.Errorf("Text() inverted = %q, want empty", got)
	}
}

func TestScopeString(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		scope Scope
		want  string
	}{
		{Type("C"), "type C"},
		{Inline("Inline"), "inline namespace Inline"},
		{NS(""), "(anonymous namespace)"},
		{Instance("s"), "instance s"},
	}

	for _, tt := range tests {
		if got := tt.scope.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.scope, got, tt.want)
		}
	}

	if !Inline("I").IsNamespace() || Type("T").IsNamespace() {
		t.Error("IsNamespace() mismatch")
	}

	if !NS("").Unwritten() || Inline("").Unwritten() {
		t.Error("Unwritten() mismatch")
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	e := Select(Ref("p"), Arrow, "q")

	if got, want := e.Op, "->"; got != want {
		t.Errorf("Op = %q, want %q", got, want)
	}

	if got, want := len(e.Operands), 1; got != want {
		t.Fatalf("len(Operands) = %d, want %d", got, want)
	}

	if got, want := e.Operands[0].Name, "p"; got != want {
		t.Errorf("Operands[0].Name = %q, want %q", got, want)
	}
}

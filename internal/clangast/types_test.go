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
	"testing"

	"github.com/stretchr/testify/require"

	"fillmore-labs.com/staticaccess/internal/model"
)

func TestBaseName(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		typ, want string
		indirect  bool
	}{
		{"C", "C", false},
		{"const C *", "C", true},
		{"struct N::S &", "N::S", true},
		{"volatile CT<int *>", "CT<int *>", false},
		{"const __cuda_builtin_threadIdx_t", "__cuda_builtin_threadIdx_t", false},
		{"int[3]", "int[3]", true},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, baseName(tt.typ), tt.typ)
		require.Equal(t, tt.indirect, indirect(tt.typ), tt.typ)
	}
}

func TestSplitScopes(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"N", "V", "T"}, splitScopes("N::V::T"))
	require.Equal(t, []string{"C"}, splitScopes("::C"))
	require.Equal(t, []string{"A<B::C>", "D"}, splitScopes("A<B::C>::D"))
	require.Equal(t, "D", lastSegment("A<B::C>::D"))
}

func TestScanMember(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		src  string
		from int
		name string
		want model.Range
		ok   bool
	}{
		{src: "c.x", from: 1, name: "x", want: model.Range{Start: 2, End: 3}, ok: true},
		{src: "p -> y", from: 1, name: "y", want: model.Range{Start: 5, End: 6}, ok: true},
		{src: "c./* c */ foo()", from: 1, name: "foo", want: model.Range{Start: 10, End: 13}, ok: true},
		{src: "t.template f<int>()", from: 1, name: "f", want: model.Range{Start: 11, End: 12}, ok: true},
		{src: "c.xy", from: 1, name: "x"},
		{src: "c + x", from: 1, name: "x"},
	}

	for _, tt := range tests {
		got, ok := scanMember([]byte(tt.src), tt.from, tt.name)
		require.Equal(t, tt.ok, ok, tt.src)

		if ok {
			require.Equal(t, tt.want, got, tt.src)
		}
	}
}

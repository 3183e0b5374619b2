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

// Package classify decides whether a referenced member is static in the sense of the staticaccess rule.
package classify

import "fillmore-labs.com/staticaccess/internal/model"

// Verdict is the outcome of classifying a member declaration.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// Unresolved indicates there is no member declaration to classify.
	Unresolved Verdict = iota // unr

	// NonStatic indicates an ordinary field or non-static method.
	NonStatic // nst

	// PseudoMember indicates a builtin coordinate pseudo-field like threadIdx.x, which is never flagged.
	PseudoMember // pse

	// Dependent indicates that static-ness depends on a template parameter.
	// Classification is deferred until instantiation.
	Dependent // dep

	// StaticField indicates a static data member.
	StaticField // fld

	// StaticMethod indicates a static method.
	StaticMethod // mth

	// Enumerator indicates an enumerator reachable through the class.
	Enumerator // enm
)

// Flaggable reports whether an access through an instance should be diagnosed.
func (v Verdict) Flaggable() bool {
	return v >= StaticField
}

// Indeterminate reports whether the verdict can only be decided at template instantiation.
func (v Verdict) Indeterminate() bool {
	return v == Dependent
}

// Member classifies the member declaration m.
func Member(m *model.Member) Verdict {
	switch {
	case m == nil:
		return Unresolved

	case m.Pseudo: // before static-ness: the builtins are modeled as static properties
		return PseudoMember

	case m.Dependent:
		return Dependent
	}

	switch m.Kind {
	case model.Enumerator:
		return Enumerator

	case model.Field:
		if m.Static {
			return StaticField
		}

	case model.Method:
		if m.Static {
			return StaticMethod
		}
	}

	return NonStatic
}

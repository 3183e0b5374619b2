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

package plan_test

import (
	"testing"

	"fillmore-labs.com/staticaccess/internal/classify"
	"fillmore-labs.com/staticaccess/internal/config"
	"fillmore-labs.com/staticaccess/internal/model"
	. "fillmore-labs.com/staticaccess/internal/plan"
)

func static(name string, kind model.MemberKind, scopes ...model.Scope) *model.Member {
	return &model.Member{Name: name, Kind: kind, Static: true, Scopes: scopes}
}

func TestPlan(t *testing.T) {
	t.Parallel()

	var (
		cx = static("x", model.Field, model.Type("C"))
		qk = static("K", model.Field, model.Type("Q"))
		nu = static("u", model.Field, model.Type("U"), model.Type("T"), model.Type("V"), model.NS("N"))
		nt = static("t", model.Field, model.Type("T"), model.Type("V"), model.NS("N"))
		tu = static("u", model.Field, model.Type("U"), model.Type("T"), model.NS("N"))
	)

	tests := [...]struct {
		name     string
		behavior config.Behaviors
		access   model.Access
		verdict  classify.Verdict
		warn     bool
		effect   bool
		status   Status
		text     string
	}{
		{
			name:    "static_field",
			access:  model.Access{Base: model.Ref("c"), Member: cx, Range: model.Range{Start: 0, End: 3}, Name: model.Range{Start: 2, End: 3}},
			verdict: classify.StaticField, warn: true, status: Rewritten, text: "C::x",
		},
		{
			name:    "past_cap",
			access:  model.Access{Base: model.Ref("u"), Member: nu, Range: model.Range{Start: 0, End: 3}, Name: model.Range{Start: 2, End: 3}},
			verdict: classify.StaticField, warn: true, status: DepthExceeded,
		},
		{
			name:    "at_cap",
			access:  model.Access{Base: model.Ref("t"), Member: nt, Range: model.Range{Start: 0, End: 3}, Name: model.Range{Start: 2, End: 3}},
			verdict: classify.StaticField, warn: true, status: Rewritten, text: "N::V::T::t",
		},
		{
			name:    "three_segments",
			access:  model.Access{Base: model.Ref("u"), Member: tu, Range: model.Range{Start: 0, End: 3}, Name: model.Range{Start: 2, End: 3}},
			verdict: classify.StaticField, warn: true, status: Rewritten, text: "N::T::U::u",
		},
		{
			name: "operator_arrow",
			access: model.Access{
				Base:     model.Op(model.ExprOperatorCall, "->", model.Ref("p")),
				Operator: model.Arrow,
				Member:   qk,
				Range:    model.Range{Start: 0, End: 4},
				Name:     model.Range{Start: 3, End: 4},
			},
			verdict: classify.StaticField, warn: true, effect: true, status: Rewritten, text: "Q::K",
		},
		{
			name:     "operator_arrow_conservative",
			behavior: config.NewBehaviors(config.Conservative),
			access: model.Access{
				Base:     model.Op(model.ExprOperatorCall, "->", model.Ref("p")),
				Operator: model.Arrow,
				Member:   qk,
				Range:    model.Range{Start: 0, End: 4},
				Name:     model.Range{Start: 3, End: 4},
			},
			verdict: classify.StaticField, warn: true, effect: true, status: SideEffects,
		},
		{
			name: "pseudo_member",
			access: model.Access{
				Base:   model.Ref("threadIdx"),
				Member: &model.Member{Name: "x", Kind: model.Field, Static: true, Pseudo: true, Scopes: []model.Scope{model.Type("__cuda_builtin_threadIdx_t")}},
			},
			verdict: classify.PseudoMember, status: NotFlagged,
		},
		{
			name:    "implicit_this",
			access:  model.Access{Member: cx},
			verdict: classify.StaticField, status: ImplicitBase,
		},
		{
			name:    "non_static",
			access:  model.Access{Base: model.Ref("c"), Member: &model.Member{Name: "y", Kind: model.Field, Scopes: []model.Scope{model.Type("C")}}},
			verdict: classify.NonStatic, status: NotFlagged,
		},
		{
			name:    "unresolved",
			access:  model.Access{Base: model.Ref("t"), DependentContext: true},
			verdict: classify.Unresolved, status: NotFlagged,
		},
		{
			name: "dependent",
			access: model.Access{
				Base:   model.Ref("t"),
				Member: &model.Member{Name: "x", Kind: model.Field, Dependent: true, Scopes: []model.Scope{model.Type("T")}},
			},
			verdict: classify.Dependent, status: Deferred,
		},
		{
			name:    "dependent_context",
			access:  model.Access{Base: model.Ref("c"), Member: cx, DependentContext: true},
			verdict: classify.StaticField, warn: true, status: InDependentContext,
		},
		{
			name:    "macro",
			access:  model.Access{Base: model.Ref("c"), Member: cx, Macro: true},
			verdict: classify.StaticField, warn: true, status: InMacro,
		},
		{
			name:     "macro_ignored",
			behavior: config.NewBehaviors(config.IgnoreMacros),
			access:   model.Access{Base: model.Ref("c"), Member: cx, Macro: true},
			verdict:  classify.StaticField, status: InMacro,
		},
		{
			name: "method_call",
			access: model.Access{
				Base:   model.Call(model.Ref("f")),
				Member: static("foo", model.Method, model.Type("C")),
				Range:  model.Range{Start: 0, End: 7},
				Name:   model.Range{Start: 4, End: 7},
			},
			verdict: classify.StaticMethod, warn: true, effect: true, status: Rewritten, text: "C::foo",
		},
		{
			name: "enumerator",
			access: model.Access{
				Base:   model.Ref("s"),
				Member: &model.Member{Name: "E1", Kind: model.Enumerator, Scopes: []model.Scope{model.Type("S")}},
				Range:  model.Range{Start: 0, End: 4},
				Name:   model.Range{Start: 2, End: 4},
			},
			verdict: classify.Enumerator, warn: true, status: Rewritten, text: "S::E1",
		},
		{
			name: "typedef",
			access: model.Access{
				Base:     model.Ref("d"),
				Member:   cx,
				Spelling: []model.Scope{model.Type("D")},
				Range:    model.Range{Start: 0, End: 3},
				Name:     model.Range{Start: 2, End: 3},
			},
			verdict: classify.StaticField, warn: true, status: Rewritten, text: "D::x",
		},
		{
			name: "anonymous_without_instance",
			access: model.Access{
				Base:   model.Ref("p"),
				Member: static("I", model.Field, model.Instance("")),
			},
			verdict: classify.StaticField, warn: true, status: NoInstanceAlias,
		},
		{
			name: "lambda",
			access: model.Access{
				Base:   model.Call(model.Op(model.ExprLambda, "")),
				Member: static("x", model.Field, model.Type("C")),
				Range:  model.Range{Start: 0, End: 15},
				Name:   model.Range{Start: 14, End: 15},
			},
			verdict: classify.StaticField, warn: true, effect: true, status: Rewritten, text: "C::x",
		},
		{
			name: "qualified",
			access: model.Access{
				Base:   model.QualifiedRef("S::s"),
				Member: static("x", model.Field, model.Type("S")),
				Range:  model.Range{Start: 0, End: 6},
				Name:   model.Range{Start: 5, End: 6},
			},
			verdict: classify.StaticField, warn: true, status: Rewritten, text: "S::x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := New(config.DefaultMaxDepth, tt.behavior).Plan(&tt.access)

			if got.Verdict != tt.verdict {
				t.Errorf("Plan() verdict = %s, want %s", got.Verdict, tt.verdict)
			}

			if got.Warn != tt.warn {
				t.Errorf("Plan() warn = %t, want %t", got.Warn, tt.warn)
			}

			if got.SideEffect != tt.effect {
				t.Errorf("Plan() side effect = %t, want %t", got.SideEffect, tt.effect)
			}

			if got.Status != tt.status {
				t.Errorf("Plan() status = %s, want %s", got.Status, tt.status)
			}

			switch {
			case tt.text == "" && got.Replacement != nil:
				t.Errorf("Plan() replacement = %q, want none", got.Replacement.Text)

			case tt.text != "" && got.Replacement == nil:
				t.Errorf("Plan() has no replacement, want %q", tt.text)

			case tt.text != "":
				if got.Replacement.Text != tt.text {
					t.Errorf("Plan() replacement = %q, want %q", got.Replacement.Text, tt.text)
				}

				if want := tt.access.Rewritable(); got.Replacement.Range != want {
					t.Errorf("Plan() replacement range = %v, want %v", got.Replacement.Range, want)
				}
			}
		})
	}
}

func TestReplacementImpliesWarning(t *testing.T) {
	t.Parallel()

	cx := static("x", model.Field, model.Type("C"))
	bases := [...]*model.Expr{
		nil,
		model.Ref("c"),
		model.Call(model.Ref("f")),
		model.Op(model.ExprLogical, "&&", model.Ref("a"), model.Call(model.Ref("g"))),
	}

	for _, behavior := range [...]config.Behaviors{
		config.DefaultBehaviors(),
		config.NewBehaviors(config.IgnoreMacros),
		config.NewBehaviors(config.Conservative),
	} {
		for _, base := range bases {
			for _, macro := range [...]bool{false, true} {
				a := model.Access{Base: base, Member: cx, Macro: macro, Range: model.Range{Start: 0, End: 3}, Name: model.Range{Start: 2, End: 3}}

				d := New(config.DefaultMaxDepth, behavior).Plan(&a)
				if d.Replacement != nil && (!d.Warn || macro) {
					t.Errorf("Plan(%v, macro=%t) = %+v, replacement without warning or inside macro", behavior, macro, d)
				}
			}
		}
	}
}

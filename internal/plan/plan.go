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

// Package plan decides, per member access, whether to warn and how to rewrite it.
package plan

import (
	"fillmore-labs.com/staticaccess/internal/classify"
	"fillmore-labs.com/staticaccess/internal/config"
	"fillmore-labs.com/staticaccess/internal/model"
	"fillmore-labs.com/staticaccess/internal/qualifier"
	"fillmore-labs.com/staticaccess/internal/sideeffect"
)

// Status is the terminal state of planning a single access.
type Status uint8

//go:generate go tool stringer -type Status -linecomment
const (
	// Rewritten indicates a warning with a replacement.
	Rewritten Status = iota // rewritten

	// NotFlagged indicates the member is not static.
	NotFlagged // not flagged

	// Deferred indicates static-ness depends on a template parameter and is decided at instantiation.
	Deferred // deferred

	// InMacro indicates the access originates from a macro expansion.
	InMacro // in macro

	// InDependentContext indicates an enclosing template prevents a safe rewrite.
	InDependentContext // in dependent context

	// DepthExceeded indicates the qualified name would be too deep.
	DepthExceeded // depth exceeded

	// NoInstanceAlias indicates an anonymous aggregate without an instance to name it.
	NoInstanceAlias // no instance alias

	// NoScope indicates the member has no type that could qualify it.
	NoScope // no scope

	// SideEffects indicates the fix was withheld because the base expression may have side effects.
	SideEffects // side effects

	// ImplicitBase indicates the object is implicit, as inside the member's own class.
	ImplicitBase // implicit base
)

// Replacement substitutes Text for the source in Range.
type Replacement struct {
	Range model.Range
	Text  string
}

// Decision is the outcome of planning one access.
//
// A replacement implies a warning.
type Decision struct {
	Verdict     classify.Verdict
	Warn        bool
	SideEffect  bool
	Status      Status
	Replacement *Replacement
}

// Planner plans rewrites of member accesses.
type Planner struct {
	Resolver qualifier.Resolver
	Behavior config.Behaviors
}

// New creates a [Planner] with the given depth limit and behaviors.
func New(maxDepth int, behavior config.Behaviors) Planner {
	return Planner{Resolver: qualifier.New(maxDepth), Behavior: behavior}
}

// Plan decides what to do with a.
func (p Planner) Plan(a *model.Access) Decision {
	d := Decision{Verdict: classify.Member(a.Member)}

	if a.Base == nil {
		d.Status = ImplicitBase
		return d
	}

	switch {
	case d.Verdict.Indeterminate():
		d.Status = Deferred
		return d

	case !d.Verdict.Flaggable():
		d.Status = NotFlagged
		return d
	}

	if a.Macro && p.Behavior.Enabled(config.IgnoreMacros) {
		d.Status = InMacro
		return d
	}

	d.Warn = true
	d.SideEffect = sideeffect.Possible(a.Base)

	switch {
	case a.Macro:
		d.Status = InMacro
		return d

	case a.DependentContext:
		d.Status = InDependentContext
		return d

	case d.SideEffect && p.Behavior.Enabled(config.Conservative):
		d.Status = SideEffects
		return d
	}

	q, status := p.Resolver.Resolve(a)
	if status != qualifier.Resolved {
		d.Status = unresolved(status)
		return d
	}

	d.Status = Rewritten
	d.Replacement = &Replacement{
		Range: a.Rewritable(),
		Text:  q + "::" + a.Member.Name,
	}

	return d
}

func unresolved(status qualifier.Status) Status {
	switch status {
	case qualifier.DepthExceeded:
		return DepthExceeded

	case qualifier.NoInstanceAlias:
		return NoInstanceAlias

	default:
		return NoScope
	}
}

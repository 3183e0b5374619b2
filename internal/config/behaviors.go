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

package config

import "log/slog"

// Behaviors is a set of [Behavior] flags.
type Behaviors struct {
	value Behavior
}

// NewBehaviors creates a new [Behaviors] set with the specified flags enabled.
func NewBehaviors(flags ...Behavior) Behaviors {
	var b Behaviors
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// DefaultBehaviors returns the behaviors the rule starts with: macros reported, side-effect fixes offered.
func DefaultBehaviors() Behaviors {
	return NewBehaviors()
}

// Set enables or disables the specified flag.
func (b *Behaviors) Set(flag Behavior, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets the given flag.
func (b *Behaviors) Enable(flag Behavior) {
	b.value |= flag
}

// Disable clears the given flag.
func (b *Behaviors) Disable(flag Behavior) {
	b.value &^= flag
}

// Enabled checks if the specified flag is set.
func (b Behaviors) Enabled(flag Behavior) bool {
	return b.value&flag != 0
}

// LogValue implements [slog.LogValuer].
func (b Behaviors) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(AllBehaviors))
	for _, flag := range AllBehaviors {
		as = append(as, slog.Bool(flag.String(), b.Enabled(flag)))
	}

	return slog.GroupValue(as...)
}

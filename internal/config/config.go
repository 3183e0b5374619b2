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

// Package config holds the tunables of the staticaccess rule.
package config

// CheckName is the stable diagnostic identifier of the rule.
const CheckName = "readability-static-accessed-through-instance"

// DefaultMaxDepth is the default maximum number of scope segments in a suggested qualified name.
const DefaultMaxDepth = 3

// Behavior represents behavioral options of the rule.
type Behavior uint8

const (
	// IgnoreMacros suppresses diagnostics for accesses originating from macro expansions.
	// By default these are reported without a suggested fix.
	IgnoreMacros Behavior = 1 << iota

	// Conservative withholds fixes that would drop a base expression with possible side effects.
	Conservative
)

// AllBehaviors lists every [Behavior] flag.
var AllBehaviors = [...]Behavior{IgnoreMacros, Conservative}

func (b Behavior) String() string {
	switch b {
	case IgnoreMacros:
		return "ignore-macros"

	case Conservative:
		return "conservative"

	default:
		return "<unknown>"
	}
}

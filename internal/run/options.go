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

package run

import (
	"fillmore-labs.com/staticaccess/internal/clangast"
	"fillmore-labs.com/staticaccess/internal/config"
	"fillmore-labs.com/staticaccess/internal/plan"
)

// Options represent configuration options for the staticaccess pipeline.
type Options struct {
	// Behavior holds behavioral flags.
	Behavior config.Behaviors

	// MaxDepth is the maximum number of segments of a suggested qualifier, negative for no limit.
	MaxDepth int

	// Clang is the command dumping the AST of a translation unit.
	Clang clangast.Command

	// Dumper overrides Clang when set.
	Dumper clangast.Dumper
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehaviors(),
		MaxDepth: config.DefaultMaxDepth,
	}
}

// Planner returns the planner configured by o.
func (o *Options) Planner() plan.Planner {
	return plan.New(o.MaxDepth, o.Behavior)
}

func (o *Options) dumper() clangast.Dumper {
	if o.Dumper != nil {
		return o.Dumper
	}

	return o.Clang
}

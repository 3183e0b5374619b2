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

package analyzer

import (
	"flag"

	"fillmore-labs.com/staticaccess/internal/config"
	"fillmore-labs.com/staticaccess/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, o *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.IntVar(&o.MaxDepth, "max-depth", o.MaxDepth, "maximum number of scope segments of a suggested qualifier, negative for no limit")
	flags.Var(newBehaviorValue(&o.Behavior, config.IgnoreMacros), "ignore-macros", "ignore accesses in macro expansions")
	flags.Var(newBehaviorValue(&o.Behavior, config.Conservative), "conservative", "suggest no fixes dropping base expressions with side effects")
	flags.StringVar(&o.Clang.Path, "clang", o.Clang.Path, "clang compiler driver (default \"clang++\")")
	flags.Var((*argsValue)(&o.Clang.Args), "clang-args", "space separated extra clang arguments")
}

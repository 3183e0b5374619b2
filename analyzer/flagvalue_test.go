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
	"strings"
	"testing"

	"fillmore-labs.com/staticaccess/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Behavior
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.IgnoreMacros,
			args:    []string{"-conservative"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.Conservative,
			args:    []string{"-conservative=false"},
			want:    false,
		},
		{
			name:    "Full",
			initial: config.IgnoreMacros,
			args:    []string{"-conservative=full"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBehaviors(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.Conservative
			fv := newBehaviorValue(&flags, value)
			fs.Var(fv, "conservative", "conservative fixes")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("Conservative enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if tt.initial != value && !flags.Enabled(tt.initial) {
				t.Errorf("%v disabled", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behaviors

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(newBehaviorValue(&flags, config.IgnoreMacros), "ignore-macros", "ignore macros")

	if err := fs.Parse([]string{"-ignore-macros=maybe"}); err == nil {
		t.Error("Parse succeeded, want error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBehaviors(config.IgnoreMacros)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := newBehaviorValue(&flags, config.IgnoreMacros)
	fs.Var(fv, "ignore-macros", "ignore accesses in macro expansions")

	const expectedUsage = `
  -ignore-macros
    	ignore accesses in macro expansions (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestArgsValue(t *testing.T) {
	t.Parallel()

	var args []string

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var((*argsValue)(&args), "clang-args", "extra clang arguments")

	if err := fs.Parse([]string{"-clang-args", "-std=c++20  -Iinclude", "-clang-args=-DNDEBUG"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := strings.Join(args, ","), "-std=c++20,-Iinclude,-DNDEBUG"; got != want {
		t.Errorf("args = %q, want %q", got, want)
	}
}

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

package gclplugin

import staticaccess "fillmore-labs.com/staticaccess/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// MaxDepth sets the maximum number of scope segments of a suggested qualifier.
	MaxDepth *int `json:"max-depth,omitzero"`
	// IgnoreMacros suppresses diagnostics in macro expansions.
	IgnoreMacros *bool `json:"ignore-macros,omitzero"`
	// Conservative restricts fixes to those without potential side effects.
	Conservative *bool `json:"conservative,omitzero"`
	// Clang is the clang compiler driver.
	Clang *string `json:"clang,omitzero"`
	// ClangArgs are extra compiler arguments.
	ClangArgs []string `json:"clang-args,omitzero"`
}

// Options converts [Settings] into a list of [staticaccess.Option] for the staticaccess analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []staticaccess.Option {
	var opts []staticaccess.Option

	opts = appendOption(opts, s.MaxDepth, staticaccess.WithMaxDepth)
	opts = appendOption(opts, s.IgnoreMacros, staticaccess.WithIgnoreMacros)
	opts = appendOption(opts, s.Conservative, staticaccess.WithConservative)
	opts = appendOption(opts, s.Clang, staticaccess.WithClang)

	if len(s.ClangArgs) > 0 {
		opts = append(opts, staticaccess.WithClangArgs(s.ClangArgs...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [staticaccess.Option] list.
func appendOption[T any](opts []staticaccess.Option, value *T, constructor func(T) staticaccess.Option) []staticaccess.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
	"fmt"
	"log/slog"

	"fillmore-labs.com/staticaccess/internal/clangast"
	"fillmore-labs.com/staticaccess/internal/config"
	"fillmore-labs.com/staticaccess/internal/run"
)

// Option configures specific behavior of a [New] staticaccess analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithMaxDepth is an [Option] to configure the maximum number of scope segments of a suggested qualifier.
// A negative value removes the limit.
func WithMaxDepth(maxDepth int) Option { return maxDepthOption{maxDepth: maxDepth} }

type maxDepthOption struct{ maxDepth int }

func (o maxDepthOption) apply(r *run.Options) {
	r.MaxDepth = o.maxDepth
}

func (o maxDepthOption) LogAttr() slog.Attr {
	return slog.Int("max-depth", o.maxDepth)
}

// WithIgnoreMacros is an [Option] to configure whether accesses in macro expansions are ignored.
func WithIgnoreMacros(ignore bool) Option { return ignoreMacrosOption{ignore: ignore} }

type ignoreMacrosOption struct{ ignore bool }

func (o ignoreMacrosOption) apply(r *run.Options) {
	r.Behavior.Set(config.IgnoreMacros, o.ignore)
}

func (o ignoreMacrosOption) LogAttr() slog.Attr {
	return slog.Bool("ignore-macros", o.ignore)
}

// WithConservative is an [Option] to only suggest fixes without dropping potential side effects.
func WithConservative(conservative bool) Option {
	return conservativeOption{conservative: conservative}
}

type conservativeOption struct{ conservative bool }

func (o conservativeOption) apply(r *run.Options) {
	r.Behavior.Set(config.Conservative, o.conservative)
}

func (o conservativeOption) LogAttr() slog.Attr {
	return slog.Bool("conservative", o.conservative)
}

// WithClang is an [Option] to configure the clang compiler driver.
func WithClang(path string) Option { return clangOption{path: path} }

type clangOption struct{ path string }

func (o clangOption) apply(r *run.Options) {
	r.Clang.Path = o.path
}

func (o clangOption) LogAttr() slog.Attr {
	return slog.String("clang", o.path)
}

// WithClangArgs is an [Option] to configure extra compiler arguments, like include paths and defines.
func WithClangArgs(args ...string) Option { return clangArgsOption{args: args} }

type clangArgsOption struct{ args []string }

func (o clangArgsOption) apply(r *run.Options) {
	r.Clang.Args = append(r.Clang.Args, o.args...)
}

func (o clangArgsOption) LogAttr() slog.Attr {
	return slog.Any("clang-args", o.args)
}

// WithDumper is an [Option] to replace clang as the producer of translation unit ASTs.
func WithDumper(d clangast.Dumper) Option { return dumperOption{dumper: d} }

type dumperOption struct{ dumper clangast.Dumper }

func (o dumperOption) apply(r *run.Options) {
	r.Dumper = o.dumper
}

func (o dumperOption) LogAttr() slog.Attr {
	return slog.String("dumper", fmt.Sprintf("%T", o.dumper))
}

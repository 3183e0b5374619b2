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
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/staticaccess/internal/clangast"
	"fillmore-labs.com/staticaccess/internal/model"
	"fillmore-labs.com/staticaccess/internal/plan"
	"fillmore-labs.com/staticaccess/internal/report"
)

// Finding is a planned access.
type Finding = report.Finding

// Result is the outcome of checking one translation unit.
type Result struct {
	Filename string
	Unit     *model.Unit
	Findings []Finding
	Err      error
}

// IsSource reports whether name is a C++ translation unit.
func IsSource(name string) bool {
	switch filepath.Ext(name) {
	case ".cc", ".cpp", ".cxx", ".c++", ".C":
		return true

	default:
		return false
	}
}

// Unit plans every access of u, in order.
func (o *Options) Unit(ctx context.Context, u *model.Unit) []Finding {
	defer trace.StartRegion(ctx, "Plan").End()

	planner := o.Planner()
	findings := make([]Finding, 0, len(u.Accesses))

	for i := range u.Accesses {
		a := &u.Accesses[i]
		d := planner.Plan(a)

		switch d.Status {
		case plan.Rewritten, plan.NotFlagged, plan.ImplicitBase:

		default:
			slog.DebugContext(ctx, "Access not rewritten",
				slog.String("file", u.Filename),
				slog.String("member", a.MemberName()),
				slog.Int("offset", a.Range.Start),
				slog.Bool("warn", d.Warn),
				slog.String("status", d.Status.String()))
		}

		findings = append(findings, Finding{Access: a, Decision: d})
	}

	return findings
}

// Run analyzes the C++ sources of the package.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "StaticAccess")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	for _, name := range p.OtherFiles {
		if !IsSource(name) {
			continue
		}

		content, err := p.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("staticaccess: %w", err)
		}

		file := p.Fset.AddFile(name, -1, len(content))
		file.SetLinesForContent(content)

		unit, err := o.load(ctx, name, content)
		if err != nil {
			return nil, fmt.Errorf("staticaccess: %w", err)
		}

		report.NewEmitter(file).Report(ctx, p.Report, o.Unit(ctx, unit))
	}

	return nil, nil
}

// Check analyzes files with at most jobs translation units in flight, no limit when jobs is not positive.
//
// Results are in the order of files. Failures of single units are recorded in their result,
// a canceled context aborts the remaining units and is returned.
func (o *Options) Check(ctx context.Context, files []string, jobs int) ([]Result, error) {
	ctx, task := trace.NewTask(ctx, "StaticAccess")
	defer task.End()

	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = o.check(ctx, name)

			if results[i].Err != nil {
				if err := ctx.Err(); err != nil {
					return err
				}

				slog.DebugContext(ctx, "Unit failed", slog.String("file", name), slog.Any("error", results[i].Err))
			}

			return nil
		})
	}

	return results, g.Wait()
}

func (o *Options) check(ctx context.Context, name string) Result {
	content, err := os.ReadFile(name)
	if err != nil {
		return Result{Filename: name, Err: err}
	}

	unit, err := o.load(ctx, name, content)
	if err != nil {
		return Result{Filename: name, Err: err}
	}

	return Result{Filename: name, Unit: unit, Findings: o.Unit(ctx, unit)}
}

func (o *Options) load(ctx context.Context, name string, content []byte) (*model.Unit, error) {
	defer trace.StartRegion(ctx, "Load").End()

	return clangast.Load(ctx, o.dumper(), name, content)
}

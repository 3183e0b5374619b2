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

package main

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/staticaccess/internal/clangast"
	"fillmore-labs.com/staticaccess/internal/config"
	"fillmore-labs.com/staticaccess/internal/report"
	"fillmore-labs.com/staticaccess/internal/run"
)

// Exit codes.
const (
	exitClean    = 0
	exitFindings = 1
	exitError    = 2
)

var (
	// errFindings signals that diagnostics were reported.
	errFindings = errors.New("diagnostics reported")

	// errFailed signals that some files could not be processed. The errors are already printed.
	errFailed = errors.New("processing failed")

	errNoInput = errors.New("no input files")
)

type command struct {
	opts *run.Options

	fix, diff      bool
	maxDepth       int
	ignoreMacros   bool
	conservative   bool
	clang          string
	configFile     string
	jobs           int
	verbose        bool
	noColor        bool
	stdout, stderr io.Writer
}

func newCommand(stdout, stderr io.Writer) *command {
	return &command{
		opts:     run.DefaultOptions(),
		maxDepth: config.DefaultMaxDepth,
		clang:    clangast.DefaultClang,
		jobs:     runtime.GOMAXPROCS(0),
		stdout:   stdout,
		stderr:   stderr,
	}
}

func (c *command) cobra() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staticaccess [flags] file... [-- clang-args]",
		Short: "Report static C++ members accessed through an instance",
		Long: `staticaccess reports static data members, static member functions and enumerators
that are accessed through an object expression, and suggests the qualified name instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	flags := cmd.Flags()
	flags.BoolVar(&c.fix, "fix", false, "apply suggested fixes to the files")
	flags.BoolVar(&c.diff, "diff", false, "print suggested fixes as a unified diff")
	flags.IntVar(&c.maxDepth, "max-depth", c.maxDepth, "maximum number of scope segments of a suggested qualifier, negative for no limit")
	flags.BoolVar(&c.ignoreMacros, "ignore-macros", false, "ignore accesses in macro expansions")
	flags.BoolVar(&c.conservative, "conservative", false, "suggest no fixes dropping base expressions with side effects")
	flags.StringVar(&c.clang, "clang", c.clang, "clang compiler driver")
	flags.StringVar(&c.configFile, "config", "", "clang-tidy configuration file (default: nearest "+config.ClangTidyFile+")")
	flags.IntVarP(&c.jobs, "jobs", "j", c.jobs, "number of files processed in parallel")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log debug information")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	return cmd
}

// execute runs the command line args and returns the exit code.
func (c *command) execute(ctx context.Context, args []string) int {
	cmd := c.cobra()
	cmd.SetArgs(args)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	switch err := cmd.ExecuteContext(ctx); {
	case err == nil:
		return exitClean

	case errors.Is(err, errFindings):
		return exitFindings

	case errors.Is(err, errFailed):
		return exitError

	default:
		_, _ = fmt.Fprintf(c.stderr, "staticaccess: %v\n", err)

		return exitError
	}
}

func (c *command) run(cmd *cobra.Command, args []string) error {
	files, clangArgs := args, []string(nil)
	if n := cmd.ArgsLenAtDash(); n >= 0 {
		files, clangArgs = args[:n], args[n:]
	}

	if len(files) == 0 {
		return errNoInput
	}

	c.setLogger()

	if err := c.configure(cmd, files[0], clangArgs); err != nil {
		return err
	}

	ctx := cmd.Context()

	slog.DebugContext(ctx, "Checking files",
		slog.Int("files", len(files)),
		slog.Int("max-depth", c.opts.MaxDepth),
		slog.Any("behavior", c.opts.Behavior),
		slog.String("clang", c.opts.Clang.Path),
		slog.Any("clang-args", c.opts.Clang.Args))

	results, err := c.opts.Check(ctx, files, c.jobs)
	if err != nil {
		return err
	}

	p := newPrinter(c.stdout, c.noColor)

	var failed, reported bool

	for _, r := range results {
		if r.Err != nil {
			p.error(c.stderr, r.Filename, r.Err)
			failed = true

			continue
		}

		n, err := c.process(p, r)
		if err != nil {
			p.error(c.stderr, r.Filename, err)
			failed = true
		}

		reported = reported || n > 0
	}

	switch {
	case failed:
		return errFailed

	case reported:
		return errFindings

	default:
		return nil
	}
}

// configure applies the .clang-tidy settings and then the explicitly set flags.
func (c *command) configure(cmd *cobra.Command, first string, clangArgs []string) error {
	name := c.configFile
	if name == "" {
		if found, ok := config.FindClangTidy(filepath.Dir(first)); ok {
			name = found
		}
	}

	if name != "" {
		tidy, err := config.LoadClangTidy(name)
		if err != nil {
			return err
		}

		tidy.Apply(&c.opts.MaxDepth, &c.opts.Behavior)

		slog.Debug("Loaded configuration", slog.String("file", name))
	}

	flags := cmd.Flags()

	if flags.Changed("max-depth") {
		c.opts.MaxDepth = c.maxDepth
	}

	if flags.Changed("ignore-macros") {
		c.opts.Behavior.Set(config.IgnoreMacros, c.ignoreMacros)
	}

	if flags.Changed("conservative") {
		c.opts.Behavior.Set(config.Conservative, c.conservative)
	}

	c.opts.Clang.Path = c.clang
	c.opts.Clang.Args = clangArgs

	return nil
}

func (c *command) setLogger() {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level})))
}

// process prints the diagnostics of a result and applies or prints its fixes.
// It returns the number of diagnostics.
func (c *command) process(p printer, r run.Result) (int, error) {
	content := r.Unit.Content

	fset := token.NewFileSet()
	file := fset.AddFile(r.Filename, -1, len(content))
	file.SetLinesForContent(content)

	var n int

	report.NewEmitter(file).Report(context.Background(), func(d analysis.Diagnostic) {
		p.diagnostic(fset, content, d)
		n++
	}, r.Findings)

	if !c.fix && !c.diff {
		return n, nil
	}

	fixed, err := report.Apply(content, report.Edits(r.Findings))
	if err != nil {
		return n, err
	}

	if c.diff {
		diff, err := report.Diff(r.Filename, content, fixed)
		if err != nil {
			return n, err
		}

		_, _ = io.WriteString(c.stdout, diff)
	}

	if c.fix && string(fixed) != string(content) {
		fi, err := os.Stat(r.Filename)
		if err != nil {
			return n, err
		}

		if err := os.WriteFile(r.Filename, fixed, fi.Mode().Perm()); err != nil {
			return n, err
		}
	}

	return n, nil
}

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

package clangast

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"slices"
	"strings"
)

// DefaultClang is the compiler driver used when none is configured.
const DefaultClang = "clang++"

// Dumper produces the AST of a translation unit.
type Dumper interface {
	Dump(ctx context.Context, filename string) (*Node, error)
}

// Command runs clang to dump the AST of a file.
type Command struct {
	// Path is the compiler driver, [DefaultClang] when empty.
	Path string

	// Args are extra compiler arguments like include paths, defines and the language standard.
	Args []string
}

// Dump runs clang with -ast-dump=json on filename and decodes the result.
//
// The dump is produced even for files with errors, in which case clang exits with a non-zero status.
// Such a dump is still used as long as it decodes.
func (c Command) Dump(ctx context.Context, filename string) (*Node, error) {
	path := c.Path
	if path == "" {
		path = DefaultClang
	}

	args := slices.Concat([]string{"-fsyntax-only", "-Xclang", "-ast-dump=json"}, c.Args, []string{filename})

	cmd := exec.CommandContext(ctx, path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("can't run %s: %w", path, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("can't run %s: %w", path, err)
	}

	root, decodeErr := Decode(stdout)
	_, _ = io.Copy(io.Discard, stdout) // unblock clang before waiting
	waitErr := cmd.Wait()

	if decodeErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, errors.Join(decodeErr, clangError(path, waitErr, &stderr))
	}

	if waitErr != nil {
		slog.DebugContext(ctx, "clang reported errors",
			slog.String("file", filename),
			slog.String("stderr", strings.TrimSpace(stderr.String())))
	}

	return root, nil
}

func clangError(path string, err error, stderr *bytes.Buffer) error {
	if err == nil {
		return nil
	}

	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return fmt.Errorf("%s: %w", path, err)
	}

	return fmt.Errorf("%s: %w\n%s", path, err, msg)
}

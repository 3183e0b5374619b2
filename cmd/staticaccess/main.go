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

// Command staticaccess reports static C++ members accessed through an instance
// and optionally rewrites them to qualified names.
//
// Usage:
//
//	staticaccess [flags] file... [-- clang-args]
//
// Arguments after -- are passed to clang, for example include paths, defines
// and the language standard. Settings are read from the nearest .clang-tidy
// file unless --config names one; command line flags take precedence.
//
// The exit status is 0 when no diagnostics were reported, 1 when there were
// some and 2 on errors.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(newCommand(os.Stdout, os.Stderr).execute(context.Background(), os.Args[1:]))
}

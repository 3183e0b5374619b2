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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClangTidyFile is the name of the clang-tidy configuration file.
const ClangTidyFile = ".clang-tidy"

// Option keys understood below the [CheckName] prefix.
const (
	keyNestingThreshold = "NameSpecifierNestingThreshold"
	keyIgnoreMacros     = "IgnoreMacros"
	keyConservative     = "Conservative"
)

// ErrInvalidOption is returned for check options with unparsable values.
var ErrInvalidOption = errors.New("invalid check option")

// CheckOptions are the rule settings found in a .clang-tidy file.
// Nil fields were not configured.
type CheckOptions struct {
	MaxDepth     *int
	IgnoreMacros *bool
	Conservative *bool
}

// Apply overrides the given settings with all configured options.
func (c CheckOptions) Apply(maxDepth *int, behaviors *Behaviors) {
	if c.MaxDepth != nil {
		*maxDepth = *c.MaxDepth
	}

	if c.IgnoreMacros != nil {
		behaviors.Set(IgnoreMacros, *c.IgnoreMacros)
	}

	if c.Conservative != nil {
		behaviors.Set(Conservative, *c.Conservative)
	}
}

type clangTidy struct {
	CheckOptions yaml.Node `yaml:"CheckOptions"`
}

// ReadClangTidy parses the CheckOptions section of a .clang-tidy file.
//
// Both the list form (- key: ..., value: ...) and the mapping form are accepted.
// Options of other checks are ignored.
func ReadClangTidy(r io.Reader) (CheckOptions, error) {
	var (
		c    clangTidy
		opts CheckOptions
	)

	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil // empty file
		}

		return opts, fmt.Errorf("can't parse %s: %w", ClangTidyFile, err)
	}

	pairs, err := optionPairs(&c.CheckOptions)
	if err != nil {
		return opts, err
	}

	for _, kv := range pairs {
		name, ok := strings.CutPrefix(kv[0], CheckName+".")
		if !ok {
			continue
		}

		if err := opts.set(name, kv[1]); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// LoadClangTidy reads the check options from the named file.
func LoadClangTidy(name string) (CheckOptions, error) {
	f, err := os.Open(name)
	if err != nil {
		return CheckOptions{}, err
	}
	defer f.Close()

	return ReadClangTidy(f)
}

// FindClangTidy searches dir and its parents for a .clang-tidy file.
func FindClangTidy(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		name := filepath.Join(dir, ClangTidyFile)
		if fi, err := os.Stat(name); err == nil && fi.Mode().IsRegular() {
			return name, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

func optionPairs(n *yaml.Node) ([][2]string, error) {
	var pairs [][2]string

	switch n.Kind {
	case 0: // not present
		return nil, nil

	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			pairs = append(pairs, [2]string{n.Content[i].Value, n.Content[i+1].Value})
		}

	case yaml.SequenceNode:
		for _, item := range n.Content {
			var kv struct {
				Key   string `yaml:"key"`
				Value string `yaml:"value"`
			}
			if err := item.Decode(&kv); err != nil {
				return nil, fmt.Errorf("can't parse CheckOptions entry at line %d: %w", item.Line, err)
			}

			pairs = append(pairs, [2]string{kv.Key, kv.Value})
		}

	default:
		return nil, fmt.Errorf("CheckOptions at line %d: %w: expected list or mapping", n.Line, ErrInvalidOption)
	}

	return pairs, nil
}

func (c *CheckOptions) set(name, value string) error {
	switch name {
	case keyNestingThreshold:
		depth, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || depth < 0 {
			return fmt.Errorf("%w %s.%s: %q", ErrInvalidOption, CheckName, name, value)
		}

		c.MaxDepth = &depth

	case keyIgnoreMacros:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w %s.%s: %q", ErrInvalidOption, CheckName, name, value)
		}

		c.IgnoreMacros = &b

	case keyConservative:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w %s.%s: %q", ErrInvalidOption, CheckName, name, value)
		}

		c.Conservative = &b
	}

	return nil
}

// parseBool accepts the boolean spellings of clang-tidy.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on", "yes":
		return true, nil

	case "false", "0", "off", "no":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: s, Err: strconv.ErrSyntax}
}

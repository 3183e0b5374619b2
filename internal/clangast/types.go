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
	"strings"

	"fillmore-labs.com/staticaccess/internal/model"
)

func isDecl(kind string) bool {
	return strings.HasSuffix(kind, "Decl")
}

func isRecord(kind string) bool {
	switch kind {
	case "CXXRecordDecl", "RecordDecl", "ClassTemplateSpecializationDecl", "ClassTemplatePartialSpecializationDecl":
		return true

	default:
		return false
	}
}

func isFunction(kind string) bool {
	switch kind {
	case "FunctionDecl", "CXXMethodDecl", "CXXConstructorDecl", "CXXDestructorDecl", "CXXConversionDecl", "CXXDeductionGuideDecl":
		return true

	default:
		return false
	}
}

// declaresType reports whether declarations of kind introduce a name usable before "::".
func declaresType(kind string) bool {
	switch kind {
	case "NamespaceDecl", "NamespaceAliasDecl", "TypedefDecl", "TypeAliasDecl", "TypeAliasTemplateDecl",
		"ClassTemplateDecl", "EnumDecl", "TemplateTypeParmDecl", "TemplateTemplateParmDecl",
		"UsingDecl", "UsingShadowDecl":
		return true

	default:
		return isRecord(kind)
	}
}

// isContext reports whether declarations of kind enclose access sites.
func isContext(kind string) bool {
	return isRecord(kind) || isFunction(kind) || kind == "NamespaceDecl" || kind == "TranslationUnitDecl"
}

func desugared(t *QualType) string {
	if t.DesugaredQualType != "" {
		return t.DesugaredQualType
	}

	return t.QualType
}

// cudaBuiltin reports whether t is one of the types of threadIdx, blockIdx, blockDim or gridDim.
func cudaBuiltin(t *QualType) bool {
	return t != nil && strings.HasPrefix(baseName(desugared(t)), "__cuda_builtin_")
}

var (
	typeSuffixes = [...]string{"*", "&", " const", " volatile", " __restrict", " restrict"}
	typePrefixes = [...]string{"const ", "volatile ", "struct ", "class ", "union ", "enum "}
)

// baseName strips cv-qualifiers, indirections and elaborated type keywords from a printed type.
func baseName(t string) string {
	t = strings.TrimSpace(t)

	for {
		prev := t

		for _, suffix := range typeSuffixes {
			t = strings.TrimSpace(strings.TrimSuffix(t, suffix))
		}

		for _, prefix := range typePrefixes {
			t = strings.TrimPrefix(t, prefix)
		}

		if t == prev {
			return t
		}
	}
}

// indirection counts the pointer and reference declarators of a printed type.
func indirection(t string) int {
	depth, count := 0, 0

	for _, c := range t {
		switch c {
		case '<', '(', '[':
			depth++

		case '>', ')', ']':
			depth--

		case '*', '&':
			if depth == 0 {
				count++
			}
		}
	}

	return count
}

// indirect reports whether a printed type is a pointer, reference or array.
func indirect(t string) bool {
	return indirection(t) > 0 || strings.HasSuffix(strings.TrimSpace(t), "]")
}

// splitScopes splits a qualified name at "::" outside of template argument lists.
func splitScopes(name string) []string {
	var (
		segments []string
		depth    int
		start    int
	)

	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '<', '(':
			depth++

		case '>', ')':
			depth--

		case ':':
			if depth == 0 && i+1 < len(name) && name[i+1] == ':' {
				if i > start {
					segments = append(segments, name[start:i])
				}

				start = i + 2
				i++
			}
		}
	}

	if start < len(name) {
		segments = append(segments, name[start:])
	}

	if len(segments) == 0 {
		return []string{name}
	}

	return segments
}

func lastSegment(name string) string {
	segments := splitScopes(name)
	return segments[len(segments)-1]
}

// scanMember finds the member name after the access operator following offset from.
func scanMember(src []byte, from int, name string) (model.Range, bool) {
	i := skipSpace(src, from)

	switch {
	case bytes.HasPrefix(src[i:], []byte("->")):
		i += 2

	case i < len(src) && src[i] == '.':
		i++

	default:
		return model.Range{}, false
	}

	i = skipSpace(src, i)

	if kw := "template"; bytes.HasPrefix(src[i:], []byte(kw)) && !identByte(src, i+len(kw)) {
		i = skipSpace(src, i+len(kw))
	}

	if !bytes.HasPrefix(src[i:], []byte(name)) || identByte(src, i+len(name)) {
		return model.Range{}, false
	}

	return model.Range{Start: i, End: i + len(name)}, true
}

// skipSpace skips white space, line continuations and comments.
func skipSpace(src []byte, i int) int {
	i = min(max(i, 0), len(src))

	for i < len(src) {
		switch {
		case src[i] == ' ', src[i] == '\t', src[i] == '\n', src[i] == '\r', src[i] == '\f', src[i] == '\v':
			i++

		case src[i] == '\\' && i+1 < len(src) && (src[i+1] == '\n' || src[i+1] == '\r'):
			i += 2

		case bytes.HasPrefix(src[i:], []byte("//")):
			end := bytes.IndexByte(src[i:], '\n')
			if end < 0 {
				return len(src)
			}

			i += end + 1

		case bytes.HasPrefix(src[i:], []byte("/*")):
			end := bytes.Index(src[i+2:], []byte("*/"))
			if end < 0 {
				return len(src)
			}

			i += end + 4

		default:
			return i
		}
	}

	return i
}

func identByte(src []byte, i int) bool {
	if i < 0 || i >= len(src) {
		return false
	}

	c := src[i]

	return c == '_' || c == '$' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c >= 0x80
}

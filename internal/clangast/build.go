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
	"context"
	"slices"
	"strings"

	"fillmore-labs.com/staticaccess/internal/model"
)

// Load dumps filename with d and builds its unit.
func Load(ctx context.Context, d Dumper, filename string, content []byte) (*model.Unit, error) {
	root, err := d.Dump(ctx, filename)
	if err != nil {
		return nil, err
	}

	return Build(root, filename, content)
}

// Build extracts the member accesses spelled in filename from the resolved dump rooted at root.
//
// Template patterns are traversed, implicit instantiations and implicit declarations are not.
func Build(root *Node, filename string, content []byte) (*model.Unit, error) {
	if root == nil || root.Kind != "TranslationUnitDecl" {
		return nil, ErrNotTranslationUnit
	}

	b := &builder{
		main:    filename,
		content: content,
		decls:   make(map[string]*decl),
		usings:  make(map[string][]*decl),
		skip:    make(map[*Node]struct{}),
	}

	b.index(root, nil)
	b.traverse(root, nil)

	return &model.Unit{Filename: filename, Content: content, Accesses: b.accesses}, nil
}

// decl is an indexed declaration.
type decl struct {
	node     *Node
	parent   *decl // lexical
	children []*decl
}

type builder struct {
	main    string
	content []byte

	decls      map[string]*decl
	usings     map[string][]*decl  // enum id → records re-exporting its enumerators
	namespaces map[string][]string // namespace → type names over all its definitions
	skip       map[*Node]struct{}  // instantiations

	accesses []model.Access
}

// maxChain bounds walks along declaration contexts.
const maxChain = 256

func (b *builder) index(n *Node, parent *decl) {
	if n == nil {
		return
	}

	d := parent
	if isDecl(n.Kind) && n.ID != "" {
		d = b.register(n, parent)
	}

	if n.Kind == "UsingEnumDecl" && n.Target != nil && parent != nil && isRecord(parent.node.Kind) {
		b.usings[n.Target.ID] = append(b.usings[n.Target.ID], parent)
	}

	pattern := true

	for _, c := range n.Inner {
		switch {
		case c == nil || c.Loc == nil:

		case n.Kind == "ClassTemplateDecl" && c.Kind == "ClassTemplateSpecializationDecl",
			n.Kind == "VarTemplateDecl" && c.Kind == "VarTemplateSpecializationDecl":
			b.skip[c] = struct{}{}

		case n.Kind == "FunctionTemplateDecl" && isFunction(c.Kind):
			if !pattern {
				b.skip[c] = struct{}{}
			}

			pattern = false
		}

		b.index(c, d)
	}
}

// register indexes a declaration. A bare reference never replaces a full declaration.
func (b *builder) register(n *Node, parent *decl) *decl {
	if old, ok := b.decls[n.ID]; ok && n.Loc == nil {
		return old
	}

	d := &decl{node: n, parent: parent}
	b.decls[n.ID] = d

	if parent != nil && n.Loc != nil {
		parent.children = append(parent.children, d)
	}

	return d
}

// semantic returns the semantic parent of d, which differs from the lexical one for out-of-line definitions.
func (b *builder) semantic(d *decl) *decl {
	if id := d.node.ParentDeclContextID; id != "" {
		if p, ok := b.decls[id]; ok {
			return p
		}
	}

	return d.parent
}

func (b *builder) traverse(n *Node, ctx *decl) {
	if n == nil {
		return
	}

	if _, ok := b.skip[n]; ok {
		return
	}

	if isDecl(n.Kind) {
		if n.IsImplicit || (n.Kind != "TranslationUnitDecl" && !b.spelled(n)) {
			return
		}

		if d, ok := b.decls[n.ID]; ok && d.node == n && isContext(n.Kind) {
			ctx = d
		}
	}

	switch n.Kind {
	case "MemberExpr":
		b.memberExpr(n, ctx)

	case "CXXDependentScopeMemberExpr", "UnresolvedMemberExpr":
		b.dependentMemberExpr(n, ctx)

	case "MSPropertyRefExpr":
		b.propertyRefExpr(n, ctx)

	case "PseudoObjectExpr":
		if len(n.Inner) > 0 {
			b.traverse(n.Inner[0], ctx) // syntactic form
		}

		return

	case "CXXDefaultArgExpr", "CXXDefaultInitExpr":
		return
	}

	for _, c := range n.Inner {
		b.traverse(c, ctx)
	}
}

// spelled reports whether the declaration n is located in the main file.
func (b *builder) spelled(n *Node) bool {
	l := n.Loc.Expansion()
	if !l.Valid() && n.Range != nil {
		l = n.Range.Begin.Expansion()
	}

	return b.inMain(l)
}

func (b *builder) inMain(l *BareLoc) bool {
	return l.Valid() && l.File == b.main
}

// span maps a source range to byte offsets of the main file.
func (b *builder) span(r *SourceRange) (model.Range, bool) {
	if r == nil {
		return model.Range{}, false
	}

	begin, end := r.Begin.Expansion(), r.End.Expansion()
	if !b.inMain(begin) || !b.inMain(end) {
		return model.Range{}, false
	}

	rng := model.Range{Start: begin.Offset, End: end.End()}
	if !rng.Valid() || rng.End > len(b.content) {
		return model.Range{}, false
	}

	return rng, true
}

func (b *builder) memberExpr(n *Node, ctx *decl) {
	rng, ok := b.span(n.Range)
	if !ok {
		return
	}

	base := explicitBase(n)
	d := b.decls[n.ReferencedMemberDecl]

	a := model.Access{
		Operator: operator(n.IsArrow),
		Range:    rng,
		Macro:    n.Range.Begin.Macro() || n.Range.End.Macro(),
	}

	a.Site, a.Declared, a.Local = b.site(ctx)
	a.Name = b.nameRange(n, base, n.Name)

	if base != nil {
		a.Base = b.expr(base)
	}

	baseType := exprType(n)
	if m := b.member(d, baseType); m != nil {
		a.Member = m
		a.Spelling = b.spelling(baseType, d)
		a.DependentContext = b.dependentContext(d, ctx)
	}

	b.accesses = append(b.accesses, a)
}

func (b *builder) dependentMemberExpr(n *Node, ctx *decl) {
	rng, ok := b.span(n.Range)
	if !ok {
		return
	}

	name := n.Member
	if name == "" {
		name = n.Name
	}

	base := explicitBase(n)

	a := model.Access{
		Operator:         operator(n.IsArrow),
		Member:           &model.Member{Name: name, Kind: model.Field, Dependent: true},
		Range:            rng,
		Name:             b.nameRange(n, base, name),
		Macro:            n.Range.Begin.Macro() || n.Range.End.Macro(),
		DependentContext: true,
	}

	a.Site, a.Declared, a.Local = b.site(ctx)

	if base != nil {
		a.Base = b.expr(base)
	}

	b.accesses = append(b.accesses, a)
}

// propertyRefExpr records accesses of declspec properties, which the CUDA builtin coordinates are.
func (b *builder) propertyRefExpr(n *Node, ctx *decl) {
	rng, ok := b.span(n.Range)
	if !ok {
		return
	}

	base := explicitBase(n)
	name := b.nameRange(n, base, "")

	a := model.Access{
		Operator: operator(n.IsArrow),
		Member: &model.Member{
			Name:   string(b.content[name.Start:name.End]),
			Kind:   model.Field,
			Pseudo: cudaBuiltin(exprType(n)),
		},
		Range: rng,
		Name:  name,
		Macro: n.Range.Begin.Macro() || n.Range.End.Macro(),
	}

	a.Site, a.Declared, a.Local = b.site(ctx)

	if base != nil {
		a.Base = b.expr(base)
	}

	b.accesses = append(b.accesses, a)
}

// explicitBase returns the object expression of a member access, or nil when it is an implicit this.
func explicitBase(n *Node) *Node {
	if len(n.Inner) == 0 {
		return nil
	}

	base := n.Inner[0]
	if base.Kind == "CXXThisExpr" && base.Implicit {
		return nil
	}

	return base
}

// exprType returns the type of the object expression of the member access n.
func exprType(n *Node) *QualType {
	if len(n.Inner) == 0 {
		return nil
	}

	return n.Inner[0].Type
}

func operator(arrow bool) model.Operator {
	if arrow {
		return model.Arrow
	}

	return model.Dot
}

// nameRange locates the member name token of the access n.
func (b *builder) nameRange(n, base *Node, name string) model.Range {
	end := n.Range.End.Expansion()
	last := model.Range{Start: end.Offset, End: min(end.End(), len(b.content))}

	if base == nil || base.Range == nil || name == "" || n.Range.End.Macro() {
		return last
	}

	from := base.Range.End.Expansion()
	if !b.inMain(from) {
		return last
	}

	if r, ok := scanMember(b.content, from.End(), name); ok && r.End <= last.End {
		return r
	}

	return last
}

// member builds the member declaration d, referenced through an object of type baseType.
func (b *builder) member(d *decl, baseType *QualType) *model.Member {
	if d == nil {
		return nil
	}

	n := d.node
	m := &model.Member{Name: n.Name, Pseudo: cudaBuiltin(baseType)}

	switch n.Kind {
	case "VarDecl":
		m.Kind, m.Static = model.Field, true

	case "FieldDecl", "IndirectFieldDecl", "MSPropertyDecl":
		m.Kind = model.Field

	case "CXXMethodDecl":
		m.Kind, m.Static = model.Method, b.static(d)

	case "CXXConstructorDecl", "CXXDestructorDecl", "CXXConversionDecl":
		m.Kind = model.Method

	case "EnumConstantDecl":
		m.Kind = model.Enumerator
		m.Scopes = b.enumeratorScopes(d, baseType)

		return m

	default:
		return nil
	}

	m.Scopes = b.scopes(b.semantic(d))

	return m
}

// static reports whether a method or one of its previous declarations is declared static.
func (b *builder) static(d *decl) bool {
	for range maxChain {
		if d.node.StorageClass == "static" {
			return true
		}

		prev, ok := b.decls[d.node.PreviousDecl]
		if !ok {
			return false
		}

		d = prev
	}

	return false
}

// enumeratorScopes returns the scopes an enumerator is reachable through.
//
// Enumerators of an enum nested in a class are reachable through the class. Enumerators of other enums
// are reachable through classes re-exporting them with a using-enum declaration. When several classes do,
// the one named by the object type wins.
func (b *builder) enumeratorScopes(d *decl, baseType *QualType) []model.Scope {
	enum := b.semantic(d)
	if enum == nil {
		return nil
	}

	if owner := b.semantic(enum); owner == nil || !isRecord(owner.node.Kind) {
		if records := b.usings[enum.node.ID]; len(records) > 0 {
			r := records[0]

			if baseType != nil {
				want := lastSegment(baseName(desugared(baseType)))
				for _, c := range records {
					if b.recordScope(c).Name == want {
						r = c
						break
					}
				}
			}

			return b.scopes(r)
		}
	}

	return b.scopes(enum)
}

// scopes returns the scope chain starting at d, innermost first. The chain ends at a function or the translation unit.
func (b *builder) scopes(d *decl) []model.Scope {
	var chain []model.Scope

	for i := 0; d != nil && i < maxChain; d, i = b.semantic(d), i+1 {
		n := d.node

		switch {
		case isRecord(n.Kind):
			chain = append(chain, b.recordScope(d))

		case n.Kind == "NamespaceDecl":
			chain = append(chain, namespaceScope(n))

		case n.Kind == "EnumDecl":
			if n.ScopedEnumTag != "" {
				chain = append(chain, model.Type(n.Name))
			}

		case isFunction(n.Kind), n.Kind == "TranslationUnitDecl":
			return chain
		}
	}

	return chain
}

// site returns the scopes enclosing an access in the context ctx, innermost first, with the type
// and namespace names declared in each of them and those declared in enclosing functions.
func (b *builder) site(ctx *decl) (scopes []model.Scope, declared [][]string, local []string) {
	for i := 0; ctx != nil && isFunction(ctx.node.Kind) && i < maxChain; ctx, i = b.semantic(ctx), i+1 {
		local = append(local, typeNames(ctx)...)
	}

	for i := 0; ctx != nil && i < maxChain; ctx, i = b.semantic(ctx), i+1 {
		n := ctx.node

		switch {
		case isRecord(n.Kind):
			scopes = append(scopes, b.recordScope(ctx))
			declared = append(declared, typeNames(ctx))

		case n.Kind == "NamespaceDecl":
			scopes = append(scopes, namespaceScope(n))
			declared = append(declared, b.namespaceNames(ctx))

		case isFunction(n.Kind), n.Kind == "TranslationUnitDecl":
			return scopes, declared, local

		case len(declared) > 0: // templates and linkage specifications
			last := len(declared) - 1
			declared[last] = slices.Concat(declared[last], typeNames(ctx))

		default:
			local = append(local, typeNames(ctx)...)
		}
	}

	return scopes, declared, local
}

// typeNames returns the names declared in d that can start a nested name specifier.
func typeNames(d *decl) []string {
	var names []string

	for _, c := range d.children {
		if n := c.node; n.Name != "" && !n.IsImplicit && declaresType(n.Kind) {
			names = append(names, lastSegment(n.Name))
		}
	}

	return names
}

// namespaceNames returns the type names declared in every definition of the namespace d.
func (b *builder) namespaceNames(d *decl) []string {
	if b.namespaces == nil {
		b.namespaces = make(map[string][]string)

		for _, n := range b.decls {
			if n.node.Kind == "NamespaceDecl" && n.node.Loc != nil {
				key := namespaceKey(b.scopes(n))
				b.namespaces[key] = append(b.namespaces[key], typeNames(n)...)
			}
		}
	}

	return b.namespaces[namespaceKey(b.scopes(d))]
}

func namespaceKey(chain []model.Scope) string {
	var k strings.Builder
	for _, s := range chain {
		k.WriteString(s.String())
		k.WriteByte(0)
	}

	return k.String()
}

func namespaceScope(n *Node) model.Scope {
	if n.IsInline {
		return model.Inline(n.Name)
	}

	return model.NS(n.Name)
}

func (b *builder) recordScope(d *decl) model.Scope {
	n := d.node

	switch {
	case n.Name == "":
		return model.Instance(b.instanceAlias(d))

	case n.Kind == "ClassTemplateSpecializationDecl":
		return model.Type(n.Name + templateArgs(n))

	default:
		return model.Type(n.Name)
	}
}

// instanceAlias returns the first variable declared with the anonymous record d that is not a pointer, reference or array.
func (b *builder) instanceAlias(d *decl) string {
	if d.parent == nil || d.node.Range == nil {
		return ""
	}

	begin := d.node.Range.Begin.Expansion()

	for _, s := range d.parent.children {
		n := s.node
		if (n.Kind != "VarDecl" && n.Kind != "FieldDecl") || n.Range == nil || n.Type == nil {
			continue
		}

		if sb := n.Range.Begin.Expansion(); sb.File != begin.File || sb.Offset != begin.Offset {
			continue
		}

		if indirect(n.Type.QualType) {
			continue
		}

		return n.Name
	}

	return ""
}

// spelling returns the typedef or alias the object type was written with, if it can qualify the member d.
func (b *builder) spelling(t *QualType, d *decl) []model.Scope {
	if t == nil {
		return nil
	}

	if id := t.TypeAliasDeclID; id != "" {
		if a, ok := b.decls[id]; ok && a.node.Type != nil && !indirect(a.node.Type.QualType) {
			return append([]model.Scope{model.Type(a.node.Name)}, b.scopes(b.semantic(a))...)
		}
	}

	// clang omits the alias id for pointers and references to a typedef.
	if t.DesugaredQualType == "" || indirection(t.QualType) != indirection(t.DesugaredQualType) {
		return nil
	}

	spelled := baseName(t.QualType)
	if spelled == "" || spelled == baseName(t.DesugaredQualType) {
		return nil
	}

	segments := splitScopes(spelled)

	if owner := b.semantic(d); owner != nil && isRecord(owner.node.Kind) {
		if segments[len(segments)-1] == b.recordScope(owner).Name {
			return nil
		}
	}

	a := b.typedef(segments)
	if a == nil || a.node.Type == nil || indirect(a.node.Type.QualType) {
		return nil
	}

	return append([]model.Scope{model.Type(a.node.Name)}, b.scopes(b.semantic(a))...)
}

// typedef returns the only typedef or alias declaration whose name ends with segments, outermost first.
func (b *builder) typedef(segments []string) *decl {
	name, qualifier := segments[len(segments)-1], segments[:len(segments)-1]

	var found *decl

	for _, d := range b.decls {
		n := d.node
		if (n.Kind != "TypedefDecl" && n.Kind != "TypeAliasDecl") || n.Name != name || n.Loc == nil {
			continue
		}

		if !qualifies(qualifier, b.scopes(b.semantic(d))) {
			continue
		}

		if found != nil {
			return nil
		}

		found = d
	}

	return found
}

// qualifies reports whether the written qualifier, outermost first, names the innermost scopes of chain.
func qualifies(qualifier []string, chain []model.Scope) bool {
	if len(qualifier) > len(chain) {
		return false
	}

	for i, q := range slices.Backward(qualifier) {
		if chain[len(qualifier)-1-i].Name != q {
			return false
		}
	}

	return true
}

// dependentContext reports whether the member d belongs to a class template pattern that does not enclose ctx.
// Such a member can't be named without the template arguments.
func (b *builder) dependentContext(d *decl, ctx *decl) bool {
	r := b.semantic(d)
	for i := 0; r != nil && i < maxChain; r, i = b.semantic(r), i+1 {
		if isFunction(r.node.Kind) || r.node.Kind == "TranslationUnitDecl" {
			return false
		}

		if b.pattern(r) && !b.encloses(r, ctx) {
			return true
		}
	}

	return false
}

func (b *builder) pattern(r *decl) bool {
	switch r.node.Kind {
	case "ClassTemplatePartialSpecializationDecl":
		return true

	case "CXXRecordDecl":
		return r.parent != nil && r.parent.node.Kind == "ClassTemplateDecl"

	default:
		return false
	}
}

func (b *builder) encloses(r, ctx *decl) bool {
	for i := 0; ctx != nil && i < maxChain; ctx, i = b.semantic(ctx), i+1 {
		if ctx == r {
			return true
		}
	}

	return false
}

func templateArgs(n *Node) string {
	var args []string

	for _, c := range n.Inner {
		if c.Kind != "TemplateArgument" {
			continue
		}

		switch {
		case c.Type != nil:
			args = append(args, c.Type.QualType)

		case len(c.Value) > 0:
			args = append(args, c.ValueString())
		}
	}

	if len(args) == 0 {
		return ""
	}

	return "<" + strings.Join(args, ", ") + ">"
}

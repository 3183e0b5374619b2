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

package model

// ExprKind discriminates the shapes of an [Expr].
type ExprKind uint8

//go:generate go tool stringer -type ExprKind -trimprefix Expr -output exprkind_string.go
const (
	// ExprUnknown is an expression the host could not classify.
	ExprUnknown ExprKind = iota

	// ExprLiteral is a literal constant.
	ExprLiteral

	// ExprDeclRef is a reference to a variable or function, possibly qualified.
	ExprDeclRef

	// ExprThis is the this pointer.
	ExprThis

	// ExprMember is a member selection, Op is "." or "->".
	ExprMember

	// ExprParen is a parenthesized expression.
	ExprParen

	// ExprCast is a builtin conversion or an explicit cast without a user-defined conversion.
	ExprCast

	// ExprConversion is a conversion invoking a user-defined conversion function or constructor.
	ExprConversion

	// ExprUnary is a builtin unary operator, Op holds the operator.
	ExprUnary

	// ExprBinary is a builtin binary operator without side effects of its own.
	ExprBinary

	// ExprLogical is a short-circuit operator ("&&" or "||").
	ExprLogical

	// ExprConditional is the conditional operator.
	ExprConditional

	// ExprAssign is a simple or compound assignment.
	ExprAssign

	// ExprComma is the builtin comma operator.
	ExprComma

	// ExprSubscript is a builtin array subscript.
	ExprSubscript

	// ExprCall is a function or method call.
	ExprCall

	// ExprOperatorCall is an overloaded operator invocation, including an implicit operator->.
	ExprOperatorCall

	// ExprConstruct is a constructor call.
	ExprConstruct

	// ExprLambda is a lambda expression, Operands are the capture initializers.
	ExprLambda

	// ExprNew is a new-expression.
	ExprNew

	// ExprDelete is a delete-expression.
	ExprDelete

	// ExprThrow is a throw-expression.
	ExprThrow
)

// Expr is a base expression of a member access.
//
// It only models what is needed to decide whether evaluating the expression might have side effects.
type Expr struct {
	Kind ExprKind

	// Op is the operator spelling for operator expressions.
	Op string

	// Name is the referenced name for declaration references and member selections.
	Name string

	// Qualified marks declaration references written with a nested name specifier.
	Qualified bool

	// Volatile marks reads of volatile objects.
	Volatile bool

	// Operands are the sub-expressions in evaluation order.
	Operands []*Expr

	// Range is the source range of the expression.
	Range Range
}

// Ref returns a declaration reference expression.
func Ref(name string) *Expr {
	return &Expr{Kind: ExprDeclRef, Name: name}
}

// QualifiedRef returns a qualified declaration reference expression.
func QualifiedRef(name string) *Expr {
	return &Expr{Kind: ExprDeclRef, Name: name, Qualified: true}
}

// Op returns an expression of the given kind with operator spelling and operands.
func Op(kind ExprKind, op string, operands ...*Expr) *Expr {
	return &Expr{Kind: kind, Op: op, Operands: operands}
}

// Call returns a call expression with the callee as its first operand.
func Call(callee *Expr, args ...*Expr) *Expr {
	return &Expr{Kind: ExprCall, Operands: append([]*Expr{callee}, args...)}
}

// Select returns a member selection of name through base.
func Select(base *Expr, op Operator, name string) *Expr {
	return &Expr{Kind: ExprMember, Op: op.String(), Name: name, Operands: []*Expr{base}}
}

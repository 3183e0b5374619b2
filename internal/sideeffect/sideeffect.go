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

// Package sideeffect decides conservatively whether evaluating a base expression could be observable.
package sideeffect

import "fillmore-labs.com/staticaccess/internal/model"

// Possible reports whether evaluating e might have a side effect.
//
// The check is syntactic, there is no data flow: calls, overloaded operators,
// constructions, assignments, increments and volatile reads are effects. Operands
// of short-circuit and conditional operators are only evaluated on some paths,
// which does not make them any less observable, so they are inspected like every
// other operand. Unknown shapes count as effects.
func Possible(e *model.Expr) bool {
	if e == nil {
		return false
	}

	switch e.Kind {
	case model.ExprLiteral, model.ExprThis:
		return false

	case model.ExprDeclRef:
		return e.Volatile

	case model.ExprUnary:
		if mutating(e.Op) {
			return true
		}

		return anyOperand(e)

	case model.ExprMember, // pure selection
		model.ExprParen,
		model.ExprCast,
		model.ExprBinary,
		model.ExprSubscript,
		model.ExprComma,
		model.ExprLogical,     // short-circuit
		model.ExprConditional, // only one branch evaluated
		model.ExprLambda:      // creating the closure evaluates the captures
		return anyOperand(e)

	case model.ExprAssign,
		model.ExprCall,
		model.ExprOperatorCall, // includes an implicit operator->
		model.ExprConversion,
		model.ExprConstruct,
		model.ExprNew,
		model.ExprDelete,
		model.ExprThrow:
		return true

	default: // model.ExprUnknown
		return true
	}
}

func anyOperand(e *model.Expr) bool {
	for _, o := range e.Operands {
		if Possible(o) {
			return true
		}
	}

	return false
}

func mutating(op string) bool {
	switch op {
	case "++", "--":
		return true

	default:
		return false
	}
}

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
	"strings"

	"fillmore-labs.com/staticaccess/internal/model"
)

// expr maps an object expression to the model.
func (b *builder) expr(n *Node) *model.Expr {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case "MaterializeTemporaryExpr", "ExprWithCleanups", "CXXBindTemporaryExpr", "ConstantExpr",
		"SubstNonTypeTemplateParmExpr", "OpaqueValueExpr":
		if len(n.Inner) > 0 {
			return b.expr(n.Inner[len(n.Inner)-1])
		}
	}

	e := &model.Expr{Kind: exprKind(n), Range: b.exprRange(n)}

	switch e.Kind {
	case model.ExprDeclRef:
		if r := n.ReferencedDecl; r != nil {
			e.Name = r.Name
		}

		e.Qualified = strings.Contains(b.text(e.Range), "::")
		e.Volatile = n.Type != nil && volatile(n.Type.QualType)

	case model.ExprMember:
		e.Op = operator(n.IsArrow).String()
		e.Name = n.Name

	case model.ExprUnary, model.ExprBinary, model.ExprLogical, model.ExprAssign, model.ExprComma:
		e.Op = n.Opcode
	}

	for _, c := range n.Inner {
		if c == nil || isDecl(c.Kind) || c.Kind == "CompoundStmt" || c.Kind == "TemplateArgument" {
			continue
		}

		e.Operands = append(e.Operands, b.expr(c))
	}

	return e
}

func exprKind(n *Node) model.ExprKind {
	switch n.Kind {
	case "IntegerLiteral", "FloatingLiteral", "CharacterLiteral", "StringLiteral", "CXXBoolLiteralExpr",
		"CXXNullPtrLiteralExpr", "FixedPointLiteral", "ImaginaryLiteral", "GNUNullExpr", "SizeOfPackExpr",
		"UnaryExprOrTypeTraitExpr", "CXXNoexceptExpr", "TypeTraitExpr", "CXXScalarValueInitExpr",
		"ImplicitValueInitExpr", "CXXTypeidExpr":
		return model.ExprLiteral

	case "DeclRefExpr":
		return model.ExprDeclRef

	case "CXXThisExpr":
		return model.ExprThis

	case "MemberExpr", "CXXDependentScopeMemberExpr":
		return model.ExprMember

	case "ParenExpr":
		return model.ExprParen

	case "ImplicitCastExpr", "CStyleCastExpr", "CXXStaticCastExpr", "CXXFunctionalCastExpr",
		"CXXConstCastExpr", "CXXReinterpretCastExpr", "BuiltinBitCastExpr", "CXXAddrspaceCastExpr":
		switch n.CastKind {
		case "UserDefinedConversion", "ConstructorConversion":
			return model.ExprConversion

		default:
			return model.ExprCast
		}

	case "UnaryOperator":
		return model.ExprUnary

	case "BinaryOperator":
		switch n.Opcode {
		case "&&", "||":
			return model.ExprLogical

		case "=":
			return model.ExprAssign

		case ",":
			return model.ExprComma

		default:
			return model.ExprBinary
		}

	case "CompoundAssignOperator":
		return model.ExprAssign

	case "ConditionalOperator", "BinaryConditionalOperator":
		return model.ExprConditional

	case "ArraySubscriptExpr":
		return model.ExprSubscript

	case "CallExpr", "CXXMemberCallExpr", "UserDefinedLiteral", "CUDAKernelCallExpr", "CXXDynamicCastExpr":
		return model.ExprCall

	case "CXXOperatorCallExpr":
		return model.ExprOperatorCall

	case "CXXConstructExpr", "CXXTemporaryObjectExpr", "CXXInheritedCtorInitExpr":
		return model.ExprConstruct

	case "LambdaExpr":
		return model.ExprLambda

	case "CXXNewExpr":
		return model.ExprNew

	case "CXXDeleteExpr":
		return model.ExprDelete

	case "CXXThrowExpr":
		return model.ExprThrow

	default:
		return model.ExprUnknown
	}
}

// exprRange returns the main file range of n, or an empty range at -1 when it has none.
func (b *builder) exprRange(n *Node) model.Range {
	if rng, ok := b.span(n.Range); ok {
		return rng
	}

	return model.Range{Start: -1, End: -1}
}

func (b *builder) text(r model.Range) string {
	if !r.Valid() || r.End > len(b.content) {
		return ""
	}

	return string(b.content[r.Start:r.End])
}

// volatile reports whether a printed type is a volatile object type.
func volatile(t string) bool {
	return indirection(t) == 0 && (strings.HasPrefix(t, "volatile ") || strings.Contains(t, " volatile"))
}

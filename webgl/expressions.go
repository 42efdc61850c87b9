// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

import (
	"strings"

	"github.com/gogpu/voidshade/builtin"
	"github.com/gogpu/voidshade/vsl"
)

// intrinsicRenames maps DSL intrinsic names to their WebGL1 equivalents.
// The modern texture() overloads do not exist in GLSL ES 1.0.
var intrinsicRenames = map[string]string{
	"texture":    "texture2D",
	"textureLod": "texture2DLodEXT",
}

// opText maps operator token kinds to their GLSL spelling.
var opText = map[vsl.TokenKind]string{
	vsl.TokenPlus:                "+",
	vsl.TokenMinus:               "-",
	vsl.TokenStar:                "*",
	vsl.TokenSlash:               "/",
	vsl.TokenPercent:             "%",
	vsl.TokenAmpersand:           "&",
	vsl.TokenPipe:                "|",
	vsl.TokenCaret:               "^",
	vsl.TokenTilde:               "~",
	vsl.TokenBang:                "!",
	vsl.TokenEqualEqual:          "==",
	vsl.TokenBangEqual:           "!=",
	vsl.TokenLess:                "<",
	vsl.TokenLessEqual:           "<=",
	vsl.TokenGreater:             ">",
	vsl.TokenGreaterEqual:        ">=",
	vsl.TokenAmpAmp:              "&&",
	vsl.TokenPipePipe:            "||",
	vsl.TokenLessLess:            "<<",
	vsl.TokenGreaterGreater:      ">>",
	vsl.TokenPlusPlus:            "++",
	vsl.TokenMinusMinus:          "--",
	vsl.TokenEqual:               "=",
	vsl.TokenPlusEqual:           "+=",
	vsl.TokenMinusEqual:          "-=",
	vsl.TokenStarEqual:           "*=",
	vsl.TokenSlashEqual:          "/=",
	vsl.TokenPercentEqual:        "%=",
	vsl.TokenAmpEqual:            "&=",
	vsl.TokenPipeEqual:           "|=",
	vsl.TokenCaretEqual:          "^=",
	vsl.TokenLessLessEqual:       "<<=",
	vsl.TokenGreaterGreaterEqual: ">>=",
}

// writeExpr returns the GLSL text for an expression. Unrecognized node
// shapes never abort generation: they are recorded as errors and replaced
// with a placeholder comment so the surrounding shader stays debuggable.
func (w *Writer) writeExpr(expr vsl.Expr) string {
	switch e := expr.(type) {
	case *vsl.Literal:
		return w.writeLiteral(e)
	case *vsl.Ident:
		return w.writeIdent(e)
	case *vsl.BinaryExpr:
		return "(" + w.writeExpr(e.Left) + " " + opText[e.Op] + " " + w.writeExpr(e.Right) + ")"
	case *vsl.UnaryExpr:
		if e.Postfix {
			return w.writeExpr(e.Operand) + opText[e.Op]
		}
		return opText[e.Op] + w.writeExpr(e.Operand)
	case *vsl.AssignExpr:
		return "(" + w.writeExpr(e.Left) + " " + opText[e.Op] + " " + w.writeExpr(e.Right) + ")"
	case *vsl.TernaryExpr:
		return "(" + w.writeExpr(e.Condition) + " ? " + w.writeExpr(e.Then) + " : " + w.writeExpr(e.Else) + ")"
	case *vsl.CallExpr:
		return w.writeCall(e)
	case *vsl.IndexExpr:
		return w.writeExpr(e.Expr) + "[" + w.writeExpr(e.Index) + "]"
	case *vsl.MemberExpr:
		return w.writeExpr(e.Expr) + "." + e.Member
	case nil:
		w.addError(vsl.Span{}, "missing expression")
		return "/* missing expression */"
	default:
		w.addError(expr.Pos(), "unsupported expression kind: %T", expr)
		return "/* unsupported expression */"
	}
}

// writeExprTop writes an expression in statement position, where the outer
// parentheses of an assignment are redundant.
func (w *Writer) writeExprTop(expr vsl.Expr) string {
	if a, ok := expr.(*vsl.AssignExpr); ok {
		return w.writeExpr(a.Left) + " " + opText[a.Op] + " " + w.writeExpr(a.Right)
	}
	return w.writeExpr(expr)
}

// writeLiteral writes a literal. A float literal without a decimal point
// or exponent gets ".0" appended so the emitted text is stable and always
// float-typed in GLSL.
func (w *Writer) writeLiteral(lit *vsl.Literal) string {
	if lit.Kind == vsl.TokenFloatLiteral && !strings.ContainsAny(lit.Value, ".eE") {
		return lit.Value + ".0"
	}
	return lit.Value
}

// writeIdent writes an identifier. Uniform-backed built-ins emit their
// mapped uniform name. Read-only varying-backed built-ins have no alias
// local in the entry-point preamble, so they read the varying directly.
// Every other built-in passes through unchanged since aliasing happens via
// the locals declared in the preamble.
func (w *Writer) writeIdent(ident *vsl.Ident) string {
	if v := builtin.Lookup(w.ast.Kind, ident.Name); v != nil {
		if v.IsUniform {
			return v.GLSLName
		}
		if v.IsVarying && !v.Writable {
			return v.GLSLName
		}
		return ident.Name
	}
	return escapeKeyword(ident.Name)
}

// constructorNames are type names that appear as callees of constructor
// and conversion calls. They must not go through keyword escaping.
var constructorNames = map[string]struct{}{
	"bool": {}, "int": {}, "float": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"mat2": {}, "mat3": {}, "mat4": {},
}

// writeCall writes a call expression, renaming the two version-sensitive
// texture intrinsics.
func (w *Writer) writeCall(call *vsl.CallExpr) string {
	callee := call.Callee
	if renamed, ok := intrinsicRenames[callee]; ok {
		callee = renamed
	} else if _, isCtor := constructorNames[callee]; !isCtor {
		callee = escapeKeyword(callee)
	}

	args := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		args = append(args, w.writeExpr(arg))
	}
	return callee + "(" + strings.Join(args, ", ") + ")"
}

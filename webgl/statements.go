// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

import (
	"github.com/gogpu/voidshade/vsl"
)

// writeStmt writes a single statement. Unrecognized statement shapes are
// recorded as non-fatal errors and replaced with a placeholder comment;
// generation always continues.
func (w *Writer) writeStmt(stmt vsl.Stmt) {
	switch s := stmt.(type) {
	case *vsl.BlockStmt:
		w.writeLine("{")
		w.pushIndent()
		w.writeBlockBody(s)
		w.popIndent()
		w.writeLine("}")

	case *vsl.VarDeclStmt:
		if s.Init != nil {
			w.writeLine("%s %s = %s;", s.Type, escapeKeyword(s.Name), w.writeExpr(s.Init))
		} else {
			w.writeLine("%s %s;", s.Type, escapeKeyword(s.Name))
		}

	case *vsl.ExprStmt:
		w.writeLine("%s;", w.writeExprTop(s.Expr))

	case *vsl.IfStmt:
		w.writeIf(s)

	case *vsl.ForStmt:
		w.writeFor(s)

	case *vsl.WhileStmt:
		w.writeLine("while (%s) {", w.writeExpr(s.Condition))
		w.pushIndent()
		w.writeBlockBody(s.Body)
		w.popIndent()
		w.writeLine("}")

	case *vsl.DoWhileStmt:
		w.writeLine("do {")
		w.pushIndent()
		w.writeBlockBody(s.Body)
		w.popIndent()
		w.writeLine("} while (%s);", w.writeExpr(s.Condition))

	case *vsl.ReturnStmt:
		if s.Value != nil {
			w.writeLine("return %s;", w.writeExpr(s.Value))
		} else {
			w.writeLine("return;")
		}

	case *vsl.BreakStmt:
		w.writeLine("break;")

	case *vsl.ContinueStmt:
		w.writeLine("continue;")

	case *vsl.DiscardStmt:
		w.writeLine("discard;")

	case nil:
		w.addError(vsl.Span{}, "missing statement")
		w.writeLine("/* missing statement */")

	default:
		w.addError(stmt.Pos(), "unsupported statement kind: %T", stmt)
		w.writeLine("/* unsupported statement */")
	}
}

// writeIf writes an if statement with else-if chains flattened.
func (w *Writer) writeIf(ifStmt *vsl.IfStmt) {
	w.writeLine("if (%s) {", w.writeExpr(ifStmt.Condition))
	w.pushIndent()
	w.writeBlockBody(ifStmt.Body)
	w.popIndent()

	for ifStmt.Else != nil {
		if elseIf, ok := ifStmt.Else.(*vsl.IfStmt); ok {
			w.writeLine("} else if (%s) {", w.writeExpr(elseIf.Condition))
			w.pushIndent()
			w.writeBlockBody(elseIf.Body)
			w.popIndent()
			ifStmt = elseIf
			continue
		}
		if block, ok := ifStmt.Else.(*vsl.BlockStmt); ok {
			w.writeLine("} else {")
			w.pushIndent()
			w.writeBlockBody(block)
			w.popIndent()
		}
		break
	}

	w.writeLine("}")
}

// writeFor writes a for loop. The init clause is rendered inline without
// its trailing semicolon.
func (w *Writer) writeFor(forStmt *vsl.ForStmt) {
	var init string
	switch s := forStmt.Init.(type) {
	case *vsl.VarDeclStmt:
		if s.Init != nil {
			init = s.Type + " " + escapeKeyword(s.Name) + " = " + w.writeExpr(s.Init)
		} else {
			init = s.Type + " " + escapeKeyword(s.Name)
		}
	case *vsl.ExprStmt:
		init = w.writeExprTop(s.Expr)
	case nil:
		// empty init clause
	default:
		w.addError(forStmt.Init.Pos(), "unsupported for-loop init kind: %T", forStmt.Init)
		init = "/* unsupported init */"
	}

	var cond string
	if forStmt.Condition != nil {
		cond = w.writeExpr(forStmt.Condition)
	}

	var update string
	if forStmt.Update != nil {
		update = w.writeExprTop(forStmt.Update)
	}

	w.writeLine("for (%s; %s; %s) {", init, cond, update)
	w.pushIndent()
	w.writeBlockBody(forStmt.Body)
	w.popIndent()
	w.writeLine("}")
}

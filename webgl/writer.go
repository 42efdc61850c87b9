// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

import (
	"fmt"
	"strings"

	"github.com/gogpu/voidshade/builtin"
	"github.com/gogpu/voidshade/vsl"
)

// Writer generates one GLSL ES 1.0 stage program from a shader AST. A
// writer is created fresh per stage per Compile call; it is never shared
// or reused, so concurrent compilations need no coordination.
type Writer struct {
	ast     *vsl.ShaderAST
	options *Options
	stage   builtin.StageMask

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int

	// Non-fatal generation errors
	errors []TranspileError

	// Set when user code calls textureLod anywhere that gets emitted.
	needsTextureLodExt bool
}

// newWriter creates a writer for the given stage.
func newWriter(ast *vsl.ShaderAST, options *Options, stage builtin.StageMask) *Writer {
	return &Writer{
		ast:                ast,
		options:            options,
		stage:              stage,
		needsTextureLodExt: usesTextureLod(ast),
	}
}

// String returns the generated GLSL source code.
func (w *Writer) String() string {
	return w.out.String()
}

// writeStage generates the complete stage program: preamble declarations
// first, then helper functions, then the entry point.
func (w *Writer) writeStage() {
	if w.stage == builtin.StageFragment && w.needsTextureLodExt {
		w.writeLine("#extension GL_EXT_shader_texture_lod : enable")
		w.writeLine("")
	}

	w.writePrecision()
	w.writePlatformUniforms()
	w.writeBuiltinUniforms()
	w.writeUserUniforms()
	w.writeVaryings()
	if w.stage == builtin.StageVertex {
		w.writeAttributes()
	}
	w.writeHelpers()

	if w.stage == builtin.StageVertex {
		w.writeVertexMain()
	} else {
		w.writeFragmentMain()
	}
}

// writePrecision writes the float precision qualifier. WebGL1 requires one
// in the fragment stage; emitting it in both keeps the stages symmetric.
func (w *Writer) writePrecision() {
	precision := "highp"
	if !w.options.ForceHighPrecision && w.stage == builtin.StageFragment {
		precision = "mediump"
	}
	w.writeLine("precision %s float;", precision)
	w.writeLine("")
}

// writePlatformUniforms writes the matrix uniforms the rendering backend
// binds on every draw. They never appear in the transpiled uniform list.
func (w *Writer) writePlatformUniforms() {
	if w.stage != builtin.StageVertex {
		return
	}
	w.writeLine("uniform mat4 modelMatrix;")
	w.writeLine("uniform mat4 modelViewMatrix;")
	w.writeLine("uniform mat4 projectionMatrix;")
	w.writeLine("uniform mat4 viewMatrix;")
	if w.ast.Kind == vsl.KindSpatial {
		w.writeLine("uniform mat3 normalMatrix;")
	}
	w.writeLine("")
}

// writeBuiltinUniforms writes the built-in uniforms visible in this stage.
func (w *Writer) writeBuiltinUniforms() {
	vars := builtin.Uniforms(w.ast.Kind, w.stage)
	for _, v := range vars {
		w.writeLine("uniform %s %s;", v.Type, v.GLSLName)
	}
	if len(vars) > 0 {
		w.writeLine("")
	}
}

// writeUserUniforms writes every user-declared uniform. They are emitted
// in both stages unconditionally; unused declarations are harmless.
func (w *Writer) writeUserUniforms() {
	for _, u := range w.ast.Uniforms {
		w.writeLine("uniform %s %s;", u.Type, escapeKeyword(u.Name))
	}
	if len(w.ast.Uniforms) > 0 {
		w.writeLine("")
	}
}

// writeVaryings writes the built-in varyings for this shader kind followed
// by the user-declared ones.
func (w *Writer) writeVaryings() {
	vars := builtin.Varyings(w.ast.Kind)
	for _, v := range vars {
		w.writeLine("varying %s %s;", v.Type, v.GLSLName)
	}
	for _, v := range w.ast.Varyings {
		w.writeLine("varying %s %s;", v.Type, escapeKeyword(v.Name))
	}
	if len(vars)+len(w.ast.Varyings) > 0 {
		w.writeLine("")
	}
}

// writeAttributes writes the vertex attribute declarations supplied by the
// platform geometry.
func (w *Writer) writeAttributes() {
	w.writeLine("attribute vec3 position;")
	if w.ast.Kind == vsl.KindSpatial {
		w.writeLine("attribute vec3 normal;")
	}
	w.writeLine("attribute vec2 uv;")
	w.writeLine("attribute vec4 color;")
	w.writeLine("")
}

// writeHelpers writes every user function that is not a stage entry point.
func (w *Writer) writeHelpers() {
	for _, fn := range w.ast.Helpers() {
		w.writeFunction(fn)
		w.writeLine("")
	}
}

// writeFunction writes a user helper function declaration and body.
func (w *Writer) writeFunction(fn *vsl.FunctionDecl) {
	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		if p.Qualifier != "" {
			params = append(params, fmt.Sprintf("%s %s %s", p.Qualifier, p.Type, escapeKeyword(p.Name)))
		} else {
			params = append(params, fmt.Sprintf("%s %s", p.Type, escapeKeyword(p.Name)))
		}
	}

	w.writeLine("%s %s(%s) {", fn.ReturnType, escapeKeyword(fn.Name), strings.Join(params, ", "))
	w.pushIndent()
	w.writeBlockBody(fn.Body)
	w.popIndent()
	w.writeLine("}")
}

// writeVertexMain assembles the vertex entry point: internal state from
// the platform attributes, user-facing aliases, the inlined user vertex()
// body, the varying copy-back, and the clip-space position.
func (w *Writer) writeVertexMain() {
	kind := w.ast.Kind

	w.writeLine("void main() {")
	w.pushIndent()

	// Alias locals exposed to the user body.
	if kind == vsl.KindCanvasItem {
		w.writeLine("vec2 VERTEX = position.xy;")
	} else {
		w.writeLine("vec3 VERTEX = position;")
	}
	if kind == vsl.KindSpatial {
		w.writeLine("vec3 NORMAL = normal;")
	}
	w.writeLine("vec2 UV = uv;")
	w.writeLine("vec4 COLOR = color;")
	w.writeLine("float POINT_SIZE = 1.0;")
	w.writeLine("")

	w.inlineEntryPoint("vertex")

	// Copy the (possibly user-modified) aliases into the varyings the
	// fragment stage observes.
	w.writeLine("vUv = UV;")
	w.writeLine("vColor = COLOR;")
	if kind == vsl.KindSpatial {
		w.writeLine("vNormal = normalMatrix * NORMAL;")
	}
	w.writeLine("gl_PointSize = POINT_SIZE;")
	if kind == vsl.KindCanvasItem {
		w.writeLine("gl_Position = projectionMatrix * modelViewMatrix * vec4(VERTEX, 0.0, 1.0);")
	} else {
		w.writeLine("gl_Position = projectionMatrix * modelViewMatrix * vec4(VERTEX, 1.0);")
	}

	// Auxiliary values for downstream effects: the model's world-space
	// origin and the normalized screen-space Y of that origin.
	w.writeLine("vModelOrigin = (modelMatrix * vec4(0.0, 0.0, 0.0, 1.0)).xyz;")
	w.writeLine("vec4 originClip = projectionMatrix * viewMatrix * vec4(vModelOrigin, 1.0);")
	w.writeLine("vOriginScreenY = (originClip.y / originClip.w) * 0.5 + 0.5;")

	w.popIndent()
	w.writeLine("}")
}

// writeFragmentMain assembles the fragment entry point: aliases from the
// interpolated varyings, the inlined user fragment() body, and the final
// pixel output.
func (w *Writer) writeFragmentMain() {
	kind := w.ast.Kind

	w.writeLine("void main() {")
	w.pushIndent()

	w.writeLine("vec2 UV = vUv;")
	w.writeLine("vec4 COLOR = vColor;")
	if kind == vsl.KindSpatial {
		w.writeLine("vec3 NORMAL = normalize(vNormal);")
	}
	w.writeLine("vec2 SCREEN_UV = gl_FragCoord.xy / screenSize;")
	if kind == vsl.KindSpatial {
		w.writeLine("vec3 ALBEDO = vec3(1.0);")
		w.writeLine("vec3 EMISSION = vec3(0.0);")
		w.writeLine("float ALPHA = 1.0;")
	}
	w.writeLine("")

	w.inlineEntryPoint("fragment")

	if kind == vsl.KindSpatial {
		w.writeLine("gl_FragColor = vec4(ALBEDO + EMISSION, ALPHA);")
	} else {
		w.writeLine("gl_FragColor = COLOR;")
	}

	w.popIndent()
	w.writeLine("}")
}

// inlineEntryPoint inlines the named user entry point body statement by
// statement at the current indentation, if the function was declared.
func (w *Writer) inlineEntryPoint(name string) {
	fn := w.ast.Function(name)
	if fn == nil || fn.Body == nil {
		return
	}
	w.writeBlockBody(fn.Body)
	w.writeLine("")
}

// writeBlockBody writes the statements of a block without the surrounding
// braces.
func (w *Writer) writeBlockBody(block *vsl.BlockStmt) {
	for _, stmt := range block.Statements {
		w.writeStmt(stmt)
	}
}

// addError records a non-fatal generation error.
func (w *Writer) addError(span vsl.Span, format string, args ...any) {
	w.errors = append(w.errors, TranspileError{
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	})
}

// Output helpers

// writeLine writes a line with indentation and newline.
//
//nolint:goprintffuncname
func (w *Writer) writeLine(format string, args ...any) {
	if format != "" {
		w.writeIndent()
	}
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// usesTextureLod reports whether any emitted user code calls textureLod.
// light() bodies are skipped since they are not code-generated.
func usesTextureLod(ast *vsl.ShaderAST) bool {
	for _, fn := range ast.Functions {
		if fn.Name == "light" {
			continue
		}
		if fn.Body != nil && stmtCallsTextureLod(fn.Body) {
			return true
		}
	}
	return false
}

func stmtCallsTextureLod(stmt vsl.Stmt) bool {
	switch s := stmt.(type) {
	case *vsl.BlockStmt:
		for _, inner := range s.Statements {
			if stmtCallsTextureLod(inner) {
				return true
			}
		}
	case *vsl.VarDeclStmt:
		return s.Init != nil && exprCallsTextureLod(s.Init)
	case *vsl.ExprStmt:
		return exprCallsTextureLod(s.Expr)
	case *vsl.IfStmt:
		if exprCallsTextureLod(s.Condition) || stmtCallsTextureLod(s.Body) {
			return true
		}
		return s.Else != nil && stmtCallsTextureLod(s.Else)
	case *vsl.ForStmt:
		if s.Init != nil && stmtCallsTextureLod(s.Init) {
			return true
		}
		if s.Condition != nil && exprCallsTextureLod(s.Condition) {
			return true
		}
		if s.Update != nil && exprCallsTextureLod(s.Update) {
			return true
		}
		return stmtCallsTextureLod(s.Body)
	case *vsl.WhileStmt:
		return exprCallsTextureLod(s.Condition) || stmtCallsTextureLod(s.Body)
	case *vsl.DoWhileStmt:
		return exprCallsTextureLod(s.Condition) || stmtCallsTextureLod(s.Body)
	case *vsl.ReturnStmt:
		return s.Value != nil && exprCallsTextureLod(s.Value)
	}
	return false
}

func exprCallsTextureLod(expr vsl.Expr) bool {
	switch e := expr.(type) {
	case *vsl.CallExpr:
		if e.Callee == "textureLod" {
			return true
		}
		for _, arg := range e.Args {
			if exprCallsTextureLod(arg) {
				return true
			}
		}
	case *vsl.BinaryExpr:
		return exprCallsTextureLod(e.Left) || exprCallsTextureLod(e.Right)
	case *vsl.UnaryExpr:
		return exprCallsTextureLod(e.Operand)
	case *vsl.AssignExpr:
		return exprCallsTextureLod(e.Left) || exprCallsTextureLod(e.Right)
	case *vsl.TernaryExpr:
		return exprCallsTextureLod(e.Condition) || exprCallsTextureLod(e.Then) || exprCallsTextureLod(e.Else)
	case *vsl.IndexExpr:
		return exprCallsTextureLod(e.Expr) || exprCallsTextureLod(e.Index)
	case *vsl.MemberExpr:
		return exprCallsTextureLod(e.Expr)
	}
	return false
}

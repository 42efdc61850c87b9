// Package voidshade provides a Pure Go VoidScript shader compiler.
//
// voidshade compiles VoidScript source code, a Godot-style shading
// language, to GLSL ES 1.0 shader programs suitable for WebGL 1.0:
//
//   - A vertex shader and a fragment shader, both complete programs
//   - A uniform list with hints, default values, and noise parameters
//   - Material options (blending, depth write, cull side, lights)
//
// The package provides a simple, high-level API for shader compilation as
// well as lower-level access to the individual compilation stages.
//
// Example usage:
//
//	source := `
//	shader_type canvas_item;
//
//	void fragment() {
//	    COLOR = vec4(UV, 0.0, 1.0);
//	}
//	`
//	shader, err := voidshade.Compile(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	upload(shader.VertexShader, shader.FragmentShader)
//
// For finer control, use the vsl package to parse and the webgl package
// to transpile:
//
//	ast, err := voidshade.Parse(source)
//	shader, err := webgl.Compile(ast, webgl.DefaultOptions())
package voidshade

import (
	"fmt"

	"github.com/gogpu/voidshade/vsl"
	"github.com/gogpu/voidshade/webgl"
)

// Compile compiles VoidScript source code to a WebGL1 shader using default
// options.
//
// This is the simplest way to compile a shader. For more control, use
// CompileWithOptions or the individual Parse/Transpile functions.
func Compile(source string) (*webgl.TranspiledShader, error) {
	return CompileWithOptions(source, webgl.DefaultOptions())
}

// CompileWithOptions compiles VoidScript source code to a WebGL1 shader
// with custom options.
//
// The compilation pipeline is:
//  1. Tokenize the source
//  2. Parse the tokens to an AST
//  3. Transpile the AST to GLSL ES 1.0 programs, uniforms, and material
//     options
//
// Parse errors stop the pipeline: no shader is produced from a source that
// did not parse.
func CompileWithOptions(source string, opts webgl.Options) (*webgl.TranspiledShader, error) {
	ast, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	shader, err := Transpile(ast, opts)
	if err != nil {
		return nil, fmt.Errorf("transpile error: %w", err)
	}

	return shader, nil
}

// Parse parses VoidScript source code to an AST (Abstract Syntax Tree).
//
// This is the first stage of compilation. The AST represents the syntactic
// structure of the shader: its kind, render modes, uniforms, varyings, and
// functions. Parsing collects as many errors as it can before giving up;
// when any occurred the returned error lists all of them.
func Parse(source string) (*vsl.ShaderAST, error) {
	lexer := vsl.NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenization error: %w", err)
	}

	parser := vsl.NewParser(tokens)
	ast, errs := parser.Parse()
	if errs.HasErrors() {
		return nil, errs
	}

	return ast, nil
}

// Transpile generates the WebGL1 shader programs from a parsed AST.
//
// This is the final stage of compilation. Unsupported constructs inside
// function bodies do not abort generation; they are recorded on the
// returned shader's Errors list and replaced with placeholder comments in
// the emitted text.
func Transpile(ast *vsl.ShaderAST, opts webgl.Options) (*webgl.TranspiledShader, error) {
	return webgl.Compile(ast, opts)
}

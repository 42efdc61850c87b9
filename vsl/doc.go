// Package vsl provides VoidScript shading language parsing.
//
// VoidScript is a Godot-style shading language for 2D canvas, 3D spatial,
// and particle materials. A shader unit opens with a mandatory
// shader_type declaration and may contain render modes, include
// directives, uniforms with hints, varyings, and functions.
//
// # Components
//
// The vsl package consists of several components:
//
//   - Lexer: Tokenizes VoidScript source code into tokens
//   - Parser: Parses tokens into an AST (Abstract Syntax Tree)
//   - AST: Type definitions for the abstract syntax tree
//
// # Usage
//
// To parse a VoidScript shader:
//
//	source := `
//	shader_type canvas_item;
//
//	void fragment() {
//	    COLOR = vec4(UV, 0.0, 1.0);
//	}
//	`
//
//	lexer := vsl.NewLexer(source)
//	tokens, err := lexer.Tokenize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	parser := vsl.NewParser(tokens)
//	ast, errs := parser.Parse()
//	if errs.HasErrors() {
//	    log.Fatal(errs)
//	}
//
// The parser resynchronizes at declaration boundaries after an error, so
// a single pass can report several diagnostics.
//
// # Supported Features
//
//   - Full lexical analysis, including #include directives
//   - Render mode and varying declarations
//   - Uniform declarations with hints (ranges, colors, texture roles,
//     procedural noise parameters) and default values
//   - Function declarations with in/out/inout parameter qualifiers
//   - Control flow (if, for, while, do-while, discard)
//   - All standard operators and expressions
package vsl

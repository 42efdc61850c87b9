// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package webgl provides a WebGL 1.0 backend for voidshade.
//
// This package generates GLSL ES 1.0 source code from a parsed VoidScript
// shader. A single compilation produces the complete material description
// a WebGL1 renderer needs:
//
//   - A vertex shader program
//   - A fragment shader program
//   - The uniform list (built-in uniforms first, then user uniforms with
//     their hints, defaults, and noise texture parameters)
//   - Derived material options (blending, depth write, cull side, lights)
//
// # Basic Usage
//
//	shader, err := webgl.Compile(ast, webgl.DefaultOptions())
//
// # Built-In Variables
//
// VoidScript exposes built-ins like TIME, UV, and COLOR. Uniform-backed
// built-ins are rewritten to their uniform names (TIME becomes time);
// the rest are aliased as locals in the generated main functions, so user
// code referencing them passes through unchanged.
//
// # Reserved Words
//
// GLSL ES 1.0 reserves keywords, future keywords, and the gl_ prefix.
// The backend automatically escapes conflicting identifier names by
// prefixing them with an underscore.
package webgl

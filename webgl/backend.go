// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

import (
	"errors"
	"fmt"

	"github.com/gogpu/voidshade/builtin"
	"github.com/gogpu/voidshade/vsl"
)

// Options configures GLSL ES 1.0 code generation.
type Options struct {
	// ForceHighPrecision emits highp float precision qualifiers. When
	// false, mediump is used in the fragment stage for wider device
	// compatibility.
	ForceHighPrecision bool
}

// DefaultOptions returns sensible default options for WebGL1 generation.
func DefaultOptions() Options {
	return Options{
		ForceHighPrecision: true,
	}
}

// TranspileError records a non-fatal code generation problem. Generation
// continues past it, leaving a placeholder comment in the output.
type TranspileError struct {
	Message string
	Span    vsl.Span
}

// Error implements the error interface.
func (e TranspileError) Error() string {
	if e.Span.Start.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// TranspiledUniform describes one uniform slot the caller must allocate and
// bind. Built-in uniforms appear first and are always present for a given
// shader kind, whether or not user code references them.
type TranspiledUniform struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	DefaultValue string           `json:"defaultValue,omitempty"`
	Hint         *vsl.Hint        `json:"hint,omitempty"`
	Noise        *vsl.NoiseParams `json:"noise,omitempty"`
	IsBuiltIn    bool             `json:"isBuiltIn"`
}

// TranspiledShader is the complete output of one compilation: two
// independently compilable GLSL ES 1.0 stage programs plus the metadata a
// rendering pipeline needs to bind them without re-parsing the text.
type TranspiledShader struct {
	VertexShader   string              `json:"vertexShader"`
	FragmentShader string              `json:"fragmentShader"`
	Uniforms       []TranspiledUniform `json:"uniforms"`
	Material       MaterialOptions     `json:"material"`
	Kind           vsl.ShaderKind      `json:"-"`
	Errors         []TranspileError    `json:"-"`
}

// Compile generates the vertex and fragment stage programs for the given
// shader AST. Generation never aborts on malformed nodes: problems are
// collected into the output's Errors list and a placeholder is emitted so
// the rest of the shader still compiles for debugging.
func Compile(ast *vsl.ShaderAST, options Options) (*TranspiledShader, error) {
	if ast == nil {
		return nil, errors.New("webgl: nil shader AST")
	}

	out := &TranspiledShader{
		Kind:     ast.Kind,
		Material: deriveMaterialOptions(ast.RenderModes),
	}

	// Uniform metadata is stage-independent; a throwaway writer transpiles
	// the declared default values.
	mw := newWriter(ast, &options, builtin.StageAll)
	out.Uniforms = mw.collectUniforms()

	vw := newWriter(ast, &options, builtin.StageVertex)
	vw.writeStage()
	out.VertexShader = vw.String()

	fw := newWriter(ast, &options, builtin.StageFragment)
	fw.writeStage()
	out.FragmentShader = fw.String()

	out.Errors = append(out.Errors, mw.errors...)
	out.Errors = append(out.Errors, vw.errors...)
	out.Errors = append(out.Errors, fw.errors...)

	return out, nil
}

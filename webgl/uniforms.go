// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

import (
	"github.com/gogpu/voidshade/builtin"
)

// collectUniforms builds the transpiled uniform list: every built-in
// uniform of the shader kind first, in fixed table order and regardless of
// whether user code references it, then every user-declared uniform in
// declaration order. The output is therefore deterministic and stable
// across compilations of the same source.
func (w *Writer) collectUniforms() []TranspiledUniform {
	builtins := builtin.Uniforms(w.ast.Kind, builtin.StageAll)

	out := make([]TranspiledUniform, 0, len(builtins)+len(w.ast.Uniforms))
	for _, v := range builtins {
		out = append(out, TranspiledUniform{
			Name:      v.GLSLName,
			Type:      v.Type,
			IsBuiltIn: true,
		})
	}

	for _, u := range w.ast.Uniforms {
		tu := TranspiledUniform{
			Name: u.Name,
			Type: u.Type,
			Hint: u.Hint,
		}
		if u.Hint != nil {
			// The noise parameter record is carried through unchanged so
			// the texture generator can reproduce the default texture
			// deterministically from the same inputs.
			tu.Noise = u.Hint.Noise
		}
		if u.Default != nil {
			tu.DefaultValue = w.writeExpr(u.Default)
		}
		out = append(out, tu)
	}

	return out
}

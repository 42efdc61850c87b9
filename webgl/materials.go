// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

// Side selects which faces a pipeline renders. "front" means back faces
// are culled, which is the default.
type Side string

// Face rendering sides.
const (
	SideFront  Side = "front"
	SideBack   Side = "back"
	SideDouble Side = "double"
)

// Blending selects the blend equation for the generated material.
type Blending string

// Blend modes.
const (
	BlendNormal      Blending = "normal"
	BlendAdditive    Blending = "additive"
	BlendSubtractive Blending = "subtractive"
	BlendMultiply    Blending = "multiply"
)

// MaterialOptions is the blend/depth/cull state derived from the shader's
// render_mode declaration. It is sufficient to configure a GPU pipeline
// object without inspecting the generated shader text.
type MaterialOptions struct {
	Lights      bool     `json:"lights"`
	DepthWrite  bool     `json:"depthWrite"`
	Side        Side     `json:"side"`
	Blending    Blending `json:"blending"`
	Transparent bool     `json:"transparent"`
}

// deriveMaterialOptions maps the ordered render-mode list onto material
// state. Unknown modes are ignored. When mutually exclusive cull or blend
// modes appear, the last one in declaration order wins. Depth writing is
// special-cased: depth_draw_never is the only mode that can disable it,
// and any other depth_draw mode re-affirms it.
func deriveMaterialOptions(modes []string) MaterialOptions {
	opts := MaterialOptions{
		Lights:      true,
		DepthWrite:  true,
		Side:        SideFront,
		Blending:    BlendNormal,
		Transparent: true,
	}

	sawDepthNever := false
	sawDepthForce := false

	for _, mode := range modes {
		switch mode {
		case "unshaded":
			opts.Lights = false

		case "blend_mix":
			opts.Blending = BlendNormal
		case "blend_add":
			opts.Blending = BlendAdditive
		case "blend_sub":
			opts.Blending = BlendSubtractive
		case "blend_mul":
			opts.Blending = BlendMultiply

		case "cull_back":
			opts.Side = SideFront
		case "cull_front":
			opts.Side = SideBack
		case "cull_disabled":
			opts.Side = SideDouble

		case "depth_draw_never":
			sawDepthNever = true
		case "depth_draw_always", "depth_draw_opaque":
			sawDepthForce = true
		}
	}

	if sawDepthNever && !sawDepthForce {
		opts.DepthWrite = false
	}

	return opts
}

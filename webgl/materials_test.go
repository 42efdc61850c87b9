// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

import (
	"testing"
)

func TestDeriveMaterialDefaults(t *testing.T) {
	opts := deriveMaterialOptions(nil)

	if !opts.Lights {
		t.Error("Lights should default to true")
	}
	if !opts.DepthWrite {
		t.Error("DepthWrite should default to true")
	}
	if opts.Side != SideFront {
		t.Errorf("Side should default to front, got %s", opts.Side)
	}
	if opts.Blending != BlendNormal {
		t.Errorf("Blending should default to normal, got %s", opts.Blending)
	}
	if !opts.Transparent {
		t.Error("Transparent should default to true")
	}
}

func TestDeriveMaterialModes(t *testing.T) {
	tests := []struct {
		name  string
		modes []string
		check func(t *testing.T, opts MaterialOptions)
	}{
		{
			name:  "unshaded disables lights",
			modes: []string{"unshaded"},
			check: func(t *testing.T, opts MaterialOptions) {
				if opts.Lights {
					t.Error("Lights should be false")
				}
			},
		},
		{
			name:  "blend modes map",
			modes: []string{"blend_add"},
			check: func(t *testing.T, opts MaterialOptions) {
				if opts.Blending != BlendAdditive {
					t.Errorf("Expected additive, got %s", opts.Blending)
				}
			},
		},
		{
			name:  "last blend mode wins",
			modes: []string{"blend_add", "blend_sub", "blend_mul"},
			check: func(t *testing.T, opts MaterialOptions) {
				if opts.Blending != BlendMultiply {
					t.Errorf("Expected multiply, got %s", opts.Blending)
				}
			},
		},
		{
			name:  "blend_mix restores normal",
			modes: []string{"blend_add", "blend_mix"},
			check: func(t *testing.T, opts MaterialOptions) {
				if opts.Blending != BlendNormal {
					t.Errorf("Expected normal, got %s", opts.Blending)
				}
			},
		},
		{
			name:  "cull modes map",
			modes: []string{"cull_front"},
			check: func(t *testing.T, opts MaterialOptions) {
				if opts.Side != SideBack {
					t.Errorf("Expected back, got %s", opts.Side)
				}
			},
		},
		{
			name:  "last cull mode wins",
			modes: []string{"cull_front", "cull_disabled"},
			check: func(t *testing.T, opts MaterialOptions) {
				if opts.Side != SideDouble {
					t.Errorf("Expected double, got %s", opts.Side)
				}
			},
		},
		{
			name:  "depth_draw_never disables depth write",
			modes: []string{"depth_draw_never"},
			check: func(t *testing.T, opts MaterialOptions) {
				if opts.DepthWrite {
					t.Error("DepthWrite should be false")
				}
			},
		},
		{
			name:  "depth_draw_always overrides never",
			modes: []string{"depth_draw_never", "depth_draw_always"},
			check: func(t *testing.T, opts MaterialOptions) {
				if !opts.DepthWrite {
					t.Error("DepthWrite should stay true")
				}
			},
		},
		{
			name:  "depth_draw_opaque overrides never regardless of order",
			modes: []string{"depth_draw_opaque", "depth_draw_never"},
			check: func(t *testing.T, opts MaterialOptions) {
				if !opts.DepthWrite {
					t.Error("DepthWrite should stay true")
				}
			},
		},
		{
			name:  "unknown modes are ignored",
			modes: []string{"world_vertex_coords", "unshaded"},
			check: func(t *testing.T, opts MaterialOptions) {
				if opts.Lights {
					t.Error("Lights should be false")
				}
				if opts.Blending != BlendNormal || opts.Side != SideFront {
					t.Error("Unknown mode changed unrelated state")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, deriveMaterialOptions(tt.modes))
		})
	}
}

package voidshade

import (
	"strings"
	"testing"

	"github.com/gogpu/voidshade/vsl"
	"github.com/gogpu/voidshade/webgl"
)

// TestCompileCanvasItemShader compiles a minimal 2D shader end to end.
func TestCompileCanvasItemShader(t *testing.T) {
	source := `
shader_type canvas_item;

void fragment() {
    COLOR = vec4(1.0, 0.0, 0.0, 1.0);
}
`
	shader, err := Compile(source)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(shader.Errors) != 0 {
		t.Fatalf("Unexpected generation errors: %v", shader.Errors)
	}

	if shader.Kind != vsl.KindCanvasItem {
		t.Errorf("Expected canvas_item, got %v", shader.Kind)
	}
	if !strings.Contains(shader.FragmentShader, "COLOR = vec4(1.0, 0.0, 0.0, 1.0);") {
		t.Error("Fragment missing the user body")
	}
	if !strings.Contains(shader.VertexShader, "void main() {") {
		t.Error("Vertex missing an entry point")
	}

	t.Logf("Generated %d bytes of vertex GLSL, %d bytes of fragment GLSL",
		len(shader.VertexShader), len(shader.FragmentShader))
}

// TestCompileSpatialShader compiles a 3D shader with render modes and
// uniforms through the high-level API.
func TestCompileSpatialShader(t *testing.T) {
	source := `
shader_type spatial;
render_mode unshaded, blend_add;

uniform float glow : hint_range(0.0, 4.0) = 1.0;
uniform sampler2D albedo_tex : hint_albedo;

void fragment() {
    vec4 c = texture(albedo_tex, UV);
    ALBEDO = c.rgb * glow;
    ALPHA = c.a;
}
`
	shader, err := Compile(source)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if shader.Material.Lights {
		t.Error("unshaded should disable lights")
	}
	if shader.Material.Blending != webgl.BlendAdditive {
		t.Errorf("Expected additive blending, got %s", shader.Material.Blending)
	}

	// Built-in uniforms precede user uniforms in the list.
	last := shader.Uniforms[len(shader.Uniforms)-1]
	if last.Name != "albedo_tex" || last.IsBuiltIn {
		t.Errorf("Expected albedo_tex last, got %+v", last)
	}
}

// TestCompileParseErrorProducesNoShader checks that a source that does not
// parse never reaches the transpiler.
func TestCompileParseErrorProducesNoShader(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"missing shader_type", "void fragment() { }"},
		{"unterminated body", "shader_type canvas_item;\nvoid fragment() {"},
		{"lexical error", "shader_type canvas_item;\nfloat x = $;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shader, err := Compile(tt.source)
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if shader != nil {
				t.Error("No shader should be produced on parse failure")
			}
		})
	}
}

// TestParseStandalone exercises the lower-level Parse entry point.
func TestParseStandalone(t *testing.T) {
	ast, err := Parse(`
shader_type particles;

void vertex() {
    VERTEX += vec3(0.0, DELTA, 0.0);
}
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ast.Kind != vsl.KindParticles {
		t.Errorf("Expected particles, got %v", ast.Kind)
	}
	if ast.Function("vertex") == nil {
		t.Error("vertex function not found")
	}
}

// TestTranspileStandalone chains Parse and Transpile by hand.
func TestTranspileStandalone(t *testing.T) {
	ast, err := Parse("shader_type canvas_item;\nvoid fragment() { }")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	shader, err := Transpile(ast, webgl.DefaultOptions())
	if err != nil {
		t.Fatalf("Transpile failed: %v", err)
	}
	if shader.VertexShader == "" || shader.FragmentShader == "" {
		t.Error("Expected both stage programs")
	}
}

// TestCompileDeterministic compiles the same source twice and requires
// byte-identical output.
func TestCompileDeterministic(t *testing.T) {
	source := `
shader_type canvas_item;

uniform sampler2D noise_tex : hint_noise(perlin);

void fragment() {
    COLOR = texture(noise_tex, UV + TIME * 0.1);
}
`
	a, err := Compile(source)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	b, err := Compile(source)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if a.VertexShader != b.VertexShader || a.FragmentShader != b.FragmentShader {
		t.Error("Output differs between identical compilations")
	}
}

// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

import (
	"strings"
	"testing"

	"github.com/gogpu/voidshade/vsl"
)

// mustCompile parses and transpiles source, failing the test on any error.
func mustCompile(t *testing.T, source string) *TranspiledShader {
	t.Helper()

	lexer := vsl.NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	parser := vsl.NewParser(tokens)
	ast, errs := parser.Parse()
	if errs.HasErrors() {
		t.Fatalf("Parse failed: %v", errs)
	}

	shader, err := Compile(ast, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return shader
}

func TestCompileCanvasItemShader(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

void fragment() {
    COLOR = vec4(1.0, 0.0, 0.0, 1.0);
}
`)

	if len(shader.Errors) != 0 {
		t.Fatalf("Unexpected generation errors: %v", shader.Errors)
	}

	frag := shader.FragmentShader
	userAssign := strings.Index(frag, "COLOR = vec4(1.0, 0.0, 0.0, 1.0);")
	finalAssign := strings.Index(frag, "gl_FragColor = COLOR;")
	if userAssign < 0 {
		t.Error("Fragment missing the user COLOR assignment")
	}
	if finalAssign < 0 {
		t.Error("Fragment missing the final gl_FragColor assignment")
	}
	if userAssign >= 0 && finalAssign >= 0 && userAssign > finalAssign {
		t.Error("User body should run before the final pixel output")
	}

	// No vertex() in the source: the default position pass-through still
	// produces a valid clip-space position.
	vert := shader.VertexShader
	if !strings.Contains(vert, "gl_Position = projectionMatrix * modelViewMatrix * vec4(VERTEX, 0.0, 1.0);") {
		t.Error("Vertex missing the default clip-space position")
	}
	if !strings.Contains(vert, "attribute vec3 position;") {
		t.Error("Vertex missing the position attribute")
	}
	if !strings.Contains(vert, "vUv = UV;") {
		t.Error("Vertex missing the varying copy-back")
	}
}

func TestCompileSpatialShader(t *testing.T) {
	shader := mustCompile(t, `
shader_type spatial;

void fragment() {
    ALBEDO = vec3(0.5);
    ALPHA = 0.8;
}
`)

	frag := shader.FragmentShader
	if !strings.Contains(frag, "vec3 ALBEDO = vec3(1.0);") {
		t.Error("Fragment missing the ALBEDO default")
	}
	if !strings.Contains(frag, "gl_FragColor = vec4(ALBEDO + EMISSION, ALPHA);") {
		t.Error("Fragment missing the spatial output assembly")
	}

	vert := shader.VertexShader
	if !strings.Contains(vert, "uniform mat3 normalMatrix;") {
		t.Error("Vertex missing the normal matrix uniform")
	}
	if !strings.Contains(vert, "attribute vec3 normal;") {
		t.Error("Vertex missing the normal attribute")
	}
	if !strings.Contains(vert, "vNormal = normalMatrix * NORMAL;") {
		t.Error("Vertex missing the normal copy-back")
	}
}

func TestCompileNilAST(t *testing.T) {
	if _, err := Compile(nil, DefaultOptions()); err == nil {
		t.Fatal("Expected error for nil AST")
	}
}

func TestCompileDeterministic(t *testing.T) {
	source := `
shader_type spatial;
render_mode blend_add;

uniform float speed : hint_range(0.0, 10.0) = 1.0;
uniform sampler2D tex : hint_albedo;

void fragment() {
    ALBEDO = texture(tex, UV * speed).rgb;
}
`
	a := mustCompile(t, source)
	b := mustCompile(t, source)

	if a.VertexShader != b.VertexShader {
		t.Error("Vertex output differs between identical compilations")
	}
	if a.FragmentShader != b.FragmentShader {
		t.Error("Fragment output differs between identical compilations")
	}
	if len(a.Uniforms) != len(b.Uniforms) {
		t.Fatal("Uniform list length differs between identical compilations")
	}
	for i := range a.Uniforms {
		if a.Uniforms[i].Name != b.Uniforms[i].Name {
			t.Errorf("Uniform %d name differs: %s vs %s", i, a.Uniforms[i].Name, b.Uniforms[i].Name)
		}
	}
}

func TestUniformList(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

uniform float speed : hint_range(0.0, 10.0) = 1.0;

void fragment() {
}
`)

	// Built-ins first, in table order, then user uniforms.
	names := make([]string, 0, len(shader.Uniforms))
	for _, u := range shader.Uniforms {
		names = append(names, u.Name)
	}
	want := []string{"time", "screenSize", "speed"}
	if len(names) != len(want) {
		t.Fatalf("Expected uniforms %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Uniform %d: expected %s, got %s", i, want[i], names[i])
		}
	}

	if !shader.Uniforms[0].IsBuiltIn || !shader.Uniforms[1].IsBuiltIn {
		t.Error("Built-in uniforms should be marked")
	}

	speed := shader.Uniforms[2]
	if speed.IsBuiltIn {
		t.Error("User uniform should not be marked built-in")
	}
	if speed.Type != "float" {
		t.Errorf("Expected type float, got %s", speed.Type)
	}
	if speed.DefaultValue != "1.0" {
		t.Errorf("Expected default 1.0, got %q", speed.DefaultValue)
	}
	if speed.Hint == nil || speed.Hint.Kind != vsl.HintRange {
		t.Fatalf("Expected hint_range metadata, got %+v", speed.Hint)
	}
	if len(speed.Hint.Params) != 2 || speed.Hint.Params[0] != 0.0 || speed.Hint.Params[1] != 10.0 {
		t.Errorf("Expected range [0 10], got %v", speed.Hint.Params)
	}
}

func TestBuiltinUniformsAlwaysInjected(t *testing.T) {
	// The shader never references TIME, yet the uniform is declared and
	// listed so the platform can bind unconditionally.
	shader := mustCompile(t, `
shader_type canvas_item;

void fragment() {
}
`)

	if !strings.Contains(shader.FragmentShader, "uniform float time;") {
		t.Error("Fragment missing the time uniform declaration")
	}
	if !strings.Contains(shader.VertexShader, "uniform vec2 screenSize;") {
		t.Error("Vertex missing the screenSize uniform declaration")
	}

	found := false
	for _, u := range shader.Uniforms {
		if u.Name == "time" && u.IsBuiltIn {
			found = true
		}
	}
	if !found {
		t.Error("time missing from the uniform list")
	}
}

func TestUniformDeclarationsHaveNoInitializers(t *testing.T) {
	// GLSL ES 1.0 forbids uniform initializers; defaults live only in the
	// metadata.
	shader := mustCompile(t, `
shader_type canvas_item;

uniform float speed = 2.5;

void fragment() {
}
`)

	if !strings.Contains(shader.FragmentShader, "uniform float speed;") {
		t.Error("Fragment missing the speed uniform declaration")
	}
	if strings.Contains(shader.FragmentShader, "speed = 2.5") {
		t.Error("Uniform initializer leaked into the shader text")
	}
	if shader.Uniforms[len(shader.Uniforms)-1].DefaultValue != "2.5" {
		t.Error("Default value missing from the uniform metadata")
	}
}

func TestUniformBuiltinReferencesEmitMappedNames(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

void fragment() {
    COLOR.a = sin(TIME);
}
`)

	if !strings.Contains(shader.FragmentShader, "sin(time)") {
		t.Error("TIME reference should emit the mapped uniform name")
	}
	if strings.Contains(shader.FragmentShader, "sin(TIME)") {
		t.Error("DSL-facing TIME name leaked into the shader text")
	}
}

func TestReadOnlyVaryingBuiltinsEmitVaryingNames(t *testing.T) {
	// MODEL_ORIGIN and ORIGIN_SCREEN_Y have no alias local in the entry
	// point preamble, so references must read the varying directly or the
	// stage program would not compile.
	shader := mustCompile(t, `
shader_type spatial;

void fragment() {
    ALBEDO = MODEL_ORIGIN;
    ALPHA = ORIGIN_SCREEN_Y;
}
`)

	frag := shader.FragmentShader
	if !strings.Contains(frag, "ALBEDO = vModelOrigin;") {
		t.Error("MODEL_ORIGIN reference should emit the varying name")
	}
	if !strings.Contains(frag, "ALPHA = vOriginScreenY;") {
		t.Error("ORIGIN_SCREEN_Y reference should emit the varying name")
	}
	if strings.Contains(frag, "MODEL_ORIGIN") || strings.Contains(frag, "ORIGIN_SCREEN_Y") {
		t.Error("DSL-facing names leaked into the shader text")
	}
	// Both varyings are declared in the stage preamble.
	if !strings.Contains(frag, "varying vec3 vModelOrigin;") {
		t.Error("Fragment missing the vModelOrigin declaration")
	}
	if !strings.Contains(frag, "varying float vOriginScreenY;") {
		t.Error("Fragment missing the vOriginScreenY declaration")
	}
}

func TestAssignmentParenthesizedInsideExpressions(t *testing.T) {
	// An assignment used as an operand must keep its own grouping; without
	// parentheses GLSL would rebind the right-hand side.
	shader := mustCompile(t, `
shader_type canvas_item;

void fragment() {
    float x = 0.0;
    COLOR.a = (x = 0.5) + x;
}
`)

	if !strings.Contains(shader.FragmentShader, "COLOR.a = ((x = 0.5) + x);") {
		t.Error("Nested assignment should stay parenthesized")
	}

	// Statement-position assignments stay unparenthesized.
	if !strings.Contains(shader.FragmentShader, "float x = 0.0;") {
		t.Error("Fragment missing the declaration")
	}
}

func TestTextureIntrinsicRenames(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

uniform sampler2D tex;

void fragment() {
    COLOR = texture(tex, UV) + textureLod(tex, UV, 2.0);
}
`)

	frag := shader.FragmentShader
	if !strings.Contains(frag, "texture2D(tex, UV)") {
		t.Error("texture should be renamed to texture2D")
	}
	if !strings.Contains(frag, "texture2DLodEXT(tex, UV, 2.0)") {
		t.Error("textureLod should be renamed to texture2DLodEXT")
	}
	if !strings.HasPrefix(frag, "#extension GL_EXT_shader_texture_lod : enable") {
		t.Error("Fragment missing the texture LOD extension directive")
	}
	if strings.Contains(shader.VertexShader, "#extension") {
		t.Error("Extension directive should only appear in the fragment stage")
	}
}

func TestNoExtensionWithoutTextureLod(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

void fragment() {
}
`)

	if strings.Contains(shader.FragmentShader, "#extension") {
		t.Error("Extension directive emitted without textureLod use")
	}
}

func TestFloatLiteralFormatting(t *testing.T) {
	w := newWriter(&vsl.ShaderAST{}, &Options{}, 0)

	tests := []struct {
		kind vsl.TokenKind
		in   string
		out  string
	}{
		{vsl.TokenFloatLiteral, "2", "2.0"},
		{vsl.TokenFloatLiteral, "2.5", "2.5"},
		{vsl.TokenFloatLiteral, "1e3", "1e3"},
		{vsl.TokenIntLiteral, "2", "2"},
		{vsl.TokenBoolLiteral, "true", "true"},
	}

	for _, tt := range tests {
		got := w.writeLiteral(&vsl.Literal{Kind: tt.kind, Value: tt.in})
		if got != tt.out {
			t.Errorf("%v %q: expected %q, got %q", tt.kind, tt.in, tt.out, got)
		}
	}
}

func TestBinaryExpressionsFullyParenthesized(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

void fragment() {
    COLOR.r = 1.0 + 2.0 * 3.0;
}
`)

	if !strings.Contains(shader.FragmentShader, "COLOR.r = (1.0 + (2.0 * 3.0));") {
		t.Error("Binary expressions should be fully parenthesized")
	}
}

func TestKeywordEscaping(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

void fragment() {
    float half = 0.5;
    float gl_custom = half;
    COLOR.a = gl_custom;
}
`)

	frag := shader.FragmentShader
	if !strings.Contains(frag, "float _half = 0.5;") {
		t.Error("Reserved word half should be escaped")
	}
	if !strings.Contains(frag, "float _gl_custom = _half;") {
		t.Error("gl_ prefixed name should be escaped")
	}
	// Constructors keep their names even though vec4 is a reserved word.
	if strings.Contains(frag, "_vec4") {
		t.Error("Constructor name should not be escaped")
	}
}

func TestEscapeKeyword(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"speed", "speed"},
		{"float", "_float"},
		{"half", "_half"},
		{"gl_thing", "_gl_thing"},
		{"", "_unnamed"},
	}

	for _, tt := range tests {
		if got := escapeKeyword(tt.in); got != tt.out {
			t.Errorf("escapeKeyword(%q): expected %q, got %q", tt.in, tt.out, got)
		}
	}
}

func TestMediumpFragmentPrecision(t *testing.T) {
	source := `
shader_type canvas_item;

void fragment() {
}
`
	lexer := vsl.NewLexer(source)
	tokens, _ := lexer.Tokenize()
	parser := vsl.NewParser(tokens)
	ast, _ := parser.Parse()

	shader, err := Compile(ast, Options{ForceHighPrecision: false})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if !strings.Contains(shader.FragmentShader, "precision mediump float;") {
		t.Error("Fragment should use mediump when high precision is not forced")
	}
	if !strings.Contains(shader.VertexShader, "precision highp float;") {
		t.Error("Vertex stage keeps highp")
	}
}

func TestUserVertexBodyInlined(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

void vertex() {
    VERTEX += vec2(1.0, 0.0);
    POINT_SIZE = 4.0;
}

void fragment() {
}
`)

	vert := shader.VertexShader
	if !strings.Contains(vert, "VERTEX += vec2(1.0, 0.0);") {
		t.Error("Vertex missing the inlined user body")
	}
	if !strings.Contains(vert, "gl_PointSize = POINT_SIZE;") {
		t.Error("Vertex missing the point size assignment")
	}
	if !strings.Contains(vert, "vOriginScreenY = (originClip.y / originClip.w) * 0.5 + 0.5;") {
		t.Error("Vertex missing the origin screen Y computation")
	}
}

func TestHelperFunctionsEmittedInBothStages(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

float wave(float t) {
    return sin(t * 6.28318);
}

void fragment() {
    COLOR.a = wave(TIME);
}
`)

	if !strings.Contains(shader.FragmentShader, "float wave(float t) {") {
		t.Error("Fragment missing the helper function")
	}
	if !strings.Contains(shader.VertexShader, "float wave(float t) {") {
		t.Error("Vertex missing the helper function")
	}
}

func TestLightFunctionNotGenerated(t *testing.T) {
	shader := mustCompile(t, `
shader_type spatial;

void light() {
    float x = textureLod(tex, vec2(0.0), 1.0).r;
}

void fragment() {
}
`)

	if strings.Contains(shader.FragmentShader, "light(") {
		t.Error("light() should not appear in generated output")
	}
	// textureLod only inside light() must not pull in the extension.
	if strings.Contains(shader.FragmentShader, "#extension") {
		t.Error("light() body should not trigger the extension directive")
	}
}

func TestUserVaryingsEmitted(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

varying vec3 world_pos;

void vertex() {
    world_pos = vec3(VERTEX, 0.0);
}

void fragment() {
    COLOR.rgb = world_pos;
}
`)

	for _, text := range []string{shader.VertexShader, shader.FragmentShader} {
		if !strings.Contains(text, "varying vec3 world_pos;") {
			t.Error("Stage missing the user varying declaration")
		}
	}
}

func TestMaterialFromCompile(t *testing.T) {
	shader := mustCompile(t, `
shader_type spatial;
render_mode unshaded, blend_add, cull_disabled, depth_draw_never;

void fragment() {
}
`)

	m := shader.Material
	if m.Lights {
		t.Error("Lights should be false")
	}
	if m.Blending != BlendAdditive {
		t.Errorf("Expected additive blending, got %s", m.Blending)
	}
	if m.Side != SideDouble {
		t.Errorf("Expected double-sided, got %s", m.Side)
	}
	if m.DepthWrite {
		t.Error("DepthWrite should be false")
	}
	if !m.Transparent {
		t.Error("Transparent should be true")
	}
}

func TestControlFlowCodegen(t *testing.T) {
	shader := mustCompile(t, `
shader_type canvas_item;

void fragment() {
    float v = 0.0;
    for (int i = 0; i < 4; i++) {
        v += 0.25;
    }
    while (v > 1.0) {
        v -= 1.0;
    }
    do {
        v += 0.1;
    } while (v < 0.5);
    if (v > 0.9) {
        discard;
    } else {
        COLOR.a = v;
    }
}
`)

	frag := shader.FragmentShader
	for _, want := range []string{
		"for (int i = 0; (i < 4); i++) {",
		"while ((v > 1.0)) {",
		"} while ((v < 0.5));",
		"if ((v > 0.9)) {",
		"} else {",
		"discard;",
	} {
		if !strings.Contains(frag, want) {
			t.Errorf("Fragment missing %q", want)
		}
	}
}

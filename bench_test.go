package voidshade

import (
	"runtime"
	"testing"

	"github.com/gogpu/voidshade/webgl"
)

// ---------------------------------------------------------------------------
// Test shader sources — realistic VoidScript shaders at different complexity
// levels
// ---------------------------------------------------------------------------

// shaderSmall is a minimal 2D shader (~1 line of body).
const shaderSmall = `
shader_type canvas_item;

void fragment() {
    COLOR = vec4(UV, 0.0, 1.0);
}
`

// shaderMedium is a typical material shader with uniforms, hints, and a
// helper function.
const shaderMedium = `
shader_type spatial;
render_mode blend_mix, cull_back;

uniform float roughness : hint_range(0.0, 1.0) = 0.5;
uniform vec4 tint : hint_color = vec4(1.0, 1.0, 1.0, 1.0);
uniform sampler2D albedo_tex : hint_albedo;

float fresnel(vec3 n, vec3 v, float power) {
    return pow(1.0 - clamp(dot(n, v), 0.0, 1.0), power);
}

void fragment() {
    vec4 base = texture(albedo_tex, UV) * tint;
    float rim = fresnel(NORMAL, vec3(0.0, 0.0, 1.0), 3.0);
    ALBEDO = base.rgb + vec3(rim * roughness);
    ALPHA = base.a;
}
`

// shaderLarge is a heavier effect shader exercising control flow, noise
// hints, and both entry points.
const shaderLarge = `
shader_type canvas_item;
render_mode blend_add, unshaded;

uniform float speed : hint_range(0.1, 10.0) = 2.0;
uniform float intensity : hint_range(0.0, 4.0) = 1.0;
uniform sampler2D noise_tex : hint_noise(perlin, 128, 128, 6.0, 5, 42);
uniform sampler2D mask_tex : hint_white;

vec2 swirl(vec2 p, float amount) {
    float angle = amount * length(p - vec2(0.5));
    float s = sin(angle);
    float c = cos(angle);
    return vec2(p.x * c - p.y * s, p.x * s + p.y * c);
}

float accumulate(vec2 base) {
    float total = 0.0;
    for (int i = 0; i < 4; i++) {
        float layer = texture(noise_tex, base * float(i + 1)).r;
        if (layer < 0.05) {
            continue;
        }
        total += layer / float(i + 1);
    }
    return total;
}

void vertex() {
    VERTEX += vec2(sin(TIME * speed), 0.0);
}

void fragment() {
    vec2 p = swirl(UV, TIME * speed);
    float n = accumulate(p);
    float mask = texture(mask_tex, UV).r;
    vec3 glow = vec3(n * intensity) * mask;
    COLOR = vec4(glow, n > 0.5 ? 1.0 : n);
}
`

var shadersByComplexity = []struct {
	name   string
	source string
}{
	{"small", shaderSmall},
	{"medium", shaderMedium},
	{"large", shaderLarge},
}

func BenchmarkParse(b *testing.B) {
	for _, sc := range shadersByComplexity {
		b.Run(sc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(sc.source)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				ast, err := Parse(sc.source)
				if err != nil {
					b.Fatalf("parse failed: %v", err)
				}
				runtime.KeepAlive(ast)
			}
		})
	}
}

func BenchmarkCompile(b *testing.B) {
	for _, sc := range shadersByComplexity {
		b.Run(sc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(sc.source)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				shader, err := Compile(sc.source)
				if err != nil {
					b.Fatalf("compile failed: %v", err)
				}
				runtime.KeepAlive(shader)
			}
		})
	}
}

func BenchmarkTranspileOnly(b *testing.B) {
	for _, sc := range shadersByComplexity {
		ast, err := Parse(sc.source)
		if err != nil {
			b.Fatalf("parse failed: %v", err)
		}

		b.Run(sc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				shader, err := Transpile(ast, webgl.DefaultOptions())
				if err != nil {
					b.Fatalf("transpile failed: %v", err)
				}
				runtime.KeepAlive(shader)
			}
		})
	}
}

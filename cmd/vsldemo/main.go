// Command vsldemo compiles an embedded VoidScript material shader and
// prints the resulting uniform and material metadata. It is a smoke test
// for the full pipeline and a quick way to inspect generated GLSL.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/voidshade"
)

const demoShader = `
shader_type spatial;
render_mode blend_mix, cull_back;

uniform float glow : hint_range(0.0, 4.0) = 1.0;
uniform vec4 tint : hint_color = vec4(1.0, 1.0, 1.0, 1.0);
uniform sampler2D albedo_tex : hint_albedo;
uniform sampler2D noise_tex : hint_noise(perlin, 128, 128, 6.0, 4, 7);

void vertex() {
    VERTEX.y += sin(TIME + VERTEX.x) * 0.05;
}

void fragment() {
    vec4 base = texture(albedo_tex, UV) * tint;
    float n = texture(noise_tex, UV).r;
    ALBEDO = base.rgb * tint.rgb;
    EMISSION = vec3(n * glow);
    ALPHA = base.a;
}
`

func main() {
	shader, err := voidshade.Compile(demoShader)
	if err != nil {
		fmt.Println("Compile error:", err)
		os.Exit(1)
	}

	fmt.Println("=== Shader ===")
	fmt.Printf("Kind: %s\n", shader.Kind)
	fmt.Printf("Uniforms: %d\n", len(shader.Uniforms))
	fmt.Printf("Generation errors: %d\n", len(shader.Errors))

	for i, u := range shader.Uniforms {
		extra := ""
		if u.IsBuiltIn {
			extra = " (built-in)"
		} else if u.DefaultValue != "" {
			extra = " = " + u.DefaultValue
		}
		fmt.Printf("  Uniform[%d]: %s %s%s\n", i, u.Type, u.Name, extra)
		if u.Noise != nil {
			fmt.Printf("    noise: %s %dx%d\n", u.Noise.Algorithm, u.Noise.Width, u.Noise.Height)
		}
	}

	m := shader.Material
	fmt.Printf("\n=== Material ===\n")
	fmt.Printf("Lights: %v, DepthWrite: %v, Side: %s, Blending: %s, Transparent: %v\n",
		m.Lights, m.DepthWrite, m.Side, m.Blending, m.Transparent)

	fmt.Printf("\n=== GLSL ===\n")
	fmt.Printf("Vertex: %d bytes, Fragment: %d bytes\n",
		len(shader.VertexShader), len(shader.FragmentShader))

	if err := os.WriteFile("demo.vert.glsl", []byte(shader.VertexShader), 0600); err != nil {
		fmt.Println("Write error:", err)
		os.Exit(1)
	}
	if err := os.WriteFile("demo.frag.glsl", []byte(shader.FragmentShader), 0600); err != nil {
		fmt.Println("Write error:", err)
		os.Exit(1)
	}
	fmt.Println("Saved demo.vert.glsl and demo.frag.glsl")
}

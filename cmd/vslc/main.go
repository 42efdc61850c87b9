// Command vslc is the voidshade VoidScript shader compiler CLI.
//
// Usage:
//
//	vslc [options] <input>
//
// Examples:
//
//	vslc shader.vsl                      # Compile, print both stages
//	vslc -vert v.glsl -frag f.glsl shader.vsl
//	vslc -meta shader.json shader.vsl    # Write uniform/material metadata
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/voidshade"
	"github.com/gogpu/voidshade/webgl"
)

var (
	vertOut = flag.String("vert", "", "vertex shader output file (default: stdout)")
	fragOut = flag.String("frag", "", "fragment shader output file (default: stdout)")
	metaOut = flag.String("meta", "", "uniform and material metadata JSON output file")
	mediump = flag.Bool("mediump", false, "use mediump fragment precision instead of highp")
	version = flag.Bool("version", false, "print version")
)

const vslcVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("vslc version %s\n", vslcVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	opts := webgl.DefaultOptions()
	if *mediump {
		opts.ForceHighPrecision = false
	}
	shader, err := voidshade.CompileWithOptions(string(source), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation error: %v\n", err)
		os.Exit(1)
	}

	for _, terr := range shader.Errors {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", terr)
	}

	if *vertOut == "" && *fragOut == "" {
		fmt.Printf("// vertex shader\n%s\n// fragment shader\n%s", shader.VertexShader, shader.FragmentShader)
	}
	if *vertOut != "" {
		if err := os.WriteFile(*vertOut, []byte(shader.VertexShader), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
	if *fragOut != "" {
		if err := os.WriteFile(*fragOut, []byte(shader.FragmentShader), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}

	if *metaOut != "" {
		meta := struct {
			Kind     string                    `json:"kind"`
			Uniforms []webgl.TranspiledUniform `json:"uniforms"`
			Material webgl.MaterialOptions     `json:"material"`
		}{
			Kind:     shader.Kind.String(),
			Uniforms: shader.Uniforms,
			Material: shader.Material,
		}
		data, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding metadata: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*metaOut, append(data, '\n'), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: vslc [options] <input.vsl>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  vslc shader.vsl                          Compile to stdout\n")
	fmt.Fprintf(os.Stderr, "  vslc -vert v.glsl -frag f.glsl shader.vsl  Write stage files\n")
	fmt.Fprintf(os.Stderr, "  vslc -meta shader.json shader.vsl        Write metadata JSON\n")
}

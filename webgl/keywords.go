// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgl

// glslKeywords contains the GLSL ES 1.00 reserved words: current keywords,
// future reserved words, and built-in type names. User identifiers that
// collide with these are escaped before emission.
var glslKeywords = map[string]struct{}{
	// Keywords
	"attribute": {}, "const": {}, "uniform": {}, "varying": {},
	"break": {}, "continue": {}, "do": {}, "for": {}, "while": {},
	"if": {}, "else": {},
	"in": {}, "out": {}, "inout": {},
	"float": {}, "int": {}, "void": {}, "bool": {}, "true": {}, "false": {},
	"lowp": {}, "mediump": {}, "highp": {}, "precision": {}, "invariant": {},
	"discard": {}, "return": {},
	"mat2": {}, "mat3": {}, "mat4": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"sampler2D": {}, "samplerCube": {},
	"struct": {},

	// Future reserved words
	"asm": {}, "class": {}, "union": {}, "enum": {}, "typedef": {},
	"template": {}, "this": {}, "packed": {}, "goto": {}, "switch": {},
	"default": {}, "inline": {}, "noinline": {}, "volatile": {},
	"public": {}, "static": {}, "extern": {}, "external": {},
	"interface": {}, "flat": {},
	"long": {}, "short": {}, "double": {}, "half": {}, "fixed": {},
	"unsigned": {}, "superp": {},
	"input": {}, "output": {},
	"hvec2": {}, "hvec3": {}, "hvec4": {},
	"dvec2": {}, "dvec3": {}, "dvec4": {},
	"fvec2": {}, "fvec3": {}, "fvec4": {},
	"sampler1D": {}, "sampler3D": {},
	"sampler1DShadow": {}, "sampler2DShadow": {},
	"sampler2DRect": {}, "sampler3DRect": {}, "sampler2DRectShadow": {},
	"sizeof": {}, "cast": {}, "namespace": {}, "using": {},
}

// isKeyword returns true if the name is a GLSL reserved word.
func isKeyword(name string) bool {
	_, ok := glslKeywords[name]
	return ok
}

// escapeKeyword makes a name safe to use as a GLSL identifier.
func escapeKeyword(name string) string {
	if name == "" {
		return "_unnamed"
	}
	if isKeyword(name) {
		return "_" + name
	}
	// Also escape names starting with "gl_" (reserved prefix)
	if len(name) >= 3 && name[:3] == "gl_" {
		return "_" + name
	}
	return name
}

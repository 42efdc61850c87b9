// Package builtin holds the static registry of built-in shader variables.
//
// The registry maps (shader kind, identifier) to a descriptor telling the
// transpiler what the identifier is backed by (a uniform, a varying, or a
// stage-local alias), which stages it is visible in, and the name it takes
// in the generated GLSL. The tables are populated once at package init and
// never mutated, so they are safe to share across concurrent compilations.
package builtin

import (
	"github.com/gogpu/voidshade/vsl"
)

// StageMask is a bitmask of pipeline stages a built-in is visible in.
type StageMask uint8

const (
	StageVertex StageMask = 1 << iota
	StageFragment

	StageAll = StageVertex | StageFragment
)

// Has reports whether the mask includes the given stage.
func (m StageMask) Has(stage StageMask) bool {
	return m&stage != 0
}

// Var describes one built-in variable.
type Var struct {
	// Name is the identifier visible to shader authors (e.g. "TIME").
	Name string

	// GLSLName is the name emitted into generated code. For uniform-backed
	// built-ins this is the uniform the platform binds (e.g. "time"); for
	// varying-backed built-ins it is the varying carrying the value across
	// stages; for stage-local aliases it equals Name.
	GLSLName string

	// Type is the GLSL type.
	Type string

	// Stages the variable is visible in.
	Stages StageMask

	// IsUniform marks uniform-backed built-ins. Identifier references emit
	// GLSLName directly and the uniform appears in the transpiled uniform
	// list whether or not user code touches it.
	IsUniform bool

	// IsVarying marks varying-backed built-ins. The vertex stage writes the
	// alias back into the varying after the user body runs.
	IsVarying bool

	// Writable marks built-ins the user code is expected to assign
	// (outputs like ALBEDO), as opposed to read-only inputs like TIME.
	Writable bool
}

// lookup tables, built once in init from the per-kind slices in tables.go.
var lookupByKind map[vsl.ShaderKind]map[string]*Var

func init() {
	lookupByKind = make(map[vsl.ShaderKind]map[string]*Var, 3)
	for kind, vars := range varsByKind {
		m := make(map[string]*Var, len(vars))
		for _, v := range vars {
			m[v.Name] = v
		}
		lookupByKind[kind] = m
	}
}

// Lookup returns the built-in descriptor for the given shader kind and
// identifier, or nil when the identifier is user-defined. Lookups are
// case-sensitive and a miss is not an error.
func Lookup(kind vsl.ShaderKind, name string) *Var {
	return lookupByKind[kind][name]
}

// Vars returns every built-in visible to the given shader kind, in the
// fixed table order.
func Vars(kind vsl.ShaderKind) []*Var {
	return varsByKind[kind]
}

// Uniforms returns the uniform-backed built-ins for the given shader kind,
// optionally filtered by stage. Pass StageAll for the unfiltered set. The
// order is fixed, so outputs built from it are deterministic.
func Uniforms(kind vsl.ShaderKind, stage StageMask) []*Var {
	var out []*Var
	for _, v := range varsByKind[kind] {
		if v.IsUniform && v.Stages.Has(stage) {
			out = append(out, v)
		}
	}
	return out
}

// Varyings returns the varying-backed built-ins for the given shader kind,
// in fixed table order.
func Varyings(kind vsl.ShaderKind) []*Var {
	var out []*Var
	for _, v := range varsByKind[kind] {
		if v.IsVarying {
			out = append(out, v)
		}
	}
	return out
}

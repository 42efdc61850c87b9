package builtin

import (
	"github.com/gogpu/voidshade/vsl"
)

// varsByKind lists the built-ins of each shader kind. Slice order is the
// order built-in uniforms and varyings appear in generated output, so it
// must stay stable.
var varsByKind = map[vsl.ShaderKind][]*Var{
	vsl.KindCanvasItem: {
		// Uniform-backed inputs.
		{Name: "TIME", GLSLName: "time", Type: "float", Stages: StageAll, IsUniform: true},
		{Name: "SCREEN_SIZE", GLSLName: "screenSize", Type: "vec2", Stages: StageAll, IsUniform: true},

		// Varying-backed aliases: written in the vertex stage, read in the
		// fragment stage.
		{Name: "UV", GLSLName: "vUv", Type: "vec2", Stages: StageAll, IsVarying: true, Writable: true},
		{Name: "COLOR", GLSLName: "vColor", Type: "vec4", Stages: StageAll, IsVarying: true, Writable: true},
		{Name: "MODEL_ORIGIN", GLSLName: "vModelOrigin", Type: "vec3", Stages: StageAll, IsVarying: true},
		{Name: "ORIGIN_SCREEN_Y", GLSLName: "vOriginScreenY", Type: "float", Stages: StageAll, IsVarying: true},

		// Stage-local aliases.
		{Name: "VERTEX", GLSLName: "VERTEX", Type: "vec2", Stages: StageVertex, Writable: true},
		{Name: "POINT_SIZE", GLSLName: "POINT_SIZE", Type: "float", Stages: StageVertex, Writable: true},
		{Name: "SCREEN_UV", GLSLName: "SCREEN_UV", Type: "vec2", Stages: StageFragment},
	},

	vsl.KindSpatial: {
		{Name: "TIME", GLSLName: "time", Type: "float", Stages: StageAll, IsUniform: true},
		{Name: "SCREEN_SIZE", GLSLName: "screenSize", Type: "vec2", Stages: StageAll, IsUniform: true},
		{Name: "CAMERA_POSITION", GLSLName: "cameraPosition", Type: "vec3", Stages: StageAll, IsUniform: true},

		{Name: "UV", GLSLName: "vUv", Type: "vec2", Stages: StageAll, IsVarying: true, Writable: true},
		{Name: "COLOR", GLSLName: "vColor", Type: "vec4", Stages: StageAll, IsVarying: true, Writable: true},
		{Name: "NORMAL", GLSLName: "vNormal", Type: "vec3", Stages: StageAll, IsVarying: true, Writable: true},
		{Name: "MODEL_ORIGIN", GLSLName: "vModelOrigin", Type: "vec3", Stages: StageAll, IsVarying: true},
		{Name: "ORIGIN_SCREEN_Y", GLSLName: "vOriginScreenY", Type: "float", Stages: StageAll, IsVarying: true},

		{Name: "VERTEX", GLSLName: "VERTEX", Type: "vec3", Stages: StageVertex, Writable: true},
		{Name: "POINT_SIZE", GLSLName: "POINT_SIZE", Type: "float", Stages: StageVertex, Writable: true},
		{Name: "SCREEN_UV", GLSLName: "SCREEN_UV", Type: "vec2", Stages: StageFragment},

		// Fragment outputs assembled into gl_FragColor.
		{Name: "ALBEDO", GLSLName: "ALBEDO", Type: "vec3", Stages: StageFragment, Writable: true},
		{Name: "EMISSION", GLSLName: "EMISSION", Type: "vec3", Stages: StageFragment, Writable: true},
		{Name: "ALPHA", GLSLName: "ALPHA", Type: "float", Stages: StageFragment, Writable: true},
	},

	vsl.KindParticles: {
		{Name: "TIME", GLSLName: "time", Type: "float", Stages: StageAll, IsUniform: true},
		{Name: "SCREEN_SIZE", GLSLName: "screenSize", Type: "vec2", Stages: StageAll, IsUniform: true},
		{Name: "CAMERA_POSITION", GLSLName: "cameraPosition", Type: "vec3", Stages: StageAll, IsUniform: true},
		{Name: "DELTA", GLSLName: "delta", Type: "float", Stages: StageVertex, IsUniform: true},
		{Name: "LIFETIME", GLSLName: "lifetime", Type: "float", Stages: StageVertex, IsUniform: true},

		{Name: "UV", GLSLName: "vUv", Type: "vec2", Stages: StageAll, IsVarying: true, Writable: true},
		{Name: "COLOR", GLSLName: "vColor", Type: "vec4", Stages: StageAll, IsVarying: true, Writable: true},
		{Name: "MODEL_ORIGIN", GLSLName: "vModelOrigin", Type: "vec3", Stages: StageAll, IsVarying: true},
		{Name: "ORIGIN_SCREEN_Y", GLSLName: "vOriginScreenY", Type: "float", Stages: StageAll, IsVarying: true},

		{Name: "VERTEX", GLSLName: "VERTEX", Type: "vec3", Stages: StageVertex, Writable: true},
		{Name: "POINT_SIZE", GLSLName: "POINT_SIZE", Type: "float", Stages: StageVertex, Writable: true},
		{Name: "SCREEN_UV", GLSLName: "SCREEN_UV", Type: "vec2", Stages: StageFragment},
	},
}

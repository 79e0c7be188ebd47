// Package shader holds the built-in shader sources used by the renderer
// and the sandbox. Every program comes in a desktop GLSL 4.10 form and a
// WebGL2 (GLSL ES 3.00) form; the OpenGL backend translates the latter.
package shader

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const flatColorVertexGL = `#version 410 core
layout (location = 0) in vec3 aPosition;

uniform mat4 uViewProjection;
uniform mat4 uTransform;

void main() {
    gl_Position = uViewProjection * uTransform * vec4(aPosition, 1.0);
}
`

const flatColorFragmentGL = `#version 410 core
layout (location = 0) out vec4 color;

uniform vec4 uColor;

void main() {
    color = uColor;
}
`

const textureVertexGL = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uViewProjection;
uniform mat4 uTransform;

out vec2 vTexCoord;

void main() {
    vTexCoord = aTexCoord;
    gl_Position = uViewProjection * uTransform * vec4(aPosition, 1.0);
}
`

const textureFragmentGL = `#version 410 core
layout (location = 0) out vec4 color;

in vec2 vTexCoord;

uniform sampler2D uTexture;

void main() {
    color = texture(uTexture, vTexCoord);
}
`

// ─────────────────────────────────── WebGL2 ────────────────────────────────────

const flatColorVertexES = `#version 300 es
precision highp float;
layout (location = 0) in vec3 aPosition;

uniform mat4 uViewProjection;
uniform mat4 uTransform;

void main() {
    gl_Position = uViewProjection * uTransform * vec4(aPosition, 1.0);
}
`

const flatColorFragmentES = `#version 300 es
precision highp float;
layout (location = 0) out vec4 color;

uniform vec4 uColor;

void main() {
    color = uColor;
}
`

const textureVertexES = `#version 300 es
precision highp float;
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uViewProjection;
uniform mat4 uTransform;

out vec2 vTexCoord;

void main() {
    vTexCoord = aTexCoord;
    gl_Position = uViewProjection * uTransform * vec4(aPosition, 1.0);
}
`

const textureFragmentES = `#version 300 es
precision highp float;
layout (location = 0) out vec4 color;

in vec2 vTexCoord;

uniform sampler2D uTexture;

void main() {
    color = texture(uTexture, vTexCoord);
}
`

// FlatColor returns the vertex and fragment sources of the single-color
// program. Uniforms: uViewProjection, uTransform, uColor.
func FlatColor(isGLES bool) (vertex, fragment string) {
	if isGLES {
		return flatColorVertexES, flatColorFragmentES
	}
	return flatColorVertexGL, flatColorFragmentGL
}

// Texture returns the vertex and fragment sources of the textured
// program. Uniforms: uViewProjection, uTransform, uTexture.
func Texture(isGLES bool) (vertex, fragment string) {
	if isGLES {
		return textureVertexES, textureFragmentES
	}
	return textureVertexGL, textureFragmentGL
}

// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms scene geometry into eye and clip space.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader lights scene geometry with one light and optional fog.
//
//go:embed scene.frag
var SceneFragmentShader string

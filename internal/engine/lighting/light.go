// Package lighting provides the scene light and fog parameters.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Light is a single light source. A Position with w=1 is a point light,
// w=0 a directional one.
type Light struct {
	Position mgl32.Vec4
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// NewWhiteLight returns a white light at the given homogeneous position.
func NewWhiteLight(position mgl32.Vec4) Light {
	white := mgl32.Vec3{1, 1, 1}
	return Light{
		Position: position,
		Ambient:  white,
		Diffuse:  white,
		Specular: white,
	}
}

// EyePosition returns the light position transformed into eye space by
// the view matrix. It must be taken before any model transform.
func (l Light) EyePosition(view mgl32.Mat4) mgl32.Vec4 {
	return view.Mul4x1(l.Position)
}

// Model holds scene-wide lighting settings.
type Model struct {
	GlobalAmbient mgl32.Vec3
	TwoSided      bool
}

// DefaultModel returns a dim global ambient with two-sided lighting.
func DefaultModel() Model {
	return Model{
		GlobalAmbient: mgl32.Vec3{0.05, 0.05, 0.05},
		TwoSided:      true,
	}
}

package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Fog is exponential distance fog: a surface at eye distance d keeps
// exp(-Density*d) of its color and takes the rest from Color.
type Fog struct {
	Color   mgl32.Vec3
	Density float32
}

// SeaFog returns the dusty pink fog laid over the sea.
func SeaFog() Fog {
	return Fog{
		Color:   mgl32.Vec3{0.737255, 0.560784, 0.560784},
		Density: 0.005,
	}
}

// Package material defines the scene's color palette and the per-model
// group-to-material tables.
package material

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Array returns the color as a 4-element array for GPU upload.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Palette.
var (
	Yellow      = Color{1.0, 1.0, 0.0, 1.0}
	Black       = Color{0.0, 0.0, 0.0, 1.0}
	LightPurple = Color{0.87, 0.58, 0.98, 1.0}
	Blue        = Color{0.0, 0.0, 1.0, 1.0}
	Red         = Color{1.0, 0.0, 0.0, 1.0}
	Green       = Color{0.0, 1.0, 0.0, 1.0}
	White       = Color{1.0, 1.0, 1.0, 1.0}
	Grey        = Color{0.05, 0.05, 0.05, 1.0}
	SeaBlue     = Color{0.0, 0.3, 0.8, 1.0}
	Orange      = Color{1.0, 0.5, 0.0, 1.0}
)

// Material describes how a surface reacts to the scene light.
type Material struct {
	Diffuse   Color
	Ambient   Color
	Specular  Color
	Shininess float32
}

// Flat returns a material with the same diffuse and ambient color and no
// specular highlight.
func Flat(c Color) Material {
	return Material{Diffuse: c, Ambient: c, Specular: Black}
}

// Matte returns a material with the given diffuse and ambient colors and
// no specular highlight.
func Matte(diffuse, ambient Color) Material {
	return Material{Diffuse: diffuse, Ambient: ambient, Specular: Black}
}

// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection defaults.
const (
	DefaultFovY = 45.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 40000.0
)

// LookAtCamera looks from a fixed eye position at a fixed target.
type LookAtCamera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// NewLookAtCamera creates a camera with +Y as the up direction.
func NewLookAtCamera(eye, target mgl32.Vec3) *LookAtCamera {
	return &LookAtCamera{
		Eye:    eye,
		Target: target,
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *LookAtCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Perspective describes a symmetric perspective projection.
type Perspective struct {
	FovY   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective returns the default projection for a viewport of the
// given size. A zero height is treated as one pixel.
func NewPerspective(width, height int) Perspective {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	return Perspective{
		FovY:   DefaultFovY,
		Aspect: float32(width) / float32(height),
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// Matrix returns the projection matrix.
func (p Perspective) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FovY), p.Aspect, p.Near, p.Far)
}

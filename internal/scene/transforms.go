package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Model placement.
const (
	PlaneHeading = -45.0 // degrees about +Y
)

// PropellerOffsets are the hub positions relative to the plane.
var PropellerOffsets = [2]mgl32.Vec3{
	{-0.3, -0.1, 0.2},
	{0.2, -0.1, -0.3},
}

// propellerPivot moves the propeller model so it spins about its hub.
var propellerPivot = mgl32.Vec3{0, 0.15, -0.35}

// PlaneTransform returns the plane's model matrix.
func (s *State) PlaneTransform() mgl32.Mat4 {
	p := s.PlanePosition
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(PlaneHeading)))
}

// PropellerTransforms returns the model matrix of each propeller for the
// current animation phase.
func (s *State) PropellerTransforms() [2]mgl32.Mat4 {
	var out [2]mgl32.Mat4
	spin := mgl32.HomogRotate3DX(mgl32.DegToRad(s.Propeller.Degrees()))
	heading := mgl32.HomogRotate3DY(mgl32.DegToRad(PlaneHeading))
	pivot := mgl32.Translate3D(propellerPivot.X(), propellerPivot.Y(), propellerPivot.Z())

	for i, off := range PropellerOffsets {
		hub := s.PlanePosition.Add(off)
		out[i] = mgl32.Translate3D(hub.X(), hub.Y(), hub.Z()).
			Mul4(heading).
			Mul4(spin).
			Mul4(pivot)
	}
	return out
}

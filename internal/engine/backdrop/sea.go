package backdrop

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/flightsim/internal/engine/material"
	"github.com/Faultbox/flightsim/internal/engine/model"
)

// Sea-and-sky enclosure layout.
const (
	SkyRadius    = 500
	SkyHeight    = 500
	SkySlices    = 250
	SkyStacks    = 100
	SeaRadius    = 501
	SeaSlices    = 100
	SeaLoops     = 100
	enclosureX   = -30
	enclosureY   = -20
	enclosureZ   = -30
	enclosureRot = -90 // degrees about X, turns the +Z axis up
)

// Sky builds the enclosing cylinder.
func Sky() *model.Mesh {
	return Cylinder(SkyRadius, SkyRadius, SkyHeight, SkySlices, SkyStacks,
		material.Matte(material.Orange, material.Grey))
}

// Sea builds the disk closing the bottom of the sky cylinder.
func Sea() *model.Mesh {
	return Disk(0, SeaRadius, SeaSlices, SeaLoops,
		material.Matte(material.SeaBlue, material.Grey))
}

// EnclosureTransform places the sky cylinder and the sea disk in the world.
func EnclosureTransform() mgl32.Mat4 {
	return mgl32.Translate3D(enclosureX, enclosureY, enclosureZ).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(enclosureRot)))
}

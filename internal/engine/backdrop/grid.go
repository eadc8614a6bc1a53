package backdrop

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/flightsim/internal/engine/material"
	"github.com/Faultbox/flightsim/internal/engine/model"
)

// Reference grid layout.
const (
	GridSize        = 100
	AxisLength      = 2.0
	AxisLineWidth   = 5.0
	AxisLift        = 0.05 // keeps axes and marker above the grid plane
	MarkerRadius    = 0.2
	MarkerSlices    = 20
	MarkerStacks    = 20
	gridCellOriginX = -GridSize/2 + 1
	gridCellOriginZ = -GridSize/2 + 1
)

// Grid builds GridSize x GridSize white unit quads on the y=0 plane.
// Cell (row, col) starts at (-49+col, 0, -49+row), so the grid covers
// [-49, 51] on both X and Z.
func Grid() *model.Mesh {
	mesh := &model.Mesh{}
	white := material.Flat(material.White)
	up := [3]float32{0, 1, 0}

	for row := 0; row < GridSize; row++ {
		z := float32(gridCellOriginZ + row)
		for col := 0; col < GridSize; col++ {
			x := float32(gridCellOriginX + col)
			appendQuad(mesh, [4]model.Vertex{
				model.NewVertex([3]float32{x, 0, z}, up, white),
				model.NewVertex([3]float32{x, 0, z + 1}, up, white),
				model.NewVertex([3]float32{x + 1, 0, z + 1}, up, white),
				model.NewVertex([3]float32{x + 1, 0, z}, up, white),
			})
		}
	}
	return mesh
}

// Axes builds the red +X, green +Y and blue +Z reference lines as
// two-corner polygons.
func Axes() *model.Mesh {
	mesh := &model.Mesh{}
	up := [3]float32{0, 1, 0}

	axes := []struct {
		end   [3]float32
		color material.Color
	}{
		{[3]float32{AxisLength, 0, 0}, material.Red},
		{[3]float32{0, AxisLength, 0}, material.Green},
		{[3]float32{0, 0, AxisLength}, material.Blue},
	}

	for _, a := range axes {
		m := material.Flat(a.color)
		first := int32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices,
			model.NewVertex([3]float32{0, 0, 0}, up, m),
			model.NewVertex(a.end, up, m),
		)
		mesh.Polygons = append(mesh.Polygons, model.Polygon{First: first, Count: 2})
	}
	return mesh
}

// Marker builds the grey sphere that marks the origin.
func Marker() *model.Mesh {
	return Sphere(MarkerRadius, MarkerSlices, MarkerStacks, material.Flat(material.Grey))
}

// AxesTransform lifts the axes and the marker off the grid plane.
func AxesTransform() mgl32.Mat4 {
	return mgl32.Translate3D(0, AxisLift, 0)
}

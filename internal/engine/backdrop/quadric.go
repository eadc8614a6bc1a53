// Package backdrop generates the environment geometry drawn behind the
// models: the reference grid with axes, and the sea-and-sky enclosure.
package backdrop

import (
	"math"

	"github.com/Faultbox/flightsim/internal/engine/material"
	"github.com/Faultbox/flightsim/internal/engine/model"
)

// appendQuad adds a four-corner polygon to mesh.
func appendQuad(mesh *model.Mesh, corners [4]model.Vertex) {
	first := int32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, corners[:]...)
	mesh.Polygons = append(mesh.Polygons, model.Polygon{First: first, Count: 4})
}

func sincos(angle float64) (float32, float32) {
	s, c := math.Sincos(angle)
	return float32(s), float32(c)
}

// Cylinder builds an open cylinder along +Z from z=0 to z=height.
// Slices divide the circumference, stacks divide the height.
func Cylinder(baseRadius, topRadius, height float32, slices, stacks int, m material.Material) *model.Mesh {
	mesh := &model.Mesh{}
	if slices < 3 || stacks < 1 {
		return mesh
	}

	// Side slope for the normals of a cone section.
	nz := (baseRadius - topRadius) / height

	ring := func(i int, z, r float32) model.Vertex {
		s, c := sincos(2 * math.Pi * float64(i%slices) / float64(slices))
		n := normalize([3]float32{s, c, nz})
		return model.NewVertex([3]float32{r * s, r * c, z}, n, m)
	}

	for j := 0; j < stacks; j++ {
		z0 := height * float32(j) / float32(stacks)
		z1 := height * float32(j+1) / float32(stacks)
		r0 := baseRadius + (topRadius-baseRadius)*float32(j)/float32(stacks)
		r1 := baseRadius + (topRadius-baseRadius)*float32(j+1)/float32(stacks)

		for i := 0; i < slices; i++ {
			appendQuad(mesh, [4]model.Vertex{
				ring(i, z0, r0),
				ring(i+1, z0, r0),
				ring(i+1, z1, r1),
				ring(i, z1, r1),
			})
		}
	}
	return mesh
}

// Disk builds a flat annulus in the z=0 plane facing +Z. An inner radius
// of zero gives a filled disk.
func Disk(innerRadius, outerRadius float32, slices, loops int, m material.Material) *model.Mesh {
	mesh := &model.Mesh{}
	if slices < 3 || loops < 1 {
		return mesh
	}

	up := [3]float32{0, 0, 1}
	point := func(i int, r float32) model.Vertex {
		s, c := sincos(2 * math.Pi * float64(i%slices) / float64(slices))
		return model.NewVertex([3]float32{r * s, r * c, 0}, up, m)
	}

	step := (outerRadius - innerRadius) / float32(loops)
	for l := 0; l < loops; l++ {
		r0 := innerRadius + step*float32(l)
		r1 := r0 + step
		for i := 0; i < slices; i++ {
			appendQuad(mesh, [4]model.Vertex{
				point(i, r0),
				point(i, r1),
				point(i+1, r1),
				point(i+1, r0),
			})
		}
	}
	return mesh
}

// Sphere builds a sphere around the origin with stacks running from the
// -Z pole to the +Z pole.
func Sphere(radius float32, slices, stacks int, m material.Material) *model.Mesh {
	mesh := &model.Mesh{}
	if slices < 3 || stacks < 2 {
		return mesh
	}

	point := func(i, j int) model.Vertex {
		st, ct := sincos(math.Pi * float64(j) / float64(stacks))
		sp, cp := sincos(2 * math.Pi * float64(i%slices) / float64(slices))
		n := [3]float32{cp * st, sp * st, -ct}
		return model.NewVertex([3]float32{n[0] * radius, n[1] * radius, n[2] * radius}, n, m)
	}

	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			appendQuad(mesh, [4]model.Vertex{
				point(i, j),
				point(i+1, j),
				point(i+1, j+1),
				point(i, j+1),
			})
		}
	}
	return mesh
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

// Package model compiles parsed models into polygon meshes ready for GPU upload.
package model

import "github.com/Faultbox/flightsim/internal/engine/material"

// FloatsPerVertex is the interleaved size of a Vertex:
// position(3) normal(3) diffuse(4) ambient(4) specular(4) shininess(1).
const FloatsPerVertex = 19

// Vertex represents one polygon corner with its resolved material.
type Vertex struct {
	Position  [3]float32
	Normal    [3]float32
	Diffuse   [4]float32
	Ambient   [4]float32
	Specular  [4]float32
	Shininess float32
}

// NewVertex builds a vertex carrying material m.
func NewVertex(pos, normal [3]float32, m material.Material) Vertex {
	return Vertex{
		Position:  pos,
		Normal:    normal,
		Diffuse:   m.Diffuse.Array(),
		Ambient:   m.Ambient.Array(),
		Specular:  m.Specular.Array(),
		Shininess: m.Shininess,
	}
}

// Polygon is a run of consecutive vertices forming one planar face.
type Polygon struct {
	First int32
	Count int32
	Group int
}

// Mesh holds compiled polygons. It is the retained equivalent of a display list.
type Mesh struct {
	Vertices []Vertex
	Polygons []Polygon
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the model.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// PolygonCount returns the number of polygons in the mesh.
func (m *Mesh) PolygonCount() int {
	if m == nil {
		return 0
	}
	return len(m.Polygons)
}

// CornerCount returns the number of polygon corners in the mesh.
func (m *Mesh) CornerCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	return m.PolygonCount() == 0
}

// Interleave flattens the vertices into the GPU layout described by FloatsPerVertex.
func (m *Mesh) Interleave() []float32 {
	if m.Empty() {
		return nil
	}
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
		out = append(out, v.Diffuse[:]...)
		out = append(out, v.Ambient[:]...)
		out = append(out, v.Specular[:]...)
		out = append(out, v.Shininess)
	}
	return out
}

// Firsts returns the first-vertex offset of each polygon.
func (m *Mesh) Firsts() []int32 {
	out := make([]int32, len(m.Polygons))
	for i, p := range m.Polygons {
		out[i] = p.First
	}
	return out
}

// Counts returns the corner count of each polygon.
func (m *Mesh) Counts() []int32 {
	out := make([]int32, len(m.Polygons))
	for i, p := range m.Polygons {
		out[i] = p.Count
	}
	return out
}

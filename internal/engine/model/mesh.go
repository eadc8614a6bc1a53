package model

import (
	"github.com/Faultbox/flightsim/internal/engine/material"
	"github.com/Faultbox/flightsim/pkg/formats"
)

// BuildMesh compiles a parsed model into a mesh, coloring each face with
// the material its group resolves to in table. Each corner uses the same
// index for its vertex and its normal. A nil model yields an empty mesh.
func BuildMesh(m *formats.Model, table material.Table) *Mesh {
	mesh := &Mesh{}
	if m == nil {
		return mesh
	}

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for _, face := range m.Faces {
		if len(face.Indices) == 0 {
			continue
		}

		mat := table.Lookup(face.Group)
		first := int32(len(mesh.Vertices))

		for _, idx := range face.Indices {
			pos := m.Vertex(idx)
			updateBounds(&bounds, pos)
			mesh.Vertices = append(mesh.Vertices, NewVertex(pos, m.Normal(idx), mat))
		}

		mesh.Polygons = append(mesh.Polygons, Polygon{
			First: first,
			Count: int32(len(face.Indices)),
			Group: face.Group,
		})
	}

	if !mesh.Empty() {
		mesh.Bounds = bounds
	}
	return mesh
}

// CountGroups returns the number of polygons per group counter value.
func CountGroups(mesh *Mesh) map[int]int {
	counts := make(map[int]int)
	if mesh == nil {
		return counts
	}
	for _, p := range mesh.Polygons {
		counts[p.Group]++
	}
	return counts
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

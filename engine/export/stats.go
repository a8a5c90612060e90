package export

import (
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
)

// Stats summarizes one mesh.
type Stats struct {
	Name       string
	Topology   mesh.Topology
	Vertices   int
	Indices    int
	Primitives int
	Bounds     math.Extents3D
	// Area is the summed triangle area; zero for line meshes.
	Area float32
	// Degenerate counts triangles with (near) zero area.
	Degenerate int
}

func Collect(name string, m *mesh.Mesh) Stats {
	s := Stats{
		Name:       name,
		Topology:   m.Topology(),
		Vertices:   m.VertexCount(),
		Indices:    m.IndexCount(),
		Primitives: m.PrimitiveCount(),
		Bounds:     m.Bounds(),
	}
	m.ForEachTriangle(func(a, b, c mesh.Vertex) {
		area := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position)).Length() / 2
		if area < math.K_GEOMETRY_EPSILON*math.K_GEOMETRY_EPSILON {
			s.Degenerate++
		}
		s.Area += area
	})
	return s
}

// Size is the edge length of the bounding box along each axis.
func (s Stats) Size() math.Vec3 {
	return s.Bounds.Max.Sub(s.Bounds.Min)
}

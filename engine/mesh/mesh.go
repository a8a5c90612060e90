package mesh

import (
	"fmt"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
)

/**
 * @brief An immutable indexed mesh. Produced once by Builder.Build and never
 * modified afterwards; the transform helpers return new meshes.
 */
type Mesh struct {
	vertices []Vertex
	indices  []uint32
	topology Topology
}

// Empty returns a mesh without primitives that still carries its topology.
func Empty(topology Topology) *Mesh {
	return &Mesh{topology: topology}
}

// FromData copies the supplied buffers into a new mesh.
func FromData(topology Topology, vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{
		vertices: make([]Vertex, len(vertices)),
		indices:  make([]uint32, len(indices)),
		topology: topology,
	}
	copy(m.vertices, vertices)
	copy(m.indices, indices)
	return m
}

func (m *Mesh) Topology() Topology {
	return m.topology
}

func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *Mesh) IndexCount() int {
	return len(m.indices)
}

// Vertex returns the vertex at i.
func (m *Mesh) Vertex(i int) Vertex {
	return m.vertices[i]
}

// Vertices returns a copy of the vertex list.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Indices returns a copy of the index buffer.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, len(m.indices))
	copy(out, m.indices)
	return out
}

func (m *Mesh) PrimitiveCount() int {
	return m.topology.PrimitiveCount(len(m.indices))
}

func (m *Mesh) IsEmpty() bool {
	return m.PrimitiveCount() == 0
}

// ForEachTriangle visits every triangle of a triangle, quad, strip or fan
// mesh. Strip triangles alternate their order so they keep one winding.
func (m *Mesh) ForEachTriangle(fn func(a, b, c Vertex)) {
	v := m.vertices
	idx := m.indices
	switch m.topology {
	case TopologyTriangles:
		for i := 0; i+2 < len(idx); i += 3 {
			fn(v[idx[i]], v[idx[i+1]], v[idx[i+2]])
		}
	case TopologyQuads:
		m.ForEachQuad(func(a, b, c, d Vertex) {
			fn(a, b, d)
			fn(b, c, d)
		})
	case TopologyTriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				fn(v[idx[i]], v[idx[i+1]], v[idx[i+2]])
			} else {
				fn(v[idx[i+1]], v[idx[i]], v[idx[i+2]])
			}
		}
	case TopologyTriangleFan:
		for i := 1; i+1 < len(idx); i++ {
			fn(v[idx[0]], v[idx[i]], v[idx[i+1]])
		}
	}
}

// ForEachLine visits every segment of a line mesh.
func (m *Mesh) ForEachLine(fn func(a, b Vertex)) {
	if m.topology != TopologyLines {
		return
	}
	for i := 0; i+1 < len(m.indices); i += 2 {
		fn(m.vertices[m.indices[i]], m.vertices[m.indices[i+1]])
	}
}

// ForEachQuad visits every quad of a quad mesh, corners counter-clockwise.
func (m *Mesh) ForEachQuad(fn func(a, b, c, d Vertex)) {
	if m.topology != TopologyQuads {
		return
	}
	v := m.vertices
	idx := m.indices
	for i := 0; i+3 < len(idx); i += 4 {
		fn(v[idx[i]], v[idx[i+1]], v[idx[i+2]], v[idx[i+3]])
	}
}

// Mapped returns a new mesh whose vertices went through fn. The index buffer
// is copied unchanged.
func (m *Mesh) Mapped(fn func(Vertex) Vertex) *Mesh {
	out := &Mesh{
		vertices: make([]Vertex, len(m.vertices)),
		indices:  make([]uint32, len(m.indices)),
		topology: m.topology,
	}
	for i, v := range m.vertices {
		out.vertices[i] = fn(v)
	}
	copy(out.indices, m.indices)
	return out
}

func (m *Mesh) Scaled(s float32) *Mesh {
	return m.Mapped(func(v Vertex) Vertex { return v.Scaled(s) })
}

func (m *Mesh) Translated(d math.Vec3) *Mesh {
	return m.Mapped(func(v Vertex) Vertex { return v.Translated(d) })
}

func (m *Mesh) Transformed(t math.Transform) *Mesh {
	return m.Mapped(func(v Vertex) Vertex { return v.Transformed(t) })
}

// Bounds returns the axis aligned extents of the positions. An empty mesh
// reports zero extents.
func (m *Mesh) Bounds() math.Extents3D {
	if len(m.vertices) == 0 {
		return math.Extents3D{}
	}
	ext := math.Extents3D{Min: m.vertices[0].Position, Max: m.vertices[0].Position}
	for _, v := range m.vertices[1:] {
		p := v.Position
		ext.Min = math.NewVec3(math.Min(ext.Min.X, p.X), math.Min(ext.Min.Y, p.Y), math.Min(ext.Min.Z, p.Z))
		ext.Max = math.NewVec3(math.Max(ext.Max.X, p.X), math.Max(ext.Max.Y, p.Y), math.Max(ext.Max.Z, p.Z))
	}
	return ext
}

// Validate checks the index buffer against the vertex list and topology.
func (m *Mesh) Validate() error {
	count := uint32(len(m.vertices))
	for i, idx := range m.indices {
		if idx >= count {
			return fmt.Errorf("index %d at position %d (vertex count %d): %w", idx, i, count, core.ErrIndexOutOfRange)
		}
	}
	if m.topology.IsList() && len(m.indices)%m.topology.VerticesPerPrimitive() != 0 {
		return fmt.Errorf("%d indices for %s: %w", len(m.indices), m.topology, core.ErrIndexCount)
	}
	return nil
}

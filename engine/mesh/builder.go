package mesh

import (
	"github.com/spaghettifunk/meshforge/engine/pattern"
)

// Logical quad corners used by pattern vertex orders.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// defaultQuadOrder is BL->BR->TL then BR->TR->TL.
var defaultQuadOrder = [][3]int{
	{CornerBottomLeft, CornerBottomRight, CornerTopLeft},
	{CornerBottomRight, CornerTopRight, CornerTopLeft},
}

var defaultCellOrder = [][3]int{{0, 1, 2}}

// Builder accumulates vertices and indices for a single mesh. A builder
// belongs to one tessellation call; Clear it before reusing.
type Builder struct {
	vertices []Vertex
	indices  []uint32
	topology Topology
}

func NewBuilder(topology Topology) *Builder {
	return &Builder{topology: topology}
}

// NewBuilderWithCapacity preallocates room for the expected counts.
func NewBuilderWithCapacity(topology Topology, vertexCount, indexCount int) *Builder {
	return &Builder{
		vertices: make([]Vertex, 0, vertexCount),
		indices:  make([]uint32, 0, indexCount),
		topology: topology,
	}
}

func (b *Builder) Topology() Topology {
	return b.topology
}

func (b *Builder) VertexCount() int {
	return len(b.vertices)
}

func (b *Builder) IndexCount() int {
	return len(b.indices)
}

// AddVertex appends v and returns its index.
func (b *Builder) AddVertex(v Vertex) uint32 {
	b.vertices = append(b.vertices, v)
	return uint32(len(b.vertices) - 1)
}

// Vertex returns a previously added vertex.
func (b *Builder) Vertex(i uint32) Vertex {
	return b.vertices[i]
}

// Index appends raw indices.
func (b *Builder) Index(indices ...uint32) {
	b.indices = append(b.indices, indices...)
}

func (b *Builder) Triangle(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

func (b *Builder) Line(i0, i1 uint32) {
	b.indices = append(b.indices, i0, i1)
}

// Quad emits a quad with the default triangulation.
func (b *Builder) Quad(topLeft, topRight, bottomRight, bottomLeft uint32) {
	b.QuadFromPattern(topLeft, topRight, bottomRight, bottomLeft, nil)
}

// QuadFromPattern turns one logical quad cell into primitives. Triangle
// builders remap the pattern's vertex order onto the four corners; an order
// that references a corner outside [0,4) falls back to the default split.
// Quad builders emit the corners counter-clockwise and line builders emit the
// outline; both ignore the vertex order.
func (b *Builder) QuadFromPattern(topLeft, topRight, bottomRight, bottomLeft uint32, p pattern.Pattern) {
	switch b.topology {
	case TopologyQuads:
		b.indices = append(b.indices, bottomLeft, bottomRight, topRight, topLeft)
		return
	case TopologyLines:
		b.indices = append(b.indices,
			bottomLeft, bottomRight,
			bottomRight, topRight,
			topRight, topLeft,
			topLeft, bottomLeft)
		return
	}

	corners := [4]uint32{topLeft, topRight, bottomRight, bottomLeft}
	order := pattern.Order(p)
	if !validOrder(order, len(corners)) {
		order = defaultQuadOrder
	}
	for _, tri := range order {
		b.indices = append(b.indices, corners[tri[0]], corners[tri[1]], corners[tri[2]])
	}
}

// CellFromPattern is QuadFromPattern for three-vertex cells (sectors, fan
// slices, polyhedron faces). Cells with another vertex count are triangulated
// as a fan from the first vertex.
func (b *Builder) CellFromPattern(cell []uint32, p pattern.Pattern) {
	if len(cell) < 3 {
		return
	}
	if len(cell) == 4 {
		b.QuadFromPattern(cell[0], cell[1], cell[2], cell[3], p)
		return
	}
	if b.topology == TopologyLines {
		for i := range cell {
			b.indices = append(b.indices, cell[i], cell[(i+1)%len(cell)])
		}
		return
	}
	if b.topology == TopologyQuads {
		// Triangles become quads with a repeated last corner.
		for i := 1; i+1 < len(cell); i++ {
			b.indices = append(b.indices, cell[0], cell[i], cell[i+1], cell[i+1])
		}
		return
	}
	if len(cell) > 3 {
		for i := 1; i+1 < len(cell); i++ {
			b.indices = append(b.indices, cell[0], cell[i], cell[i+1])
		}
		return
	}

	order := pattern.Order(p)
	if !validOrder(order, 3) {
		order = defaultCellOrder
	}
	for _, tri := range order {
		b.indices = append(b.indices, cell[tri[0]], cell[tri[1]], cell[tri[2]])
	}
}

func validOrder(order [][3]int, corners int) bool {
	if len(order) == 0 {
		return false
	}
	for _, tri := range order {
		for _, c := range tri {
			if c < 0 || c >= corners {
				return false
			}
		}
	}
	return true
}

// Merge appends another mesh, offsetting its indices past the vertices
// already held by the builder.
func (b *Builder) Merge(m *Mesh) {
	if m == nil {
		return
	}
	offset := uint32(len(b.vertices))
	b.vertices = append(b.vertices, m.vertices...)
	for _, idx := range m.indices {
		b.indices = append(b.indices, idx+offset)
	}
}

// Build freezes the accumulated data into an immutable Mesh. The builder
// keeps its contents and may continue to grow independently.
func (b *Builder) Build() *Mesh {
	return FromData(b.topology, b.vertices, b.indices)
}

// Clear drops all accumulated data, keeping the topology and capacity.
func (b *Builder) Clear() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

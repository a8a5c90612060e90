package mesh

// Topology tells the renderer how to read the index buffer.
type Topology uint8

const (
	TopologyTriangles Topology = iota
	TopologyLines
	TopologyQuads
	TopologyTriangleStrip
	TopologyTriangleFan
)

func (t Topology) String() string {
	switch t {
	case TopologyTriangles:
		return "triangles"
	case TopologyLines:
		return "lines"
	case TopologyQuads:
		return "quads"
	case TopologyTriangleStrip:
		return "triangle-strip"
	case TopologyTriangleFan:
		return "triangle-fan"
	default:
		return "unknown"
	}
}

// VerticesPerPrimitive is the index stride of list topologies. Strips and
// fans share vertices between primitives and report 1.
func (t Topology) VerticesPerPrimitive() int {
	switch t {
	case TopologyTriangles:
		return 3
	case TopologyLines:
		return 2
	case TopologyQuads:
		return 4
	default:
		return 1
	}
}

// IsList reports whether primitives are independent groups of indices.
func (t Topology) IsList() bool {
	return t == TopologyTriangles || t == TopologyLines || t == TopologyQuads
}

// PrimitiveCount returns how many primitives indexCount indices describe.
func (t Topology) PrimitiveCount(indexCount int) int {
	if t.IsList() {
		return indexCount / t.VerticesPerPrimitive()
	}
	if indexCount < 3 {
		return 0
	}
	return indexCount - 2
}

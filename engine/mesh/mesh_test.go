package mesh

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleStrip() *Mesh {
	vertices := []Vertex{
		At(0, 0, 0, 0, 0),
		At(1, 0, 0, 1, 0),
		At(0, 1, 0, 0, 1),
		At(1, 1, 0, 1, 1),
	}
	return FromData(TopologyTriangleStrip, vertices, []uint32{0, 1, 2, 3})
}

func TestValidate(t *testing.T) {
	vertices := []Vertex{At(0, 0, 0, 0, 0), At(1, 0, 0, 0, 0), At(0, 1, 0, 0, 0)}

	require.NoError(t, FromData(TopologyTriangles, vertices, []uint32{0, 1, 2}).Validate())
	require.NoError(t, Empty(TopologyLines).Validate())

	err := FromData(TopologyTriangles, vertices, []uint32{0, 1, 5}).Validate()
	assert.True(t, errors.Is(err, core.ErrIndexOutOfRange), "got %v", err)

	err = FromData(TopologyTriangles, vertices, []uint32{0, 1, 2, 0}).Validate()
	assert.True(t, errors.Is(err, core.ErrIndexCount), "got %v", err)

	// Strips accept any index count.
	require.NoError(t, FromData(TopologyTriangleStrip, vertices, []uint32{0, 1, 2, 0}).Validate())
}

func TestPrimitiveCounts(t *testing.T) {
	assert.Equal(t, 2, TopologyTriangles.PrimitiveCount(6))
	assert.Equal(t, 3, TopologyLines.PrimitiveCount(6))
	assert.Equal(t, 2, TopologyQuads.PrimitiveCount(8))
	assert.Equal(t, 4, TopologyTriangleStrip.PrimitiveCount(6))
	assert.Equal(t, 0, TopologyTriangleFan.PrimitiveCount(2))
	assert.Equal(t, "triangle-fan", TopologyTriangleFan.String())
}

func TestStripKeepsWinding(t *testing.T) {
	m := triangleStrip()
	require.Equal(t, 2, m.PrimitiveCount())
	m.ForEachTriangle(func(a, b, c Vertex) {
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		assert.Greater(t, n.Z, float32(0))
	})
}

func TestEmptyKeepsTopology(t *testing.T) {
	m := Empty(TopologyLines)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, TopologyLines, m.Topology())
	assert.Equal(t, math.Extents3D{}, m.Bounds())
}

func TestScaleRoundTrip(t *testing.T) {
	m := triangleStrip().Translated(math.NewVec3(0.3, -2, 7))
	for _, s := range []float32{0.5, 2, 10, 0.01} {
		back := m.Scaled(s).Scaled(1 / s)
		for i := 0; i < m.VertexCount(); i++ {
			assert.True(t, back.Vertex(i).Position.Compare(m.Vertex(i).Position, 1e-4), "scale %v vertex %d", s, i)
		}
		assert.Equal(t, m.Indices(), back.Indices())
	}
}

func TestMappedLeavesOriginalUntouched(t *testing.T) {
	m := triangleStrip()
	faded := m.Mapped(func(v Vertex) Vertex { return v.WithAlpha(0.25) })
	assert.Equal(t, float32(1), m.Vertex(0).Alpha)
	assert.Equal(t, float32(0.25), faded.Vertex(0).Alpha)
	assert.Equal(t, m.Topology(), faded.Topology())
}

func TestTransformedRotatesNormals(t *testing.T) {
	tr := math.NewTransform(math.NewVec3(0, 0, 1), math.NewQuatFromAxisAngle(math.NewVec3(1, 0, 0), math.K_HALF_PI, true), 1)
	m := triangleStrip().Transformed(tr)
	n := m.Vertex(0).Normal
	assert.True(t, n.Compare(math.NewVec3(0, 0, 1), 1e-5), "got %v", n)
	assert.InDelta(t, 1, m.Vertex(0).Position.Z, 1e-5)
}

func TestBounds(t *testing.T) {
	ext := triangleStrip().Scaled(2).Bounds()
	assert.True(t, ext.Min.Compare(math.NewVec3(0, 0, 0), 1e-6))
	assert.True(t, ext.Max.Compare(math.NewVec3(2, 2, 0), 1e-6))
}

func TestVertexHelpers(t *testing.T) {
	v := At(0, 0, 0, 0, 0).WithAlpha(3)
	assert.Equal(t, float32(1), v.Alpha)

	w := At(2, 0, 0, 1, 1).WithNormal(math.NewVec3(1, 0, 0)).WithAlpha(0)
	mid := v.Lerp(w, 0.5)
	assert.True(t, mid.Position.Compare(math.NewVec3(1, 0, 0), 1e-6))
	assert.InDelta(t, 1, mid.Normal.Length(), 1e-5)
	assert.InDelta(t, 0.5, mid.Alpha, 1e-6)
}

func TestWeldMergesDuplicates(t *testing.T) {
	b := NewBuilder(TopologyTriangles)
	// Two triangles sharing an edge, each with its own copies.
	for _, tri := range [][3]Vertex{
		{At(0, 0, 0, 0, 0), At(1, 0, 0, 1, 0), At(0, 1, 0, 0, 1)},
		{At(1, 0, 0, 1, 0), At(1, 1, 0, 1, 1), At(0, 1, 0, 0, 1)},
	} {
		b.Triangle(b.AddVertex(tri[0]), b.AddVertex(tri[1]), b.AddVertex(tri[2]))
	}
	m := b.Build()
	require.Equal(t, 6, m.VertexCount())

	welded := Weld(m, 1e-5)
	require.NoError(t, welded.Validate())
	assert.Equal(t, 4, welded.VertexCount())
	assert.Equal(t, m.PrimitiveCount(), welded.PrimitiveCount())

	// A texture seam keeps its vertices apart.
	verts := m.Vertices()
	verts[3] = verts[3].WithTexcoord(math.NewVec2(0.5, 0))
	seam := Weld(FromData(TopologyTriangles, verts, m.Indices()), 1e-5)
	assert.Equal(t, 5, seam.VertexCount())
}

func TestWeldDropsCollapsedTriangles(t *testing.T) {
	verts := []Vertex{
		At(0, 0, 0, 0, 0), At(1, 0, 0, 1, 0), At(0, 1, 0, 0, 1),
		At(0, 0, 0, 0, 0), At(1e-7, 0, 0, 0, 0), At(1, 1, 0, 1, 1),
	}
	m := FromData(TopologyTriangles, verts, []uint32{0, 1, 2, 3, 4, 5})

	welded := Weld(m, 1e-5)
	require.NoError(t, welded.Validate())
	assert.Equal(t, 1, welded.PrimitiveCount())
	assert.Equal(t, []uint32{0, 1, 2}, welded.Indices())

	// Strips rely on their degenerate triangles and keep every index.
	strip := Weld(FromData(TopologyTriangleStrip, verts, []uint32{0, 1, 2, 3, 4, 5}), 1e-5)
	assert.Equal(t, 6, strip.IndexCount())
}

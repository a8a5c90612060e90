package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleIsCounterClockwiseFromAbove(t *testing.T) {
	x, z := Circle(0, 2)
	assert.InDelta(t, 2, x, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)

	x, z = Circle(math.K_HALF_PI, 1)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, -1, z, 1e-6)

	// Seen from +Y, +X turning towards -Z is counter-clockwise.
	a := RadialDirection(0)
	b := RadialDirection(0.1)
	assert.Greater(t, a.Cross(b).Y, float32(0))
}

func TestPointHelpers(t *testing.T) {
	p := RingPoint(0, 1, 3, 0.5, 0.5)
	assert.True(t, p.Position.Compare(math.NewVec3(2, 0.5, 0), 1e-6))
	assert.Equal(t, math.NewVec3Up(), p.Normal)
	assert.InDelta(t, 1, RingInnerPoint(0, 1, 3, 0).Position.X, 1e-6)
	assert.InDelta(t, 3, RingOuterPoint(0, 1, 3, 0).Position.X, 1e-6)

	c := DiscCenter(2)
	assert.Equal(t, math.NewVec2(0.5, 0.5), c.Texcoord)
	d := DiscPoint(0, 1, 1, 0)
	assert.InDelta(t, 1, d.Texcoord.X, 1e-6)

	w := CylinderPoint(math.K_PI, 2, 1, 0.25)
	assert.True(t, w.Position.Compare(math.NewVec3(-2, 1, 0), 1e-5))
	assert.True(t, w.Normal.Compare(math.NewVec3(-1, 0, 0), 1e-5))
}

func TestTaperedNormalsTiltUp(t *testing.T) {
	v := CylinderTaperedPoint(0, 1, 0, 1, 0, 0.5)
	assert.InDelta(t, 0.5, v.Position.X, 1e-6)
	assert.InDelta(t, 1, v.Normal.Length(), 1e-5)
	assert.InDelta(t, math32.Sqrt(0.5), v.Normal.Y, 1e-5)

	straight := CylinderTaperedPoint(1, 1, 1, 2, -1, 1)
	assert.InDelta(t, 0, straight.Normal.Y, 1e-6)
	assert.InDelta(t, 1, straight.Position.Y, 1e-6)
}

func TestPrismHelpers(t *testing.T) {
	assert.InDelta(t, math.K_PI, PrismCornerAngle(2, 4, 0, 1, 0, 0), 1e-6)
	assert.InDelta(t, math.K_PI+0.5, PrismCornerAngle(2, 4, 1, 1, 2, 0), 1e-6)

	n := PrismFaceNormal(0, 4, 0, 0)
	assert.InDelta(t, 1, n.Length(), 1e-5)
	assert.InDelta(t, math32.Cos(math.K_PI/4), n.X, 1e-5)

	c := PrismCorner(0, 3, 0.5, 2, 0, 1, 0)
	assert.True(t, c.Compare(math.NewVec3(2, 0.5, 0), 1e-6))
}

func polar(rings, segs int) PolarSurface {
	return PolarSurface{Axis: math.NewVec3Up(), Radius: 1, Rings: rings, Segments: segs}
}

func triangles(b *mesh.Builder) *mesh.Mesh {
	return b.Build()
}

func TestPolarSurfaceClosedSphere(t *testing.T) {
	b := mesh.NewBuilder(mesh.TopologyTriangles)
	GeneratePolarSurface(b, polar(8, 12))
	m := triangles(b)

	require.NoError(t, m.Validate())
	// Two pole fans plus two triangles per interior quad.
	assert.Equal(t, 12+12+6*12*2, m.PrimitiveCount())

	for _, v := range m.Vertices() {
		assert.InDelta(t, 1, v.Position.Length(), 1e-5)
		assert.InDelta(t, 1, v.Normal.Length(), 1e-4)
	}
	m.ForEachTriangle(func(a, b, c mesh.Vertex) {
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		centroid := a.Position.Add(b.Position).Add(c.Position)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle faces inwards")
	})
}

func TestPolarSurfaceOpenDome(t *testing.T) {
	s := polar(4, 12)
	s.ThetaMax = math.K_HALF_PI
	b := mesh.NewBuilder(mesh.TopologyTriangles)
	GeneratePolarSurface(b, s)
	m := triangles(b)

	require.NoError(t, m.Validate())
	assert.Equal(t, 12+3*12*2, m.PrimitiveCount())
	for _, v := range m.Vertices() {
		assert.GreaterOrEqual(t, v.Position.Y, float32(-1e-5))
	}
}

func TestPolarSurfaceGating(t *testing.T) {
	s := polar(4, 8)
	s.Pattern = pattern.None{}
	b := mesh.NewBuilder(mesh.TopologyTriangles)
	GeneratePolarSurface(b, s)
	assert.Zero(t, b.Build().PrimitiveCount())

	s = polar(4, 8)
	s.Visibility = pattern.Band{Min: 0, Max: 0.5}
	b = mesh.NewBuilder(mesh.TopologyTriangles)
	GeneratePolarSurface(b, s)
	// Ring 0 is the top fan, ring 1 a row of quads.
	assert.Equal(t, 8+8*2, b.Build().PrimitiveCount())

	s = polar(4, 8)
	s.Radius = 0
	b = mesh.NewBuilder(mesh.TopologyTriangles)
	GeneratePolarSurface(b, s)
	assert.Zero(t, b.VertexCount())
}

func TestPolarSurfaceFollowsAxisAndCenter(t *testing.T) {
	s := polar(6, 10)
	s.Axis = math.NewVec3(1, 0, 0)
	s.Center = math.NewVec3(0, 3, 0)
	s.Radius = 2
	s.AlphaFn = func(theta float32) float32 { return 2 }
	b := mesh.NewBuilder(mesh.TopologyTriangles)
	GeneratePolarSurface(b, s)
	m := triangles(b)

	top := m.Vertex(0)
	assert.True(t, top.Position.Compare(math.NewVec3(2, 3, 0), 1e-5), "got %v", top.Position)
	assert.True(t, top.Normal.Compare(math.NewVec3(1, 0, 0), 1e-5))
	for _, v := range m.Vertices() {
		assert.InDelta(t, 2, v.Position.Distance(s.Center), 1e-4)
		assert.Equal(t, float32(1), v.Alpha)
	}
}

func TestPolarSurfaceRadiusFunctionNormals(t *testing.T) {
	s := polar(10, 16)
	s.RadiusFn = func(theta float32) float32 { return 1 + 0.3*math32.Cos(theta) }
	deformed := 0
	s.Deform = func(v mesh.Vertex) mesh.Vertex {
		deformed++
		return v
	}
	b := mesh.NewBuilder(mesh.TopologyTriangles)
	GeneratePolarSurface(b, s)
	m := triangles(b)

	assert.Equal(t, m.VertexCount(), deformed)
	for _, v := range m.Vertices() {
		assert.InDelta(t, 1, v.Normal.Length(), 1e-4)
	}
	ext := m.Bounds()
	assert.InDelta(t, 1.3, ext.Max.Y, 1e-4)
	assert.InDelta(t, -0.7, ext.Min.Y, 1e-4)
}

package tessellate

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

// degenerate logs why a shape produced nothing and returns the empty mesh.
func degenerate(what string) *mesh.Mesh {
	core.LogWarn("%s is degenerate, nothing to tessellate.", what)
	return mesh.Empty(mesh.TopologyTriangles)
}

/**
 * @brief Tessellates a UV sphere as a full latitude/longitude lattice.
 * Every one of the LatSteps·LonSteps cells is a quad, including the pole
 * rows whose top (or bottom) edge collapses onto the pole. Those rows add
 * 2·LonSteps zero-area triangles, and PrimitiveCount includes them; use the
 * Capsule with a zero Height for a sphere closed by true pole fans.
 * @param s The sphere description.
 * @param o The tessellation options, may be nil.
 * @return The sphere mesh.
 */
func Sphere(s shapes.Sphere, o *Options) *mesh.Mesh {
	s = s.Normalized()
	o = optionsOrDefault(o)
	if s.Radius <= math.K_GEOMETRY_EPSILON {
		return degenerate("sphere")
	}

	lat, lon := s.LatSteps, s.LonSteps
	b := mesh.NewBuilderWithCapacity(mesh.TopologyTriangles, (lat+1)*(lon+1), lat*lon*6)
	surf := newSurface(b, o, o.Pattern)

	dTheta := math.K_PI / float32(lat)
	dPhi := math.K_PI_2 / float32(lon)
	// Row 0 is the south pole so rows climb like any other wall.
	surf.grid(gridSpec{
		rows: lat,
		segs: lon,
		vertex: func(i, j int) mesh.Vertex {
			theta := math.K_PI - dTheta*float32(i)
			phi := dPhi * float32(j)
			st, ct := math32.Sin(theta), math32.Cos(theta)
			x, z := math32.Cos(phi)*st, -math32.Sin(phi)*st
			n := math.NewVec3(x, ct, z)
			return mesh.Vertex{
				Position: s.Center.Add(n.MulScalar(s.Radius)),
				Normal:   n,
				Texcoord: math.NewVec2(phi*math.K_ONE_OVER_TWO_PI, theta/math.K_PI),
				Alpha:    s.Alpha.At(theta / math.K_PI),
			}
		},
	})
	return b.Build()
}

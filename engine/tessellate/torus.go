package tessellate

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

// Torus tessellates a torus lying in the XZ plane. Rows walk around the
// tube starting from its outer equator, columns walk the major arc.
func Torus(t shapes.Torus, o *Options) *mesh.Mesh {
	t = t.Normalized()
	o = optionsOrDefault(o)
	if t.MajorRadius <= math.K_GEOMETRY_EPSILON || t.MinorRadius <= math.K_GEOMETRY_EPSILON {
		return degenerate("torus")
	}

	start, span := arcRadians(t.ArcStart, t.ArcEnd)
	b := mesh.NewBuilder(mesh.TopologyTriangles)
	newSurface(b, o, o.Pattern).grid(gridSpec{
		rows: t.MinorSegments,
		segs: t.MajorSegments,
		vertex: func(i, j int) mesh.Vertex {
			u := start + span*float32(j)/float32(t.MajorSegments)
			v := math.K_PI_2 * float32(i) / float32(t.MinorSegments)
			radial := geometry.RadialDirection(u)
			n := radial.MulScalar(math32.Cos(v)).Add(math.NewVec3Up().MulScalar(math32.Sin(v)))
			return mesh.Vertex{
				Position: radial.MulScalar(t.MajorRadius).Add(n.MulScalar(t.MinorRadius)),
				Normal:   n,
				Texcoord: math.NewVec2(float32(j)/float32(t.MajorSegments), float32(i)/float32(t.MinorSegments)),
				Alpha:    1,
			}
		},
	})
	return b.Build()
}

package tessellate

import (
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

/**
 * @brief Tessellates a flat disc facing +Y. A solid disc opens with a fan
 * around the centre; every further ring (and a holed disc) is a band of
 * quads. Rings are numbered from the centre outwards.
 * @param d The disc description.
 * @param o The tessellation options, may be nil.
 * @return The disc mesh.
 */
func Disc(d shapes.Disc, o *Options) *mesh.Mesh {
	d = d.Normalized()
	o = optionsOrDefault(o)
	if d.Radius <= math.K_GEOMETRY_EPSILON {
		return degenerate("disc")
	}
	inner := math.Clamp(d.InnerRadius, 0, d.Radius)

	b := mesh.NewBuilder(mesh.TopologyTriangles)
	surf := newSurface(b, o, o.Pattern)
	start, span := arcRadians(d.ArcStart, d.ArcEnd)
	angle := func(j int) float32 { return start + span*float32(j)/float32(d.Segments) }
	radius := func(ring int) float32 { return math.Lerp(inner, d.Radius, float32(ring)/float32(d.Rings)) }
	point := func(ring, j int) mesh.Vertex {
		r := radius(ring)
		v := geometry.DiscPoint(angle(j), r, d.Radius, d.Y)
		v.Alpha = d.Alpha.At(math.InverseLerp(inner, d.Radius, r))
		return v
	}

	firstBand := 0
	if inner <= math.K_GEOMETRY_EPSILON {
		hub := geometry.DiscCenter(d.Y)
		hub.Alpha = d.Alpha.At(0)
		surf.fan(fanSpec{
			segs:      d.Segments,
			totalRows: d.Rings,
			hub:       hub,
			rim:       func(j int) mesh.Vertex { return point(1, j) },
		})
		firstBand = 1
	}
	if bands := d.Rings - firstBand; bands > 0 {
		surf.grid(gridSpec{
			rows:      bands,
			segs:      d.Segments,
			rowOffset: firstBand,
			totalRows: d.Rings,
			flip:      true,
			vertex:    func(i, j int) mesh.Vertex { return point(firstBand+i, j) },
		})
	}
	return b.Build()
}

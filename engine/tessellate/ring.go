package tessellate

import (
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

// Inner walls thinner than this are skipped; the faces close over the hole.
const innerWallEpsilon float32 = 0.005

/**
 * @brief Tessellates a ring. Without height it is a flat annulus facing +Y;
 * with height it is a closed tube centred on y = 0 made of an outer wall,
 * an inner wall (when the hole is wide enough) and the two annular faces.
 * @param r The ring description.
 * @param o The tessellation options, may be nil.
 * @return The ring mesh.
 */
func Ring(r shapes.Ring, o *Options) *mesh.Mesh {
	r = r.Normalized()
	o = optionsOrDefault(o)
	if r.OuterRadius <= math.K_GEOMETRY_EPSILON {
		return degenerate("ring")
	}

	b := mesh.NewBuilder(mesh.TopologyTriangles)
	start, span := arcRadians(r.ArcStart, r.ArcEnd)
	angle := func(j int) float32 { return start + span*float32(j)/float32(r.Segments) }

	if r.Height <= math.K_GEOMETRY_EPSILON {
		newSurface(b, o, o.Pattern).grid(gridSpec{
			rows: r.RadialSegments,
			segs: r.Segments,
			flip: true,
			vertex: func(i, j int) mesh.Vertex {
				t := float32(i) / float32(r.RadialSegments)
				v := geometry.RingPoint(angle(j), r.InnerRadius, r.OuterRadius, 0, t)
				v.Alpha = r.Alpha.At(t)
				return v
			},
		})
		return b.Build()
	}

	h := r.Height
	yBase := -h / 2
	shrink := 1 - r.Taper
	twist := math.DegToRad(r.Twist)

	wall := func(bottomR, topR float32, inward bool) {
		newSurface(b, o, o.Pattern).grid(gridSpec{
			rows: r.HeightSegments,
			segs: r.Segments,
			flip: inward,
			vertex: func(i, j int) mesh.Vertex {
				t := float32(i) / float32(r.HeightSegments)
				v := geometry.CylinderTaperedPoint(angle(j)+twist*t, bottomR, topR, h, yBase, t)
				if inward {
					v.Normal = v.Normal.Negate()
				}
				v.Alpha = r.Alpha.At(t)
				return v
			},
		})
	}

	face := func(y, offset, innerR, outerR float32, up bool, alpha float32) {
		normal := math.NewVec3Up()
		if !up {
			normal = math.NewVec3Down()
		}
		newSurface(b, o, o.capPattern()).grid(gridSpec{
			rows: r.RadialSegments,
			segs: r.Segments,
			flip: up,
			vertex: func(i, j int) mesh.Vertex {
				t := float32(i) / float32(r.RadialSegments)
				v := geometry.RingPoint(angle(j)+offset, innerR, outerR, y, t)
				v.Normal = normal
				v.Alpha = alpha
				return v
			},
		})
	}

	wall(r.OuterRadius, r.OuterRadius*shrink, false)
	if r.InnerRadius > innerWallEpsilon {
		wall(r.InnerRadius, r.InnerRadius*shrink, true)
	}
	if !r.OpenTop && r.OuterRadius*shrink > math.K_GEOMETRY_EPSILON {
		face(yBase+h, twist, r.InnerRadius*shrink, r.OuterRadius*shrink, true, r.Alpha.At(1))
	}
	if !r.OpenBottom {
		face(yBase, 0, r.InnerRadius, r.OuterRadius, false, r.Alpha.At(0))
	}
	return b.Build()
}

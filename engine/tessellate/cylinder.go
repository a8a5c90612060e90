package tessellate

import (
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

// Cylinder tessellates a straight tube centred on the origin with optional
// disc caps.
func Cylinder(c shapes.Cylinder, o *Options) *mesh.Mesh {
	c = c.Normalized()
	o = optionsOrDefault(o)
	if c.Radius <= math.K_GEOMETRY_EPSILON || c.Height <= math.K_GEOMETRY_EPSILON {
		return degenerate("cylinder")
	}

	b := mesh.NewBuilder(mesh.TopologyTriangles)
	yBase := -c.Height / 2
	taperedWall(newSurface(b, o, o.Pattern), c.Radius, c.Radius, c.Height, yBase, c.Segments, c.HeightSegments, c.Alpha)

	caps := newSurface(b, o, o.capPattern())
	if !c.OpenTop {
		caps.ringCap(yBase+c.Height, 0, c.Radius, 0, math.K_PI_2, c.Segments, true, c.Alpha.At(1))
	}
	if !c.OpenBottom {
		caps.ringCap(yBase, 0, c.Radius, 0, math.K_PI_2, c.Segments, false, c.Alpha.At(0))
	}
	return b.Build()
}

/**
 * @brief Tessellates a cone or frustum centred on the origin. A pointed
 * cone closes its last wall row with a fan onto a single apex vertex and
 * never gets a top cap.
 * @param c The cone description.
 * @param o The tessellation options, may be nil.
 * @return The cone mesh.
 */
func Cone(c shapes.Cone, o *Options) *mesh.Mesh {
	c = c.Normalized()
	o = optionsOrDefault(o)
	if c.BottomRadius <= math.K_GEOMETRY_EPSILON || c.Height <= math.K_GEOMETRY_EPSILON {
		return degenerate("cone")
	}

	b := mesh.NewBuilder(mesh.TopologyTriangles)
	yBase := -c.Height / 2
	walls := newSurface(b, o, o.Pattern)
	caps := newSurface(b, o, o.capPattern())

	if c.IsPointed() {
		rows := c.HeightSegments
		point := func(i, j int) mesh.Vertex {
			t := float32(i) / float32(rows)
			angle := math.K_PI_2 * float32(j) / float32(c.Segments)
			v := geometry.CylinderTaperedPoint(angle, c.BottomRadius, 0, c.Height, yBase, t)
			v.Alpha = c.Alpha.At(t)
			return v
		}
		if rows > 1 {
			walls.grid(gridSpec{
				rows:      rows - 1,
				segs:      c.Segments,
				totalRows: rows,
				vertex:    point,
			})
		}
		apex := mesh.Vertex{
			Position: math.NewVec3(0, yBase+c.Height, 0),
			Normal:   math.NewVec3Up(),
			Texcoord: math.NewVec2(0.5, 1),
			Alpha:    c.Alpha.At(1),
		}
		walls.fan(fanSpec{
			segs:      c.Segments,
			row:       rows - 1,
			totalRows: rows,
			hub:       apex,
			rim:       func(j int) mesh.Vertex { return point(rows-1, j) },
		})
	} else {
		taperedWall(walls, c.BottomRadius, c.TopRadius, c.Height, yBase, c.Segments, c.HeightSegments, c.Alpha)
		if !c.OpenTop {
			caps.ringCap(yBase+c.Height, 0, c.TopRadius, 0, math.K_PI_2, c.Segments, true, c.Alpha.At(1))
		}
	}
	if !c.OpenBottom {
		caps.ringCap(yBase, 0, c.BottomRadius, 0, math.K_PI_2, c.Segments, false, c.Alpha.At(0))
	}
	return b.Build()
}

// taperedWall emits an outward wall whose radius runs from bottomR to topR.
func taperedWall(s *surface, bottomR, topR, height, yBase float32, segs, rows int, alpha *shapes.Gradient) {
	s.grid(gridSpec{
		rows: rows,
		segs: segs,
		vertex: func(i, j int) mesh.Vertex {
			t := float32(i) / float32(rows)
			angle := math.K_PI_2 * float32(j) / float32(segs)
			v := geometry.CylinderTaperedPoint(angle, bottomR, topR, height, yBase, t)
			v.Alpha = alpha.At(t)
			return v
		},
	})
}

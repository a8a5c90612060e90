package tessellate

import (
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

/**
 * @brief Tessellates a jet: a truncated cone running along Axis from Gap to
 * Gap+Length, mirrored through the origin when Dual is set. Hollow jets get
 * an inward facing inner wall and annular caps.
 * @param j The jet description.
 * @param o The tessellation options, may be nil.
 * @return The jet mesh.
 */
func Jet(j shapes.Jet, o *Options) *mesh.Mesh {
	j = j.Normalized()
	o = optionsOrDefault(o)
	if j.BaseRadius <= math.K_GEOMETRY_EPSILON || j.Length <= math.K_GEOMETRY_EPSILON {
		return degenerate("jet")
	}

	b := mesh.NewBuilder(mesh.TopologyTriangles)
	dirs := []math.Vec3{j.Axis.Vector()}
	if j.Dual {
		dirs = append(dirs, dirs[0].Negate())
	}
	for _, dir := range dirs {
		jetArm(b, j, o, framePlacement(math.NewVec3Zero(), math.PerpendicularFrame(dir)))
	}
	return b.Build()
}

// jetArm builds one arm along local +Y and places it.
func jetArm(b *mesh.Builder, j shapes.Jet, o *Options, place placement) {
	walls := newSurface(b, o, o.Pattern).at(place)
	caps := newSurface(b, o, o.capPattern()).at(place)

	innerBase, innerTip := float32(0), float32(0)
	if j.IsHollow() {
		innerBase, innerTip = j.InnerRadii()
	}

	wall := func(baseR, tipR float32, inward bool) {
		walls.grid(gridSpec{
			rows: j.LengthSegments,
			segs: j.Segments,
			flip: inward,
			vertex: func(i, k int) mesh.Vertex {
				t := float32(i) / float32(j.LengthSegments)
				angle := math.K_PI_2 * float32(k) / float32(j.Segments)
				v := geometry.CylinderTaperedPoint(angle, baseR, tipR, j.Length, j.Gap, t)
				if inward {
					v.Normal = v.Normal.Negate()
				}
				v.Alpha = j.Alpha.At(t)
				return v
			},
		})
	}

	wall(j.BaseRadius, j.TipRadius, false)
	if j.IsHollow() && (innerBase > math.K_GEOMETRY_EPSILON || innerTip > math.K_GEOMETRY_EPSILON) {
		wall(innerBase, innerTip, true)
	}
	if !j.OpenBase {
		caps.ringCap(j.Gap, innerBase, j.BaseRadius, 0, math.K_PI_2, j.Segments, false, j.Alpha.At(0))
	}
	if !j.OpenTip {
		caps.ringCap(j.Gap+j.Length, innerTip, j.TipRadius, 0, math.K_PI_2, j.Segments, true, j.Alpha.At(1))
	}
}

package tessellate

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

/**
 * @brief Tessellates a regular prism. Every side face owns its vertices so
 * it shades flat; taper and twist are applied per height row. The polygon
 * caps use the cap pattern.
 * @param p The prism description.
 * @param o The tessellation options, may be nil.
 * @return The prism mesh.
 */
func Prism(p shapes.Prism, o *Options) *mesh.Mesh {
	p = p.Normalized()
	o = optionsOrDefault(o)
	if p.Radius <= math.K_GEOMETRY_EPSILON || p.Height <= math.K_GEOMETRY_EPSILON {
		return degenerate("prism")
	}

	b := mesh.NewBuilder(mesh.TopologyTriangles)
	n, rows := p.Sides, p.HeightSegments
	h := p.Height
	yBase := -h / 2
	twist := math.DegToRad(p.Twist)
	topR := p.Radius * (1 - p.Taper)
	// The apothem shrinks by cos(π/n) relative to the corner radius.
	tilt := geometry.TaperTilt(p.Radius*math32.Cos(math.K_PI/float32(n)), topR*math32.Cos(math.K_PI/float32(n)), h)

	corner := func(side, row int) mesh.Vertex {
		t := float32(row) / float32(rows)
		y := yBase + h*t
		pos := geometry.PrismCorner(side, n, y, math.Lerp(p.Radius, topR, t), twist, h, yBase)
		return mesh.Vertex{
			Position: pos,
			Texcoord: math.NewVec2(float32(side)/float32(n), t),
			Alpha:    p.Alpha.At(t),
		}
	}

	walls := newSurface(b, o, o.Pattern)
	for side := 0; side < n; side++ {
		base := uint32(b.VertexCount())
		for row := 0; row <= rows; row++ {
			normal := geometry.PrismFaceNormal(side, n, twist*float32(row)/float32(rows), tilt)
			walls.add(corner(side, row).WithNormal(normal))
			walls.add(corner(side+1, row).WithNormal(normal))
		}
		for row := 0; row < rows; row++ {
			if !walls.accept(row, rows, side, n) {
				continue
			}
			bl := base + uint32(row*2)
			b.QuadFromPattern(bl+2, bl+3, bl+1, bl, walls.pattern)
		}
	}

	caps := newSurface(b, o, o.capPattern())
	capFan := func(row int, up bool) {
		normal := math.NewVec3Up()
		if !up {
			normal = math.NewVec3Down()
		}
		hub := geometry.DiscCenter(yBase + h*float32(row)/float32(rows))
		hub.Normal = normal
		hub.Alpha = p.Alpha.At(float32(row) / float32(rows))
		caps.fan(fanSpec{
			segs: n,
			flip: !up,
			hub:  hub,
			rim: func(j int) mesh.Vertex {
				v := corner(j, row).WithNormal(normal)
				v.Texcoord = math.NewVec2(0.5+v.Position.X/(2*p.Radius), 0.5-v.Position.Z/(2*p.Radius))
				return v
			},
		})
	}
	if !p.OpenTop && topR > math.K_GEOMETRY_EPSILON {
		capFan(rows, true)
	}
	if !p.OpenBottom {
		capFan(0, false)
	}
	return b.Build()
}

package tessellate

import (
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/pattern"
)

// placement moves locally built vertices into their final position.
type placement func(v mesh.Vertex) mesh.Vertex

func framePlacement(origin math.Vec3, frame math.Frame) placement {
	return func(v mesh.Vertex) mesh.Vertex {
		v.Position = origin.Add(frame.ToWorld(v.Position))
		v.Normal = frame.ToWorld(v.Normal)
		return v
	}
}

func transformPlacement(t math.Transform) placement {
	return func(v mesh.Vertex) mesh.Vertex {
		return v.Transformed(t)
	}
}

// surface emits one logical surface into a builder. Each surface numbers its
// own cells for the pattern and visibility mask.
type surface struct {
	b       *mesh.Builder
	o       *Options
	pattern pattern.Pattern
	place   placement
}

func newSurface(b *mesh.Builder, o *Options, p pattern.Pattern) *surface {
	return &surface{b: b, o: o, pattern: p}
}

func (s *surface) at(place placement) *surface {
	c := *s
	c.place = place
	return &c
}

func (s *surface) add(v mesh.Vertex) uint32 {
	if s.place != nil {
		v = s.place(v)
	}
	return s.b.AddVertex(s.o.deform(v))
}

// accept runs the visibility mask first, then the pattern.
func (s *surface) accept(row, totalRows, seg, segs int) bool {
	if !pattern.Visible(s.o.Visibility, float32(row)/float32(totalRows), float32(seg)/float32(segs)) {
		return false
	}
	return pattern.Accepts(s.pattern, row*segs+seg, totalRows*segs)
}

// gridSpec describes a (rows+1) x (segs+1) vertex lattice. Row i runs
// "upwards": with the geometry angle convention a non-flipped grid faces
// outwards when rows climb a wall, and upwards when rows move inwards on a
// flat face. Flip reverses the facing.
type gridSpec struct {
	rows, segs int
	// rowOffset and totalRows place this grid inside a larger surface for
	// cell numbering; totalRows zero means rows.
	rowOffset, totalRows int
	flip                 bool
	vertex               func(i, j int) mesh.Vertex
}

func (s *surface) grid(g gridSpec) {
	total := g.totalRows
	if total == 0 {
		total = g.rows
	}
	stride := uint32(g.segs + 1)
	base := uint32(s.b.VertexCount())
	for i := 0; i <= g.rows; i++ {
		for j := 0; j <= g.segs; j++ {
			s.add(g.vertex(i, j))
		}
	}
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.segs; j++ {
			if !s.accept(g.rowOffset+i, total, j, g.segs) {
				continue
			}
			bl := base + uint32(i)*stride + uint32(j)
			br := bl + 1
			tl := bl + stride
			tr := tl + 1
			if g.flip {
				bl, br = br, bl
				tl, tr = tr, tl
			}
			s.b.QuadFromPattern(tl, tr, br, bl, s.pattern)
		}
	}
}

// fanSpec is a row of triangles sharing one hub vertex: a disc centre, a
// cone apex or a pole. Each cell is (rim j, rim j+1, hub), which faces up
// for a disc seen from +Y and outwards for an apex; Flip reverses it.
type fanSpec struct {
	segs           int
	row, totalRows int
	flip           bool
	hub            mesh.Vertex
	rim            func(j int) mesh.Vertex
}

func (s *surface) fan(f fanSpec) {
	total := f.totalRows
	if total == 0 {
		total = 1
	}
	hub := s.add(f.hub)
	base := uint32(s.b.VertexCount())
	for j := 0; j <= f.segs; j++ {
		s.add(f.rim(j))
	}
	for j := 0; j < f.segs; j++ {
		if !s.accept(f.row, total, j, f.segs) {
			continue
		}
		a := base + uint32(j)
		b := a + 1
		if f.flip {
			a, b = b, a
		}
		s.b.CellFromPattern([]uint32{a, b, hub}, s.pattern)
	}
}

// ringCap closes a tube end. A (near) zero inner radius gives a disc fan,
// otherwise a one row annulus. Up selects the facing.
func (s *surface) ringCap(y, inner, outer, arcStart, arcSpan float32, segs int, up bool, alpha float32) {
	if outer <= math.K_GEOMETRY_EPSILON {
		return
	}
	normal := math.NewVec3Up()
	if !up {
		normal = math.NewVec3Down()
	}
	angle := func(j int) float32 { return arcStart + arcSpan*float32(j)/float32(segs) }

	if inner <= math.K_GEOMETRY_EPSILON {
		hub := geometry.DiscCenter(y)
		hub.Normal = normal
		hub.Alpha = alpha
		s.fan(fanSpec{
			segs: segs,
			flip: !up,
			hub:  hub,
			rim: func(j int) mesh.Vertex {
				v := geometry.DiscPoint(angle(j), outer, outer, y)
				v.Normal = normal
				v.Alpha = alpha
				return v
			},
		})
		return
	}

	// Rows run inner to outer, so the facing is the reverse of a wall.
	s.grid(gridSpec{
		rows: 1,
		segs: segs,
		flip: up,
		vertex: func(i, j int) mesh.Vertex {
			v := geometry.RingPoint(angle(j), inner, outer, y, float32(i))
			v.Normal = normal
			v.Alpha = alpha
			return v
		},
	})
}

// profilePoint is one ring of a surface of revolution around +Y.
type profilePoint struct {
	radius float32
	y      float32
	// normal in the (radial, y) plane
	nr, ny float32
	v      float32
	alpha  float32
}

// lathe revolves a bottom-to-top profile starting at angle start. Points with
// a (near) zero radius become single pole vertices closed with fans.
func (s *surface) lathe(profile []profilePoint, start float32, segs int) {
	if len(profile) < 2 {
		return
	}
	rows := len(profile) - 1
	dPhi := math.K_PI_2 / float32(segs)

	isPole := func(p profilePoint) bool { return p.radius <= math.K_GEOMETRY_EPSILON }
	vertexAt := func(p profilePoint, phi float32) mesh.Vertex {
		x, z := geometry.Circle(start+phi, p.radius)
		nx, nz := geometry.Circle(start+phi, p.nr)
		return mesh.Vertex{
			Position: math.NewVec3(x, p.y, z),
			Normal:   math.NewVec3(nx, p.ny, nz).Normalized(),
			Texcoord: math.NewVec2(phi*math.K_ONE_OVER_TWO_PI, p.v),
			Alpha:    p.alpha,
		}
	}

	starts := make([]uint32, len(profile))
	for k, p := range profile {
		starts[k] = uint32(s.b.VertexCount())
		if isPole(p) {
			pole := vertexAt(p, 0)
			pole.Texcoord = math.NewVec2(0.5, p.v)
			s.add(pole)
			continue
		}
		for j := 0; j <= segs; j++ {
			s.add(vertexAt(p, dPhi*float32(j)))
		}
	}

	for k := 0; k < rows; k++ {
		lower, upper := profile[k], profile[k+1]
		if isPole(lower) && isPole(upper) {
			continue
		}
		for j := 0; j < segs; j++ {
			if !s.accept(k, rows, j, segs) {
				continue
			}
			switch {
			case isPole(lower):
				ring := starts[k+1] + uint32(j)
				s.b.CellFromPattern([]uint32{ring + 1, ring, starts[k]}, s.pattern)
			case isPole(upper):
				ring := starts[k] + uint32(j)
				s.b.CellFromPattern([]uint32{ring, ring + 1, starts[k+1]}, s.pattern)
			default:
				bl := starts[k] + uint32(j)
				tl := starts[k+1] + uint32(j)
				s.b.QuadFromPattern(tl, tl+1, bl+1, bl, s.pattern)
			}
		}
	}
}

// arcRadians converts a normalized degree arc to a start angle and span.
func arcRadians(startDeg, endDeg float32) (float32, float32) {
	return math.DegToRad(startDeg), math.DegToRad(endDeg - startDeg)
}

package tessellate

import (
	"cmp"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/pattern"
	"github.com/spaghettifunk/meshforge/engine/shapes"
	"golang.org/x/exp/slices"
)

type triangle [3]math.Vec3

func (t triangle) normal() math.Vec3 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Normalized()
}

func (t triangle) centroid() math.Vec3 {
	return t[0].Add(t[1]).Add(t[2]).MulScalar(1.0 / 3.0)
}

// outward flips t when it winds towards the origin.
func (t triangle) outward() triangle {
	n := t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
	if n.Dot(t.centroid()) < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return t
}

var (
	golden = math.K_PHI

	tetrahedronVertices = []math.Vec3{
		math.NewVec3(1, 1, 1), math.NewVec3(-1, -1, 1),
		math.NewVec3(-1, 1, -1), math.NewVec3(1, -1, -1),
	}
	tetrahedronFaces = [][3]int{{2, 1, 0}, {0, 3, 2}, {1, 3, 0}, {2, 3, 1}}

	// Vertex i sits at (±1, ±1, ±1) with bit 0, 1, 2 choosing x, y, z.
	cubeVertices = func() []math.Vec3 {
		v := make([]math.Vec3, 8)
		for i := range v {
			v[i] = math.NewVec3(float32(i&1)*2-1, float32(i>>1&1)*2-1, float32(i>>2&1)*2-1)
		}
		return v
	}()
	cubeFaces = [][3]int{
		{0, 4, 6}, {0, 6, 2},
		{1, 3, 7}, {1, 7, 5},
		{0, 1, 5}, {0, 5, 4},
		{2, 6, 7}, {2, 7, 3},
		{0, 2, 3}, {0, 3, 1},
		{4, 5, 7}, {4, 7, 6},
	}

	octahedronFaces = [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}

	icosahedronVertices = []math.Vec3{
		math.NewVec3(-1, golden, 0), math.NewVec3(1, golden, 0),
		math.NewVec3(-1, -golden, 0), math.NewVec3(1, -golden, 0),
		math.NewVec3(0, -1, golden), math.NewVec3(0, 1, golden),
		math.NewVec3(0, -1, -golden), math.NewVec3(0, 1, -golden),
		math.NewVec3(golden, 0, -1), math.NewVec3(golden, 0, 1),
		math.NewVec3(-golden, 0, -1), math.NewVec3(-golden, 0, 1),
	}
	icosahedronFaces = [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// unitSolid expands an indexed table onto the unit sphere, wound outwards.
func unitSolid(vertices []math.Vec3, faces [][3]int) []triangle {
	tris := make([]triangle, len(faces))
	for i, f := range faces {
		tris[i] = triangle{
			vertices[f[0]].Normalized(),
			vertices[f[1]].Normalized(),
			vertices[f[2]].Normalized(),
		}.outward()
	}
	return tris
}

// dodecahedron is the dual of the icosahedron: one vertex per icosahedron
// face (its centroid pushed onto the sphere) and one pentagon per
// icosahedron vertex, fanned from the pentagon centre.
func dodecahedron() []triangle {
	ico := unitSolid(icosahedronVertices, icosahedronFaces)
	corners := make([]math.Vec3, len(ico))
	for i, t := range ico {
		corners[i] = t.centroid().Normalized()
	}

	tris := make([]triangle, 0, 12*5)
	for vi, v := range icosahedronVertices {
		axis := v.Normalized()
		frame := math.PerpendicularFrame(axis)
		var ring []math.Vec3
		for fi, f := range icosahedronFaces {
			if f[0] == vi || f[1] == vi || f[2] == vi {
				ring = append(ring, corners[fi])
			}
		}
		// Counter-clockwise seen from outside.
		around := func(p math.Vec3) float32 { return math32.Atan2(-p.Dot(frame.W), p.Dot(frame.U)) }
		slices.SortFunc(ring, func(a, b math.Vec3) int { return cmp.Compare(around(a), around(b)) })
		hub := math.NewVec3Zero()
		for _, p := range ring {
			hub = hub.Add(p)
		}
		hub = hub.MulScalar(1 / float32(len(ring)))
		for k := range ring {
			tris = append(tris, triangle{ring[k], ring[(k+1)%len(ring)], hub}.outward())
		}
	}
	return tris
}

func baseSolid(kind shapes.PolyhedronKind) []triangle {
	switch kind {
	case shapes.Tetrahedron:
		return unitSolid(tetrahedronVertices, tetrahedronFaces)
	case shapes.Cube:
		return unitSolid(cubeVertices, cubeFaces)
	case shapes.Octahedron:
		return unitSolid(octahedralDirections, octahedronFaces)
	case shapes.Dodecahedron:
		return dodecahedron()
	default:
		return unitSolid(icosahedronVertices, icosahedronFaces)
	}
}

// subdivide splits every triangle into four and pushes the new vertices
// onto the unit sphere.
func subdivide(tris []triangle) []triangle {
	out := make([]triangle, 0, len(tris)*4)
	for _, t := range tris {
		ab := t[0].Add(t[1]).Normalized()
		bc := t[1].Add(t[2]).Normalized()
		ca := t[2].Add(t[0]).Normalized()
		out = append(out,
			triangle{t[0], ab, ca},
			triangle{ab, t[1], bc},
			triangle{ca, bc, t[2]},
			triangle{ab, bc, ca})
	}
	return out
}

func sphericalUV(p math.Vec3) math.Vec2 {
	u := math32.Atan2(-p.Z, p.X) * math.K_ONE_OVER_TWO_PI
	if u < 0 {
		u += 1
	}
	return math.NewVec2(u, math32.Acos(math.Clamp(p.Y, -1, 1))/math.K_PI)
}

/**
 * @brief Tessellates a Platonic solid with the given circumradius. Each
 * subdivision splits every face into four and reprojects onto the sphere,
 * so an icosahedron at level n has 20·4ⁿ faces. Faces are pattern cells.
 * @param p The polyhedron description.
 * @param o The tessellation options, may be nil.
 * @return The polyhedron mesh, flat or smooth shaded.
 */
func Polyhedron(p shapes.Polyhedron, o *Options) *mesh.Mesh {
	p = p.Normalized()
	o = optionsOrDefault(o)
	if p.Radius <= math.K_GEOMETRY_EPSILON {
		return degenerate("polyhedron")
	}

	tris := baseSolid(p.Solid)
	if p.Subdivisions > 0 {
		// Flat pentagon centres are not on the sphere yet.
		for i := range tris {
			for k := range tris[i] {
				tris[i][k] = tris[i][k].Normalized()
			}
		}
	}
	for level := 0; level < p.Subdivisions; level++ {
		tris = subdivide(tris)
	}

	b := mesh.NewBuilderWithCapacity(mesh.TopologyTriangles, len(tris)*3, len(tris)*3)
	total := len(tris)
	for i, t := range tris {
		c := t.centroid()
		uv := sphericalUV(c.Normalized())
		if !pattern.Visible(o.Visibility, uv.Y, uv.X) || !pattern.Accepts(o.Pattern, i, total) {
			continue
		}
		faceNormal := t.normal()
		var cell [3]uint32
		for k, corner := range t {
			n := faceNormal
			if p.Smooth {
				n = corner.Normalized()
			}
			v := mesh.Vertex{
				Position: corner.MulScalar(p.Radius),
				Normal:   n,
				Texcoord: sphericalUV(corner.Normalized()),
				Alpha:    1,
			}
			cell[k] = b.AddVertex(o.deform(v))
		}
		b.CellFromPattern(cell[:], o.Pattern)
	}
	return b.Build()
}

package tessellate

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/pattern"
	"github.com/spaghettifunk/meshforge/engine/shapes"
	"golang.org/x/exp/rand"
)

// ray is one laid out ray before animation.
type ray struct {
	index  int
	origin math.Vec3
	dir    math.Vec3
	length float32
	frame  math.Frame
	// phase decorrelates the animations of neighbouring rays.
	phase float32
	// jag holds the sideways kinks of a lightning ray.
	jag []float32
}

// rayGenerator emits one ray into b.
type rayGenerator func(b *mesh.Builder, ctx *rayContext, r ray)

// rayGenerators maps volumetric ray types to their generators. Types not
// listed here are drawn with lineRay on a line topology.
var rayGenerators = map[shapes.RayType]rayGenerator{
	shapes.RayBeam:    beamRay,
	shapes.RayCone:    coneRay,
	shapes.RayDroplet: dropletRay,
}

/**
 * @brief Tessellates a bundle of rays. Rays are laid out by Arrangement and
 * Distribution, then built by the generator registered for Type. The
 * pattern and visibility mask gate whole rays: ray i is cell i of Count,
 * with a segment fraction of i/Count.
 * @param r The rays description.
 * @param o The tessellation options, may be nil.
 * @return The rays mesh; line topology for line, lightning and spiral rays.
 */
func Rays(r shapes.Rays, o *Options) *mesh.Mesh {
	r = r.Normalized()
	o = optionsOrDefault(o)

	gen, ok := rayGenerators[r.Type]
	topology := mesh.TopologyTriangles
	if !ok {
		gen = lineRay
		topology = mesh.TopologyLines
	}
	if r.Length <= math.K_GEOMETRY_EPSILON {
		return mesh.Empty(topology)
	}

	ctx := &rayContext{shape: r, o: o, time: o.Time}
	b := mesh.NewBuilder(topology)
	for _, ry := range layoutRays(r) {
		if !pattern.Visible(o.Visibility, 0, float32(ry.index)/float32(r.Count)) {
			continue
		}
		if !pattern.Accepts(o.Pattern, ry.index, r.Count) {
			continue
		}
		gen(b, ctx, ry)
	}
	return b.Build()
}

// windingOnly keeps a pattern's vertex order but renders every cell; rays
// are gated as a whole before their geometry is built.
type windingOnly struct {
	pattern.Pattern
}

func (windingOnly) ShouldRender(int, int) bool { return true }

func (w windingOnly) VertexOrder() [][3]int { return pattern.Order(w.Pattern) }

// layoutRays computes origin, direction and length for every ray. The
// generator is seeded with r.Seed and consumed in ray order.
func layoutRays(r shapes.Rays) []ray {
	rng := rand.New(rand.NewSource(r.Seed))
	n := r.Count

	// slot is where ray i sits in [0, 1) along its arrangement.
	slot := func(i int) float32 {
		switch r.Distribution {
		case shapes.RayDistributionRandom:
			return rng.Float32()
		case shapes.RayDistributionStochastic:
			return (float32(i) + rng.Float32()) / float32(n)
		default:
			return float32(i) / float32(n)
		}
	}
	spread := math.DegToRad(math.Clamp(r.Spread, 0, 180))
	disc := r.InnerRadius
	if disc <= math.K_GEOMETRY_EPSILON {
		disc = r.Length / 2
	}

	rays := make([]ray, n)
	for i := 0; i < n; i++ {
		var origin, dir math.Vec3
		switch r.Arrangement {
		case shapes.ArrangementSpherical:
			if r.Distribution == shapes.RayDistributionRandom {
				dir = marsagliaDirection(rng)
			} else {
				dir = fibonacciDirection(slot(i)*float32(n), n)
			}
			origin = dir.MulScalar(r.InnerRadius)
		case shapes.ArrangementParallel:
			// A sunflower spread of start points on a disc, all pointing up.
			var rad, phi float32
			if r.Distribution == shapes.RayDistributionRandom {
				rad = disc * math32.Sqrt(rng.Float32())
				phi = math.K_PI_2 * rng.Float32()
			} else {
				f := slot(i) + 0.5/float32(n)
				rad = disc * math32.Sqrt(math.Min(f, 1))
				phi = float32(i) * math.K_GOLDEN_ANGLE
			}
			x, z := geometry.Circle(phi, rad)
			origin = math.NewVec3(x, 0, z)
			dir = math.NewVec3Up()
		case shapes.ArrangementConverging:
			angle := slot(i) * math.K_PI_2
			out := geometry.RadialDirection(angle)
			origin = out.MulScalar(r.InnerRadius + r.Length)
			dir = out.Negate()
		case shapes.ArrangementDiverging:
			var f, phi float32
			if r.Distribution == shapes.RayDistributionRandom {
				f, phi = rng.Float32(), math.K_PI_2*rng.Float32()
			} else {
				f, phi = slot(i)+0.5/float32(n), float32(i)*math.K_GOLDEN_ANGLE
			}
			dir = capDirection(math.Min(f, 1), phi, spread)
			origin = dir.MulScalar(r.InnerRadius)
		default:
			dir = geometry.RadialDirection(slot(i) * math.K_PI_2)
			origin = dir.MulScalar(r.InnerRadius)
		}

		length := r.Length
		if r.LengthJitter > 0 {
			length *= 1 - r.LengthJitter*rng.Float32()
		}
		ry := ray{
			index:  i,
			origin: origin,
			dir:    dir,
			length: length,
			frame:  math.PerpendicularFrame(dir),
			phase:  float32(i) * math.K_GOLDEN_ANGLE,
		}
		if r.Type == shapes.RayLightning {
			ry.jag = make([]float32, r.Segments+1)
			for k := 1; k < r.Segments; k++ {
				ry.jag[k] = 2*rng.Float32() - 1
			}
		}
		rays[i] = ry
	}
	return rays
}

package tessellate

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

// rayContext evaluates the optional ray animations at one point in time.
type rayContext struct {
	shape shapes.Rays
	o     *Options
	time  float32
}

// length applies the motion pulse.
func (c *rayContext) length(r ray) float32 {
	m := c.shape.Motion
	if m == nil {
		return r.length
	}
	return r.length * math.Max(0, 1+m.Amplitude*math32.Sin(m.Speed*c.time+r.phase))
}

func (c *rayContext) twist(r ray, s float32) float32 {
	t := c.shape.Twist
	if t == nil {
		return 0
	}
	return t.Speed*c.time + t.Turns*math.K_PI_2*s
}

// sideways is the unit direction at angle a around the ray.
func sideways(r ray, a float32) math.Vec3 {
	return r.frame.U.MulScalar(math32.Cos(a)).Sub(r.frame.W.MulScalar(math32.Sin(a)))
}

// center is the animated centreline point at fraction s, which is segment
// k of the ray.
func (c *rayContext) center(r ray, length, s float32, k int) math.Vec3 {
	p := r.origin.Add(r.dir.MulScalar(length * s))
	tw := c.twist(r, s)

	if w := c.shape.Wiggle; w != nil {
		off := w.Amplitude * s * math32.Sin(math.K_PI_2*w.Frequency*s-w.Speed*c.time+r.phase)
		p = p.Add(sideways(r, tw).MulScalar(off))
	}
	switch c.shape.Type {
	case shapes.RayLightning:
		if k < len(r.jag) {
			p = p.Add(sideways(r, tw+math.K_HALF_PI).MulScalar(2 * c.shape.Width * r.jag[k]))
		}
	case shapes.RaySpiral:
		p = p.Add(sideways(r, tw+2*math.K_PI_2*s+r.phase).MulScalar(c.shape.Width * s))
	}
	return p
}

// alpha combines the gradient with the flow pulse.
func (c *rayContext) alpha(r ray, s float32) float32 {
	a := c.shape.Alpha.At(s)
	if f := c.shape.Flow; f != nil {
		cycles := f.Cycles
		if cycles <= 0 {
			cycles = 1
		}
		a *= 0.5 + 0.5*math32.Sin(math.K_PI_2*(cycles*s-f.Speed*c.time)+r.phase)
	}
	return math.Clamp(a, 0, 1)
}

func (c *rayContext) add(b *mesh.Builder, v mesh.Vertex) uint32 {
	return b.AddVertex(c.o.deform(v))
}

// lineRay draws the centreline as Segments line primitives.
func lineRay(b *mesh.Builder, c *rayContext, r ray) {
	length := c.length(r)
	segs := c.shape.Segments
	base := uint32(b.VertexCount())
	for k := 0; k <= segs; k++ {
		s := float32(k) / float32(segs)
		c.add(b, mesh.Vertex{
			Position: c.center(r, length, s, k),
			Normal:   r.dir,
			Texcoord: math.NewVec2(s, 0),
			Alpha:    c.alpha(r, s),
		})
	}
	for k := uint32(0); k < uint32(segs); k++ {
		b.Line(base+k, base+k+1)
	}
}

func beamRay(b *mesh.Builder, c *rayContext, r ray) {
	half := c.shape.Width / 2
	tubeRay(b, c, r, func(float32) float32 { return half }, true)
}

func coneRay(b *mesh.Builder, c *rayContext, r ray) {
	half := c.shape.Width / 2
	tubeRay(b, c, r, func(s float32) float32 { return half * (1 - s) }, false)
}

// tubeRay sweeps a ring of Sides vertices along the centreline. The base is
// always closed; the tip is closed when closeTip is set and collapses into
// an apex when the radius reaches zero.
func tubeRay(b *mesh.Builder, c *rayContext, r ray, radius func(s float32) float32, closeTip bool) {
	length := c.length(r)
	if length <= math.K_GEOMETRY_EPSILON {
		return
	}
	segs, sides := c.shape.Segments, c.shape.Sides
	p := c.o.Pattern
	tilt := geometry.TaperTilt(radius(0), radius(1), length)
	stride := uint32(sides + 1)
	pointed := radius(1) <= math.K_GEOMETRY_EPSILON
	rings := segs
	if pointed {
		rings = segs - 1
	}

	base := uint32(b.VertexCount())
	for k := 0; k <= rings; k++ {
		s := float32(k) / float32(segs)
		center := c.center(r, length, s, k)
		tw := c.twist(r, s)
		for j := 0; j <= sides; j++ {
			out := sideways(r, math.K_PI_2*float32(j)/float32(sides)+tw)
			c.add(b, mesh.Vertex{
				Position: center.Add(out.MulScalar(radius(s))),
				Normal:   out.MulScalar(math32.Cos(tilt)).Add(r.dir.MulScalar(math32.Sin(tilt))).Normalized(),
				Texcoord: math.NewVec2(float32(j)/float32(sides), s),
				Alpha:    c.alpha(r, s),
			})
		}
	}
	for k := 0; k < rings; k++ {
		for j := 0; j < sides; j++ {
			bl := base + uint32(k)*stride + uint32(j)
			tl := bl + stride
			b.QuadFromPattern(tl, tl+1, bl+1, bl, p)
		}
	}

	hub := func(s float32, k int, normal math.Vec3) uint32 {
		return c.add(b, mesh.Vertex{
			Position: c.center(r, length, s, k),
			Normal:   normal,
			Texcoord: math.NewVec2(0.5, s),
			Alpha:    c.alpha(r, s),
		})
	}

	baseHub := hub(0, 0, r.dir.Negate())
	for j := uint32(0); j < uint32(sides); j++ {
		b.CellFromPattern([]uint32{base + j + 1, base + j, baseHub}, p)
	}

	last := base + uint32(rings)*stride
	switch {
	case pointed:
		apex := hub(1, segs, r.dir)
		for j := uint32(0); j < uint32(sides); j++ {
			b.CellFromPattern([]uint32{last + j, last + j + 1, apex}, p)
		}
	case closeTip:
		tipHub := hub(1, segs, r.dir)
		for j := uint32(0); j < uint32(sides); j++ {
			b.CellFromPattern([]uint32{last + j, last + j + 1, tipHub}, p)
		}
	}
}

// dropletRay is a teardrop shaped polar surface: round at the origin end
// and narrowing towards the tip.
func dropletRay(b *mesh.Builder, c *rayContext, r ray) {
	length := c.length(r)
	if length <= math.K_GEOMETRY_EPSILON {
		return
	}
	aspect := math.Clamp(2*c.shape.Width/length, 0.1, 1)
	// The tail reaches 1.25 half-lengths behind the centre, the tip 0.75.
	const tail = 1.25
	center := c.center(r, length, tail/2, c.shape.Segments/2)
	geometry.GeneratePolarSurface(b, geometry.PolarSurface{
		Center:   center,
		Axis:     r.dir,
		Radius:   length / 2,
		Rings:    math.Max(c.shape.Segments, 2),
		Segments: c.shape.Sides,
		RadiusFn: func(theta float32) float32 {
			st, ct := math32.Sin(theta), math32.Cos(theta)
			e := aspect / math32.Sqrt(aspect*aspect*ct*ct+st*st)
			return e * (1 - (tail-1)*ct)
		},
		AlphaFn: func(theta float32) float32 { return c.alpha(r, 1-theta/math.K_PI) },
		Pattern: windingOnly{c.o.Pattern},
		Deform:  c.o.deform,
	})
}

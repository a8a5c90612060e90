package geometry

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/pattern"
)

// PolarSurface describes a pole -> rings -> pole surface around an arbitrary
// axis. The distance from Center at polar angle θ (0 at the +Axis pole) is
// Radius·RadiusFn(θ).
type PolarSurface struct {
	Center   math.Vec3
	Axis     math.Vec3
	Radius   float32
	Rings    int
	Segments int
	// ThetaMax stops the walk early, leaving an open last ring (a dome for
	// π/2). Zero means a closed surface down to θ = π.
	ThetaMax float32

	RadiusFn   func(theta float32) float32
	AlphaFn    func(theta float32) float32
	Pattern    pattern.Pattern
	Visibility pattern.VisibilityMask
	Deform     func(mesh.Vertex) mesh.Vertex
}

const derivativeStep float32 = 1e-3

func (s *PolarSurface) radiusAt(theta float32) float32 {
	if s.RadiusFn == nil {
		return s.Radius
	}
	return s.Radius * s.RadiusFn(theta)
}

func (s *PolarSurface) alphaAt(theta float32) float32 {
	if s.AlphaFn == nil {
		return 1
	}
	return math.Clamp(s.AlphaFn(theta), 0, 1)
}

func (s *PolarSurface) emit(b *mesh.Builder, v mesh.Vertex) uint32 {
	if s.Deform != nil {
		v = s.Deform(v)
	}
	return b.AddVertex(v)
}

// vertexAt evaluates the surface in local space (axis = +Y) and maps it into
// the frame. The normal follows the radius slope: n = r·e_r - r'·e_θ.
func (s *PolarSurface) vertexAt(frame math.Frame, theta, phi float32) mesh.Vertex {
	st, ct := math32.Sin(theta), math32.Cos(theta)
	sp, cp := math32.Sin(phi), math32.Cos(phi)

	er := math.NewVec3(st*cp, ct, -st*sp)
	et := math.NewVec3(ct*cp, -st, -ct*sp)

	r := s.radiusAt(theta)
	dr := (s.radiusAt(theta+derivativeStep) - s.radiusAt(theta-derivativeStep)) / (2 * derivativeStep)
	n := er.MulScalar(r).Sub(et.MulScalar(dr)).Normalized()

	return mesh.Vertex{
		Position: s.Center.Add(frame.ToWorld(er.MulScalar(r))),
		Normal:   frame.ToWorld(n),
		Texcoord: math.NewVec2(phi*math.K_ONE_OVER_TWO_PI, theta/math.K_PI),
		Alpha:    s.alphaAt(theta),
	}
}

// GeneratePolarSurface walks the surface into b: a triangle fan at each
// pole, pattern and visibility gated quads between interior rings. Cells are
// numbered ring·Segments + segment over Rings·Segments cells.
func GeneratePolarSurface(b *mesh.Builder, s PolarSurface) {
	rings := math.Max(s.Rings, 2)
	segs := math.Max(s.Segments, 3)
	if s.Radius <= math.K_GEOMETRY_EPSILON {
		return
	}

	thetaMax := s.ThetaMax
	open := thetaMax > math.K_GEOMETRY_EPSILON && thetaMax < math.K_PI-math.K_GEOMETRY_EPSILON
	if !open {
		thetaMax = math.K_PI
	}

	frame := math.PerpendicularFrame(s.Axis)
	dTheta := thetaMax / float32(rings)
	dPhi := math.K_PI_2 / float32(segs)

	top := s.vertexAt(frame, 0, 0)
	top.Normal = frame.Dir
	top.Texcoord = math.NewVec2(0.5, 0)
	topIdx := s.emit(b, top)

	// Ring r (1-based) holds segs+1 vertices; the seam is duplicated for uv.
	lastRing := rings - 1
	if open {
		lastRing = rings
	}
	ringStart := make([]uint32, lastRing+1)
	for r := 1; r <= lastRing; r++ {
		theta := dTheta * float32(r)
		ringStart[r] = uint32(b.VertexCount())
		for j := 0; j <= segs; j++ {
			s.emit(b, s.vertexAt(frame, theta, dPhi*float32(j)))
		}
	}

	var bottomIdx uint32
	if !open {
		bottom := s.vertexAt(frame, math.K_PI, 0)
		bottom.Normal = frame.Dir.Negate()
		bottom.Texcoord = math.NewVec2(0.5, 1)
		bottomIdx = s.emit(b, bottom)
	}

	total := rings * segs
	for r := 0; r < rings; r++ {
		for j := 0; j < segs; j++ {
			cell := r*segs + j
			if !pattern.Visible(s.Visibility, float32(r)/float32(rings), float32(j)/float32(segs)) {
				continue
			}
			if !pattern.Accepts(s.Pattern, cell, total) {
				continue
			}
			switch {
			case r == 0:
				below := ringStart[1]
				b.CellFromPattern([]uint32{below + uint32(j), below + uint32(j+1), topIdx}, s.Pattern)
			case r == rings-1 && !open:
				above := ringStart[r]
				b.CellFromPattern([]uint32{bottomIdx, above + uint32(j+1), above + uint32(j)}, s.Pattern)
			default:
				above := ringStart[r]
				below := ringStart[r+1]
				b.QuadFromPattern(
					above+uint32(j), above+uint32(j+1),
					below+uint32(j+1), below+uint32(j),
					s.Pattern)
			}
		}
	}
}

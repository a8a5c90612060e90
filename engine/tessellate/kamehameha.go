package tessellate

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

/**
 * @brief Tessellates an energy orb with a beam. The orb is a polar surface
 * around Origin; the beam is an open tapered ring tube laid along Axis and
 * closed by a dome or a flat disc at its far end.
 * @param k The kamehameha description.
 * @param o The tessellation options, may be nil.
 * @return The combined mesh.
 */
func Kamehameha(k shapes.Kamehameha, o *Options) *mesh.Mesh {
	k = k.Normalized()
	o = optionsOrDefault(o)
	if k.OrbRadius <= math.K_GEOMETRY_EPSILON && k.BeamLength <= math.K_GEOMETRY_EPSILON {
		return degenerate("kamehameha")
	}

	axis := k.Axis.Vector()
	b := mesh.NewBuilder(mesh.TopologyTriangles)

	geometry.GeneratePolarSurface(b, geometry.PolarSurface{
		Center:     k.Origin,
		Axis:       axis,
		Radius:     k.OrbRadius,
		Rings:      k.OrbRings,
		Segments:   k.OrbSegments,
		AlphaFn:    func(theta float32) float32 { return k.OrbAlpha.At(theta / math.K_PI) },
		Pattern:    o.Pattern,
		Visibility: o.Visibility,
		Deform:     o.deform,
	})

	if k.BeamLength <= math.K_GEOMETRY_EPSILON || k.BeamRadius <= math.K_GEOMETRY_EPSILON {
		return b.Build()
	}

	frame := math.PerpendicularFrame(axis)
	toWorld := framePlacement(k.Origin, frame)

	// The ring is centred on y = 0; lift it so it starts at the origin.
	beam := Ring(shapes.Ring{
		OuterRadius:    k.BeamRadius,
		Height:         k.BeamLength,
		Segments:       k.BeamSegments,
		HeightSegments: k.BeamLengthSegments,
		Taper:          1 - k.BeamTipRadius/k.BeamRadius,
		Twist:          k.BeamTwist,
		OpenTop:        true,
		OpenBottom:     true,
		Alpha:          k.BeamAlpha,
	}, o.withoutWave())
	lift := math.NewVec3(0, k.BeamLength/2, 0)
	b.Merge(beam.Mapped(func(v mesh.Vertex) mesh.Vertex {
		return o.deform(toWorld(v.Translated(lift)))
	}))

	tip := newSurface(b, o, o.capPattern()).at(toWorld)
	tipAlpha := k.BeamAlpha.At(1)
	twist := math.DegToRad(k.BeamTwist)
	switch k.Tip {
	case shapes.TipFlat:
		tip.ringCap(k.BeamLength, 0, k.BeamTipRadius, twist, math.K_PI_2, k.BeamSegments, true, tipAlpha)
	default:
		rings := math.Max(k.BeamLengthSegments, 4)
		profile := make([]profilePoint, 0, rings+1)
		for i := 0; i <= rings; i++ {
			beta := math.K_HALF_PI * float32(i) / float32(rings)
			cb, sb := math32.Cos(beta), math32.Sin(beta)
			profile = append(profile, profilePoint{
				radius: k.BeamTipRadius * cb,
				y:      k.BeamLength + k.BeamTipRadius*sb,
				nr:     cb,
				ny:     sb,
				v:      float32(i) / float32(rings),
				alpha:  tipAlpha,
			})
		}
		profile[rings].radius = 0
		tip.lathe(profile, twist, k.BeamSegments)
	}
	return b.Build()
}

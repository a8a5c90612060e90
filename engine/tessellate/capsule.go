package tessellate

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

// Capsule tessellates a cylinder body closed by two hemispheres. The body
// rows are dropped when Height is zero, so the two hemispheres share their
// equator and the result has plain sphere topology.
func Capsule(c shapes.Capsule, o *Options) *mesh.Mesh {
	c = c.Normalized()
	o = optionsOrDefault(o)
	if c.Radius <= math.K_GEOMETRY_EPSILON {
		return degenerate("capsule")
	}

	half := c.Height / 2
	total := c.Height + 2*c.Radius
	point := func(radius, y, nr, ny float32) profilePoint {
		t := (y + half + c.Radius) / total
		return profilePoint{radius: radius, y: y, nr: nr, ny: ny, v: t, alpha: c.Alpha.At(t)}
	}

	hr := c.HemisphereRings
	step := math.K_HALF_PI / float32(hr)
	profile := make([]profilePoint, 0, 2*hr+c.HeightSegments+1)

	// South pole up to the lower equator.
	for k := 0; k <= hr; k++ {
		beta := -math.K_HALF_PI + step*float32(k)
		cb, sb := math32.Cos(beta), math32.Sin(beta)
		profile = append(profile, point(c.Radius*cb, -half+c.Radius*sb, cb, sb))
	}
	if c.Height > math.K_GEOMETRY_EPSILON {
		for k := 1; k <= c.HeightSegments; k++ {
			y := -half + c.Height*float32(k)/float32(c.HeightSegments)
			profile = append(profile, point(c.Radius, y, 1, 0))
		}
	}
	// Past the upper equator to the north pole.
	for k := 1; k <= hr; k++ {
		beta := step * float32(k)
		cb, sb := math32.Cos(beta), math32.Sin(beta)
		profile = append(profile, point(c.Radius*cb, half+c.Radius*sb, cb, sb))
	}
	// Pin the poles so float noise never reopens them.
	profile[0].radius = 0
	profile[len(profile)-1].radius = 0

	b := mesh.NewBuilder(mesh.TopologyTriangles)
	newSurface(b, o, o.Pattern).lathe(profile, 0, c.Segments)
	return b.Build()
}

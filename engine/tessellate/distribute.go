package tessellate

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/math"
	"golang.org/x/exp/rand"
)

// fibonacciDirection is the i-th of n near-evenly spread unit vectors on the
// golden-angle spiral, running from +Y to -Y. Fractional i is allowed.
func fibonacciDirection(i float32, n int) math.Vec3 {
	y := 1 - 2*(i+0.5)/float32(n)
	y = math.Clamp(y, -1, 1)
	r := math32.Sqrt(1 - y*y)
	phi := i * math.K_GOLDEN_ANGLE
	return math.NewVec3(r*math32.Cos(phi), y, -r*math32.Sin(phi))
}

// marsagliaDirection draws a uniformly distributed unit vector (Marsaglia
// 1972).
func marsagliaDirection(rng *rand.Rand) math.Vec3 {
	for {
		u := 2*rng.Float32() - 1
		v := 2*rng.Float32() - 1
		s := u*u + v*v
		if s >= 1 || s < math.K_FLOAT_EPSILON {
			continue
		}
		f := 2 * math32.Sqrt(1-s)
		return math.NewVec3(u*f, v*f, 1-2*s)
	}
}

// capDirection is a direction inside a cone of half angle spread around +Y
// for a cap fraction f in [0, 1) and azimuth phi.
func capDirection(f, phi, spread float32) math.Vec3 {
	cosA := 1 - (1-math32.Cos(spread))*f
	sinA := math32.Sqrt(math.Max(0, 1-cosA*cosA))
	return math.NewVec3(sinA*math32.Cos(phi), cosA, -sinA*math32.Sin(phi))
}

var tetrahedralDirections = []math.Vec3{
	math.NewVec3(1, 1, 1).Normalized(),
	math.NewVec3(1, -1, -1).Normalized(),
	math.NewVec3(-1, 1, -1).Normalized(),
	math.NewVec3(-1, -1, 1).Normalized(),
}

var octahedralDirections = []math.Vec3{
	math.NewVec3(1, 0, 0), math.NewVec3(-1, 0, 0),
	math.NewVec3(0, 1, 0), math.NewVec3(0, -1, 0),
	math.NewVec3(0, 0, 1), math.NewVec3(0, 0, -1),
}

var linearDirections = []math.Vec3{math.NewVec3(1, 0, 0), math.NewVec3(-1, 0, 0)}

func icosahedralDirections() []math.Vec3 {
	dirs := make([]math.Vec3, len(icosahedronVertices))
	for i, v := range icosahedronVertices {
		dirs[i] = v.Normalized()
	}
	return dirs
}

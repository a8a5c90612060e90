// Package geometry holds the closed-form point generators shared by every
// tessellator and the generic polar-surface walker.
//
// Angles follow one convention everywhere: angle a lies at (cos a, -sin a) on
// the XZ plane, i.e. angles grow counter-clockwise when seen from +Y. With it a
// grid cell taken as (top-left = (j, top), top-right = (j+1, top)) is
// counter-clockwise when seen from outside.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
)

// Circle returns the XZ offset of angle on a circle of the given radius.
func Circle(angle, radius float32) (x, z float32) {
	return radius * math32.Cos(angle), -radius * math32.Sin(angle)
}

// RadialDirection is the unit outward direction of angle on the XZ plane.
func RadialDirection(angle float32) math.Vec3 {
	x, z := Circle(angle, 1)
	return math.NewVec3(x, 0, z)
}

// RingPoint places a point of a flat ring face at fraction t between the
// inner and outer radius. The normal is up; uv is (angle/2π, t).
func RingPoint(angle, innerR, outerR, y, t float32) mesh.Vertex {
	r := math.Lerp(innerR, outerR, t)
	x, z := Circle(angle, r)
	return mesh.Vertex{
		Position: math.NewVec3(x, y, z),
		Normal:   math.NewVec3Up(),
		Texcoord: math.NewVec2(angle*math.K_ONE_OVER_TWO_PI, t),
		Alpha:    1,
	}
}

func RingInnerPoint(angle, innerR, outerR, y float32) mesh.Vertex {
	return RingPoint(angle, innerR, outerR, y, 0)
}

func RingOuterPoint(angle, innerR, outerR, y float32) mesh.Vertex {
	return RingPoint(angle, innerR, outerR, y, 1)
}

// DiscCenter is the centre of a filled disc at height y.
func DiscCenter(y float32) mesh.Vertex {
	return mesh.Vertex{
		Position: math.NewVec3(0, y, 0),
		Normal:   math.NewVec3Up(),
		Texcoord: math.NewVec2(0.5, 0.5),
		Alpha:    1,
	}
}

// DiscPoint places a point of a filled disc. The uv is centred at (0.5, 0.5)
// and reaches the unit circle at maxRadius.
func DiscPoint(angle, radius, maxRadius, y float32) mesh.Vertex {
	x, z := Circle(angle, radius)
	f := float32(1)
	if maxRadius > math.K_GEOMETRY_EPSILON {
		f = radius / maxRadius
	}
	return mesh.Vertex{
		Position: math.NewVec3(x, y, z),
		Normal:   math.NewVec3Up(),
		Texcoord: math.NewVec2(0.5+0.5*math32.Cos(angle)*f, 0.5+0.5*math32.Sin(angle)*f),
		Alpha:    1,
	}
}

// CylinderPoint places a point on a straight wall with an outward normal.
func CylinderPoint(angle, radius, y, v float32) mesh.Vertex {
	x, z := Circle(angle, radius)
	return mesh.Vertex{
		Position: math.NewVec3(x, y, z),
		Normal:   RadialDirection(angle),
		Texcoord: math.NewVec2(angle*math.K_ONE_OVER_TWO_PI, v),
		Alpha:    1,
	}
}

// TaperTilt is the angle by which a wall narrowing from bottomR to topR over
// height leans its normal towards +Y.
func TaperTilt(bottomR, topR, height float32) float32 {
	return math32.Atan2(bottomR-topR, height)
}

// CylinderTaperedPoint places a point at fraction v up a wall whose radius
// goes from bottomR to topR over height. The normal is tilted by TaperTilt
// so cones and frustums light correctly.
func CylinderTaperedPoint(angle, bottomR, topR, height, yBase, v float32) mesh.Vertex {
	r := math.Lerp(bottomR, topR, v)
	x, z := Circle(angle, r)
	tilt := TaperTilt(bottomR, topR, height)
	ct := math32.Cos(tilt)
	nx, nz := Circle(angle, ct)
	return mesh.Vertex{
		Position: math.NewVec3(x, yBase+height*v, z),
		Normal:   math.NewVec3(nx, math32.Sin(tilt), nz),
		Texcoord: math.NewVec2(angle*math.K_ONE_OVER_TWO_PI, v),
		Alpha:    1,
	}
}

// PrismCornerAngle is the angle of a prism corner at height y: the base
// angle side/totalSides·2π plus twist scaled by the height fraction.
func PrismCornerAngle(side, totalSides int, y, twist, height, yBase float32) float32 {
	base := float32(side) / float32(totalSides) * math.K_PI_2
	if height <= math.K_GEOMETRY_EPSILON {
		return base
	}
	return base + twist*((y-yBase)/height)
}

// PrismCorner returns the position of a prism corner.
func PrismCorner(side, totalSides int, y, radius, twist, height, yBase float32) math.Vec3 {
	x, z := Circle(PrismCornerAngle(side, totalSides, y, twist, height, yBase), radius)
	return math.NewVec3(x, y, z)
}

// PrismFaceNormal is the flat normal of the face between corner side and
// side+1: the angular bisector of the two corners, tilted for taper.
func PrismFaceNormal(side, totalSides int, twistOffset, tilt float32) math.Vec3 {
	mid := (float32(side) + 0.5) / float32(totalSides) * math.K_PI_2
	nx, nz := Circle(mid+twistOffset, math32.Cos(tilt))
	return math.NewVec3(nx, math32.Sin(tilt), nz)
}

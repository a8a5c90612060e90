package mesh

import (
	"github.com/spaghettifunk/meshforge/engine/math"
)

/**
 * @brief Represents a single vertex in 3D space. Vertices are values: every
 * helper returns a modified copy.
 */
type Vertex struct {
	/** @brief The position of the vertex */
	Position math.Vec3
	/** @brief The normal of the vertex. Expected to be unit length. */
	Normal math.Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord math.Vec2
	/** @brief The opacity of the vertex in [0, 1]. */
	Alpha float32
}

// NewVertex builds a fully opaque vertex.
func NewVertex(position, normal math.Vec3, texcoord math.Vec2) Vertex {
	return Vertex{Position: position, Normal: normal, Texcoord: texcoord, Alpha: 1}
}

// At builds an opaque vertex from scalars, normal pointing up.
func At(x, y, z, u, v float32) Vertex {
	return Vertex{
		Position: math.NewVec3(x, y, z),
		Normal:   math.NewVec3Up(),
		Texcoord: math.NewVec2(u, v),
		Alpha:    1,
	}
}

func (v Vertex) Scaled(s float32) Vertex {
	v.Position = v.Position.MulScalar(s)
	return v
}

func (v Vertex) Translated(d math.Vec3) Vertex {
	v.Position = v.Position.Add(d)
	return v
}

func (v Vertex) WithNormal(n math.Vec3) Vertex {
	v.Normal = n
	return v
}

func (v Vertex) WithTexcoord(uv math.Vec2) Vertex {
	v.Texcoord = uv
	return v
}

func (v Vertex) WithAlpha(alpha float32) Vertex {
	v.Alpha = math.Clamp(alpha, 0, 1)
	return v
}

// Transformed places the vertex with t; the normal is only rotated.
func (v Vertex) Transformed(t math.Transform) Vertex {
	v.Position = t.ApplyPoint(v.Position)
	v.Normal = t.ApplyNormal(v.Normal)
	return v
}

// Lerp interpolates every attribute; the normal is renormalized.
func (v Vertex) Lerp(other Vertex, t float32) Vertex {
	return Vertex{
		Position: v.Position.Lerp(other.Position, t),
		Normal:   v.Normal.Lerp(other.Normal, t).Normalized(),
		Texcoord: v.Texcoord.Lerp(other.Texcoord, t),
		Alpha:    math.Lerp(v.Alpha, other.Alpha, t),
	}
}

// Compare checks every attribute against tolerance.
func (v Vertex) Compare(other Vertex, tolerance float32) bool {
	return v.Position.Compare(other.Position, tolerance) &&
		v.Normal.Compare(other.Normal, tolerance) &&
		v.Texcoord.Compare(other.Texcoord, tolerance) &&
		math.Max(v.Alpha-other.Alpha, other.Alpha-v.Alpha) <= tolerance
}

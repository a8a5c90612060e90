package math

import (
	"github.com/chewxy/math32"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief One divided by PI multiplied by 2. */
	K_ONE_OVER_TWO_PI float32 = 1.0 / K_PI_2
	/** @brief The golden ratio. */
	K_PHI float32 = 1.61803398874989484820
	/** @brief The golden angle in radians, used by Fibonacci spirals. */
	K_GOLDEN_ANGLE float32 = K_PI * (3.0 - 2.23606797749978969640)
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief Threshold under which lengths are treated as degenerate. */
	K_GEOMETRY_EPSILON float32 = 1e-4
	/** @brief Dot product above which a direction counts as parallel to up. */
	K_PARALLEL_THRESHOLD float32 = 0.99
)

func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	return math32.Abs(v.X-other.X) <= tolerance && math32.Abs(v.Y-other.Y) <= tolerance
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. Vectors shorter
 * than K_GEOMETRY_EPSILON normalize to up (0, 1, 0) instead of NaN.
 */
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length < K_GEOMETRY_EPSILON {
		return NewVec3Up()
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

/**
 * @brief Returns the dot product between v and other.
 * Typically used to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthoganal to both vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t), Lerp(v.Z, other.Z, t)}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if math32.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Transform v by m. The vector is treated as a point (w = 1).
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	return Vec3{
		v.X*m.Data[0+0] + v.Y*m.Data[4+0] + v.Z*m.Data[8+0] + m.Data[12+0],
		v.X*m.Data[0+1] + v.Y*m.Data[4+1] + v.Z*m.Data[8+1] + m.Data[12+1],
		v.X*m.Data[0+2] + v.Y*m.Data[4+2] + v.Z*m.Data[8+2] + m.Data[12+2]}
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	zAxis := position.Sub(target).Normalized()
	xAxis := up.Cross(zAxis).Normalized()
	yAxis := zAxis.Cross(xAxis)

	out := Mat4{}
	out.Data[0] = xAxis.X
	out.Data[1] = yAxis.X
	out.Data[2] = zAxis.X
	out.Data[3] = 0
	out.Data[4] = xAxis.Y
	out.Data[5] = yAxis.Y
	out.Data[6] = zAxis.Y
	out.Data[7] = 0
	out.Data[8] = xAxis.Z
	out.Data[9] = yAxis.Z
	out.Data[10] = zAxis.Z
	out.Data[11] = 0
	out.Data[12] = -xAxis.Dot(position)
	out.Data[13] = -yAxis.Dot(position)
	out.Data[14] = -zAxis.Dot(position)
	out.Data[15] = 1.0
	return out
}

// ------------------------------------------
// Quaternion
// ------------------------------------------

func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

func (q Quaternion) Normal() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	if normal < K_FLOAT_EPSILON {
		return NewQuatIdentity()
	}
	return Quaternion{q.X / normal, q.Y / normal, q.Z / normal, q.W / normal}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	halfAngle := 0.5 * angle
	s := math32.Sin(halfAngle)
	c := math32.Cos(halfAngle)

	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		return q.Normalize()
	}
	return q
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(u.Cross(t))
}

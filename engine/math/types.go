package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X float32 `toml:"x" yaml:"x"`
	Y float32 `toml:"y" yaml:"y"`
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X float32 `toml:"x" yaml:"x"`
	Y float32 `toml:"y" yaml:"y"`
	Z float32 `toml:"z" yaml:"z"`
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/** @brief a 4x4 matrix, row-major, typically used to represent view transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief An orthonormal basis built around a direction. U x Dir == W, so
 * (U, Dir, W) keeps the handedness of (X, Y, Z).
 */
type Frame struct {
	U   Vec3
	Dir Vec3
	W   Vec3
}

/**
 * @brief Represents a rigid placement of local geometry: a rotation followed
 * by a uniform scale and a translation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The uniform scale. */
	Scale float32
}

package math

import "github.com/chewxy/math32"

// PerpendicularFrame builds an orthonormal frame around dir. World up is the
// reference unless dir is within K_PARALLEL_THRESHOLD of it, in which case world
// right is used. A near-zero dir yields the frame around up.
func PerpendicularFrame(dir Vec3) Frame {
	d := dir.Normalized()
	ref := NewVec3Up()
	if math32.Abs(d.Dot(ref)) > K_PARALLEL_THRESHOLD {
		ref = NewVec3Right()
	}
	u := d.Cross(ref).Normalized()
	w := u.Cross(d)
	return Frame{U: u, Dir: d, W: w}
}

// IdentityFrame maps local coordinates onto world axes unchanged.
func IdentityFrame() Frame {
	return Frame{U: NewVec3Right(), Dir: NewVec3Up(), W: NewVec3Back()}
}

// ToWorld maps a local (x, y, z) direction into the frame: x along U,
// y along Dir and z along W.
func (f Frame) ToWorld(local Vec3) Vec3 {
	return f.U.MulScalar(local.X).Add(f.Dir.MulScalar(local.Y)).Add(f.W.MulScalar(local.Z))
}

// RotateAroundAxis rotates v by angle radians around a unit axis (Rodrigues).
func RotateAroundAxis(v, axis Vec3, angle float32) Vec3 {
	k := axis.Normalized()
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return v.MulScalar(c).
		Add(k.Cross(v).MulScalar(s)).
		Add(k.MulScalar(k.Dot(v) * (1 - c)))
}

// RotationBetween returns the shortest rotation taking from onto to.
// Opposite vectors rotate half a turn around an axis perpendicular to from.
func RotationBetween(from, to Vec3) Quaternion {
	a := from.Normalized()
	b := to.Normalized()
	d := a.Dot(b)
	if d > 1-K_FLOAT_EPSILON*8 {
		return NewQuatIdentity()
	}
	if d < -1+K_GEOMETRY_EPSILON {
		return NewQuatFromAxisAngle(PerpendicularFrame(a).U, K_PI, true)
	}
	c := a.Cross(b)
	return Quaternion{c.X, c.Y, c.Z, 1 + d}.Normalize()
}

// NewTransform creates a transform with the given placement.
func NewTransform(position Vec3, rotation Quaternion, scale float32) Transform {
	return Transform{Position: position, Rotation: rotation, Scale: scale}
}

// TransformIdentity returns a transform that leaves points untouched.
func TransformIdentity() Transform {
	return Transform{Rotation: NewQuatIdentity(), Scale: 1}
}

// ApplyPoint rotates, scales then translates p.
func (t Transform) ApplyPoint(p Vec3) Vec3 {
	return t.Rotation.Rotate(p).MulScalar(t.Scale).Add(t.Position)
}

// ApplyNormal rotates n; uniform scale and translation leave normals alone.
func (t Transform) ApplyNormal(n Vec3) Vec3 {
	return t.Rotation.Rotate(n)
}

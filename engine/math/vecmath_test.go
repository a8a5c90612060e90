package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func TestPerpendicularFrameIsOrthonormal(t *testing.T) {
	dirs := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, -1, 0),
		NewVec3(0, 0, 1),
		NewVec3(1, 2, 3),
		NewVec3(0.01, 1, 0),
		NewVec3(-3, -0.5, 2),
	}
	for _, dir := range dirs {
		f := PerpendicularFrame(dir)
		assert.InDelta(t, 1, f.U.Length(), tolerance, "U length for %v", dir)
		assert.InDelta(t, 1, f.Dir.Length(), tolerance, "Dir length for %v", dir)
		assert.InDelta(t, 1, f.W.Length(), tolerance, "W length for %v", dir)
		assert.InDelta(t, 0, f.U.Dot(f.Dir), tolerance)
		assert.InDelta(t, 0, f.U.Dot(f.W), tolerance)
		assert.InDelta(t, 0, f.Dir.Dot(f.W), tolerance)
		assert.True(t, f.U.Cross(f.Dir).Compare(f.W, tolerance), "frame for %v is not right handed", dir)
		assert.True(t, f.Dir.Compare(dir.Normalized(), tolerance))
	}
}

func TestFrameToWorld(t *testing.T) {
	f := IdentityFrame()
	p := NewVec3(1, 2, 3)
	assert.True(t, f.ToWorld(p).Compare(p, tolerance))

	f = PerpendicularFrame(NewVec3(1, 0, 0))
	assert.True(t, f.ToWorld(NewVec3(0, 2, 0)).Compare(NewVec3(2, 0, 0), tolerance))
}

func TestRotationBetween(t *testing.T) {
	cases := []struct {
		name     string
		from, to Vec3
	}{
		{"same", NewVec3(0, 1, 0), NewVec3(0, 1, 0)},
		{"quarter", NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
		{"opposite", NewVec3(0, 1, 0), NewVec3(0, -1, 0)},
		{"opposite x", NewVec3(1, 0, 0), NewVec3(-1, 0, 0)},
		{"arbitrary", NewVec3(1, 2, 3), NewVec3(-2, 0.5, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := RotationBetween(tc.from, tc.to)
			got := q.Rotate(tc.from.Normalized())
			assert.True(t, got.Compare(tc.to.Normalized(), 1e-4), "got %v want %v", got, tc.to.Normalized())
		})
	}
}

func TestRotateAroundAxis(t *testing.T) {
	v := RotateAroundAxis(NewVec3(1, 0, 0), NewVec3Up(), K_HALF_PI)
	assert.True(t, v.Compare(NewVec3(0, 0, -1), tolerance), "got %v", v)

	v = RotateAroundAxis(NewVec3(0, 3, 0), NewVec3Up(), 1.3)
	assert.True(t, v.Compare(NewVec3(0, 3, 0), tolerance))
}

func TestTransformApply(t *testing.T) {
	tr := NewTransform(NewVec3(1, 0, 0), NewQuatFromAxisAngle(NewVec3Up(), K_PI, true), 2)
	p := tr.ApplyPoint(NewVec3(1, 0, 0))
	assert.True(t, p.Compare(NewVec3(-1, 0, 0), 1e-4), "got %v", p)

	n := tr.ApplyNormal(NewVec3(1, 0, 0))
	assert.InDelta(t, 1, n.Length(), tolerance)

	id := TransformIdentity()
	assert.True(t, id.ApplyPoint(NewVec3(4, 5, 6)).Compare(NewVec3(4, 5, 6), tolerance))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, 1, Clamp(5, -1, 1))
	assert.Equal(t, -1, Clamp(-5, -1, 1))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))

	assert.Equal(t, float32(5), Lerp(float32(0), 10, 0.5))
	assert.Equal(t, float32(0.25), InverseLerp(float32(0), 4, 1))
	assert.Equal(t, float32(0), InverseLerp(float32(2), 2, 7))

	assert.Equal(t, 3, Max(3, 2))
	assert.Equal(t, 2, Min(3, 2))

	require.InDelta(t, K_HALF_PI, DegToRad(90), tolerance)
	require.InDelta(t, K_GOLDEN_ANGLE, DegToRad(137.5077), 1e-5)
}

func TestLookAtKeepsTargetInFront(t *testing.T) {
	view := NewMat4LookAt(NewVec3(0, 0, 5), NewVec3Zero(), NewVec3Up())
	p := NewVec3Zero().Transform(view)
	assert.InDelta(t, 5, math32.Abs(p.Z), 1e-4)
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 0, p.Y, 1e-4)
}

package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp linearly interpolates between a and b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// InverseLerp returns where v sits between a and b, 0 when a == b.
func InverseLerp[T constraints.Float](a, b, v T) T {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

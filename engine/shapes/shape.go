// Package shapes defines the immutable parameter record of every shape the
// tessellators understand. The set is closed: only types in this package
// implement Shape.
package shapes

import (
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
)

// Kind tags each shape record.
type Kind uint8

const (
	KindSphere Kind = iota
	KindDisc
	KindRing
	KindCylinder
	KindCone
	KindPrism
	KindCapsule
	KindTorus
	KindJet
	KindKamehameha
	KindMolecule
	KindRays
	KindPolyhedron
)

var kindNames = [...]string{
	KindSphere:     "sphere",
	KindDisc:       "disc",
	KindRing:       "ring",
	KindCylinder:   "cylinder",
	KindCone:       "cone",
	KindPrism:      "prism",
	KindCapsule:    "capsule",
	KindTorus:      "torus",
	KindJet:        "jet",
	KindKamehameha: "kamehameha",
	KindMolecule:   "molecule",
	KindRays:       "rays",
	KindPolyhedron: "polyhedron",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Shape is implemented by every parameter record in this package.
type Shape interface {
	Kind() Kind
	isShape()
}

const (
	DefaultSegments       = 32
	DefaultRings          = 16
	DefaultHeightSegments = 1
	minSegments           = 3
)

// Gradient interpolates alpha linearly from Start to End. A nil gradient is
// fully opaque everywhere.
type Gradient struct {
	Start float32 `toml:"start" yaml:"start"`
	End   float32 `toml:"end" yaml:"end"`
}

// At returns the alpha at fraction t, clamped to [0, 1].
func (g *Gradient) At(t float32) float32 {
	if g == nil {
		return 1
	}
	return math.Clamp(math.Lerp(g.Start, g.End, t), 0, 1)
}

func atLeast(name string, value, min, fallback int) int {
	if value < min {
		if value != 0 {
			core.LogWarn("%s must be at least %d. Defaulting to %d.", name, min, fallback)
		}
		return fallback
	}
	return value
}

func positiveOr(value, fallback float32) float32 {
	if value <= 0 {
		return fallback
	}
	return value
}

// arcDegrees normalizes an arc. Equal endpoints, or a span of 360° or more,
// describe the full circle.
func arcDegrees(start, end float32) (float32, float32) {
	if end <= start || end-start >= 360 {
		return start, start + 360
	}
	return start, end
}

// IsFullArc reports whether the normalized arc closes on itself.
func IsFullArc(start, end float32) bool {
	s, e := arcDegrees(start, end)
	return e-s >= 360
}

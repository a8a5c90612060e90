package shapes

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/meshforge/engine/math"
)

func parseName[T ~uint8](names []string, text []byte, what string) (T, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", what, s, strings.Join(names, ", "))
}

func nameOf[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}

// Axis is a signed world axis.
type Axis uint8

const (
	AxisPosY Axis = iota
	AxisNegY
	AxisPosX
	AxisNegX
	AxisPosZ
	AxisNegZ
)

var axisNames = []string{"+y", "-y", "+x", "-x", "+z", "-z"}

// Vector returns the unit vector of the axis.
func (a Axis) Vector() math.Vec3 {
	switch a {
	case AxisNegY:
		return math.NewVec3(0, -1, 0)
	case AxisPosX:
		return math.NewVec3(1, 0, 0)
	case AxisNegX:
		return math.NewVec3(-1, 0, 0)
	case AxisPosZ:
		return math.NewVec3(0, 0, 1)
	case AxisNegZ:
		return math.NewVec3(0, 0, -1)
	default:
		return math.NewVec3(0, 1, 0)
	}
}

func (a Axis) String() string { return nameOf(axisNames, a) }

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Axis) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if len(s) == 1 {
		s = "+" + s
	}
	v, err := parseName[Axis](axisNames, []byte(s), "axis")
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Distribution places molecule atoms.
type Distribution uint8

const (
	DistributionFibonacci Distribution = iota
	DistributionRandom
	DistributionTetrahedral
	DistributionOctahedral
	DistributionIcosahedral
	DistributionLinear
)

var distributionNames = []string{"fibonacci", "random", "tetrahedral", "octahedral", "icosahedral", "linear"}

func (d Distribution) String() string { return nameOf(distributionNames, d) }

func (d Distribution) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Distribution) UnmarshalText(text []byte) error {
	v, err := parseName[Distribution](distributionNames, text, "distribution")
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Arrangement lays out the rays of a bundle.
type Arrangement uint8

const (
	ArrangementRadial Arrangement = iota
	ArrangementSpherical
	ArrangementParallel
	ArrangementConverging
	ArrangementDiverging
)

var arrangementNames = []string{"radial", "spherical", "parallel", "converging", "diverging"}

func (a Arrangement) String() string { return nameOf(arrangementNames, a) }

func (a Arrangement) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Arrangement) UnmarshalText(text []byte) error {
	v, err := parseName[Arrangement](arrangementNames, text, "arrangement")
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// RayDistribution spaces rays inside their arrangement.
type RayDistribution uint8

const (
	RayDistributionUniform RayDistribution = iota
	RayDistributionRandom
	// RayDistributionStochastic keeps the uniform layout and jitters each ray
	// inside its own slot.
	RayDistributionStochastic
)

var rayDistributionNames = []string{"uniform", "random", "stochastic"}

func (d RayDistribution) String() string { return nameOf(rayDistributionNames, d) }

func (d RayDistribution) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *RayDistribution) UnmarshalText(text []byte) error {
	v, err := parseName[RayDistribution](rayDistributionNames, text, "ray distribution")
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// RayType selects the geometry of each ray.
type RayType uint8

const (
	RayLine RayType = iota
	RayBeam
	RayCone
	RayDroplet
	RayLightning
	RaySpiral
)

var rayTypeNames = []string{"line", "beam", "cone", "droplet", "lightning", "spiral"}

// Is3D reports whether the ray type is volumetric. Lightning and spiral rays
// are drawn as lines.
func (t RayType) Is3D() bool {
	return t == RayBeam || t == RayCone || t == RayDroplet
}

func (t RayType) String() string { return nameOf(rayTypeNames, t) }

func (t RayType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *RayType) UnmarshalText(text []byte) error {
	v, err := parseName[RayType](rayTypeNames, text, "ray type")
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// PolyhedronKind picks one of the five Platonic solids.
type PolyhedronKind uint8

const (
	Tetrahedron PolyhedronKind = iota
	Cube
	Octahedron
	Dodecahedron
	Icosahedron
)

var polyhedronNames = []string{"tetrahedron", "cube", "octahedron", "dodecahedron", "icosahedron"}

func (p PolyhedronKind) String() string { return nameOf(polyhedronNames, p) }

func (p PolyhedronKind) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PolyhedronKind) UnmarshalText(text []byte) error {
	v, err := parseName[PolyhedronKind](polyhedronNames, text, "polyhedron")
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// TipStyle closes the far end of a kamehameha beam.
type TipStyle uint8

const (
	TipDome TipStyle = iota
	TipFlat
)

var tipStyleNames = []string{"dome", "flat"}

func (t TipStyle) String() string { return nameOf(tipStyleNames, t) }

func (t TipStyle) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TipStyle) UnmarshalText(text []byte) error {
	v, err := parseName[TipStyle](tipStyleNames, text, "tip style")
	if err != nil {
		return err
	}
	*t = v
	return nil
}

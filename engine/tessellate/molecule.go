package tessellate

import (
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/geometry"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
	"golang.org/x/exp/rand"
)

type atom struct {
	center math.Vec3
	radius float32
}

// layoutAtoms places the atoms of m. All randomness comes from a generator
// seeded with m.Seed, so equal inputs give equal molecules.
func layoutAtoms(m shapes.Molecule) []atom {
	rng := rand.New(rand.NewSource(m.Seed))

	var dirs []math.Vec3
	switch m.Distribution {
	case shapes.DistributionRandom:
		for i := 0; i < m.AtomCount; i++ {
			dirs = append(dirs, marsagliaDirection(rng))
		}
	case shapes.DistributionTetrahedral:
		dirs = tetrahedralDirections
	case shapes.DistributionOctahedral:
		dirs = octahedralDirections
	case shapes.DistributionIcosahedral:
		dirs = icosahedralDirections()
	case shapes.DistributionLinear:
		dirs = linearDirections
	default:
		for i := 0; i < m.AtomCount; i++ {
			dirs = append(dirs, fibonacciDirection(float32(i), m.AtomCount))
		}
	}

	var centers []math.Vec3
	if m.CenterAtom {
		centers = append(centers, math.NewVec3Zero())
	}
	for _, d := range dirs {
		centers = append(centers, d.MulScalar(m.Distance))
	}

	atoms := make([]atom, len(centers))
	for i, c := range centers {
		jitter := float32(0)
		if m.SizeJitter > 0 {
			jitter = m.SizeJitter * (2*rng.Float32() - 1)
		}
		atoms[i] = atom{center: c, radius: m.AtomRadius * (1 + jitter)}
	}
	return atoms
}

/**
 * @brief Tessellates a molecule: one polar sphere per atom plus an
 * hourglass shaped bond between every pair of atoms whose surfaces are
 * closer than BondThreshold.
 * @param m The molecule description.
 * @param o The tessellation options, may be nil.
 * @return The molecule mesh.
 */
func Molecule(m shapes.Molecule, o *Options) *mesh.Mesh {
	m = m.Normalized()
	o = optionsOrDefault(o)
	if m.AtomRadius <= math.K_GEOMETRY_EPSILON {
		return degenerate("molecule")
	}

	atoms := layoutAtoms(m)
	b := mesh.NewBuilder(mesh.TopologyTriangles)
	for _, a := range atoms {
		geometry.GeneratePolarSurface(b, geometry.PolarSurface{
			Center:     a.center,
			Axis:       math.NewVec3Up(),
			Radius:     a.radius,
			Rings:      m.AtomRings,
			Segments:   m.AtomSegments,
			Pattern:    o.Pattern,
			Visibility: o.Visibility,
			Deform:     o.deform,
		})
	}

	bonds := 0
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			a, c := atoms[i], atoms[j]
			d := a.center.Distance(c.center)
			if d <= math.K_GEOMETRY_EPSILON || d-a.radius-c.radius > m.BondThreshold {
				continue
			}
			bond(b, m, o, a.center, c.center)
			bonds++
		}
	}
	core.LogDebug("molecule: %d atoms, %d bonds", len(atoms), bonds)
	return b.Build()
}

// bond lathes r(t) = R·(1 - pinch·(1 - (2t-1)²)) from one centre to the
// other. Both ends stay open; they sit inside the atoms.
func bond(b *mesh.Builder, m shapes.Molecule, o *Options, from, to math.Vec3) {
	d := from.Distance(to)
	n := m.BondLengthSegments
	profile := make([]profilePoint, n+1)
	for k := 0; k <= n; k++ {
		t := float32(k) / float32(n)
		s := 2*t - 1
		r := m.BondRadius * (1 - m.BondPinch*(1-s*s))
		slope := m.BondRadius * 4 * m.BondPinch * s / d
		profile[k] = profilePoint{radius: r, y: t * d, nr: 1, ny: -slope, v: t, alpha: 1}
	}
	place := transformPlacement(math.NewTransform(from, math.RotationBetween(math.NewVec3Up(), to.Sub(from)), 1))
	newSurface(b, o, o.Pattern).at(place).lathe(profile, 0, m.BondSegments)
}

package shapes

import (
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
)

// Jet is one (or, with Dual, two opposite) truncated cones starting Gap away
// from the origin along Axis. WallThickness or the explicit inner radii make
// the jet hollow. Alpha runs from base to tip.
type Jet struct {
	BaseRadius      float32   `toml:"base_radius" yaml:"base_radius"`
	TipRadius       float32   `toml:"tip_radius" yaml:"tip_radius"`
	Length          float32   `toml:"length" yaml:"length"`
	Gap             float32   `toml:"gap" yaml:"gap"`
	Segments        int       `toml:"segments" yaml:"segments"`
	LengthSegments  int       `toml:"length_segments" yaml:"length_segments"`
	Dual            bool      `toml:"dual" yaml:"dual"`
	WallThickness   float32   `toml:"wall_thickness" yaml:"wall_thickness"`
	InnerBaseRadius float32   `toml:"inner_base_radius" yaml:"inner_base_radius"`
	InnerTipRadius  float32   `toml:"inner_tip_radius" yaml:"inner_tip_radius"`
	OpenBase        bool      `toml:"open_base" yaml:"open_base"`
	OpenTip         bool      `toml:"open_tip" yaml:"open_tip"`
	Axis            Axis      `toml:"axis" yaml:"axis"`
	Alpha           *Gradient `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (Jet) Kind() Kind { return KindJet }
func (Jet) isShape()   {}

func (j Jet) Normalized() Jet {
	j.Segments = atLeast("jet segments", j.Segments, minSegments, DefaultSegments)
	j.LengthSegments = atLeast("jet length_segments", j.LengthSegments, 1, DefaultHeightSegments)
	if j.Gap < 0 {
		j.Gap = 0
	}
	if j.TipRadius < 0 {
		j.TipRadius = 0
	}
	return j
}

// IsHollow reports whether an inner wall is generated.
func (j Jet) IsHollow() bool {
	return j.WallThickness > 0 || j.InnerBaseRadius > 0 || j.InnerTipRadius > 0
}

// InnerRadii returns the inner wall radii. Explicit radii win over the
// uniform wall thickness; results never drop below zero.
func (j Jet) InnerRadii() (base, tip float32) {
	if j.InnerBaseRadius > 0 || j.InnerTipRadius > 0 {
		return math.Min(j.InnerBaseRadius, j.BaseRadius), math.Min(j.InnerTipRadius, j.TipRadius)
	}
	return math.Max(j.BaseRadius-j.WallThickness, 0), math.Max(j.TipRadius-j.WallThickness, 0)
}

// Kamehameha is an energy orb with a beam leaving it along Axis. The beam
// starts at the orb centre (Origin) and ends in a dome or flat tip.
type Kamehameha struct {
	OrbRadius          float32   `toml:"orb_radius" yaml:"orb_radius"`
	OrbRings           int       `toml:"orb_rings" yaml:"orb_rings"`
	OrbSegments        int       `toml:"orb_segments" yaml:"orb_segments"`
	BeamLength         float32   `toml:"beam_length" yaml:"beam_length"`
	BeamRadius         float32   `toml:"beam_radius" yaml:"beam_radius"`
	BeamTipRadius      float32   `toml:"beam_tip_radius" yaml:"beam_tip_radius"`
	BeamSegments       int       `toml:"beam_segments" yaml:"beam_segments"`
	BeamLengthSegments int       `toml:"beam_length_segments" yaml:"beam_length_segments"`
	BeamTwist          float32   `toml:"beam_twist" yaml:"beam_twist"`
	Axis               Axis      `toml:"axis" yaml:"axis"`
	Origin             math.Vec3 `toml:"origin" yaml:"origin"`
	Tip                TipStyle  `toml:"tip" yaml:"tip"`
	OrbAlpha           *Gradient `toml:"orb_alpha,omitempty" yaml:"orb_alpha,omitempty"`
	BeamAlpha          *Gradient `toml:"beam_alpha,omitempty" yaml:"beam_alpha,omitempty"`
}

func (Kamehameha) Kind() Kind { return KindKamehameha }
func (Kamehameha) isShape()   {}

func (k Kamehameha) Normalized() Kamehameha {
	k.OrbRings = atLeast("kamehameha orb_rings", k.OrbRings, 2, DefaultRings)
	k.OrbSegments = atLeast("kamehameha orb_segments", k.OrbSegments, minSegments, DefaultSegments)
	k.BeamSegments = atLeast("kamehameha beam_segments", k.BeamSegments, minSegments, DefaultSegments)
	k.BeamLengthSegments = atLeast("kamehameha beam_length_segments", k.BeamLengthSegments, 1, 4)
	if k.BeamTipRadius <= 0 {
		k.BeamTipRadius = k.BeamRadius
	}
	if k.BeamTipRadius > k.BeamRadius {
		core.LogWarn("kamehameha beam_tip_radius must not exceed beam_radius. Defaulting to %g.", k.BeamRadius)
		k.BeamTipRadius = k.BeamRadius
	}
	return k
}

// Molecule scatters atoms around the origin and bonds every pair whose
// surface gap is below BondThreshold. AtomCount only applies to the
// fibonacci and random distributions; the fixed sets (tetrahedral,
// octahedral, icosahedral and the two-point linear one) always use all of
// their directions.
type Molecule struct {
	AtomCount          int          `toml:"atom_count" yaml:"atom_count"`
	AtomRadius         float32      `toml:"atom_radius" yaml:"atom_radius"`
	Distance           float32      `toml:"distance" yaml:"distance"`
	Distribution       Distribution `toml:"distribution" yaml:"distribution"`
	CenterAtom         bool         `toml:"center_atom" yaml:"center_atom"`
	SizeJitter         float32      `toml:"size_jitter" yaml:"size_jitter"`
	Seed               uint64       `toml:"seed" yaml:"seed"`
	AtomRings          int          `toml:"atom_rings" yaml:"atom_rings"`
	AtomSegments       int          `toml:"atom_segments" yaml:"atom_segments"`
	BondRadius         float32      `toml:"bond_radius" yaml:"bond_radius"`
	BondThreshold      float32      `toml:"bond_threshold" yaml:"bond_threshold"`
	BondSegments       int          `toml:"bond_segments" yaml:"bond_segments"`
	BondLengthSegments int          `toml:"bond_length_segments" yaml:"bond_length_segments"`
	BondPinch          float32      `toml:"bond_pinch" yaml:"bond_pinch"`
}

func (Molecule) Kind() Kind { return KindMolecule }
func (Molecule) isShape()   {}

func (m Molecule) Normalized() Molecule {
	m.AtomCount = atLeast("molecule atom_count", m.AtomCount, 1, 6)
	m.AtomRings = atLeast("molecule atom_rings", m.AtomRings, 2, 12)
	m.AtomSegments = atLeast("molecule atom_segments", m.AtomSegments, minSegments, 16)
	m.BondSegments = atLeast("molecule bond_segments", m.BondSegments, minSegments, 8)
	m.BondLengthSegments = atLeast("molecule bond_length_segments", m.BondLengthSegments, 2, 6)
	m.Distance = positiveOr(m.Distance, m.AtomRadius*3)
	m.BondRadius = positiveOr(m.BondRadius, m.AtomRadius*0.25)
	m.BondThreshold = positiveOr(m.BondThreshold, m.AtomRadius*2)
	m.SizeJitter = math.Clamp(m.SizeJitter, 0, 0.95)
	m.BondPinch = math.Clamp(m.BondPinch, 0, 0.95)
	return m
}

// RayFlow scrolls an alpha pulse along every ray.
type RayFlow struct {
	Speed  float32 `toml:"speed" yaml:"speed"`
	Cycles float32 `toml:"cycles" yaml:"cycles"`
}

// RayMotion pulses the length of every ray.
type RayMotion struct {
	Amplitude float32 `toml:"amplitude" yaml:"amplitude"`
	Speed     float32 `toml:"speed" yaml:"speed"`
}

// RayWiggle displaces rays sideways with a travelling sine.
type RayWiggle struct {
	Amplitude float32 `toml:"amplitude" yaml:"amplitude"`
	Frequency float32 `toml:"frequency" yaml:"frequency"`
	Speed     float32 `toml:"speed" yaml:"speed"`
}

// RayTwist spins the sideways frame of each ray over time and along it.
type RayTwist struct {
	Speed float32 `toml:"speed" yaml:"speed"`
	Turns float32 `toml:"turns" yaml:"turns"`
}

// Rays is a bundle of line or volumetric rays.
type Rays struct {
	Count        int             `toml:"count" yaml:"count"`
	Length       float32         `toml:"length" yaml:"length"`
	InnerRadius  float32         `toml:"inner_radius" yaml:"inner_radius"`
	Width        float32         `toml:"width" yaml:"width"`
	Type         RayType         `toml:"type" yaml:"type"`
	Arrangement  Arrangement     `toml:"arrangement" yaml:"arrangement"`
	Distribution RayDistribution `toml:"distribution" yaml:"distribution"`
	Spread       float32         `toml:"spread" yaml:"spread"`
	Segments     int             `toml:"segments" yaml:"segments"`
	Sides        int             `toml:"sides" yaml:"sides"`
	LengthJitter float32         `toml:"length_jitter" yaml:"length_jitter"`
	Seed         uint64          `toml:"seed" yaml:"seed"`
	Alpha        *Gradient       `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
	Flow         *RayFlow        `toml:"flow,omitempty" yaml:"flow,omitempty"`
	Motion       *RayMotion      `toml:"motion,omitempty" yaml:"motion,omitempty"`
	Wiggle       *RayWiggle      `toml:"wiggle,omitempty" yaml:"wiggle,omitempty"`
	Twist        *RayTwist       `toml:"twist,omitempty" yaml:"twist,omitempty"`
}

func (Rays) Kind() Kind { return KindRays }
func (Rays) isShape()   {}

func (r Rays) Normalized() Rays {
	r.Count = atLeast("rays count", r.Count, 1, 12)
	r.Segments = atLeast("rays segments", r.Segments, 1, 8)
	r.Sides = atLeast("rays sides", r.Sides, minSegments, 8)
	r.Width = positiveOr(r.Width, r.Length*0.05)
	r.LengthJitter = math.Clamp(r.LengthJitter, 0, 1)
	if r.Spread <= 0 {
		r.Spread = 30
	}
	return r
}

// Polyhedron is a Platonic solid scaled to a circumradius, optionally
// subdivided towards a geodesic sphere.
type Polyhedron struct {
	Solid        PolyhedronKind `toml:"solid" yaml:"solid"`
	Radius       float32        `toml:"radius" yaml:"radius"`
	Subdivisions int            `toml:"subdivisions" yaml:"subdivisions"`
	Smooth       bool           `toml:"smooth" yaml:"smooth"`
}

func (Polyhedron) Kind() Kind { return KindPolyhedron }
func (Polyhedron) isShape()   {}

// MaxSubdivisions bounds the 4ⁿ growth of a geodesic polyhedron.
const MaxSubdivisions = 7

func (p Polyhedron) Normalized() Polyhedron {
	p.Subdivisions = math.Clamp(p.Subdivisions, 0, MaxSubdivisions)
	return p
}

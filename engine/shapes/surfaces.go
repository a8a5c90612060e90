package shapes

import "github.com/spaghettifunk/meshforge/engine/math"

// Sphere is a latitude/longitude sphere. Alpha runs from the north pole to
// the south pole.
type Sphere struct {
	Radius   float32   `toml:"radius" yaml:"radius"`
	LatSteps int       `toml:"lat_steps" yaml:"lat_steps"`
	LonSteps int       `toml:"lon_steps" yaml:"lon_steps"`
	Center   math.Vec3 `toml:"center" yaml:"center"`
	Alpha    *Gradient `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (Sphere) Kind() Kind { return KindSphere }
func (Sphere) isShape()   {}

func (s Sphere) Normalized() Sphere {
	s.LatSteps = atLeast("sphere lat_steps", s.LatSteps, 2, DefaultRings)
	s.LonSteps = atLeast("sphere lon_steps", s.LonSteps, minSegments, DefaultSegments)
	return s
}

// Disc is a flat, upward facing disc in the XZ plane. A positive
// InnerRadius punches a hole; ArcStart/ArcEnd (degrees) cut a sector. Alpha
// runs from the centre (or hole) to the rim.
type Disc struct {
	Radius      float32   `toml:"radius" yaml:"radius"`
	InnerRadius float32   `toml:"inner_radius" yaml:"inner_radius"`
	Segments    int       `toml:"segments" yaml:"segments"`
	Rings       int       `toml:"rings" yaml:"rings"`
	ArcStart    float32   `toml:"arc_start" yaml:"arc_start"`
	ArcEnd      float32   `toml:"arc_end" yaml:"arc_end"`
	Y           float32   `toml:"y" yaml:"y"`
	Alpha       *Gradient `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (Disc) Kind() Kind { return KindDisc }
func (Disc) isShape()   {}

func (d Disc) Normalized() Disc {
	d.Segments = atLeast("disc segments", d.Segments, minSegments, DefaultSegments)
	d.Rings = atLeast("disc rings", d.Rings, 1, 1)
	d.ArcStart, d.ArcEnd = arcDegrees(d.ArcStart, d.ArcEnd)
	return d
}

// Ring is a flat annulus when Height is zero and a thick tube otherwise.
// Taper shrinks the top radii by the given fraction, Twist (degrees) rotates
// the top relative to the bottom. Alpha runs inner to outer on a flat ring
// and bottom to top on the walls of a thick one.
type Ring struct {
	InnerRadius    float32   `toml:"inner_radius" yaml:"inner_radius"`
	OuterRadius    float32   `toml:"outer_radius" yaml:"outer_radius"`
	Height         float32   `toml:"height" yaml:"height"`
	Segments       int       `toml:"segments" yaml:"segments"`
	HeightSegments int       `toml:"height_segments" yaml:"height_segments"`
	RadialSegments int       `toml:"radial_segments" yaml:"radial_segments"`
	Taper          float32   `toml:"taper" yaml:"taper"`
	Twist          float32   `toml:"twist" yaml:"twist"`
	ArcStart       float32   `toml:"arc_start" yaml:"arc_start"`
	ArcEnd         float32   `toml:"arc_end" yaml:"arc_end"`
	OpenTop        bool      `toml:"open_top" yaml:"open_top"`
	OpenBottom     bool      `toml:"open_bottom" yaml:"open_bottom"`
	Alpha          *Gradient `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (Ring) Kind() Kind { return KindRing }
func (Ring) isShape()   {}

func (r Ring) Normalized() Ring {
	r.Segments = atLeast("ring segments", r.Segments, minSegments, DefaultSegments)
	r.HeightSegments = atLeast("ring height_segments", r.HeightSegments, 1, DefaultHeightSegments)
	r.RadialSegments = atLeast("ring radial_segments", r.RadialSegments, 1, 1)
	r.Taper = math.Clamp(r.Taper, 0, 1)
	if r.InnerRadius < 0 {
		r.InnerRadius = 0
	}
	if r.InnerRadius > r.OuterRadius {
		r.InnerRadius, r.OuterRadius = r.OuterRadius, r.InnerRadius
	}
	r.ArcStart, r.ArcEnd = arcDegrees(r.ArcStart, r.ArcEnd)
	return r
}

// Cylinder is a straight tube centred on the origin along Y.
type Cylinder struct {
	Radius         float32   `toml:"radius" yaml:"radius"`
	Height         float32   `toml:"height" yaml:"height"`
	Segments       int       `toml:"segments" yaml:"segments"`
	HeightSegments int       `toml:"height_segments" yaml:"height_segments"`
	OpenTop        bool      `toml:"open_top" yaml:"open_top"`
	OpenBottom     bool      `toml:"open_bottom" yaml:"open_bottom"`
	Alpha          *Gradient `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (Cylinder) Kind() Kind { return KindCylinder }
func (Cylinder) isShape()   {}

func (c Cylinder) Normalized() Cylinder {
	c.Segments = atLeast("cylinder segments", c.Segments, minSegments, DefaultSegments)
	c.HeightSegments = atLeast("cylinder height_segments", c.HeightSegments, 1, DefaultHeightSegments)
	return c
}

// Cone narrows from BottomRadius to TopRadius. A zero TopRadius makes a
// pointed cone with a true apex; anything else is a frustum.
type Cone struct {
	BottomRadius   float32   `toml:"bottom_radius" yaml:"bottom_radius"`
	TopRadius      float32   `toml:"top_radius" yaml:"top_radius"`
	Height         float32   `toml:"height" yaml:"height"`
	Segments       int       `toml:"segments" yaml:"segments"`
	HeightSegments int       `toml:"height_segments" yaml:"height_segments"`
	OpenTop        bool      `toml:"open_top" yaml:"open_top"`
	OpenBottom     bool      `toml:"open_bottom" yaml:"open_bottom"`
	Alpha          *Gradient `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (Cone) Kind() Kind { return KindCone }
func (Cone) isShape()   {}

func (c Cone) Normalized() Cone {
	c.Segments = atLeast("cone segments", c.Segments, minSegments, DefaultSegments)
	c.HeightSegments = atLeast("cone height_segments", c.HeightSegments, 1, DefaultHeightSegments)
	if c.TopRadius < 0 {
		c.TopRadius = 0
	}
	return c
}

// IsPointed reports whether the cone closes in an apex.
func (c Cone) IsPointed() bool {
	return c.TopRadius < math.K_GEOMETRY_EPSILON
}

// Prism extrudes a regular polygon with flat shaded sides.
type Prism struct {
	Sides          int       `toml:"sides" yaml:"sides"`
	Radius         float32   `toml:"radius" yaml:"radius"`
	Height         float32   `toml:"height" yaml:"height"`
	HeightSegments int       `toml:"height_segments" yaml:"height_segments"`
	Taper          float32   `toml:"taper" yaml:"taper"`
	Twist          float32   `toml:"twist" yaml:"twist"`
	OpenTop        bool      `toml:"open_top" yaml:"open_top"`
	OpenBottom     bool      `toml:"open_bottom" yaml:"open_bottom"`
	Alpha          *Gradient `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (Prism) Kind() Kind { return KindPrism }
func (Prism) isShape()   {}

func (p Prism) Normalized() Prism {
	p.Sides = atLeast("prism sides", p.Sides, minSegments, 6)
	p.HeightSegments = atLeast("prism height_segments", p.HeightSegments, 1, DefaultHeightSegments)
	p.Taper = math.Clamp(p.Taper, 0, 1)
	return p
}

// Capsule is a cylinder body of Height closed by two hemispheres of Radius.
type Capsule struct {
	Radius          float32   `toml:"radius" yaml:"radius"`
	Height          float32   `toml:"height" yaml:"height"`
	Segments        int       `toml:"segments" yaml:"segments"`
	HemisphereRings int       `toml:"hemisphere_rings" yaml:"hemisphere_rings"`
	HeightSegments  int       `toml:"height_segments" yaml:"height_segments"`
	Alpha           *Gradient `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (Capsule) Kind() Kind { return KindCapsule }
func (Capsule) isShape()   {}

func (c Capsule) Normalized() Capsule {
	c.Segments = atLeast("capsule segments", c.Segments, minSegments, DefaultSegments)
	c.HemisphereRings = atLeast("capsule hemisphere_rings", c.HemisphereRings, 1, DefaultRings/2)
	c.HeightSegments = atLeast("capsule height_segments", c.HeightSegments, 1, DefaultHeightSegments)
	if c.Height < 0 {
		c.Height = 0
	}
	return c
}

// Torus revolves a tube of MinorRadius around a circle of MajorRadius in
// the XZ plane. ArcStart/ArcEnd (degrees) cut the major loop.
type Torus struct {
	MajorRadius   float32 `toml:"major_radius" yaml:"major_radius"`
	MinorRadius   float32 `toml:"minor_radius" yaml:"minor_radius"`
	MajorSegments int     `toml:"major_segments" yaml:"major_segments"`
	MinorSegments int     `toml:"minor_segments" yaml:"minor_segments"`
	ArcStart      float32 `toml:"arc_start" yaml:"arc_start"`
	ArcEnd        float32 `toml:"arc_end" yaml:"arc_end"`
}

func (Torus) Kind() Kind { return KindTorus }
func (Torus) isShape()   {}

func (t Torus) Normalized() Torus {
	t.MajorSegments = atLeast("torus major_segments", t.MajorSegments, minSegments, DefaultSegments)
	t.MinorSegments = atLeast("torus minor_segments", t.MinorSegments, minSegments, DefaultRings)
	t.ArcStart, t.ArcEnd = arcDegrees(t.ArcStart, t.ArcEnd)
	return t
}

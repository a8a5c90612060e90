// Package testbed is a showcase of every shape family, used by the gallery
// command and as a smoke test of the tessellators.
package testbed

import (
	"fmt"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/pattern"
	"github.com/spaghettifunk/meshforge/engine/shapes"
	"github.com/spaghettifunk/meshforge/engine/systems"
	"github.com/spaghettifunk/meshforge/engine/tessellate"
	"github.com/spaghettifunk/meshforge/engine/wave"
)

// Showcase is one named shape with the options it is shown with.
type Showcase struct {
	Name    string
	Shape   shapes.Shape
	Options *tessellate.Options
	// Animated showcases receive the gallery time on every update.
	Animated bool
}

// Gallery advances the animation time of its showcases frame by frame.
type Gallery struct {
	Showcases []Showcase
	time      float32
	frame     uint64
}

func NewGallery() *Gallery {
	return &Gallery{Showcases: Showcases()}
}

// Update moves the animated showcases deltaTime seconds forward.
func (g *Gallery) Update(deltaTime float64) {
	g.time += float32(deltaTime)
	g.frame++
	for i := range g.Showcases {
		s := &g.Showcases[i]
		if !s.Animated {
			continue
		}
		opts := *s.Options
		opts.Time = g.time
		s.Options = &opts
	}
}

// Frame is the number of updates so far.
func (g *Gallery) Frame() uint64 {
	return g.frame
}

// Jobs returns one tessellation job per showcase for the first frame. Once
// the gallery has been updated only the animated showcases change, so later
// frames carry just those, named with the frame number.
func (g *Gallery) Jobs() []systems.TessellationJob {
	jobs := make([]systems.TessellationJob, 0, len(g.Showcases))
	for _, s := range g.Showcases {
		name := s.Name
		if g.frame > 0 {
			if !s.Animated {
				continue
			}
			name = fmt.Sprintf("%s-%04d", s.Name, g.frame)
		}
		jobs = append(jobs, systems.NewTessellationJob(name, s.Shape, s.Options))
	}
	return jobs
}

// Render tessellates the current frame on js.
func (g *Gallery) Render(js *systems.JobSystem, progress func(systems.JobResult)) ([]systems.JobResult, error) {
	core.LogDebug("rendering gallery frame %d (t=%.2f)", g.frame, g.time)
	return js.RunAll(g.Jobs(), progress)
}

// Showcases lists the built-in gallery.
func Showcases() []Showcase {
	wavy := &tessellate.Options{
		Wave: wave.Config{Mode: wave.ModeCPU, Kind: wave.KindSine, Amplitude: 0.05, Frequency: 6, Speed: 2},
	}
	return []Showcase{
		{Name: "sphere", Shape: shapes.Sphere{Radius: 1}, Options: &tessellate.Options{}},
		{Name: "sphere-checker", Shape: shapes.Sphere{Radius: 1}, Options: &tessellate.Options{Pattern: pattern.Checker{Width: 1}}},
		{Name: "sphere-wave", Shape: shapes.Sphere{Radius: 1, LatSteps: 32, LonSteps: 48}, Options: wavy, Animated: true},
		{Name: "disc-pacman", Shape: shapes.Disc{Radius: 1, ArcStart: 30, ArcEnd: 330, Rings: 3}, Options: &tessellate.Options{}},
		{Name: "disc-donut", Shape: shapes.Disc{Radius: 1, InnerRadius: 0.5, Rings: 2}, Options: &tessellate.Options{}},
		{Name: "ring-flat", Shape: shapes.Ring{InnerRadius: 0.6, OuterRadius: 1, Alpha: &shapes.Gradient{Start: 1, End: 0.2}}, Options: &tessellate.Options{}},
		{Name: "ring-twisted", Shape: shapes.Ring{InnerRadius: 0.5, OuterRadius: 1, Height: 1, HeightSegments: 8, Taper: 0.3, Twist: 90}, Options: &tessellate.Options{}},
		{Name: "ring-sweep", Shape: shapes.Ring{InnerRadius: 0.5, OuterRadius: 1, Height: 0.4}, Options: &tessellate.Options{Visibility: pattern.Sweep{Progress: 0.75}}},
		{Name: "cylinder", Shape: shapes.Cylinder{Radius: 0.5, Height: 2, HeightSegments: 4}, Options: &tessellate.Options{}},
		{Name: "cone", Shape: shapes.Cone{BottomRadius: 0.8, Height: 1.6}, Options: &tessellate.Options{}},
		{Name: "frustum", Shape: shapes.Cone{BottomRadius: 0.8, TopRadius: 0.3, Height: 1.2, OpenTop: true}, Options: &tessellate.Options{}},
		{Name: "prism-twisted", Shape: shapes.Prism{Sides: 5, Radius: 0.8, Height: 1.5, HeightSegments: 6, Twist: 72}, Options: &tessellate.Options{CapPattern: pattern.Flipped{}}},
		{Name: "capsule", Shape: shapes.Capsule{Radius: 0.5, Height: 1}, Options: &tessellate.Options{}},
		{Name: "torus", Shape: shapes.Torus{MajorRadius: 1, MinorRadius: 0.3}, Options: &tessellate.Options{Pattern: pattern.Stripes{On: 2, Off: 1}}},
		{Name: "jet-dual", Shape: shapes.Jet{BaseRadius: 0.3, TipRadius: 0.05, Length: 1.5, Gap: 0.2, Dual: true, Axis: shapes.AxisPosX}, Options: &tessellate.Options{}},
		{Name: "jet-hollow", Shape: shapes.Jet{BaseRadius: 0.5, TipRadius: 0.3, Length: 1, WallThickness: 0.1, LengthSegments: 4}, Options: &tessellate.Options{}},
		{Name: "kamehameha", Shape: shapes.Kamehameha{
			OrbRadius: 0.5, BeamLength: 3, BeamRadius: 0.25, BeamTipRadius: 0.4, BeamTwist: 45,
			Axis: shapes.AxisPosZ, Origin: math.NewVec3(0, 0.5, 0),
			BeamAlpha: &shapes.Gradient{Start: 1, End: 0.4},
		}, Options: &tessellate.Options{}},
		{Name: "molecule", Shape: shapes.Molecule{AtomCount: 8, AtomRadius: 0.25, CenterAtom: true, SizeJitter: 0.3, Seed: 7, BondPinch: 0.4}, Options: &tessellate.Options{}},
		{Name: "molecule-tetra", Shape: shapes.Molecule{AtomRadius: 0.3, Distribution: shapes.DistributionTetrahedral, CenterAtom: true}, Options: &tessellate.Options{}},
		{Name: "rays-radial", Shape: shapes.Rays{Count: 24, Length: 1, InnerRadius: 0.3}, Options: &tessellate.Options{}},
		{Name: "rays-beams", Shape: shapes.Rays{
			Count: 16, Length: 1.2, InnerRadius: 0.2, Width: 0.08, Type: shapes.RayBeam,
			Arrangement: shapes.ArrangementSpherical, Distribution: shapes.RayDistributionStochastic, Seed: 3,
			Wiggle: &shapes.RayWiggle{Amplitude: 0.05, Frequency: 2, Speed: 3},
		}, Options: &tessellate.Options{}, Animated: true},
		{Name: "rays-cones", Shape: shapes.Rays{Count: 9, Length: 1, Width: 0.2, Type: shapes.RayCone, Arrangement: shapes.ArrangementDiverging, Spread: 40}, Options: &tessellate.Options{}},
		{Name: "rays-droplets", Shape: shapes.Rays{Count: 12, Length: 0.6, InnerRadius: 0.4, Width: 0.2, Type: shapes.RayDroplet, Arrangement: shapes.ArrangementConverging}, Options: &tessellate.Options{}},
		{Name: "rays-lightning", Shape: shapes.Rays{
			Count: 6, Length: 1.5, Type: shapes.RayLightning, Segments: 12, Seed: 11,
			Flow: &shapes.RayFlow{Speed: 1, Cycles: 2},
		}, Options: &tessellate.Options{}, Animated: true},
		{Name: "rays-spiral", Shape: shapes.Rays{Count: 8, Length: 1, Type: shapes.RaySpiral, Arrangement: shapes.ArrangementParallel, Segments: 24, Twist: &shapes.RayTwist{Speed: 1, Turns: 1}}, Options: &tessellate.Options{}, Animated: true},
		{Name: "tetrahedron", Shape: shapes.Polyhedron{Solid: shapes.Tetrahedron, Radius: 1}, Options: &tessellate.Options{}},
		{Name: "cube", Shape: shapes.Polyhedron{Solid: shapes.Cube, Radius: 1}, Options: &tessellate.Options{}},
		{Name: "octahedron", Shape: shapes.Polyhedron{Solid: shapes.Octahedron, Radius: 1}, Options: &tessellate.Options{}},
		{Name: "dodecahedron", Shape: shapes.Polyhedron{Solid: shapes.Dodecahedron, Radius: 1}, Options: &tessellate.Options{}},
		{Name: "geodesic", Shape: shapes.Polyhedron{Solid: shapes.Icosahedron, Radius: 1, Subdivisions: 2, Smooth: true}, Options: &tessellate.Options{Pattern: pattern.Sparse{Density: 0.8, Seed: 1}}},
	}
}

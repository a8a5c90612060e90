package assets

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/pattern"
	"github.com/spaghettifunk/meshforge/engine/shapes"
	"github.com/spaghettifunk/meshforge/engine/tessellate"
	"github.com/spaghettifunk/meshforge/engine/wave"
)

// Document is a list of named shapes, as read from a TOML or YAML file.
type Document struct {
	Shapes []Entry `toml:"shapes" yaml:"shapes"`
}

// Entry is one named shape with its tessellation options. Exactly one of the
// shape fields must be set.
type Entry struct {
	Name       string          `toml:"name" yaml:"name"`
	Time       float32         `toml:"time" yaml:"time"`
	Pattern    *PatternSpec    `toml:"pattern,omitempty" yaml:"pattern,omitempty"`
	CapPattern *PatternSpec    `toml:"cap_pattern,omitempty" yaml:"cap_pattern,omitempty"`
	Visibility *VisibilitySpec `toml:"visibility,omitempty" yaml:"visibility,omitempty"`
	Wave       *WaveSpec       `toml:"wave,omitempty" yaml:"wave,omitempty"`

	Sphere     *shapes.Sphere     `toml:"sphere,omitempty" yaml:"sphere,omitempty"`
	Disc       *shapes.Disc       `toml:"disc,omitempty" yaml:"disc,omitempty"`
	Ring       *shapes.Ring       `toml:"ring,omitempty" yaml:"ring,omitempty"`
	Cylinder   *shapes.Cylinder   `toml:"cylinder,omitempty" yaml:"cylinder,omitempty"`
	Cone       *shapes.Cone       `toml:"cone,omitempty" yaml:"cone,omitempty"`
	Prism      *shapes.Prism      `toml:"prism,omitempty" yaml:"prism,omitempty"`
	Capsule    *shapes.Capsule    `toml:"capsule,omitempty" yaml:"capsule,omitempty"`
	Torus      *shapes.Torus      `toml:"torus,omitempty" yaml:"torus,omitempty"`
	Jet        *shapes.Jet        `toml:"jet,omitempty" yaml:"jet,omitempty"`
	Kamehameha *shapes.Kamehameha `toml:"kamehameha,omitempty" yaml:"kamehameha,omitempty"`
	Molecule   *shapes.Molecule   `toml:"molecule,omitempty" yaml:"molecule,omitempty"`
	Rays       *shapes.Rays       `toml:"rays,omitempty" yaml:"rays,omitempty"`
	Polyhedron *shapes.Polyhedron `toml:"polyhedron,omitempty" yaml:"polyhedron,omitempty"`
}

// PatternSpec names a pattern and its parameters.
type PatternSpec struct {
	Kind    string  `toml:"kind" yaml:"kind"`
	Width   int     `toml:"width" yaml:"width"`
	On      int     `toml:"on" yaml:"on"`
	Off     int     `toml:"off" yaml:"off"`
	Density float32 `toml:"density" yaml:"density"`
	Seed    uint64  `toml:"seed" yaml:"seed"`
}

// VisibilitySpec names a visibility mask and its parameters.
type VisibilitySpec struct {
	Kind     string  `toml:"kind" yaml:"kind"`
	Progress float32 `toml:"progress" yaml:"progress"`
	Min      float32 `toml:"min" yaml:"min"`
	Max      float32 `toml:"max" yaml:"max"`
	Invert   bool    `toml:"invert" yaml:"invert"`
}

// WaveSpec is the document form of wave.Config.
type WaveSpec struct {
	Mode      string    `toml:"mode" yaml:"mode"`
	Kind      string    `toml:"kind" yaml:"kind"`
	Amplitude float32   `toml:"amplitude" yaml:"amplitude"`
	Frequency float32   `toml:"frequency" yaml:"frequency"`
	Speed     float32   `toml:"speed" yaml:"speed"`
	Axis      math.Vec3 `toml:"axis" yaml:"axis"`
}

// Resolved is an entry turned into tessellator inputs.
type Resolved struct {
	Name    string
	Shape   shapes.Shape
	Options *tessellate.Options
}

// Build returns the pattern described by p. A nil p is the
// default full pattern.
func (p *PatternSpec) Build() (pattern.Pattern, error) {
	if p == nil {
		return nil, nil
	}
	switch strings.ToLower(p.Kind) {
	case "", "full":
		return pattern.Full{}, nil
	case "none":
		return pattern.None{}, nil
	case "checker":
		return pattern.Checker{Width: p.Width}, nil
	case "stripes":
		return pattern.Stripes{On: p.On, Off: p.Off}, nil
	case "sparse":
		return pattern.Sparse{Density: p.Density, Seed: p.Seed}, nil
	case "flipped":
		return pattern.Flipped{}, nil
	}
	return nil, fmt.Errorf("pattern %q: %w", p.Kind, core.ErrUnknownPattern)
}

// Build returns the mask described by v, or nil for none.
func (v *VisibilitySpec) Build() (pattern.VisibilityMask, error) {
	if v == nil {
		return nil, nil
	}
	var mask pattern.VisibilityMask
	switch strings.ToLower(v.Kind) {
	case "sweep":
		mask = pattern.Sweep{Progress: v.Progress}
	case "band":
		mask = pattern.Band{Min: v.Min, Max: v.Max}
	default:
		return nil, fmt.Errorf("visibility %q: %w", v.Kind, core.ErrUnknownVisibility)
	}
	if v.Invert {
		mask = pattern.Invert{Mask: mask}
	}
	return mask, nil
}

// Config converts w into a wave configuration.
func (w *WaveSpec) Config() (wave.Config, error) {
	if w == nil {
		return wave.Config{}, nil
	}
	mode, err := wave.ParseMode(w.Mode)
	if err != nil {
		return wave.Config{}, err
	}
	kind, err := wave.ParseKind(w.Kind)
	if err != nil {
		return wave.Config{}, err
	}
	return wave.Config{
		Mode:      mode,
		Kind:      kind,
		Amplitude: w.Amplitude,
		Frequency: w.Frequency,
		Speed:     w.Speed,
		Axis:      w.Axis,
	}, nil
}

// Shape returns the single shape declared by the entry.
func (e *Entry) Shape() (shapes.Shape, error) {
	candidates := []shapes.Shape{}
	add := func(ok bool, s shapes.Shape) {
		if ok {
			candidates = append(candidates, s)
		}
	}
	add(e.Sphere != nil, e.Sphere)
	add(e.Disc != nil, e.Disc)
	add(e.Ring != nil, e.Ring)
	add(e.Cylinder != nil, e.Cylinder)
	add(e.Cone != nil, e.Cone)
	add(e.Prism != nil, e.Prism)
	add(e.Capsule != nil, e.Capsule)
	add(e.Torus != nil, e.Torus)
	add(e.Jet != nil, e.Jet)
	add(e.Kamehameha != nil, e.Kamehameha)
	add(e.Molecule != nil, e.Molecule)
	add(e.Rays != nil, e.Rays)
	add(e.Polyhedron != nil, e.Polyhedron)

	if len(candidates) != 1 {
		return nil, fmt.Errorf("entry %q declares %d shapes: %w", e.Name, len(candidates), core.ErrAmbiguousEntry)
	}
	return candidates[0], nil
}

// Options builds the tessellation options of the entry.
func (e *Entry) Options() (*tessellate.Options, error) {
	p, err := e.Pattern.Build()
	if err != nil {
		return nil, err
	}
	capPattern, err := e.CapPattern.Build()
	if err != nil {
		return nil, err
	}
	mask, err := e.Visibility.Build()
	if err != nil {
		return nil, err
	}
	cfg, err := e.Wave.Config()
	if err != nil {
		return nil, err
	}
	return &tessellate.Options{
		Pattern:    p,
		CapPattern: capPattern,
		Visibility: mask,
		Wave:       cfg,
		Time:       e.Time,
	}, nil
}

// Resolve validates the document and returns every entry ready for
// tessellation. Unnamed entries are called after their kind and position.
func (d *Document) Resolve() ([]Resolved, error) {
	if d == nil || len(d.Shapes) == 0 {
		return nil, core.ErrEmptyDocument
	}
	out := make([]Resolved, 0, len(d.Shapes))
	for i := range d.Shapes {
		e := &d.Shapes[i]
		shape, err := e.Shape()
		if err != nil {
			return nil, err
		}
		opts, err := e.Options()
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", shape.Kind(), i)
		}
		out = append(out, Resolved{Name: name, Shape: shape, Options: opts})
	}
	return out, nil
}

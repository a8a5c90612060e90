package tessellate

import (
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/pattern"
	"github.com/spaghettifunk/meshforge/engine/wave"
)

// Options carries the optional collaborators of a tessellation call. A nil
// *Options, like every nil field, selects the default behaviour: all cells
// rendered with the default winding, nothing masked, no deformation.
type Options struct {
	// Pattern gates and winds the cells of every surface.
	Pattern pattern.Pattern
	// CapPattern is used for end caps (prism, cylinder and cone caps). Nil
	// falls back to Pattern.
	CapPattern pattern.Pattern
	// Visibility hides cells by their normalized ring and segment position.
	Visibility pattern.VisibilityMask
	// Wave deforms vertices when its mode is CPU.
	Wave wave.Config
	// Deformer evaluates Wave; nil uses wave.Default.
	Deformer wave.Deformer
	// Time is the animation time handed to the deformer and ray animations.
	Time float32
}

var defaultOptions = &Options{}

func optionsOrDefault(o *Options) *Options {
	if o == nil {
		return defaultOptions
	}
	return o
}

func (o *Options) capPattern() pattern.Pattern {
	if o.CapPattern != nil {
		return o.CapPattern
	}
	return o.Pattern
}

// deform applies the CPU wave, if any. GPU waves are the renderer's job.
func (o *Options) deform(v mesh.Vertex) mesh.Vertex {
	if !o.Wave.Active() {
		return v
	}
	d := o.Deformer
	if d == nil {
		d = wave.Default
	}
	return d.Apply(v, o.Wave, o.Time)
}

// withoutWave returns a copy that skips deformation; composites use it for
// parts they deform themselves after placing them.
func (o *Options) withoutWave() *Options {
	c := *o
	c.Wave = wave.Config{}
	return &c
}

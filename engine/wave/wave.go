// Package wave implements the optional time-varying per-vertex deformation
// applied by the tessellators when a wave runs in CPU mode.
package wave

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
)

// Mode selects where a wave is evaluated. GPU waves are left to the renderer
// and never touch generated vertices.
type Mode uint8

const (
	ModeOff Mode = iota
	ModeCPU
	ModeGPU
)

// Kind selects the displacement function.
type Kind uint8

const (
	// KindSine pushes vertices along their normal by a travelling sine over
	// the position projected on Axis.
	KindSine Kind = iota
	// KindRipple pushes vertices along their normal by rings spreading out
	// from the Axis line through the origin.
	KindRipple
	// KindTwist rotates vertices around Axis by an angle growing with their
	// height along it.
	KindTwist
)

// Config describes one wave.
type Config struct {
	Mode      Mode
	Kind      Kind
	Amplitude float32
	Frequency float32
	Speed     float32
	Axis      math.Vec3
}

// Active reports whether the tessellators should evaluate the wave.
func (c Config) Active() bool {
	return c.Mode == ModeCPU && c.Amplitude != 0
}

// Deformer displaces a vertex for a given wave configuration and time.
type Deformer interface {
	Apply(v mesh.Vertex, cfg Config, time float32) mesh.Vertex
}

// Standard implements every Kind on the CPU.
type Standard struct{}

// Default is used when a CPU wave is requested without a deformer.
var Default Deformer = Standard{}

func (Standard) Apply(v mesh.Vertex, cfg Config, time float32) mesh.Vertex {
	axis := cfg.Axis
	if axis.LengthSquared() < math.K_GEOMETRY_EPSILON {
		axis = math.NewVec3Up()
	}
	axis = axis.Normalized()

	switch cfg.Kind {
	case KindSine:
		phase := cfg.Frequency*v.Position.Dot(axis) + cfg.Speed*time
		offset := cfg.Amplitude * math32.Sin(phase)
		v.Position = v.Position.Add(v.Normal.MulScalar(offset))
	case KindRipple:
		along := axis.MulScalar(v.Position.Dot(axis))
		dist := v.Position.Sub(along).Length()
		offset := cfg.Amplitude * math32.Sin(cfg.Frequency*dist-cfg.Speed*time)
		v.Position = v.Position.Add(v.Normal.MulScalar(offset))
	case KindTwist:
		height := v.Position.Dot(axis)
		angle := cfg.Amplitude * height * cfg.Frequency * math32.Sin(cfg.Speed*time)
		v.Position = math.RotateAroundAxis(v.Position, axis, angle)
		v.Normal = math.RotateAroundAxis(v.Normal, axis, angle)
	default:
		core.LogWarn("wave kind %d is not supported on the CPU, vertex left untouched", cfg.Kind)
	}
	return v
}

func (m Mode) String() string {
	switch m {
	case ModeCPU:
		return "cpu"
	case ModeGPU:
		return "gpu"
	default:
		return "off"
	}
}

func (k Kind) String() string {
	switch k {
	case KindRipple:
		return "ripple"
	case KindTwist:
		return "twist"
	default:
		return "sine"
	}
}

// ParseMode accepts the names produced by Mode.String; empty means off.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "none":
		return ModeOff, nil
	case "cpu":
		return ModeCPU, nil
	case "gpu":
		return ModeGPU, nil
	}
	return ModeOff, fmt.Errorf("wave mode %q: %w", s, core.ErrUnknownWave)
}

// ParseKind accepts the names produced by Kind.String; empty means sine.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sine":
		return KindSine, nil
	case "ripple":
		return KindRipple, nil
	case "twist":
		return KindTwist, nil
	}
	return KindSine, fmt.Errorf("wave kind %q: %w", s, core.ErrUnknownWave)
}

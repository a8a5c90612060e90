package wave

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActive(t *testing.T) {
	assert.False(t, Config{}.Active())
	assert.False(t, Config{Mode: ModeGPU, Amplitude: 1}.Active())
	assert.False(t, Config{Mode: ModeCPU}.Active())
	assert.True(t, Config{Mode: ModeCPU, Amplitude: 0.1}.Active())
}

func TestSinePushesAlongNormal(t *testing.T) {
	cfg := Config{Mode: ModeCPU, Kind: KindSine, Amplitude: 0.5, Frequency: 1, Speed: 1}
	v := mesh.At(0, 0, 0, 0, 0).WithNormal(math.NewVec3(1, 0, 0))

	out := Default.Apply(v, cfg, math.K_HALF_PI)
	assert.True(t, out.Position.Compare(math.NewVec3(0.5, 0, 0), 1e-5), "got %v", out.Position)
	assert.Equal(t, v.Normal, out.Normal)

	// The phase travels along the axis.
	at := mesh.At(0, math.K_HALF_PI, 0, 0, 0).WithNormal(math.NewVec3(1, 0, 0))
	out = Default.Apply(at, cfg, 0)
	assert.InDelta(t, 0.5, out.Position.X, 1e-5)
}

func TestRippleDependsOnDistanceFromAxis(t *testing.T) {
	cfg := Config{Mode: ModeCPU, Kind: KindRipple, Amplitude: 1, Frequency: 1, Axis: math.NewVec3Up()}
	v := mesh.At(math.K_HALF_PI, 7, 0, 0, 0)
	out := Standard{}.Apply(v, cfg, 0)
	// Normal is up, so the offset lands on Y.
	assert.InDelta(t, 8, out.Position.Y, 1e-5)
}

func TestTwistRotatesAroundAxis(t *testing.T) {
	cfg := Config{Mode: ModeCPU, Kind: KindTwist, Amplitude: 1, Frequency: 1, Speed: 1}
	v := mesh.At(1, 1, 0, 0, 0).WithNormal(math.NewVec3(1, 0, 0))
	out := Standard{}.Apply(v, cfg, math.K_HALF_PI)

	angle := math32.Sin(math.K_HALF_PI)
	want := math.RotateAroundAxis(v.Position, math.NewVec3Up(), angle)
	assert.True(t, out.Position.Compare(want, 1e-5))
	assert.InDelta(t, 1, out.Normal.Length(), 1e-5)
	assert.InDelta(t, 1, out.Position.Y, 1e-6)
}

func TestParse(t *testing.T) {
	for _, m := range []Mode{ModeOff, ModeCPU, ModeGPU} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, k := range []Kind{KindSine, KindRipple, KindTwist} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseMode("vertex-shader")
	assert.True(t, errors.Is(err, core.ErrUnknownWave))
	_, err = ParseKind("square")
	assert.True(t, errors.Is(err, core.ErrUnknownWave))
}

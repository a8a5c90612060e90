package assets

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/pattern"
	"github.com/spaghettifunk/meshforge/engine/shapes"
	"github.com/spaghettifunk/meshforge/engine/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

const sampleTOML = `
[[shapes]]
name = "orb"
time = 0.25
[shapes.sphere]
radius = 1.5
lat_steps = 8
lon_steps = 16
[shapes.sphere.center]
x = 1.0
[shapes.pattern]
kind = "checker"
width = 4
[shapes.wave]
mode = "cpu"
kind = "ripple"
amplitude = 0.1

[[shapes]]
[shapes.cone]
bottom_radius = 1.0
height = 2.0
`

const sampleYAML = `
shapes:
  - name: nozzle
    jet:
      base_radius: 0.4
      tip_radius: 0.1
      length: 2
      axis: x
    visibility:
      kind: band
      min: 0.25
      max: 0.75
      invert: true
  - name: gem
    polyhedron:
      solid: dodecahedron
      radius: 1
      smooth: true
`

func TestParseTOML(t *testing.T) {
	doc, err := Parse([]byte(sampleTOML), "toml")
	require.NoError(t, err)
	require.Len(t, doc.Shapes, 2)

	resolved, err := doc.Resolve()
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	orb := resolved[0]
	assert.Equal(t, "orb", orb.Name)
	sphere, ok := orb.Shape.(*shapes.Sphere)
	require.True(t, ok)
	assert.Equal(t, float32(1.5), sphere.Radius)
	assert.Equal(t, math.NewVec3(1, 0, 0), sphere.Center)
	assert.Equal(t, pattern.Checker{Width: 4}, orb.Options.Pattern)
	assert.Equal(t, wave.ModeCPU, orb.Options.Wave.Mode)
	assert.Equal(t, wave.KindRipple, orb.Options.Wave.Kind)
	assert.Equal(t, float32(0.25), orb.Options.Time)

	// Unnamed entries are named after their kind and position.
	assert.Equal(t, "cone-1", resolved[1].Name)
	assert.Nil(t, resolved[1].Options.Pattern)
}

func TestParseYAML(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML), ".yaml")
	require.NoError(t, err)

	resolved, err := doc.Resolve()
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	jet, ok := resolved[0].Shape.(*shapes.Jet)
	require.True(t, ok)
	assert.Equal(t, shapes.AxisPosX, jet.Axis)
	mask := resolved[0].Options.Visibility
	require.NotNil(t, mask)
	assert.False(t, mask.IsVisible(0.5, 0))
	assert.True(t, mask.IsVisible(0.9, 0))

	gem, ok := resolved[1].Shape.(*shapes.Polyhedron)
	require.True(t, ok)
	assert.Equal(t, shapes.Dodecahedron, gem.Solid)
	assert.True(t, gem.Smooth)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("[[shapes]]\n[shapes.sphere]\nradius = 1\nwobble = 2\n"), "toml")
	assert.Error(t, err)

	_, err = Parse([]byte("shapes:\n  - sphere:\n      radius: 1\n      wobble: 2\n"), "yaml")
	assert.Error(t, err)
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), "json")
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)

	_, err = LoaderFor("shapes.txt")
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)

	l, err := LoaderFor("dir/SHAPES.YML")
	require.NoError(t, err)
	assert.IsType(t, YAMLLoader{}, l)
	assert.True(t, IsDocument("a.toml"))
	assert.False(t, IsDocument("a.obj"))
}

func TestResolveErrors(t *testing.T) {
	_, err := (&Document{}).Resolve()
	assert.ErrorIs(t, err, core.ErrEmptyDocument)

	empty, err := Parse(nil, "yaml")
	require.NoError(t, err)
	_, err = empty.Resolve()
	assert.ErrorIs(t, err, core.ErrEmptyDocument)

	both := &Document{Shapes: []Entry{{
		Name:   "both",
		Sphere: &shapes.Sphere{Radius: 1},
		Torus:  &shapes.Torus{MajorRadius: 1, MinorRadius: 0.2},
	}}}
	_, err = both.Resolve()
	assert.ErrorIs(t, err, core.ErrAmbiguousEntry)

	neither := &Document{Shapes: []Entry{{Name: "neither"}}}
	_, err = neither.Resolve()
	assert.ErrorIs(t, err, core.ErrAmbiguousEntry)

	badPattern := &Document{Shapes: []Entry{{
		Sphere:  &shapes.Sphere{Radius: 1},
		Pattern: &PatternSpec{Kind: "zigzag"},
	}}}
	_, err = badPattern.Resolve()
	assert.ErrorIs(t, err, core.ErrUnknownPattern)

	badMask := &Document{Shapes: []Entry{{
		Sphere:     &shapes.Sphere{Radius: 1},
		Visibility: &VisibilitySpec{Kind: "spiral"},
	}}}
	_, err = badMask.Resolve()
	assert.ErrorIs(t, err, core.ErrUnknownVisibility)

	badWave := &Document{Shapes: []Entry{{
		Sphere: &shapes.Sphere{Radius: 1},
		Wave:   &WaveSpec{Mode: "vulkan"},
	}}}
	_, err = badWave.Resolve()
	assert.ErrorIs(t, err, core.ErrUnknownWave)
}

func TestPatternSpecs(t *testing.T) {
	cases := map[string]pattern.Pattern{
		"":        pattern.Full{},
		"FULL":    pattern.Full{},
		"none":    pattern.None{},
		"stripes": pattern.Stripes{On: 2, Off: 1},
		"sparse":  pattern.Sparse{Density: 0.5, Seed: 9},
		"flipped": pattern.Flipped{},
	}
	for kind, want := range cases {
		p, err := (&PatternSpec{Kind: kind, On: 2, Off: 1, Density: 0.5, Seed: 9}).Build()
		require.NoError(t, err, kind)
		assert.Equal(t, want, p, kind)
	}

	var none *PatternSpec
	p, err := none.Build()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestExampleDocuments(t *testing.T) {
	for path, names := range map[string][]string{
		"../../examples/energy.toml": {"kamehameha", "shield", "burst"},
		"../../examples/props.yaml":  {"portal", "thruster", "crystal", "water"},
	} {
		doc, err := LoadFile(path)
		require.NoError(t, err, path)
		resolved, err := doc.Resolve()
		require.NoError(t, err, path)

		var got []string
		for _, r := range resolved {
			got = append(got, r.Name)
		}
		assert.Equal(t, names, got, path)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := &Document{Shapes: []Entry{
		{
			Name:    "beam",
			Time:    0.5,
			Pattern: &PatternSpec{Kind: "stripes", On: 3, Off: 1},
			Wave:    &WaveSpec{Mode: "gpu", Kind: "twist", Amplitude: 0.5, Axis: math.NewVec3(1, 0, 0)},
			Kamehameha: &shapes.Kamehameha{
				OrbRadius:  1,
				BeamLength: 3,
				BeamRadius: 0.25,
				Axis:       shapes.AxisNegZ,
				Tip:        shapes.TipFlat,
				BeamAlpha:  &shapes.Gradient{Start: 1, End: 0.5},
			},
		},
		{
			Name: "spray",
			Rays: &shapes.Rays{
				Count:        16,
				Length:       2,
				Type:         shapes.RayCone,
				Arrangement:  shapes.ArrangementDiverging,
				Distribution: shapes.RayDistributionStochastic,
				Seed:         5,
				Flow:         &shapes.RayFlow{Speed: 1, Cycles: 2},
			},
		},
	}}

	for _, ext := range []string{"toml", "yaml"} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, doc, ext), ext)

		decoded, err := Parse(buf.Bytes(), ext)
		require.NoError(t, err, ext)
		assert.Equal(t, doc, decoded, ext)
	}

	assert.ErrorIs(t, Encode(io.Discard, doc, "xml"), core.ErrUnsupportedFormat)
}

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBuildWritesOneFilePerEntry(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "build", "examples/props.yaml", "-q", "-o", dir, "--weld", "1e-5")
	require.NoError(t, err)

	for _, name := range []string{"portal", "thruster", "crystal", "water"} {
		data, err := os.ReadFile(filepath.Join(dir, name+".obj"))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), "o "+name+"\n"), name)
	}
}

func TestBuildCombined(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "build", "examples/energy.toml", "-q", "-o", dir, "--combined", "energy")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "energy.obj"))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\no ")+1)
	assert.Contains(t, string(data), "o burst\n")
}

func TestPreviewWritesPNGs(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "preview", "examples/energy.toml", "-q", "-o", dir, "--size", "32")
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestStatsTable(t *testing.T) {
	out, err := execute(t, "stats", "examples/props.yaml")
	require.NoError(t, err)
	for _, want := range []string{"NAME", "PRIMITIVES", "portal", "crystal", "triangles"} {
		assert.Contains(t, out, want)
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "build", "does-not-exist.toml", "-q")
	assert.Error(t, err)

	_, err = execute(t, "build", "shapes.txt", "-q")
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)

	_, err = execute(t, "stats")
	assert.Error(t, err)
}

func TestGalleryCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("renders every showcase")
	}
	dir := t.TempDir()
	_, err := execute(t, "gallery", "-q", "-o", dir, "--frames", "2", "--no-preview")
	require.NoError(t, err)

	objs, err := filepath.Glob(filepath.Join(dir, "*.obj"))
	require.NoError(t, err)
	assert.Greater(t, len(objs), 20)
	assert.FileExists(t, filepath.Join(dir, "sphere-wave-0001.obj"))
}

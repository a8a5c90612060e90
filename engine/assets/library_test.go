package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 5 * time.Second
	tick    = 20 * time.Millisecond
)

func writeDocument(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// nextChange waits for a change on path matching removed.
func nextChange(t *testing.T, sl *ShapeLibrary, path string, removed bool) Change {
	t.Helper()
	timeout := time.After(waitFor)
	for {
		select {
		case c, ok := <-sl.Changes():
			require.True(t, ok, "changes closed")
			if c.Path == filepath.Clean(path) && c.Removed == removed {
				return c
			}
		case <-timeout:
			t.Fatalf("no change for %s", path)
		}
	}
}

func TestShapeLibraryIndexesExistingDocuments(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeDocument(t, filepath.Join(dir, "a.toml"), "[[shapes]]\n[shapes.sphere]\nradius = 1\n")
	writeDocument(t, filepath.Join(sub, "b.yaml"), "shapes:\n  - torus:\n      major_radius: 1\n      minor_radius: 0.2\n")
	writeDocument(t, filepath.Join(dir, "notes.txt"), "not a document")

	sl, err := NewShapeLibrary()
	require.NoError(t, err)
	require.NoError(t, sl.Initialize(dir))
	defer sl.Close()

	docs := sl.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, filepath.Join(dir, "a.toml"), docs[0].Path)
	assert.Equal(t, filepath.Join(sub, "b.yaml"), docs[1].Path)
	for _, d := range docs {
		assert.NoError(t, d.Err)
		assert.NotNil(t, d.Document)
	}
}

func TestShapeLibraryFollowsChanges(t *testing.T) {
	dir := t.TempDir()
	sl, err := NewShapeLibrary()
	require.NoError(t, err)
	require.NoError(t, sl.Initialize(dir))
	defer sl.Close()

	path := filepath.Join(dir, "ring.yaml")
	writeDocument(t, path, "shapes:\n  - ring:\n      outer_radius: 1\n")
	c := nextChange(t, sl, path, false)
	require.NotNil(t, c.Info.Document)

	require.Eventually(t, func() bool {
		info, ok := sl.Get(path)
		return ok && info.Err == nil && info.Document != nil
	}, waitFor, tick)

	// A broken rewrite keeps the last good document.
	writeDocument(t, path, "shapes: [")
	require.Eventually(t, func() bool {
		info, _ := sl.Get(path)
		return info.Err != nil
	}, waitFor, tick)
	info, _ := sl.Get(path)
	assert.NotNil(t, info.Document)

	require.NoError(t, os.Remove(path))
	nextChange(t, sl, path, true)
	_, ok := sl.Get(path)
	assert.False(t, ok)
}

func TestShapeLibraryWatchesNewDirectories(t *testing.T) {
	dir := t.TempDir()
	sl, err := NewShapeLibrary()
	require.NoError(t, err)
	require.NoError(t, sl.Initialize(dir))
	defer sl.Close()

	sub := filepath.Join(dir, "later")
	require.NoError(t, os.Mkdir(sub, 0o755))
	path := filepath.Join(sub, "cube.yaml")

	// The directory watch is added asynchronously; rewrite until it lands.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("shapes:\n  - polyhedron:\n      solid: cube\n      radius: 1\n"), 0o644)
		_, ok := sl.Get(path)
		return ok
	}, waitFor, 100*time.Millisecond)
}

func TestShapeLibraryClose(t *testing.T) {
	sl, err := NewShapeLibrary()
	require.NoError(t, err)
	require.NoError(t, sl.Initialize(t.TempDir()))

	require.NoError(t, sl.Close())
	assert.ErrorIs(t, sl.Close(), core.ErrLibraryClosed)
	assert.ErrorIs(t, sl.Initialize(t.TempDir()), core.ErrLibraryClosed)

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sl.Changes():
			return !ok
		default:
			return false
		}
	}, waitFor, tick)
}

func TestShapeLibraryCloseBeforeStart(t *testing.T) {
	sl, err := NewShapeLibrary()
	require.NoError(t, err)
	require.NoError(t, sl.Close())

	_, ok := <-sl.Changes()
	assert.False(t, ok)
}

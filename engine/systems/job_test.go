package systems

import (
	"io"
	"os"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestNewJobSystemValidation(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)

	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestRunAllKeepsSubmissionOrder(t *testing.T) {
	js, err := NewJobSystem(4, 2)
	require.NoError(t, err)

	var jobs []TessellationJob
	for i := 3; i < 20; i++ {
		jobs = append(jobs, NewTessellationJob(shapes.KindPrism.String(), shapes.Prism{Sides: i, Radius: 1, Height: 1}, nil))
	}

	var seen atomic.Int32
	results, err := js.RunAll(jobs, func(JobResult) { seen.Add(1) })
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	assert.Equal(t, int32(len(jobs)), seen.Load())

	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, jobs[i].ID, r.ID)
		sides := i + 3
		assert.Equal(t, sides*2+2*sides, r.Mesh.PrimitiveCount())
	}

	meshes, _, _ := js.Metrics().Totals()
	assert.Equal(t, uint64(len(jobs)), meshes)
	require.NoError(t, js.Shutdown())
}

func TestRunAllWithoutIDs(t *testing.T) {
	js, err := NewJobSystem(3, 3)
	require.NoError(t, err)
	defer js.Shutdown()

	repeated := NewTessellationJob("again", shapes.Prism{Sides: 6, Radius: 1, Height: 1}, nil)
	jobs := []TessellationJob{
		{Name: "a", Shape: shapes.Prism{Sides: 3, Radius: 1, Height: 1}},
		{Name: "b", Shape: shapes.Prism{Sides: 4, Radius: 1, Height: 1}},
		{Name: "c", Shape: shapes.Prism{Sides: 5, Radius: 1, Height: 1}},
		repeated,
		repeated,
	}

	results, err := js.RunAll(jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		require.NoError(t, r.Err)
		require.NotNil(t, r.Mesh, jobs[i].Name)
		assert.Equal(t, jobs[i].Name, r.Name)
		assert.NotEqual(t, uuid.Nil, r.ID)
		sides := jobs[i].Shape.(shapes.Prism).Sides
		assert.Equal(t, sides*2+2*sides, r.Mesh.PrimitiveCount())
	}
	assert.NotEqual(t, results[3].ID, results[4].ID)
	assert.Equal(t, uuid.Nil, jobs[0].ID)
}

func TestSubmitAssignsMissingIDs(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	require.NoError(t, err)
	defer js.Shutdown()

	require.NoError(t, js.Submit(TessellationJob{Name: "bare", Shape: shapes.Sphere{Radius: 1}}))
	r := <-js.Results()
	assert.Equal(t, "bare", r.Name)
	assert.NotEqual(t, uuid.Nil, r.ID)
}

func TestFailedJobsCarryTheirError(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	require.NoError(t, err)
	defer js.Shutdown()

	results, err := js.RunAll([]TessellationJob{NewTessellationJob("nothing", nil, nil)}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, core.ErrNilShape)
	assert.Nil(t, results[0].Mesh)

	meshes, _, _ := js.Metrics().Totals()
	assert.Zero(t, meshes)
}

func TestSubmitAndResults(t *testing.T) {
	js, err := NewJobSystem(2, 4)
	require.NoError(t, err)

	done := make(chan string, 1)
	job := NewTessellationJob("ball", shapes.Sphere{Radius: 1, LatSteps: 4, LonSteps: 4}, nil)
	job.OnComplete = func(r JobResult) { done <- r.Name }
	require.NoError(t, js.Submit(job))

	r := <-js.Results()
	assert.Equal(t, "ball", r.Name)
	assert.Equal(t, 32, r.Mesh.PrimitiveCount())
	assert.Equal(t, "ball", <-done)

	js.AddWorkNonBlocking(NewTessellationJob("later", shapes.Disc{Radius: 1, Segments: 6}, nil))
	assert.Equal(t, "later", (<-js.Results()).Name)

	require.NoError(t, js.Shutdown())
	assert.ErrorIs(t, js.Shutdown(), ErrJobSystemClosed)
	assert.ErrorIs(t, js.Submit(job), ErrJobSystemClosed)

	_, ok := <-js.Results()
	assert.False(t, ok)

	_, err = js.RunAll([]TessellationJob{job}, nil)
	assert.ErrorIs(t, err, ErrJobSystemClosed)
}

package systems

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
	"github.com/spaghettifunk/meshforge/engine/tessellate"
)

// TessellationJob is one shape waiting to be tessellated by a worker.
type TessellationJob struct {
	ID      uuid.UUID
	Name    string
	Shape   shapes.Shape
	Options *tessellate.Options
	// OnComplete, when set, runs on the worker after the result is known.
	OnComplete func(JobResult)
}

// JobResult carries a finished tessellation back to the submitter.
type JobResult struct {
	ID      uuid.UUID
	Name    string
	Mesh    *mesh.Mesh
	Err     error
	Elapsed time.Duration
}

func NewTessellationJob(name string, shape shapes.Shape, opts *tessellate.Options) TessellationJob {
	return TessellationJob{
		ID:      uuid.New(),
		Name:    name,
		Shape:   shape,
		Options: opts,
	}
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan TessellationJob
	results    chan JobResult
	metrics    *core.Metrics
	wg         sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrJobSystemClosed = fmt.Errorf("job system already shut down")

/**
 * @brief Creates a job system and starts its workers. Finished jobs are
 * delivered on Results, which has the same capacity as the job queue; the
 * caller must drain it.
 * @param numWorkers The number of worker goroutines.
 * @param channelSize The capacity of the job and result channels.
 */
func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan TessellationJob, channelSize),
		results:    make(chan JobResult, channelSize),
		metrics:    core.NewMetrics(),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			clock := core.NewClock()
			for job := range js.jobQueue {
				result := js.run(clock, job)
				if job.OnComplete != nil {
					job.OnComplete(result)
				}
				js.results <- result
			}
		}()
	}
}

func (js *JobSystem) run(clock *core.Clock, job TessellationJob) JobResult {
	clock.Start()
	m, err := tessellate.Tessellate(job.Shape, job.Options)
	clock.Stop()

	result := JobResult{ID: job.ID, Name: job.Name, Mesh: m, Err: err, Elapsed: clock.Elapsed()}
	if err != nil {
		core.LogError("job %s (%s) failed: %s", job.Name, job.ID, err)
		return result
	}
	js.metrics.Record(result.Elapsed, m.PrimitiveCount(), m.VertexCount())
	core.LogDebug("job %s (%s) done in %s: %d primitives", job.Name, job.ID, result.Elapsed, m.PrimitiveCount())
	return result
}

/**
 * @brief Shuts the job system down. Queued jobs still run; Results is closed
 * once the last one is delivered.
 */
func (js *JobSystem) Shutdown() error {
	js.mu.Lock()
	if js.closed {
		js.mu.Unlock()
		return ErrJobSystemClosed
	}
	js.closed = true
	close(js.jobQueue)
	js.mu.Unlock()

	js.wg.Wait()
	close(js.results)
	return nil
}

// AddWorkNonBlocking queues the job from a new goroutine and returns
// immediately.
func (js *JobSystem) AddWorkNonBlocking(job TessellationJob) {
	go func() {
		if err := js.Submit(job); err != nil {
			core.LogWarn("dropping job %s: %s", job.Name, err)
		}
	}()
}

/**
 * @brief Submits the provided job to be queued for execution. A job without
 * an ID gets a fresh one.
 * @param job The job to be executed.
 */
func (js *JobSystem) Submit(job TessellationJob) error {
	js.mu.RLock()
	defer js.mu.RUnlock()
	if js.closed {
		return ErrJobSystemClosed
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	js.jobQueue <- job
	return nil
}

// Results delivers every finished job in completion order.
func (js *JobSystem) Results() <-chan JobResult {
	return js.results
}

// Metrics returns the timing and size totals of all successful jobs.
func (js *JobSystem) Metrics() *core.Metrics {
	return js.metrics
}

// RunAll submits jobs, waits for all of them and returns the results in
// submission order. progress, if not nil, is called once per finished job.
func (js *JobSystem) RunAll(jobs []TessellationJob, progress func(JobResult)) ([]JobResult, error) {
	// Results are matched back by ID, so every queued job needs its own.
	queued := make([]TessellationJob, len(jobs))
	index := make(map[uuid.UUID]int, len(jobs))
	for i, job := range jobs {
		if _, taken := index[job.ID]; taken || job.ID == uuid.Nil {
			job.ID = uuid.New()
		}
		index[job.ID] = i
		queued[i] = job
	}

	errs := make(chan error, 1)
	go func() {
		for _, job := range queued {
			if err := js.Submit(job); err != nil {
				errs <- err
				return
			}
		}
		errs <- nil
	}()

	out := make([]JobResult, len(jobs))
	for n := 0; n < len(jobs); n++ {
		select {
		case result, ok := <-js.results:
			if !ok {
				return nil, ErrJobSystemClosed
			}
			out[index[result.ID]] = result
			if progress != nil {
				progress(result)
			}
		case err := <-errs:
			if err != nil {
				return nil, err
			}
			errs = nil
			n--
		}
	}
	return out, nil
}

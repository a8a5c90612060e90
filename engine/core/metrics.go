package core

import (
	"sync"
	"time"

	"github.com/spaghettifunk/meshforge/engine/containers"
)

const AVG_COUNT int = 30

// Metrics keeps a rolling window of tessellation timings and the totals
// produced since creation. It is safe for concurrent use by job workers.
type Metrics struct {
	mu         sync.Mutex
	window     *containers.RingQueue[time.Duration]
	meshes     uint64
	primitives uint64
	vertices   uint64
}

func NewMetrics() *Metrics {
	return &Metrics{
		window: containers.NewRingQueue[time.Duration](AVG_COUNT),
	}
}

// Record adds one finished tessellation to the metrics.
func (m *Metrics) Record(elapsed time.Duration, primitives, vertices int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.window.IsFull() {
		// Drop the oldest sample to keep the window rolling.
		_, _ = m.window.Dequeue()
	}
	_ = m.window.Enqueue(elapsed)

	m.meshes++
	m.primitives += uint64(primitives)
	m.vertices += uint64(vertices)
}

// AverageTime returns the mean duration over the rolling window.
func (m *Metrics) AverageTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.window.IsEmpty() {
		return 0
	}
	var total time.Duration
	m.window.Each(func(d time.Duration) {
		total += d
	})
	return total / time.Duration(m.window.Len())
}

// Totals returns the number of meshes, primitives and vertices recorded so far.
func (m *Metrics) Totals() (meshes, primitives, vertices uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.meshes, m.primitives, m.vertices
}

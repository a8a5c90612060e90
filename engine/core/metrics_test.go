package core

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRollingAverage(t *testing.T) {
	m := NewMetrics()
	assert.Zero(t, m.AverageTime())

	m.Record(10*time.Millisecond, 4, 6)
	m.Record(30*time.Millisecond, 2, 3)
	assert.Equal(t, 20*time.Millisecond, m.AverageTime())

	meshes, prims, verts := m.Totals()
	assert.Equal(t, uint64(2), meshes)
	assert.Equal(t, uint64(6), prims)
	assert.Equal(t, uint64(9), verts)

	// Only the last AVG_COUNT samples count towards the average.
	for i := 0; i < AVG_COUNT; i++ {
		m.Record(time.Second, 0, 0)
	}
	assert.Equal(t, time.Second, m.AverageTime())
	meshes, _, _ = m.Totals()
	assert.Equal(t, uint64(AVG_COUNT+2), meshes)
}

func TestMetricsConcurrentRecord(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Record(time.Microsecond, 1, 1)
			}
		}()
	}
	wg.Wait()
	meshes, prims, verts := m.Totals()
	assert.Equal(t, uint64(800), meshes)
	assert.Equal(t, prims, verts)
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Zero(t, c.Elapsed())

	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Stop()
	elapsed := c.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)

	// A stopped clock keeps its reading.
	c.Update()
	assert.Equal(t, elapsed, c.Elapsed())
}

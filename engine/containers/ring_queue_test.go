package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFO(t *testing.T) {
	q := NewRingQueue[int](3)
	assert.True(t, q.IsEmpty())

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.Enqueue(4), ErrQueueFull)

	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Wrap around the end of the buffer.
	require.NoError(t, q.Enqueue(4))
	var seen []int
	q.Each(func(i int) { seen = append(seen, i) })
	assert.Equal(t, []int{2, 3, 4}, seen)
	assert.Equal(t, 3, q.Len())

	for _, want := range []int{2, 3, 4} {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestRingQueueMinimumSize(t *testing.T) {
	q := NewRingQueue[string](0)
	require.NoError(t, q.Enqueue("a"))
	assert.True(t, q.IsFull())
}

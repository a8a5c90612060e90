package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(p Pattern, total int) int {
	n := 0
	for i := 0; i < total; i++ {
		if Accepts(p, i, total) {
			n++
		}
	}
	return n
}

func TestNilDefaults(t *testing.T) {
	assert.True(t, Accepts(nil, 3, 10))
	assert.Nil(t, Order(nil))
	assert.True(t, Visible(nil, 0.9, 0.9))
	assert.Equal(t, 10, count(Default, 10))
}

func TestStockPatterns(t *testing.T) {
	assert.Equal(t, 12, count(Full{}, 12))
	assert.Equal(t, 0, count(None{}, 12))
	assert.Equal(t, 12, count(Flipped{}, 12))

	// A 4x4 board shows half its cells, alternating per row.
	c := Checker{Width: 4}
	assert.Equal(t, 8, count(c, 16))
	assert.True(t, c.ShouldRender(0, 16))
	assert.False(t, c.ShouldRender(1, 16))
	assert.False(t, c.ShouldRender(4, 16))
	assert.True(t, c.ShouldRender(5, 16))
	assert.Equal(t, 5, count(Checker{}, 10))

	s := Stripes{On: 2, Off: 1}
	assert.Equal(t, []bool{true, true, false, true, true, false},
		[]bool{s.ShouldRender(0, 6), s.ShouldRender(1, 6), s.ShouldRender(2, 6), s.ShouldRender(3, 6), s.ShouldRender(4, 6), s.ShouldRender(5, 6)})
	assert.Equal(t, 6, count(Stripes{}, 6))
}

func TestSparseIsDeterministic(t *testing.T) {
	a := Sparse{Density: 0.5, Seed: 9}
	b := Sparse{Density: 0.5, Seed: 9}
	for i := 0; i < 200; i++ {
		require.Equal(t, a.ShouldRender(i, 200), b.ShouldRender(i, 200), "cell %d", i)
	}
	n := count(a, 1000)
	assert.InDelta(t, 500, n, 100)

	assert.Equal(t, 0, count(Sparse{Density: 0, Seed: 1}, 100))
	assert.Equal(t, 100, count(Sparse{Density: 1, Seed: 1}, 100))
}

func TestOrders(t *testing.T) {
	assert.Nil(t, Full{}.VertexOrder())
	assert.Equal(t, [][3]int{{3, 2, 1}, {3, 1, 0}}, Flipped{}.VertexOrder())

	c := Custom{Render: func(i, _ int) bool { return i < 3 }, Order: [][3]int{{0, 2, 1}}}
	assert.Equal(t, 3, count(c, 10))
	assert.Equal(t, [][3]int{{0, 2, 1}}, Order(c))
	assert.Equal(t, 10, count(Custom{}, 10))
}

func TestVisibilityMasks(t *testing.T) {
	sweep := Sweep{Progress: 0.5}
	assert.True(t, sweep.IsVisible(0.9, 0.25))
	assert.False(t, sweep.IsVisible(0, 0.5))
	assert.False(t, Sweep{}.IsVisible(0, 0))
	assert.True(t, Sweep{Progress: 1}.IsVisible(0, 0.99))

	band := Band{Min: 0.25, Max: 0.75}
	assert.False(t, band.IsVisible(0, 0))
	assert.True(t, band.IsVisible(0.25, 0))
	assert.False(t, band.IsVisible(0.75, 0))

	inv := Invert{Mask: band}
	assert.True(t, inv.IsVisible(0, 0))
	assert.False(t, inv.IsVisible(0.5, 0))
	assert.False(t, Invert{}.IsVisible(0.5, 0.5))

	f := MaskFunc(func(r, s float32) bool { return r+s > 1 })
	assert.True(t, Visible(f, 0.6, 0.6))
	assert.False(t, Visible(f, 0.1, 0.1))
}

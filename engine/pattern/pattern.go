// Package pattern holds the cell-selection strategies consumed by the
// tessellators: a Pattern decides which cells render and how a cell's corners
// are ordered into triangles, a VisibilityMask hides cells by their normalized
// position on the surface.
package pattern

import (
	"github.com/spaghettifunk/meshforge/engine/math"
	"golang.org/x/exp/rand"
)

// Pattern decides per cell whether it is emitted and, optionally, how the
// cell's logical corners are wound into triangles.
//
// For a quad cell the corners are 0=top-left, 1=top-right, 2=bottom-right and
// 3=bottom-left. For a three-vertex cell they are the cell's vertices in the
// order supplied by the tessellator. A nil VertexOrder selects the default
// winding.
type Pattern interface {
	ShouldRender(cellIndex, totalCells int) bool
	VertexOrder() [][3]int
}

// VisibilityMask hides cells by their normalized (ring, segment) position.
type VisibilityMask interface {
	IsVisible(ringFrac, segFrac float32) bool
}

// Default is the pattern used when none is supplied: every cell, default winding.
var Default Pattern = Full{}

// Accepts reports whether p lets the cell through; nil accepts everything.
func Accepts(p Pattern, cellIndex, totalCells int) bool {
	if p == nil {
		return true
	}
	return p.ShouldRender(cellIndex, totalCells)
}

// Order returns p's vertex order or nil when p is nil.
func Order(p Pattern) [][3]int {
	if p == nil {
		return nil
	}
	return p.VertexOrder()
}

// Visible reports whether m shows the cell; nil shows everything.
func Visible(m VisibilityMask, ringFrac, segFrac float32) bool {
	if m == nil {
		return true
	}
	return m.IsVisible(ringFrac, segFrac)
}

// Full renders every cell.
type Full struct{}

func (Full) ShouldRender(int, int) bool { return true }
func (Full) VertexOrder() [][3]int      { return nil }

// None renders nothing.
type None struct{}

func (None) ShouldRender(int, int) bool { return false }
func (None) VertexOrder() [][3]int      { return nil }

// Checker renders alternating cells along a row of the given width.
type Checker struct {
	Width int
}

func (c Checker) ShouldRender(cellIndex, _ int) bool {
	if c.Width <= 0 {
		return cellIndex%2 == 0
	}
	row := cellIndex / c.Width
	col := cellIndex % c.Width
	return (row+col)%2 == 0
}

func (Checker) VertexOrder() [][3]int { return nil }

// Stripes renders On cells then skips Off cells, repeating.
type Stripes struct {
	On  int
	Off int
}

func (s Stripes) ShouldRender(cellIndex, _ int) bool {
	on := math.Max(s.On, 1)
	off := math.Max(s.Off, 0)
	return cellIndex%(on+off) < on
}

func (Stripes) VertexOrder() [][3]int { return nil }

// Sparse renders a seeded random fraction of cells. The decision for a cell
// only depends on Seed and the cell index, so repeated tessellations agree.
type Sparse struct {
	Density float32
	Seed    uint64
}

func (s Sparse) ShouldRender(cellIndex, _ int) bool {
	r := rand.New(rand.NewSource(s.Seed ^ (uint64(cellIndex)+1)*0x9E3779B97F4A7C15))
	return r.Float32() < math.Clamp(s.Density, 0, 1)
}

func (Sparse) VertexOrder() [][3]int { return nil }

// Flipped renders every cell but splits quads along the other diagonal.
type Flipped struct{}

func (Flipped) ShouldRender(int, int) bool { return true }

func (Flipped) VertexOrder() [][3]int {
	return [][3]int{{3, 2, 1}, {3, 1, 0}}
}

// Custom wraps caller-supplied functions; nil fields behave like Full.
type Custom struct {
	Render func(cellIndex, totalCells int) bool
	Order  [][3]int
}

func (c Custom) ShouldRender(cellIndex, totalCells int) bool {
	if c.Render == nil {
		return true
	}
	return c.Render(cellIndex, totalCells)
}

func (c Custom) VertexOrder() [][3]int { return c.Order }

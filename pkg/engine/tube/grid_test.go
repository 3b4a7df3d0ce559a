package tube_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringfall/pkg/engine/tube"
)

var testColor = color.RGBA{R: 0xff, A: 0xff}

// fillRing occupies every segment of the given row except those listed.
func fillRing(g *tube.Grid, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, s := range except {
		skip[s] = true
	}
	for seg := 0; seg < g.Segments(); seg++ {
		if !skip[seg] {
			g.Place([]tube.Position{tube.P(seg, row)}, testColor)
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0, tube.Normalize(0, 8))
	assert.Equal(t, 3, tube.Normalize(11, 8))
	assert.Equal(t, 7, tube.Normalize(-1, 8))
	assert.Equal(t, 0, tube.Normalize(-16, 8))
}

func TestIsOccupied(t *testing.T) {
	g := tube.NewGrid(8, 20)
	g.Place([]tube.Position{tube.P(2, 5)}, testColor)

	t.Run("normalizes the segment first", func(t *testing.T) {
		assert.True(t, g.IsOccupied(2, 5))
		assert.True(t, g.IsOccupied(10, 5))
		assert.True(t, g.IsOccupied(-6, 5))
	})

	t.Run("rows outside the grid are free", func(t *testing.T) {
		assert.False(t, g.IsOccupied(2, -1))
		assert.False(t, g.IsOccupied(2, 20))
		assert.False(t, g.IsOccupied(2, 100))
	})
}

func TestCanPlace(t *testing.T) {
	g := tube.NewGrid(8, 20)
	g.Place([]tube.Position{tube.P(4, 0)}, testColor)

	t.Run("floor blocks fail", func(t *testing.T) {
		assert.False(t, g.CanPlace([]tube.Position{tube.P(0, -1)}))
	})

	t.Run("spawn overhang is skipped", func(t *testing.T) {
		assert.True(t, g.CanPlace([]tube.Position{tube.P(0, 20), tube.P(0, 23)}))
	})

	t.Run("occupied cells fail after normalization", func(t *testing.T) {
		assert.False(t, g.CanPlace([]tube.Position{tube.P(4, 0)}))
		assert.False(t, g.CanPlace([]tube.Position{tube.P(12, 0)}))
		assert.True(t, g.CanPlace([]tube.Position{tube.P(5, 0)}))
	})
}

func TestCompleteRings(t *testing.T) {
	g := tube.NewGrid(8, 20)

	t.Run("never reports a ring with an empty segment", func(t *testing.T) {
		fillRing(g, 5, 3)
		assert.Empty(t, g.CompleteRings())
	})

	t.Run("ascending order", func(t *testing.T) {
		fillRing(g, 5)
		fillRing(g, 12)
		fillRing(g, 2)
		assert.Equal(t, []int{2, 5, 12}, g.CompleteRings())
	})
}

func TestClearRingsSinglePassCompaction(t *testing.T) {
	g := tube.NewGrid(8, 20)

	// Two non-adjacent complete rings plus markers between and above them.
	fillRing(g, 3)
	fillRing(g, 7)
	g.Place([]tube.Position{tube.P(1, 5)}, testColor)  // between the rings
	g.Place([]tube.Position{tube.P(2, 10)}, testColor) // above both

	require.Equal(t, []int{3, 7}, g.CompleteRings())
	g.ClearRings([]int{3, 7})

	// Rows between the cleared rings shift down by 1, rows above by 2.
	assert.True(t, g.IsOccupied(1, 4), "marker between rings shifted by one")
	assert.False(t, g.IsOccupied(1, 5))
	assert.True(t, g.IsOccupied(2, 8), "marker above both rings shifted by two")
	assert.False(t, g.IsOccupied(2, 10))
	assert.Empty(t, g.CompleteRings())
}

func TestClearRingsEndToEnd(t *testing.T) {
	g := tube.NewGrid(8, 20)

	// Mark every row above the ring so the shift is observable.
	for row := 6; row < 20; row++ {
		g.Place([]tube.Position{tube.P(0, row)}, testColor)
	}

	fillRing(g, 5, 3)
	require.Empty(t, g.CompleteRings())

	g.Place([]tube.Position{tube.P(3, 5)}, testColor)
	require.Equal(t, []int{5}, g.CompleteRings())

	g.ClearRings([]int{5})

	// Former rows 6..19 now occupy rows 5..18; former row 19 is empty.
	for row := 5; row < 19; row++ {
		assert.True(t, g.IsOccupied(0, row), "row %d", row)
	}
	for seg := 0; seg < 8; seg++ {
		assert.False(t, g.IsOccupied(seg, 19), "segment %d of top row", seg)
	}
}

func TestClear(t *testing.T) {
	g := tube.NewGrid(8, 20)
	fillRing(g, 0)
	g.Clear()
	g.ForEachCell(func(seg, row int, c tube.Cell) {
		assert.False(t, c.Occupied, "cell (%d,%d)", seg, row)
	})
}

func TestNewGridPanicsOnInvalidDimensions(t *testing.T) {
	assert.Panics(t, func() { tube.NewGrid(0, 20) })
	assert.Panics(t, func() { tube.NewGrid(8, 0) })
	assert.Panics(t, func() { tube.NewGrid(-8, -20) })
}

package tube

import (
	"fmt"
	"image/color"
)

// Grid is the cyclic occupancy store for one tube. Segment indices wrap
// around the circumference and are normalized at every grid-facing call;
// row indices are linear with row 0 at the bottom. The grid persists for
// the whole session and is mutated only by the owning session.
type Grid struct {
	cells    [][]Cell // [row][segment]
	segments int
	rows     int
}

// NewGrid creates an empty grid. Nonpositive dimensions are a programmer
// error and panic.
func NewGrid(segments, rows int) *Grid {
	if segments <= 0 || rows <= 0 {
		panic(fmt.Sprintf("tube: grid dimensions must be positive, got %dx%d", segments, rows))
	}
	g := &Grid{segments: segments, rows: rows}
	g.Clear()
	return g
}

// Segments returns the number of segments around the tube.
func (g *Grid) Segments() int {
	return g.segments
}

// Rows returns the number of visible rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cell returns the cell at the given position. Rows outside [0, rows) read
// as empty.
func (g *Grid) Cell(segment, row int) Cell {
	if row < 0 || row >= g.rows {
		return Empty()
	}
	return g.cells[row][Normalize(segment, g.segments)]
}

// IsOccupied reports whether the cell at the given position is occupied.
// The segment is normalized cyclically first. Rows outside [0, rows) are
// always free, so the spawn overhang above the grid never collides.
func (g *Grid) IsOccupied(segment, row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}
	return g.cells[row][Normalize(segment, g.segments)].Occupied
}

// CanPlace reports whether every block can settle on the grid. Blocks below
// the floor (row < 0) fail; blocks in the spawn overhang (row >= rows) are
// skipped; everything else fails when the normalized cell is occupied.
// Pure: no mutation.
func (g *Grid) CanPlace(blocks []Position) bool {
	for _, b := range blocks {
		if b.Row < 0 {
			return false
		}
		if b.Row >= g.rows {
			continue
		}
		if g.cells[b.Row][Normalize(b.Segment, g.segments)].Occupied {
			return false
		}
	}
	return true
}

// Place writes occupancy and color for each block at its normalized
// position. The caller must have validated the blocks with CanPlace
// immediately before; placing an invalid piece corrupts the grid. Blocks
// still in the overhang are dropped rather than stored.
func (g *Grid) Place(blocks []Position, c color.RGBA) {
	for _, b := range blocks {
		if b.Row < 0 || b.Row >= g.rows {
			continue
		}
		g.cells[b.Row][Normalize(b.Segment, g.segments)] = Filled(c)
	}
}

// CompleteRings returns the ascending list of row indices where every
// segment is occupied.
func (g *Grid) CompleteRings() []int {
	var complete []int
	for row := 0; row < g.rows; row++ {
		full := true
		for seg := 0; seg < g.segments; seg++ {
			if !g.cells[row][seg].Occupied {
				full = false
				break
			}
		}
		if full {
			complete = append(complete, row)
		}
	}
	return complete
}

// ClearRings removes the given rows in one compaction pass: the retained
// rows keep their relative order and pack toward the bottom, and the
// vacated rows reappear empty at the top. A single pass shifts each
// remaining row by exactly the count of cleared rows below it; repeated
// single-row shifts would double-shift rows between two cleared rings.
func (g *Grid) ClearRings(rows []int) {
	if len(rows) == 0 {
		return
	}
	cleared := make(map[int]bool, len(rows))
	for _, r := range rows {
		if r >= 0 && r < g.rows {
			cleared[r] = true
		}
	}
	next := make([][]Cell, 0, g.rows)
	for row := 0; row < g.rows; row++ {
		if !cleared[row] {
			next = append(next, g.cells[row])
		}
	}
	for len(next) < g.rows {
		next = append(next, make([]Cell, g.segments))
	}
	g.cells = next
}

// Clear resets every cell to empty.
func (g *Grid) Clear() {
	g.cells = make([][]Cell, g.rows)
	for row := range g.cells {
		g.cells[row] = make([]Cell, g.segments)
	}
}

// ForEachCell calls fn for every visible cell.
func (g *Grid) ForEachCell(fn func(segment, row int, cell Cell)) {
	for row := 0; row < g.rows; row++ {
		for seg := 0; seg < g.segments; seg++ {
			fn(seg, row, g.cells[row][seg])
		}
	}
}

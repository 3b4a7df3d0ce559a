package piece

import (
	"image/color"

	"ringfall/pkg/engine/tube"
)

// Active is the piece currently falling. It is owned exclusively by the
// session: it exists from spawn until lock, is consumed into the grid, and
// discarded. The anchor is the bottom-left corner of the 4×4 box; the
// segment is kept un-normalized and wrapped only by the grid.
type Active struct {
	Shape    Shape
	Offsets  [4]Offset
	Segment  int
	Row      int
	Rotation int
}

// NewActive spawns a piece at the given anchor in its spawn orientation.
func NewActive(s Shape, segment, row int) *Active {
	return &Active{Shape: s, Offsets: s.Offsets(), Segment: segment, Row: row}
}

// BlocksAt computes the absolute tube positions of four block offsets
// anchored at (segment, row).
func BlocksAt(offsets [4]Offset, segment, row int) []tube.Position {
	blocks := make([]tube.Position, 4)
	for i, o := range offsets {
		blocks[i] = tube.P(segment+o.X, row+o.Y)
	}
	return blocks
}

// Blocks returns the absolute tube positions of the piece's four blocks.
func (a *Active) Blocks() []tube.Position {
	return BlocksAt(a.Offsets, a.Segment, a.Row)
}

// Color returns the piece's display color.
func (a *Active) Color() color.RGBA {
	return a.Shape.Color()
}

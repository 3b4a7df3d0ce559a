// Package tube provides the cylindrical playfield primitives: tube
// coordinates, the tube↔world coordinate mapper, and the cyclic occupancy
// grid with ring detection and clearing.
package tube

import "fmt"

// Position is a cell address on the tube. Segment is cyclic over
// [0, segments) and wraps around the circumference; Row is linear, with
// row 0 at the bottom of the tube. Rows at or above the grid height are the
// spawn overhang and are always free.
type Position struct {
	Segment int
	Row     int
}

// P is a convenience constructor for Position.
func P(segment, row int) Position {
	return Position{Segment: segment, Row: row}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Segment, p.Row)
}

// Add returns a new Position offset by (dSegment, dRow).
func (p Position) Add(dSegment, dRow int) Position {
	return Position{Segment: p.Segment + dSegment, Row: p.Row + dRow}
}

// Normalize wraps a segment index into [0, segments). It is applied only at
// grid-facing boundaries so that angle math stays un-wrapped and exact.
func Normalize(segment, segments int) int {
	return ((segment % segments) + segments) % segments
}

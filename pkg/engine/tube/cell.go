package tube

import "image/color"

// Cell is a single grid cell. Color is meaningful only while Occupied is
// true; it records which piece settled there so renderers can tint the
// block.
type Cell struct {
	Occupied bool
	Color    color.RGBA
}

// Empty returns an unoccupied cell.
func Empty() Cell {
	return Cell{}
}

// Filled returns an occupied cell with the given color.
func Filled(c color.RGBA) Cell {
	return Cell{Occupied: true, Color: c}
}

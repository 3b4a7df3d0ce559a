// Package piece defines the fixed catalog of seven tetromino shapes, the
// rotation transform with its wall-kick tables, the active falling piece,
// and the next-piece source.
package piece

import "image/color"

// Shape is a tag for one of the seven fixed tetromino variants. The catalog
// is a closed enumeration with parallel lookup tables, not an extensible
// hierarchy.
type Shape int

const (
	I Shape = iota
	O
	T
	S
	Z
	J
	L
)

// Count is the number of shapes in the catalog.
const Count = 7

// Shapes lists every shape once, in catalog order.
var Shapes = [Count]Shape{I, O, T, S, Z, J, L}

// Offset is a block position inside the 4×4 bounding box of a piece.
// X runs along the tube circumference, Y along its height, with the box
// centered at (1.5, 1.5).
type Offset struct {
	X, Y int
}

// Each shape is four block offsets inside the 4×4 box. Y increases upward,
// matching the row axis of the tube grid.
var shapeOffsets = [Count][4]Offset{
	I: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
	O: {{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	T: {{0, 1}, {1, 1}, {2, 1}, {1, 2}},
	S: {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
	Z: {{0, 2}, {1, 2}, {1, 1}, {2, 1}},
	J: {{0, 2}, {0, 1}, {1, 1}, {2, 1}},
	L: {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
}

var shapeColors = [Count]color.RGBA{
	I: {R: 0x30, G: 0xc7, B: 0xf0, A: 0xff},
	O: {R: 0xf7, G: 0xd4, B: 0x08, A: 0xff},
	T: {R: 0xad, G: 0x4d, B: 0x9c, A: 0xff},
	S: {R: 0x42, G: 0xb5, B: 0x42, A: 0xff},
	Z: {R: 0xf0, G: 0x21, B: 0x28, A: 0xff},
	J: {R: 0x59, G: 0x66, B: 0xad, A: 0xff},
	L: {R: 0xf0, G: 0x78, B: 0x21, A: 0xff},
}

var shapeNames = [Count]string{"I", "O", "T", "S", "Z", "J", "L"}

// Offsets returns the block offsets of the shape in its spawn orientation.
func (s Shape) Offsets() [4]Offset {
	return shapeOffsets[s]
}

// Color returns the display color of the shape.
func (s Shape) Color() color.RGBA {
	return shapeColors[s]
}

// String returns the canonical letter name of the shape.
func (s Shape) String() string {
	if s < 0 || s >= Count {
		return "?"
	}
	return shapeNames[s]
}

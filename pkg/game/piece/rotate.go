package piece

// Rotate maps each block offset through a quarter turn about the box center
// (1.5, 1.5): clockwise (x,y)→(y,−x), counterclockwise (x,y)→(−y,x). The
// center coordinates are exact in floating point, so the result is always
// back on the integer lattice.
func Rotate(offsets [4]Offset, clockwise bool) [4]Offset {
	const center = 1.5
	var out [4]Offset
	for i, o := range offsets {
		x := float64(o.X) - center
		y := float64(o.Y) - center
		if clockwise {
			x, y = y, -x
		} else {
			x, y = -y, x
		}
		out[i] = Offset{X: int(x + center), Y: int(y + center)}
	}
	return out
}

// NextRotation cycles the rotation state 0→1→2→3→0 (clockwise) or the
// reverse.
func NextRotation(state int, clockwise bool) int {
	if clockwise {
		return (state + 1) % 4
	}
	return (state + 3) % 4
}

// Kick is a wall-kick candidate offset: ΔSegment along the circumference,
// ΔRow along the height.
type Kick struct {
	DSegment int
	DRow     int
}

// Wall-kick candidate lists in the style of the Super Rotation System,
// keyed by the rotation state the piece is leaving and the turn direction.
// The first candidate the grid accepts wins; if all fail the rotation is
// rejected and the piece keeps its state.
var jlstzKicksCW = [4][]Kick{
	0: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	1: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	2: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	3: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

var jlstzKicksCCW = [4][]Kick{
	0: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	1: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	2: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	3: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

// The I piece kicks farther because its box is wider.
var iKicksCW = [4][]Kick{
	0: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	1: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	2: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	3: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
}

var iKicksCCW = [4][]Kick{
	0: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	1: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	2: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	3: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
}

// The O piece is rotation-symmetric; only the identity kick applies.
var oKicks = []Kick{{0, 0}}

// KickOffsets returns the ordered wall-kick candidates for a piece leaving
// the given rotation state in the given direction.
func KickOffsets(shape Shape, state int, clockwise bool) []Kick {
	state = ((state % 4) + 4) % 4
	switch shape {
	case O:
		return oKicks
	case I:
		if clockwise {
			return iKicksCW[state]
		}
		return iKicksCCW[state]
	default:
		if clockwise {
			return jlstzKicksCW[state]
		}
		return jlstzKicksCCW[state]
	}
}

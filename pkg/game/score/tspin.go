package score

import (
	"ringfall/pkg/engine/tube"
	"ringfall/pkg/game/piece"
)

// Kind classifies a locked piece's final rotation for scoring.
type Kind int

const (
	SpinNone Kind = iota
	SpinMini
	SpinFull
)

// SpinDetector decides whether a piece locked in a T-spin position. The
// exact corner rule differs between rule sets, so the session takes it as a
// replaceable predicate rather than hardwiring one.
type SpinDetector interface {
	Detect(g *tube.Grid, p *piece.Active, lastMoveWasRotation bool) Kind
}

// CornerDetector is the default rule: a T piece whose last successful
// action was a rotation counts as a spin when at least three of the four
// diagonal cells around its center block are blocked (the floor counts as
// blocked; the tube has no side walls). It is a full spin when both corners
// beside the stem are blocked, otherwise a mini.
type CornerDetector struct{}

func (CornerDetector) Detect(g *tube.Grid, p *piece.Active, lastMoveWasRotation bool) Kind {
	if p == nil || p.Shape != piece.T || !lastMoveWasRotation {
		return SpinNone
	}

	center, stem, ok := tCenterAndStem(p)
	if !ok {
		return SpinNone
	}

	blocked := func(dx, dy int) bool {
		row := center.Row + dy
		if row < 0 {
			return true
		}
		return g.IsOccupied(center.Segment+dx, row)
	}

	corners := 0
	for _, d := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if blocked(d[0], d[1]) {
			corners++
		}
	}
	if corners < 3 {
		return SpinNone
	}

	// Front corners sit beside the stem: center + stemDir ± perpendicular.
	dx, dy := stem.Segment-center.Segment, stem.Row-center.Row
	if blocked(dx-dy, dy+dx) && blocked(dx+dy, dy-dx) {
		return SpinFull
	}
	return SpinMini
}

// tCenterAndStem locates the center block (the one with three neighbors)
// and the stem block (the one off the three-in-a-row) of a T piece.
func tCenterAndStem(p *piece.Active) (center, stem tube.Position, ok bool) {
	blocks := p.Blocks()
	for i, c := range blocks {
		neighbors := 0
		for j, b := range blocks {
			if i == j {
				continue
			}
			dSeg := c.Segment - b.Segment
			dRow := c.Row - b.Row
			if dSeg*dSeg+dRow*dRow == 1 {
				neighbors++
			}
		}
		if neighbors == 3 {
			center = c
			// The stem is the adjacent block whose opposite cell is not
			// part of the piece.
			for _, b := range blocks {
				dSeg := b.Segment - c.Segment
				dRow := b.Row - c.Row
				if dSeg*dSeg+dRow*dRow != 1 {
					continue
				}
				opposite := tube.P(c.Segment-dSeg, c.Row-dRow)
				if !containsBlock(blocks, opposite) {
					stem = b
				}
			}
			return center, stem, true
		}
	}
	return center, stem, false
}

func containsBlock(blocks []tube.Position, p tube.Position) bool {
	for _, b := range blocks {
		if b == p {
			return true
		}
	}
	return false
}

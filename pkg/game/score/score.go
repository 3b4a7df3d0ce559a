// Package score keeps the session's score, line and combo accounting, the
// level-derived fall interval, and the pluggable T-spin predicate.
package score

import (
	"math"
	"time"
)

// Base awards by rings cleared in one turn (0–4), multiplied by (level+1).
var lineScores = [5]int{0, 40, 100, 300, 1200}

// T-spin awards by rings cleared, same level multiplier.
var (
	spinScores     = [4]int{400, 800, 1200, 1600}
	spinMiniScores = [3]int{100, 200, 400}
)

const (
	softDropPerCell = 1
	hardDropPerCell = 2
	comboPerStep    = 50

	baseFallInterval = 1000 * time.Millisecond
	minFallInterval  = 50 * time.Millisecond
	fallDecayPerLvl  = 0.9
	linesPerLevel    = 10
)

// Keeper accumulates score, cleared lines and the running combo. The level
// is always derived from the line count and never stored, so the two cannot
// diverge.
type Keeper struct {
	score int
	lines int
	combo int
}

// NewKeeper returns a zeroed keeper.
func NewKeeper() *Keeper {
	return &Keeper{}
}

// Score returns the cumulative score.
func (k *Keeper) Score() int {
	return k.score
}

// Lines returns the cumulative cleared ring count.
func (k *Keeper) Lines() int {
	return k.lines
}

// Combo returns the count of consecutive scoring turns so far.
func (k *Keeper) Combo() int {
	return k.combo
}

// Level is derived: one level per ten cleared rings.
func (k *Keeper) Level() int {
	return k.lines / linesPerLevel
}

// FallInterval returns the time between gravity steps at the current level.
// Exponential decay, floored at 50ms.
func (k *Keeper) FallInterval() time.Duration {
	interval := time.Duration(float64(baseFallInterval) * math.Pow(fallDecayPerLvl, float64(k.Level())))
	if interval < minFallInterval {
		return minFallInterval
	}
	return interval
}

// LineScore returns the award for clearing the given number of rings at the
// given level, before drop and combo bonuses.
func LineScore(lines, level int) int {
	if lines < 0 || lines >= len(lineScores) {
		return 0
	}
	return lineScores[lines] * (level + 1)
}

// spinScore returns the award for a T-spin turn clearing the given number
// of rings.
func spinScore(kind Kind, lines, level int) int {
	switch kind {
	case SpinMini:
		if lines >= 0 && lines < len(spinMiniScores) {
			return spinMiniScores[lines] * (level + 1)
		}
	case SpinFull:
		if lines >= 0 && lines < len(spinScores) {
			return spinScores[lines] * (level + 1)
		}
	}
	return 0
}

// ProcessLineClear settles one locked piece: ring award (or T-spin award
// when the detector flagged one), drop bonuses, and combo bonus, summed
// into one total and applied to the cumulative score and line count
// atomically. The combo bonus uses the combo count from before this turn;
// a zero-ring turn resets the combo.
func (k *Keeper) ProcessLineClear(lines, softDropCells, hardDropCells int, spin Kind) int {
	level := k.Level()

	awarded := softDropCells*softDropPerCell + hardDropCells*hardDropPerCell
	if spin == SpinNone {
		awarded += LineScore(lines, level)
	} else {
		awarded += spinScore(spin, lines, level)
	}

	if lines > 0 {
		awarded += k.combo * comboPerStep * (level + 1)
		k.combo++
	} else {
		k.combo = 0
	}

	k.score += awarded
	k.lines += lines
	return awarded
}

// Reset clears all accounting for a fresh session.
func (k *Keeper) Reset() {
	k.score = 0
	k.lines = 0
	k.combo = 0
}

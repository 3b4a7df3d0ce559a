// Package session owns the game state machine: it combines the tube grid,
// piece catalog, timing controllers and score keeper into one simulation
// advanced by fixed ticks. The whole session is single-threaded and
// cooperative; the host loop calls Update once per frame and Apply for each
// command, and renderers only read.
package session

import (
	"math"
	"time"

	"ringfall/pkg/engine/tube"
	"ringfall/pkg/game/piece"
	"ringfall/pkg/game/score"
	"ringfall/pkg/game/timing"
)

// Default tube dimensions.
const (
	DefaultSegments = 12
	DefaultRows     = 20
)

// The simulation advances at a fixed 60Hz step regardless of the host's
// frame rate.
const defaultTickInterval = time.Second / 60

// Config carries the session's construction parameters. Zero values take
// defaults; the next-piece source defaults to a time-seeded seven-bag.
type Config struct {
	Segments int
	Rows     int
	Source   piece.Source
	Spin     score.SpinDetector
}

// State is the observable snapshot renderers consume. Level is derived
// from LinesCleared and never stored independently.
type State struct {
	Score        int
	Level        int
	LinesCleared int
	Combo        int
	Status       Status
	FallTimer    time.Duration
}

// Session is the orchestrating state machine. It owns the grid and the
// active piece exclusively; an active piece never coexists with
// StatusGameOver.
type Session struct {
	grid   *tube.Grid
	mapper tube.Mapper
	keeper *score.Keeper
	clock  timing.Clock
	lock   timing.LockDelayController
	source piece.Source
	spin   score.SpinDetector

	status Status
	active *piece.Active

	fallTimer           time.Duration
	softDropCells       int
	hardDropCells       int
	pieceMovedThisTick  bool
	lastMoveWasRotation bool
}

// New creates a session in the menu state. Invalid dimensions panic via
// the grid and mapper constructors.
func New(cfg Config) *Session {
	if cfg.Segments == 0 {
		cfg.Segments = DefaultSegments
	}
	if cfg.Rows == 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Source == nil {
		cfg.Source = piece.NewSevenBag(time.Now().UnixNano())
	}
	if cfg.Spin == nil {
		cfg.Spin = score.CornerDetector{}
	}

	// Radius sized so neighboring segments sit one world unit apart on the
	// circumference, keeping rendered cells square-ish.
	radius := float64(cfg.Segments) / (2 * math.Pi)

	return &Session{
		grid:   tube.NewGrid(cfg.Segments, cfg.Rows),
		mapper: tube.NewMapper(cfg.Segments, radius, float64(cfg.Rows)),
		keeper: score.NewKeeper(),
		clock:  timing.NewClock(defaultTickInterval),
		source: cfg.Source,
		spin:   cfg.Spin,
		status: StatusMenu,
	}
}

// Grid exposes the occupancy store for renderers. Read-only by contract.
func (s *Session) Grid() *tube.Grid {
	return s.grid
}

// Mapper exposes the tube↔world transform for renderers.
func (s *Session) Mapper() tube.Mapper {
	return s.mapper
}

// Active returns the falling piece, or nil outside of play.
func (s *Session) Active() *piece.Active {
	return s.active
}

// Status returns the state machine position.
func (s *Session) Status() Status {
	return s.status
}

// State captures the observable snapshot for this frame.
func (s *Session) State() State {
	return State{
		Score:        s.keeper.Score(),
		Level:        s.keeper.Level(),
		LinesCleared: s.keeper.Lines(),
		Combo:        s.keeper.Combo(),
		Status:       s.status,
		FallTimer:    s.fallTimer,
	}
}

// Start begins play from the menu or after a game over, resetting all
// owned state.
func (s *Session) Start() {
	if s.status != StatusMenu && s.status != StatusGameOver {
		return
	}
	s.reset()
	s.status = StatusPlaying
	s.spawn()
}

// Restart performs one atomic reset of the grid, score keeper and timing
// state, then resumes play immediately.
func (s *Session) Restart() {
	if s.status == StatusMenu {
		return
	}
	s.reset()
	s.status = StatusPlaying
	s.spawn()
}

// ToMenu leaves a finished game for the menu.
func (s *Session) ToMenu() {
	if s.status == StatusGameOver {
		s.status = StatusMenu
	}
}

// Update advances the simulation by real elapsed time. Only a playing
// session consumes time; pausing halts advancement without discarding
// state.
func (s *Session) Update(dt time.Duration) {
	if s.status != StatusPlaying {
		return
	}
	s.clock.Update(dt, s.tick)
}

// Apply handles one command event. Gameplay commands are valid only while
// playing; in every other state only pause and restart controls are
// accepted. Rejected moves and rotations leave the piece unchanged; they
// are normal outcomes, not errors.
func (s *Session) Apply(cmd Command) {
	if s.status != StatusPlaying {
		switch cmd {
		case CommandPause:
			if s.status == StatusPaused {
				s.status = StatusPlaying
			}
		case CommandRestart:
			s.Restart()
		}
		return
	}

	switch cmd {
	case CommandRotateTubeLeft:
		s.tryShift(-1)
	case CommandRotateTubeRight:
		s.tryShift(1)
	case CommandSoftDrop:
		s.trySoftDrop()
	case CommandHardDrop:
		s.hardDrop()
	case CommandRotatePiece:
		s.tryRotate(true)
	case CommandPause:
		s.status = StatusPaused
	case CommandRestart:
		s.Restart()
	}
}

// tick is one fixed simulation step.
func (s *Session) tick() {
	if s.active == nil {
		return
	}

	if s.canFall() {
		s.fallTimer += s.clock.Interval()
		if s.fallTimer >= s.keeper.FallInterval() {
			s.active.Row--
			s.fallTimer = 0
			s.lastMoveWasRotation = false
		}
	} else {
		s.fallTimer = 0
		if s.lock.Update(s.clock.Interval(), s.pieceMovedThisTick) {
			s.lockActive()
		}
	}
	s.pieceMovedThisTick = false
}

func (s *Session) canFall() bool {
	if s.active == nil {
		return false
	}
	below := piece.BlocksAt(s.active.Offsets, s.active.Segment, s.active.Row-1)
	return s.grid.CanPlace(below)
}

// tryShift steers the piece around the tube by rotating the tube one
// segment. The anchor segment is left un-normalized; the grid wraps it.
func (s *Session) tryShift(dSegment int) {
	if s.active == nil {
		return
	}
	moved := piece.BlocksAt(s.active.Offsets, s.active.Segment+dSegment, s.active.Row)
	if !s.grid.CanPlace(moved) {
		return
	}
	s.active.Segment += dSegment
	s.pieceMovedThisTick = true
	s.lastMoveWasRotation = false
}

func (s *Session) trySoftDrop() {
	if !s.canFall() {
		return
	}
	s.active.Row--
	s.softDropCells++
	s.fallTimer = 0
	s.pieceMovedThisTick = true
	s.lastMoveWasRotation = false
}

// hardDrop slams the piece to its resting row and locks immediately. A
// piece that was already grounded keeps its rotation flag, so a kicked
// rotation finished with a hard drop still scores as a spin.
func (s *Session) hardDrop() {
	if s.active == nil {
		return
	}
	for s.canFall() {
		s.active.Row--
		s.hardDropCells++
		s.lastMoveWasRotation = false
	}
	s.lockActive()
}

// tryRotate walks the wall-kick candidates for the attempted turn and
// accepts the first placement the grid allows. When every candidate fails
// the piece keeps its orientation.
func (s *Session) tryRotate(clockwise bool) {
	if s.active == nil {
		return
	}
	rotated := piece.Rotate(s.active.Offsets, clockwise)
	for _, k := range piece.KickOffsets(s.active.Shape, s.active.Rotation, clockwise) {
		blocks := piece.BlocksAt(rotated, s.active.Segment+k.DSegment, s.active.Row+k.DRow)
		if !s.grid.CanPlace(blocks) {
			continue
		}
		s.active.Offsets = rotated
		s.active.Segment += k.DSegment
		s.active.Row += k.DRow
		s.active.Rotation = piece.NextRotation(s.active.Rotation, clockwise)
		s.pieceMovedThisTick = true
		s.lastMoveWasRotation = true
		return
	}
}

// lockActive consumes the active piece: place, detect spin, clear rings,
// score, spawn the next piece.
func (s *Session) lockActive() {
	s.grid.Place(s.active.Blocks(), s.active.Color())
	spin := s.spin.Detect(s.grid, s.active, s.lastMoveWasRotation)

	rings := s.grid.CompleteRings()
	s.grid.ClearRings(rings)
	s.keeper.ProcessLineClear(len(rings), s.softDropCells, s.hardDropCells, spin)

	s.active = nil
	s.softDropCells = 0
	s.hardDropCells = 0
	s.fallTimer = 0
	s.lastMoveWasRotation = false
	s.lock.Reset()

	s.spawn()
}

// spawn polls the next-piece source and places the piece in the overhang
// above the visible tube. A spawn whose visible blocks already collide
// ends the game; the active piece is dropped so it never coexists with
// StatusGameOver.
func (s *Session) spawn() {
	shape := s.source.Next()
	segment := s.grid.Segments()/2 - 2
	row := s.grid.Rows() - 2

	p := piece.NewActive(shape, segment, row)
	if !s.grid.CanPlace(p.Blocks()) {
		s.active = nil
		s.status = StatusGameOver
		return
	}

	s.active = p
	s.fallTimer = 0
	s.pieceMovedThisTick = false
	s.lastMoveWasRotation = false
	s.lock.Reset()
}

// reset returns all owned state to its initial value in one pass.
func (s *Session) reset() {
	s.grid.Clear()
	s.keeper.Reset()
	s.lock.Reset()
	s.clock.Reset()
	s.active = nil
	s.fallTimer = 0
	s.softDropCells = 0
	s.hardDropCells = 0
	s.pieceMovedThisTick = false
	s.lastMoveWasRotation = false
}

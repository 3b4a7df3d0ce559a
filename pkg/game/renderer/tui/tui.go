// Package tui renders the game in a terminal. The tube is drawn
// unrolled: segment 0 on the left, the top row first, with the seam
// wrapping off the right edge back to the left.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"ringfall/pkg/engine/input"
	"ringfall/pkg/engine/terminal"
	"ringfall/pkg/engine/tube"
	"ringfall/pkg/game/menu"
	"ringfall/pkg/game/renderer"
	"ringfall/pkg/game/session"
)

const (
	cellOccupied = "[]"
	cellActive   = "()"
	cellEmpty    = " ."

	frameInterval = time.Second / 30
)

// TUIRenderer is the terminal-based renderer implementation.
type TUIRenderer struct {
	colorFrame    color.Style
	colorSubtle   color.Style
	colorTitle    color.Style
	colorSelected color.Style
	colorHUD      color.Style

	actions chan input.Action
}

// New creates a new TUI renderer.
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorFrame = color.Style{color.FgGray}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSelected = color.Style{color.FgGreen, color.OpBold}
	t.colorHUD = color.Style{color.FgBlue}

	t.actions = make(chan input.Action, 16)
	return nil
}

// Run drives the session until the player quits. The terminal stays in
// raw mode for the whole run so key presses arrive unbuffered.
func (t *TUIRenderer) Run(s *session.Session) error {
	raw, err := terminal.EnterRaw()
	if err != nil {
		return fmt.Errorf("cannot enter raw mode: %w", err)
	}
	defer raw.Restore()
	defer showCursor()

	hideCursor()
	go t.readKeys()

	var current *menu.Model
	lastStatus := session.Status(-1)
	last := time.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for now := range ticker.C {
		dt := now.Sub(last)
		last = now

		if s.Status() != lastStatus {
			current = menuFor(s)
			lastStatus = s.Status()
		}

		for {
			act, ok := t.poll()
			if !ok {
				break
			}
			quit := t.dispatch(s, current, act)
			if quit {
				return nil
			}
			// A command may have changed the session status; pick up
			// the matching menu before handling further input.
			if s.Status() != lastStatus {
				current = menuFor(s)
				lastStatus = s.Status()
			}
		}

		s.Update(dt)
		if s.Status() != lastStatus {
			current = menuFor(s)
			lastStatus = s.Status()
		}

		t.drawFrame(s, current)
	}
	return nil
}

// poll drains one pending action without blocking.
func (t *TUIRenderer) poll() (input.Action, bool) {
	select {
	case act := <-t.actions:
		return act, true
	default:
		return input.ActionNone, false
	}
}

// dispatch routes one action based on the session status. Returns true
// when the player asked to leave the program.
func (t *TUIRenderer) dispatch(s *session.Session, m *menu.Model, act input.Action) bool {
	switch s.Status() {
	case session.StatusPlaying:
		if act == input.ActionQuit {
			return true
		}
		s.Apply(session.CommandForAction(act))
		return false
	default:
		if m == nil {
			return act == input.ActionQuit
		}
		switch m.HandleAction(act) {
		case menu.ActionNewGame:
			s.Start()
		case menu.ActionResume:
			s.Apply(session.CommandPause)
		case menu.ActionRestart:
			s.Apply(session.CommandRestart)
		case menu.ActionToMenu:
			s.ToMenu()
		case menu.ActionQuit:
			return true
		}
		return false
	}
}

// menuFor returns the menu model matching the session status, or nil
// while playing.
func menuFor(s *session.Session) *menu.Model {
	switch s.Status() {
	case session.StatusMenu:
		return menu.MainMenu()
	case session.StatusPaused:
		return menu.PauseMenu()
	case session.StatusGameOver:
		return menu.GameOverMenu(s.State().Score)
	}
	return nil
}

// readKeys reads raw key presses, resolves escape sequences and feeds
// mapped actions to the frame loop. Terminal key autorepeat supplies
// held-key repeats here; the windowed backend uses the repeat timer.
func (t *TUIRenderer) readKeys() {
	for {
		code, err := readKeyCode()
		if err != nil {
			return
		}
		if code == "" {
			continue
		}
		raw := input.RawInput{
			Device:    input.DeviceTerminal,
			Code:      code,
			Timestamp: time.Now(),
		}
		intent := input.MapToIntent(input.NewDebouncedInput(raw))
		if intent.Action == input.ActionNone {
			continue
		}
		select {
		case t.actions <- intent.Action:
		default:
			// Frame loop is behind; drop rather than stall the reader.
		}
	}
}

// readKeyCode reads one key press and normalizes it to a binding code.
func readKeyCode() (string, error) {
	b1, err := terminal.ReadByte()
	if err != nil {
		return "", err
	}

	switch b1 {
	case 0x1b:
		return tryReadArrowKey()
	case 3: // Ctrl+C
		return "q", nil
	case '\r', '\n':
		return "enter", nil
	case ' ':
		return "space", nil
	}

	if b1 >= 'A' && b1 <= 'Z' {
		b1 += 'a' - 'A'
	}
	if b1 >= 'a' && b1 <= 'z' {
		return string(b1), nil
	}
	return "", nil
}

// tryReadArrowKey resolves the remainder of an escape sequence. Handles
// both CSI sequences (ESC [) and SS3 sequences (ESC O); anything else
// is reported as a bare escape.
func tryReadArrowKey() (string, error) {
	b2, err := terminal.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := terminal.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// drawFrame repaints the whole screen. The terminal size is re-read every
// frame so a resize takes effect on the next repaint.
func (t *TUIRenderer) drawFrame(s *session.Session, m *menu.Model) {
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")

	if s.Status() == session.StatusPlaying || s.Status() == session.StatusPaused {
		hud := renderer.HUDLines(s.State())
		width, height := terminal.GetSize()
		needW, needH := requiredSize(s.Grid(), hud)
		if width < needW || height < needH {
			b.WriteString("  " + t.colorSubtle.Sprint(
				gotext.Get("Terminal too small: need %dx%d, have %dx%d", needW, needH, width, height)) + "\r\n")
		} else {
			t.drawTube(&b, s, hud)
		}
	}
	if m != nil {
		t.drawMenu(&b, m)
	}

	fmt.Print(b.String())
}

// requiredSize returns the smallest terminal that fits the framed tube,
// the HUD column beside it and the control hints underneath.
func requiredSize(g *tube.Grid, hud []string) (width, height int) {
	hudWidth := 0
	for _, line := range hud {
		if len(line) > hudWidth {
			hudWidth = len(line)
		}
	}
	// Indent, left border, two runes per segment, right border, the gap
	// before the HUD column, the widest HUD line.
	width = 2 + 1 + 2*g.Segments() + 1 + 3 + hudWidth
	// Title, two frame rows, the control hints.
	height = g.Rows() + 4
	return width, height
}

// drawTube renders the unrolled tube with the active piece overlaid,
// the HUD beside it.
func (t *TUIRenderer) drawTube(b *strings.Builder, s *session.Session, hud []string) {
	g := s.Grid()

	active := map[tube.Position]color.RGBColor{}
	if p := s.Active(); p != nil {
		c := p.Color()
		rgb := color.RGB(c.R, c.G, c.B)
		for _, pos := range p.Blocks() {
			key := tube.P(tube.Normalize(pos.Segment, g.Segments()), pos.Row)
			active[key] = rgb
		}
	}

	title := t.colorTitle.Sprint(gotext.Get("Ringfall"))
	b.WriteString("  " + title + "\r\n")
	b.WriteString("  " + t.colorFrame.Sprint("+"+strings.Repeat("--", g.Segments())+"+") + "\r\n")

	for row := g.Rows() - 1; row >= 0; row-- {
		b.WriteString("  " + t.colorFrame.Sprint("|"))
		for seg := 0; seg < g.Segments(); seg++ {
			if rgb, ok := active[tube.P(seg, row)]; ok {
				b.WriteString(rgb.Sprint(cellActive))
				continue
			}
			cell := g.Cell(seg, row)
			if cell.Occupied {
				rgb := color.RGB(cell.Color.R, cell.Color.G, cell.Color.B)
				b.WriteString(rgb.Sprint(cellOccupied))
			} else {
				b.WriteString(t.colorSubtle.Sprint(cellEmpty))
			}
		}
		b.WriteString(t.colorFrame.Sprint("|"))

		hudIdx := g.Rows() - 1 - row
		if hudIdx < len(hud) {
			b.WriteString("   " + t.colorHUD.Sprint(hud[hudIdx]))
		}
		b.WriteString("\r\n")
	}

	b.WriteString("  " + t.colorFrame.Sprint("+"+strings.Repeat("--", g.Segments())+"+") + "\r\n")
	b.WriteString("  " + t.colorSubtle.Sprint(gotext.Get("arrows steer, up rotates, space drops, p pauses, q quits")) + "\r\n")
}

// drawMenu renders a menu: title, items with the selection marked, and
// the highlighted item's help text underneath.
func (t *TUIRenderer) drawMenu(b *strings.Builder, m *menu.Model) {
	b.WriteString("\r\n  " + t.colorTitle.Sprint(m.Title()) + "\r\n\r\n")

	for i, item := range m.Items() {
		prefix := "    "
		label := item.Label
		if !item.Selectable {
			b.WriteString(prefix + t.colorSubtle.Sprint(label) + "\r\n")
			continue
		}
		if i == m.Selected() {
			b.WriteString("  " + t.colorSelected.Sprint("> "+label) + "\r\n")
		} else {
			b.WriteString(prefix + label + "\r\n")
		}
	}

	selected := m.Items()[m.Selected()]
	if selected.Help != "" {
		b.WriteString("\r\n  " + t.colorSubtle.Sprint(selected.Help) + "\r\n")
	}
	b.WriteString("\r\n  " + t.colorSubtle.Sprint(gotext.Get("up/down to select, enter to activate, q to quit")) + "\r\n")
}

func hideCursor() { fmt.Print("\x1b[?25l") }
func showCursor() { fmt.Print("\x1b[?25h") }

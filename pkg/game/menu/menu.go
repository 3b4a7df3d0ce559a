// Package menu provides the selection model behind the game's menus.
// The model is renderer-agnostic: both front-ends feed it navigation
// actions and draw whatever it currently holds.
package menu

import (
	"github.com/leonelquinteros/gotext"

	"ringfall/pkg/engine/input"
)

// Action is what activating a menu item asks the caller to do.
type Action int

const (
	ActionNone Action = iota
	ActionNewGame
	ActionResume
	ActionRestart
	ActionToMenu
	ActionQuit
)

// Item is a single entry in a menu. Non-selectable items render as
// static text and are skipped during navigation.
type Item struct {
	Label      string
	Help       string
	Action     Action
	Selectable bool
}

// Model holds a menu's items and the current selection.
type Model struct {
	title    string
	items    []Item
	selected int
}

// New builds a menu with the selection on the first selectable item.
func New(title string, items []Item) *Model {
	m := &Model{title: title, items: items}
	for i, item := range items {
		if item.Selectable {
			m.selected = i
			break
		}
	}
	return m
}

// Title returns the menu heading.
func (m *Model) Title() string {
	return m.title
}

// Items returns the menu entries in display order.
func (m *Model) Items() []Item {
	return m.items
}

// Selected returns the index of the highlighted item.
func (m *Model) Selected() int {
	return m.selected
}

// MoveUp moves the selection to the previous selectable item, wrapping
// to the bottom when the selection is already on the first one.
func (m *Model) MoveUp() {
	for i := m.selected - 1; i >= 0; i-- {
		if m.items[i].Selectable {
			m.selected = i
			return
		}
	}
	for i := len(m.items) - 1; i > m.selected; i-- {
		if m.items[i].Selectable {
			m.selected = i
			return
		}
	}
}

// MoveDown moves the selection to the next selectable item, wrapping to
// the top when the selection is already on the last one.
func (m *Model) MoveDown() {
	for i := m.selected + 1; i < len(m.items); i++ {
		if m.items[i].Selectable {
			m.selected = i
			return
		}
	}
	for i := 0; i < m.selected; i++ {
		if m.items[i].Selectable {
			m.selected = i
			return
		}
	}
}

// Activate returns the highlighted item's action.
func (m *Model) Activate() Action {
	if m.selected < 0 || m.selected >= len(m.items) {
		return ActionNone
	}
	item := m.items[m.selected]
	if !item.Selectable {
		return ActionNone
	}
	return item.Action
}

// HandleAction feeds one input action through the menu. Navigation
// moves the selection and returns ActionNone; confirm activates the
// highlighted item; quit always maps to ActionQuit.
func (m *Model) HandleAction(a input.Action) Action {
	switch a {
	case input.ActionMenuUp, input.ActionRotatePiece:
		m.MoveUp()
	case input.ActionMenuDown, input.ActionSoftDrop:
		m.MoveDown()
	case input.ActionConfirm:
		return m.Activate()
	case input.ActionQuit:
		return ActionQuit
	}
	return ActionNone
}

// MainMenu is the menu shown before any game has started.
func MainMenu() *Model {
	return New(gotext.Get("Ringfall"), []Item{
		{Label: gotext.Get("New Game"), Help: gotext.Get("Start a fresh tube"), Action: ActionNewGame, Selectable: true},
		{Label: gotext.Get("Quit"), Help: gotext.Get("Exit the game"), Action: ActionQuit, Selectable: true},
	})
}

// PauseMenu is shown over a paused game.
func PauseMenu() *Model {
	return New(gotext.Get("Paused"), []Item{
		{Label: gotext.Get("Resume"), Help: gotext.Get("Back to the game"), Action: ActionResume, Selectable: true},
		{Label: gotext.Get("Restart"), Help: gotext.Get("Throw this tube away and start over"), Action: ActionRestart, Selectable: true},
		{Label: gotext.Get("Quit"), Help: gotext.Get("Exit the game"), Action: ActionQuit, Selectable: true},
	})
}

// GameOverMenu is shown when the tube tops out.
func GameOverMenu(score int) *Model {
	return New(gotext.Get("Game Over"), []Item{
		{Label: gotext.Get("Final score: %d", score), Selectable: false},
		{Label: gotext.Get("Play Again"), Help: gotext.Get("Start a fresh tube"), Action: ActionRestart, Selectable: true},
		{Label: gotext.Get("Main Menu"), Action: ActionToMenu, Selectable: true},
		{Label: gotext.Get("Quit"), Action: ActionQuit, Selectable: true},
	})
}

// Package input provides the layered input model: raw device events are
// debounced, mapped through bindings to high-level intents, and held
// directional input is filtered through a repeat timer before it reaches
// the game.
package input

import (
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Gameplay
	ActionRotateTubeLeft
	ActionRotateTubeRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotatePiece

	// Session control
	ActionPause
	ActionRestart

	// Menu / UI
	ActionMenuUp
	ActionMenuDown
	ActionConfirm
	ActionQuit
)

// Intent is the high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "a", "arrow_left", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after deduplication. The repeat-rate
// policy for held directional input lives one layer up in RepeatTimer; the
// distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Tube rotation (arrows, WASD, Vim)
	"arrow_left":  ActionRotateTubeLeft,
	"a":           ActionRotateTubeLeft,
	"h":           ActionRotateTubeLeft,
	"arrow_right": ActionRotateTubeRight,
	"d":           ActionRotateTubeRight,
	"l":           ActionRotateTubeRight,

	// Drops
	"arrow_down": ActionSoftDrop,
	"s":          ActionSoftDrop,
	"j":          ActionSoftDrop,
	"space":      ActionHardDrop,

	// Piece rotation
	"arrow_up": ActionRotatePiece,
	"w":        ActionRotatePiece,
	"k":        ActionRotatePiece,
	"x":        ActionRotatePiece,

	// Session control
	"p":      ActionPause,
	"escape": ActionPause,
	"r":      ActionRestart,

	// Menus
	"enter": ActionConfirm,
	"q":     ActionQuit,
}

// MapToIntent applies the current bindings to a debounced input and returns
// a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IsDirectional reports whether an action is repeat-filtered while its key
// is held. Hard drop and piece rotation fire once per press.
func IsDirectional(a Action) bool {
	switch a {
	case ActionRotateTubeLeft, ActionRotateTubeRight, ActionSoftDrop:
		return true
	}
	return false
}

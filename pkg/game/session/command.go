package session

import "ringfall/pkg/engine/input"

// Status is the session's state machine position.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "MENU"
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// Command is one discrete event on the session's command surface.
// Directional commands are expected to arrive already repeat-filtered.
type Command int

const (
	CommandNone Command = iota
	CommandRotateTubeLeft
	CommandRotateTubeRight
	CommandSoftDrop
	CommandHardDrop
	CommandRotatePiece
	CommandPause
	CommandRestart
)

// CommandForAction translates a high-level input intent into a session
// command. Menu navigation actions have no session command; the front-end
// menus consume those.
func CommandForAction(a input.Action) Command {
	switch a {
	case input.ActionRotateTubeLeft:
		return CommandRotateTubeLeft
	case input.ActionRotateTubeRight:
		return CommandRotateTubeRight
	case input.ActionSoftDrop:
		return CommandSoftDrop
	case input.ActionHardDrop:
		return CommandHardDrop
	case input.ActionRotatePiece:
		return CommandRotatePiece
	case input.ActionPause:
		return CommandPause
	case input.ActionRestart:
		return CommandRestart
	}
	return CommandNone
}

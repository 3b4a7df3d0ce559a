// Package terminal wraps the low-level terminal state the TUI front-end
// depends on: size queries and raw-mode lifecycle.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
// Falls back to DefaultHeight if the height cannot be determined.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// RawMode holds the pre-raw terminal state so it can be restored on exit.
type RawMode struct {
	oldState *term.State
}

// EnterRaw switches stdin to raw mode for unbuffered key reads.
func EnterRaw() (*RawMode, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	return &RawMode{oldState: oldState}, nil
}

// Restore returns the terminal to its previous state. Safe to call more
// than once.
func (r *RawMode) Restore() {
	if r.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), r.oldState)
		r.oldState = nil
	}
}

// ReadByte reads a single byte from stdin. Callers use it in raw mode.
func ReadByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

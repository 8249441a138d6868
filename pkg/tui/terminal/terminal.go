// ABOUTME: Defines the Terminal interface for raw mode, size queries, input, and output.
// ABOUTME: Abstracts terminal operations so hosts can target real or virtual terminals.

package terminal

import (
	"errors"
	"io"
)

// ErrNotTerminal is returned when raw mode is requested on a non-TTY.
var ErrNotTerminal = errors.New("terminal: not a terminal")

// Control sequences shared by the ANSI host.
const (
	EnterAltScreen = "\x1b[?1049h"
	ExitAltScreen  = "\x1b[?1049l"
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	ClearScreen    = "\x1b[2J\x1b[H"
	ResetStyle     = "\x1b[0m"
	SyncBegin      = "\x1b[?2026h"
	SyncEnd        = "\x1b[?2026l"
)

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, byte input and output, and resize notifications.
type Terminal interface {
	io.ReadWriter
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	OnResize(fn func(width, height int))
}

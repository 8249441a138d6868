// ABOUTME: Key type delivered to window input handlers, plus ParseKey for raw terminal bytes
// ABOUTME: Handles printable runes, Ctrl+letter, Alt+rune, and legacy CSI/SS3 escape sequences

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // Printable character for KeyRune; lowercase letter for KeyCtrl
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events a window can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyCtrl                     // Ctrl+letter; Rune holds the letter
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyInsert                   // Insert key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyUnknown                  // Unrecognized input
)

// Rune returns a printable-character key.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Ctrl returns a Ctrl+letter key. Uppercase letters are folded.
func Ctrl(letter rune) Key {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return Key{Type: KeyCtrl, Rune: letter, Ctrl: true}
}

// Named returns a key of a non-rune type.
func Named(t KeyType) Key {
	k := Key{Type: t}
	if t == KeyBackTab {
		k.Shift = true
	}
	return k
}

// Is reports whether k and o denote the same key. Alt and Ctrl must match;
// Shift is ignored for runes since it is already folded into the rune.
func (k Key) Is(o Key) bool {
	if k.Type != o.Type || k.Alt != o.Alt || k.Ctrl != o.Ctrl {
		return false
	}
	switch k.Type {
	case KeyRune, KeyCtrl:
		return k.Rune == o.Rune
	}
	return true
}

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single-byte fast path
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	// Escape sequence path
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	// Multi-byte UTF-8 rune
	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Rune(r)
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d, b == 0x0a:
		return Named(KeyEnter)
	case b == 0x09:
		return Named(KeyTab)
	case b == 0x7f, b == 0x08:
		return Named(KeyBackspace)
	case b == 0x1b:
		return Named(KeyEscape)
	case b >= 0x20 && b <= 0x7e:
		return Rune(rune(b))
	case b >= 0x01 && b <= 0x1a:
		return Ctrl(rune('a' + b - 1))
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence resolves ESC-prefixed data via the legacy table.
func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Alt+rune: ESC followed by exactly one printable rune
	r, size := utf8.DecodeRuneInString(data[1:])
	if r != utf8.RuneError && 1+size == len(data) && r >= 0x20 && r != 0x7f {
		return Key{Type: KeyRune, Rune: r, Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return formatRuneKey(k)
	case KeyCtrl:
		return fmt.Sprintf("Ctrl+%c", k.Rune-('a'-'A'))
	}
	name, ok := keyTypeNames[k.Type]
	if !ok {
		return "Unknown"
	}
	if k.Alt {
		return "Alt+" + name
	}
	return name
}

// formatRuneKey builds a display string for printable rune keys with modifiers.
func formatRuneKey(k Key) string {
	s := string(k.Rune)
	if k.Rune == ' ' {
		s = "Space"
	}
	if k.Alt {
		s = fmt.Sprintf("Alt+%s", s)
	}
	return s
}

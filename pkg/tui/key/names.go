// ABOUTME: Parses human key names ("escape", "q", "ctrl+c", "alt+x") used in config files
// ABOUTME: Name is the inverse of ParseName for round-tripping settings

package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var namedTypes = map[string]KeyType{
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"shift+tab": KeyBackTab,
	"backtab":   KeyBackTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"insert":    KeyInsert,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pgup":      KeyPageUp,
	"pageup":    KeyPageUp,
	"pgdown":    KeyPageDown,
	"pagedown":  KeyPageDown,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
}

// ParseName converts a key name into a Key. Names are case-insensitive
// except for single printable runes, which are taken literally.
func ParseName(name string) (Key, error) {
	if name == "" {
		return Key{}, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r < 0x20 || r == 0x7f {
			return Key{}, fmt.Errorf("unknown key name %q", name)
		}
		return Rune(r), nil
	}

	lower := strings.ToLower(name)
	if lower == "space" {
		return Rune(' '), nil
	}
	if t, ok := namedTypes[lower]; ok {
		return Named(t), nil
	}

	if rest, ok := strings.CutPrefix(lower, "ctrl+"); ok {
		if len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
			return Ctrl(rune(rest[0])), nil
		}
		return Key{}, fmt.Errorf("unknown key name %q", name)
	}

	if _, ok := strings.CutPrefix(lower, "alt+"); ok {
		k, err := ParseName(name[len("alt+"):])
		if err != nil || k.Ctrl {
			return Key{}, fmt.Errorf("unknown key name %q", name)
		}
		k.Alt = true
		return k, nil
	}

	return Key{}, fmt.Errorf("unknown key name %q", name)
}

// Name returns the config-file name of k, accepted by ParseName.
func Name(k Key) string {
	var base string
	switch k.Type {
	case KeyRune:
		base = string(k.Rune)
		if k.Rune == ' ' {
			base = "space"
		}
	case KeyCtrl:
		return "ctrl+" + string(k.Rune)
	case KeyBackTab:
		base = "shift+tab"
	case KeyPageUp:
		base = "pgup"
	case KeyPageDown:
		base = "pgdown"
	default:
		base = strings.ToLower(keyTypeNames[k.Type])
	}
	if k.Alt {
		return "alt+" + base
	}
	return base
}

// ABOUTME: Keybindings manager with O(1) key-to-action lookup for window navigation
// ABOUTME: Merges config overrides over the defaults, detects conflicts, swaps atomically on reload

package keybindings

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/mauromedda/termwindows/pkg/tui/key"
)

// Action names a navigation command understood by the built-in windows.
type Action string

const (
	ActionUp       Action = "up"
	ActionDown     Action = "down"
	ActionPageUp   Action = "page_up"
	ActionPageDown Action = "page_down"
	ActionHome     Action = "home"
	ActionEnd      Action = "end"
	ActionSelect   Action = "select"
	ActionCopy     Action = "copy"
)

// Actions lists every action in display order.
var Actions = []Action{
	ActionUp, ActionDown, ActionPageUp, ActionPageDown,
	ActionHome, ActionEnd, ActionSelect, ActionCopy,
}

// Defaults returns the built-in bindings.
func Defaults() map[Action][]string {
	return map[Action][]string{
		ActionUp:       {"up"},
		ActionDown:     {"down"},
		ActionPageUp:   {"pgup"},
		ActionPageDown: {"pgdown"},
		ActionHome:     {"home"},
		ActionEnd:      {"end"},
		ActionSelect:   {"enter"},
		ActionCopy:     {"ctrl+y"},
	}
}

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []Action
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings map[Action][]string
	lookup   map[string]Action // "pgdown" -> ActionPageDown
}

// New builds a Manager from the defaults with overrides applied. An
// override replaces every key of its action. Unknown actions, unparsable
// key names and keys bound to two actions are errors.
func New(overrides map[string][]string) (*Manager, error) {
	bindings := Defaults()
	for name, keys := range overrides {
		a := Action(name)
		if !slices.Contains(Actions, a) {
			return nil, fmt.Errorf("unknown key action %q", name)
		}
		bindings[a] = keys
	}

	m := &Manager{bindings: make(map[Action][]string, len(bindings))}
	for a, keys := range bindings {
		norm := make([]string, 0, len(keys))
		for _, s := range keys {
			k, err := key.ParseName(s)
			if err != nil {
				return nil, fmt.Errorf("action %s: %w", a, err)
			}
			norm = append(norm, key.Name(k))
		}
		m.bindings[a] = norm
	}
	if c := m.Conflicts(); len(c) > 0 {
		return nil, fmt.Errorf("key %q bound to %v", c[0].Key, c[0].Actions)
	}
	m.buildLookup()
	return m, nil
}

// ActionForKey returns the action bound to k, or "" if unbound.
func (m *Manager) ActionForKey(k key.Key) Action {
	return m.lookup[key.Name(k)]
}

// Keys returns the key names bound to a.
func (m *Manager) Keys(a Action) []string {
	return slices.Clone(m.bindings[a])
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]Action)
	for _, action := range Actions {
		for _, k := range m.bindings[action] {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for _, k := range slices.Sorted(maps.Keys(keyActions)) {
		if actions := keyActions[k]; len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// FormatAll returns a table of all bindings for help windows.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	for _, action := range Actions {
		keys := m.bindings[action]
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-16s %s\n", strings.Join(keys, ", "), action)
	}
	return b.String()
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings)*2)
	for action, keys := range m.bindings {
		for _, k := range keys {
			m.lookup[k] = action
		}
	}
}

var current atomic.Pointer[Manager]

func init() {
	m, _ := New(nil)
	current.Store(m)
}

// Current returns the active bindings. Never returns nil.
func Current() *Manager { return current.Load() }

// Set atomically replaces the active bindings. A nil manager is ignored.
func Set(m *Manager) {
	if m == nil {
		return
	}
	current.Store(m)
}

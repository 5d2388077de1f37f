package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the prompt's key bindings.
type KeyMap struct {
	Submit Key
	Cancel Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: Key{
			Keys:    []string{"enter"},
			Help:    "submit",
			Enabled: true,
		},
		Cancel: Key{
			Keys:    []string{"esc", "ctrl+c"},
			Help:    "cancel",
			Enabled: true,
		},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// HelpLine renders the bindings as "enter submit • esc/ctrl+c cancel".
func (km KeyMap) HelpLine() string {
	var parts []string
	for _, k := range []Key{km.Submit, km.Cancel} {
		if k.Enabled {
			parts = append(parts, strings.Join(k.Keys, "/")+" "+k.Help)
		}
	}
	return strings.Join(parts, " • ")
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the game key bindings. It implements help.KeyMap so the
// bottom help line always shows the configured keys.
type KeyMap struct {
	Rotate key.Binding
	Left   key.Binding
	Right  key.Binding
	Drop   key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the compact help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Quit}
}

// FullHelp returns all bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Rotate, k.Drop},
		{k.Quit},
	}
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(b config.KeyBindings) KeyMap {
	return KeyMap{
		Rotate: newBinding(b.Rotate, "rotate"),
		Left:   newBinding(b.Left, "left"),
		Right:  newBinding(b.Right, "right"),
		Drop:   newBinding(b.Drop, "drop"),
		Quit:   newBinding(b.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings from the embedded configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultTetrisConfig().Keys)
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys formats key names for the help line ("up/w", "down/s/space").
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Drop):
		return core.ActionDrop, false
	}
	return core.ActionNone, false
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wheeljam/internal/core"
)

// KeyMap holds the puzzle's key bindings. It implements help.KeyMap for the footer.
type KeyMap struct {
	Move       key.Binding // Help-only summary of the four directions
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Rotate     key.Binding
	NewPuzzle  key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns WASD/arrow movement, space or enter to confirm, and R to spin.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("w", "a", "s", "d", "up", "down", "left", "right"),
			key.WithHelp("wasd/arrows", "move"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "pick"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "spin"),
		),
		NewPuzzle: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new puzzle"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Confirm, k.Rotate, k.NewPuzzle, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Rotate, k.NewPuzzle},
		{k.Screenshot, k.Quit},
	}
}

// Action translates a key message to a puzzle action.
// Quit and Screenshot are handled by the model and map to ActionNone here.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.NewPuzzle):
		return core.ActionRestart
	}
	return core.ActionNone
}

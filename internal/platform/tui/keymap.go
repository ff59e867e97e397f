package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amirjavarsineh/WARMUP/internal/core"
)

// GameKeyMap defines the key bindings for the game and its menus.
// A single key may carry more than one signal ("1" starts a game on
// the menu and toggles the theme in settings); the game keeps the
// signal that is meaningful in its current mode and drops the rest.
type GameKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Start    key.Binding
	Settings key.Binding
	Toggle   key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Quit     key.Binding

	Screenshot key.Binding
	HardQuit   key.Binding
}

// ShortHelp returns key bindings for the one-line help footer.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Back, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Settings, k.Toggle},
		{k.Confirm, k.Back, k.Quit, k.Screenshot},
	}
}

// DefaultGameKeyMap returns the default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Start: key.NewBinding(
			key.WithKeys("1", "enter"),
			key.WithHelp("1", "play"),
		),
		Settings: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "settings"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("1", "t"),
			key.WithHelp("1/t", "theme"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("3", "q"),
			key.WithHelp("3/q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		HardQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// Apply stamps every signal carried by a key press into the frame.
// Reports whether the key was the hard-quit chord, which bypasses the
// game entirely.
func (k GameKeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.HardQuit) {
		return true
	}

	if key.Matches(msg, k.Left) {
		frame.Set(core.ActionLeft)
	}
	if key.Matches(msg, k.Right) {
		frame.Set(core.ActionRight)
	}
	if key.Matches(msg, k.Start) {
		frame.Set(core.ActionStart)
	}
	if key.Matches(msg, k.Settings) {
		frame.Set(core.ActionSettings)
	}
	if key.Matches(msg, k.Toggle) {
		frame.Set(core.ActionToggle)
	}
	if key.Matches(msg, k.Confirm) {
		frame.Set(core.ActionConfirm)
	}
	if key.Matches(msg, k.Back) {
		frame.Set(core.ActionBack)
	}
	if key.Matches(msg, k.Quit) {
		frame.Set(core.ActionQuit)
	}
	return false
}

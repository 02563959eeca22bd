package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

// KeyMap defines the key bindings of the play screen. Quit, Pause and
// Screenshot are handled by the model; every other key reaches the game.
type KeyMap struct {
	Select     key.Binding
	Place      key.Binding
	Move       key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Move, k.Place, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Move, k.Place},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "unit"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/click", "place"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows/mouse", "aim"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
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

// KeyEvent translates a key message into a game event.
func KeyEvent(msg tea.KeyMsg) behavior.Event {
	return behavior.KeyDown{Key: msg.String()}
}

// MouseEvent translates a mouse message into a pointer event in screen
// cells. Only the left button and plain motion are reported.
func MouseEvent(msg tea.MouseMsg) (behavior.Event, bool) {
	pos := vec.New(float64(msg.X), float64(msg.Y))

	switch msg.Action {
	case tea.MouseActionMotion:
		return behavior.PointerMove{Pos: pos}, true
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		return behavior.PointerDown{Pos: pos}, true
	case tea.MouseActionRelease:
		return behavior.PointerUp{Pos: pos}, true
	}
	return nil, false
}

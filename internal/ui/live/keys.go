package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the live UI key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Redo   key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "arriba"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "abajo"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "responder"),
		),
		Redo: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rehacer pregunta"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reiniciar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "salir"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.Redo, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// forView enables only the bindings that apply to the displayed state.
func (k keyMap) forView(done, guidanceAvailable bool) keyMap {
	k.Up.SetEnabled(!done)
	k.Down.SetEnabled(!done)
	k.Submit.SetEnabled(!done)
	k.Redo.SetEnabled(!done && guidanceAvailable)
	return k
}

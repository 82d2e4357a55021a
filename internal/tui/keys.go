package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the terminal reacts to outside the editor.
type keyMap struct {
	Exec        key.Binding
	Complete    key.Binding
	HistoryUp   key.Binding
	HistoryDown key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	NewTab      key.Binding
	CloseTab    key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Help        key.Binding
	Quit        key.Binding

	// Editor overlay
	Save   key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Exec: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		HistoryUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "older"),
		),
		HistoryDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "newer"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "alt+right"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "alt+left"),
			key.WithHelp("ctrl+←", "prev tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// shortHelp is the footer line for the prompt.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.HistoryUp, k.NewTab, k.CloseTab, k.NextTab, k.Help, k.Quit}
}

// editorHelp is the footer line while editing.
func (k keyMap) editorHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel}
}

package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"termsim/internal/help"
	"termsim/internal/model"
	"termsim/internal/shell"
)

// AppModel holds the TUI state. Terminal state lives in the controller; the
// model only keeps widgets and view flags.
type AppModel struct {
	ctrl     *shell.Controller
	Hostname string

	// UI State
	WindowSize tea.WindowSizeMsg
	ShowHelp   bool
	editing    bool // editor overlay was open at the last refresh
	theme      string
	styles     styles
	keys       keyMap

	// Components
	Input        textinput.Model
	Editor       textarea.Model
	Scrollback   viewport.Model
	HelpViewport viewport.Model

	HelpContent string // help markdown, rendered on demand
}

// InitialModel returns the initial state.
func InitialModel(ctrl *shell.Controller, hostname string) AppModel {
	ti := textinput.New()
	ti.Prompt = model.IconPrompt + " "
	ti.CharLimit = 1024
	ti.Focus()

	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0

	m := AppModel{
		ctrl:         ctrl,
		Hostname:     hostname,
		keys:         defaultKeyMap(),
		Input:        ti,
		Editor:       ta,
		Scrollback:   viewport.New(80, 20),
		HelpViewport: viewport.New(80, 20),
		HelpContent:  help.Markdown(),
	}
	m.refresh()
	return m
}

// Controller returns the state owner driving this model.
func (m AppModel) Controller() *shell.Controller {
	return m.ctrl
}

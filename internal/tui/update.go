package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"termsim/internal/logging"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.ShowHelp {
			return m.updateHelp(msg)
		}
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updatePrompt(msg)
	}

	// Cursor blink and friends go to whichever widget has focus
	if m.editing {
		m.Editor, cmd = m.Editor.Update(msg)
	} else {
		m.Input, cmd = m.Input.Update(msg)
	}
	return m, cmd
}

func (m AppModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Any key but tab ends a completion cycle
	if !key.Matches(msg, m.keys.Complete) {
		m.ctrl.ResetCompletion()
	}

	switch {
	case key.Matches(msg, m.keys.Complete):
		if next, ok := m.ctrl.NextCompletion(m.Input.Value()); ok {
			m.Input.SetValue(next)
			m.Input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Exec):
		input := m.Input.Value()
		m.Input.Reset()
		m.ctrl.Exec(input)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.HistoryUp):
		if input, ok := m.ctrl.HistoryUp(); ok {
			m.Input.SetValue(input)
			m.Input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.HistoryDown):
		if input, ok := m.ctrl.HistoryDown(); ok {
			m.Input.SetValue(input)
			m.Input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		m.Scrollback, cmd = m.Scrollback.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.NewTab):
		m.ctrl.NewTab()
		m.Input.Reset()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CloseTab):
		m.ctrl.CloseTab(m.ctrl.State().ActiveID)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.ctrl.CycleTab(1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.ctrl.CycleTab(-1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.ShowHelp = true
		m.renderHelp()
		return m, nil
	}

	// Editing the line leaves history navigation
	m.ctrl.ResetHistoryCursor()
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m AppModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Save):
		m.ctrl.SaveEditor(m.Editor.Value())
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelEditor()
		m.refresh()
		return m, nil
	}

	m.Editor, cmd = m.Editor.Update(msg)
	return m, cmd
}

func (m AppModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key.Matches(msg, m.keys.Help, m.keys.Cancel) || msg.String() == "q" {
		m.ShowHelp = false
		return m, nil
	}
	m.HelpViewport, cmd = m.HelpViewport.Update(msg)
	return m, cmd
}

// refresh pulls the controller state into the widgets.
func (m *AppModel) refresh() {
	st := m.ctrl.State()

	if st.Theme != m.theme {
		m.theme = st.Theme
		m.styles = newStyles(st.CurrentTheme())
		m.Input.PromptStyle = m.styles.prompt
		m.Input.TextStyle = m.styles.standard
	}

	m.Scrollback.SetContent(m.renderScrollback(st.Active().Scrollback))
	m.Scrollback.GotoBottom()

	switch {
	case st.Editor.Open && !m.editing:
		m.editing = true
		m.Editor.Reset()
		m.Editor.SetValue(st.Editor.Content)
		m.Editor.Focus()
		m.Input.Blur()
	case !st.Editor.Open && m.editing:
		m.editing = false
		m.Editor.Blur()
		m.Editor.Reset()
		m.Input.Focus()
	}
}

func (m *AppModel) resize() {
	w, h := m.WindowSize.Width, m.WindowSize.Height

	// Tab bar, header, prompt and footer take a line each
	m.Scrollback.Width = w
	m.Scrollback.Height = max(h-4, 1)
	m.Input.Width = max(w-4, 10)

	m.Editor.SetWidth(max(w-6, 20))
	m.Editor.SetHeight(max(h-9, 3))

	m.HelpViewport.Width = max(w*80/100, 40)
	m.HelpViewport.Height = max(h-8, 5)
	if m.ShowHelp {
		m.renderHelp()
	}

	m.Scrollback.GotoBottom()
}

// renderHelp renders the help markdown to fit the overlay.
func (m *AppModel) renderHelp() {
	style := "dark"
	if m.theme == "light" {
		style = "light"
	}

	content := m.HelpContent
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(m.HelpViewport.Width-4, 20)),
	)
	if err == nil {
		if out, rerr := r.Render(m.HelpContent); rerr == nil {
			content = strings.TrimRight(out, "\n")
		} else {
			err = rerr
		}
	}
	if err != nil {
		logging.L().Warn("help render failed", zap.Error(err))
	}

	m.HelpViewport.SetContent(content)
	m.HelpViewport.GotoTop()
}

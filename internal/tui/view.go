package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termsim/internal/model"
	"termsim/internal/shell"
	"termsim/internal/vfs"
)

func (m AppModel) View() string {
	st := m.ctrl.State()

	var b strings.Builder
	b.WriteString(m.renderTabs(st))
	b.WriteString("\n")
	b.WriteString(m.renderHeader(st))
	b.WriteString("\n")

	switch {
	case m.ShowHelp:
		b.WriteString(m.renderHelpDialog())
	case m.editing:
		b.WriteString(m.renderEditor(st))
		b.WriteString("\n")
		b.WriteString(m.renderFooter(m.keys.editorHelp()))
	default:
		b.WriteString(m.styles.base.Width(m.Scrollback.Width).Render(m.Scrollback.View()))
		b.WriteString("\n")
		b.WriteString(m.Input.View())
		b.WriteString("\n")
		b.WriteString(m.renderFooter(m.keys.shortHelp()))
	}

	return b.String()
}

func (m AppModel) renderTabs(st shell.State) string {
	tabs := make([]string, 0, len(st.Sessions)+1)
	for _, s := range st.Sessions {
		if s.ID == st.ActiveID {
			tabs = append(tabs, m.styles.activeTab.Render(model.IconTabActive+" "+s.Title))
			continue
		}
		label := s.Title
		if len(st.Sessions) > 1 {
			label += " " + model.IconTabClose
		}
		tabs = append(tabs, m.styles.tab.Render(label))
	}
	tabs = append(tabs, m.styles.tab.Render(model.IconNewTab))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) renderHeader(st shell.State) string {
	title := m.styles.header.Render(st.CurrentDirectory() + " - " + st.CurrentTheme().Name + " Theme")
	host := m.styles.hostname.Render(shell.UserName + "@" + m.Hostname)

	gap := ""
	if w := m.WindowSize.Width - lipgloss.Width(title) - lipgloss.Width(host); w > 0 {
		gap = strings.Repeat(" ", w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, gap, host)
}

// renderScrollback styles each output line by kind.
func (m AppModel) renderScrollback(lines []model.OutputLine) string {
	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		rendered = append(rendered, m.styles.line(l.Kind).Render(l.Content))
	}
	return strings.Join(rendered, "\n")
}

func (m AppModel) renderEditor(st shell.State) string {
	_, name := vfs.Split(st.Editor.Path)
	title := m.styles.editorTitle.Render(model.IconEditing + " Editing: " + name)
	return m.styles.editorFrame.Render(title + "\n\n" + m.Editor.View())
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	dialog := m.styles.helpFrame.Render(m.HelpViewport.View())
	if w < 20 || h < 10 {
		return dialog
	}
	return lipgloss.Place(w, h-2,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m AppModel) renderFooter(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, m.styles.footerKey.Render(h.Key)+" "+m.styles.footerDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

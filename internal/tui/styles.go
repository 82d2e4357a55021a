package tui

import (
	"github.com/charmbracelet/lipgloss"

	"termsim/internal/model"
)

// styles is the lipgloss rendition of a theme palette.
type styles struct {
	base        lipgloss.Style
	header      lipgloss.Style
	hostname    lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	prompt      lipgloss.Style
	standard    lipgloss.Style
	errorLine   lipgloss.Style
	success     lipgloss.Style
	info        lipgloss.Style
	editorFrame lipgloss.Style
	editorTitle lipgloss.Style
	helpFrame   lipgloss.Style
	footerKey   lipgloss.Style
	footerDesc  lipgloss.Style
}

func newStyles(t model.Theme) styles {
	bg := lipgloss.Color(t.Background)
	fg := lipgloss.Color(t.Foreground)
	accent := lipgloss.Color(t.Accent)
	selection := lipgloss.Color(t.Selection)

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return styles{
		base: base,
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			Background(selection).
			Padding(0, 1),
		hostname: lipgloss.NewStyle().
			Foreground(accent).
			Background(selection).
			Padding(0, 1),
		tab: lipgloss.NewStyle().
			Foreground(fg).
			Padding(0, 1),
		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(bg).
			Background(accent).
			Padding(0, 1),
		prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Prompt)).Bold(true),
		standard:  lipgloss.NewStyle().Foreground(fg),
		errorLine: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		info:      lipgloss.NewStyle().Foreground(accent),
		editorFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		editorTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		helpFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		footerKey:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		footerDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// line picks the style for an output kind.
func (s styles) line(kind model.OutputKind) lipgloss.Style {
	switch kind {
	case model.Error:
		return s.errorLine
	case model.Success:
		return s.success
	case model.Info:
		return s.info
	default:
		return s.standard
	}
}

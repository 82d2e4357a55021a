package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"termsim/internal/model"
	"termsim/internal/shell"
	"termsim/internal/vfs"
)

func newTestModel() AppModel {
	now := time.Date(2025, 4, 26, 9, 30, 0, 0, time.UTC)
	ids := 0
	sh := shell.New(
		shell.WithClock(func() time.Time { return now }),
		shell.WithIDs(func() string { ids++; return fmt.Sprintf("tab-%d", ids) }),
		shell.WithLogger(zap.NewNop()),
	)
	ctrl := shell.NewController(sh, shell.NewState("classic", now))
	m := InitialModel(ctrl, "testhost")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(AppModel)
}

func send(m AppModel, msgs ...tea.Msg) AppModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func lastLine(m AppModel) string {
	lines := m.Controller().State().Active().Scrollback
	return lines[len(lines)-1].Content
}

func TestTypeAndRun(t *testing.T) {
	m := send(newTestModel(), typeText("echo hi there"), enter)
	if got := lastLine(m); got != "hi there" {
		t.Fatalf("last line = %q", got)
	}
	if m.Input.Value() != "" {
		t.Fatalf("input should be cleared, got %q", m.Input.Value())
	}
	if !strings.Contains(m.View(), "hi there") {
		t.Fatalf("view should show the output")
	}
}

func TestHeader(t *testing.T) {
	m := send(newTestModel(), typeText("cd /etc"), enter)
	view := m.View()
	if !strings.Contains(view, "/etc - Classic Theme") {
		t.Fatalf("header missing from view:\n%s", view)
	}
	if !strings.Contains(view, "user@testhost") {
		t.Fatalf("hostname missing from view")
	}

	m = send(m, typeText("theme retro"), enter)
	if !strings.Contains(m.View(), "/etc - Retro Theme") {
		t.Fatalf("theme change not reflected in header")
	}
}

func TestTabCompletionCycles(t *testing.T) {
	m := send(newTestModel(), typeText("c"), tab)
	if got := m.Input.Value(); got != "clear" {
		t.Fatalf("first completion = %q", got)
	}
	m = send(m, tab)
	if got := m.Input.Value(); got != "cd" {
		t.Fatalf("second completion = %q", got)
	}

	// Typing ends the cycle and the next tab starts over from the new input
	m = send(m, typeText(" d"), tab)
	if got := m.Input.Value(); got != "cd documents/" {
		t.Fatalf("path completion = %q", got)
	}
}

func TestHistoryKeys(t *testing.T) {
	m := send(newTestModel(),
		typeText("echo one"), enter,
		typeText("echo two"), enter,
		up,
	)
	if got := m.Input.Value(); got != "echo two" {
		t.Fatalf("up = %q", got)
	}
	m = send(m, up)
	if got := m.Input.Value(); got != "echo one" {
		t.Fatalf("up twice = %q", got)
	}
	m = send(m, down, down)
	if got := m.Input.Value(); got != "" {
		t.Fatalf("down past newest = %q", got)
	}
}

func TestTabKeys(t *testing.T) {
	m := send(newTestModel(), tea.KeyMsg{Type: tea.KeyCtrlT})
	st := m.Controller().State()
	if len(st.Sessions) != 2 || st.ActiveID != "tab-1" {
		t.Fatalf("ctrl+t should open a tab")
	}
	if !strings.Contains(m.View(), "Terminal 1") {
		t.Fatalf("tab bar should show the new tab")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	if got := m.Controller().State().ActiveID; got != shell.DefaultSessionID {
		t.Fatalf("ctrl+right should wrap, active = %s", got)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
	if got := m.Controller().State().ActiveID; got != "tab-1" {
		t.Fatalf("ctrl+left, active = %s", got)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	if st := m.Controller().State(); len(st.Sessions) != 1 || st.ActiveID != shell.DefaultSessionID {
		t.Fatalf("ctrl+w should close the active tab")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	if len(m.Controller().State().Sessions) != 1 {
		t.Fatalf("the last tab must stay open")
	}
}

func TestEditorSave(t *testing.T) {
	m := send(newTestModel(), typeText("touch notes.txt"), enter, typeText("edit notes.txt"), enter)
	if !m.editing {
		t.Fatalf("editor should be open")
	}
	if !strings.Contains(m.View(), "Editing: notes.txt") {
		t.Fatalf("view should show the editor title")
	}

	m = send(m, typeText("hello"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.editing {
		t.Fatalf("ctrl+s should close the editor")
	}
	n, err := vfs.Resolve(m.Controller().State().FS, "/home/user/notes.txt", "/")
	if err != nil || n.Content != "hello" {
		t.Fatalf("file not saved: %v %v", n, err)
	}
	if got := lastLine(m); got != "File saved: notes.txt" {
		t.Fatalf("last line = %q", got)
	}
}

func TestEditorCancel(t *testing.T) {
	m := send(newTestModel(), typeText("edit .bashrc"), enter)
	before := m.Controller().State().FS
	m = send(m, typeText("junk"), esc)
	if m.editing || m.Controller().State().Editor.Open {
		t.Fatalf("esc should close the editor")
	}
	if m.Controller().State().FS != before {
		t.Fatalf("cancel must not write")
	}

	// The prompt has focus again
	m = send(m, typeText("pwd"), enter)
	if got := lastLine(m); got != "/home/user" {
		t.Fatalf("pwd = %q", got)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := send(newTestModel(), tea.KeyMsg{Type: tea.KeyF1})
	if !m.ShowHelp {
		t.Fatalf("f1 should open help")
	}
	if !strings.Contains(m.View(), "Commands") {
		t.Fatalf("help overlay should show the guide")
	}

	// Keys go to the overlay, not the prompt
	m = send(m, typeText("x"))
	if m.Input.Value() != "" {
		t.Fatalf("prompt received a key while help was open")
	}
	m = send(m, esc)
	if m.ShowHelp {
		t.Fatalf("esc should close help")
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newTestModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c should quit")
	}
}

func TestClearEmptiesScrollback(t *testing.T) {
	m := send(newTestModel(), typeText("echo visible"), enter, typeText("clear"), enter)
	if got := m.Controller().State().Active().Scrollback; len(got) != 0 {
		t.Fatalf("scrollback = %v", got)
	}
	if strings.Contains(m.View(), "visible") {
		t.Fatalf("cleared output still rendered")
	}
}

func TestThemeStylesFollowState(t *testing.T) {
	m := send(newTestModel(), typeText("theme light"), enter)
	light, _ := model.LookupTheme("light")
	if got := m.styles.base.GetBackground(); got != lipgloss.Color(light.Background) {
		t.Fatalf("scrollback background = %v, want %s", got, light.Background)
	}
	if !strings.Contains(m.View(), "Theme changed to light") {
		t.Fatalf("scrollback should still render after a theme change")
	}
}

package shell

import (
	"slices"
	"strings"
	"testing"
)

func sessionIDs(st State) []string {
	ids := make([]string, 0, len(st.Sessions))
	for _, s := range st.Sessions {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestNewTab(t *testing.T) {
	sh := newTestShell()
	st := run(sh, newTestState(), "cd /etc")
	st = sh.NewTab(st)

	if len(st.Sessions) != 2 || st.ActiveID != "tab-1" {
		t.Fatalf("unexpected sessions %v active=%s", sessionIDs(st), st.ActiveID)
	}
	active := st.Active()
	if active.Title != "Terminal 1" {
		t.Fatalf("title = %q", active.Title)
	}
	if active.Directory != "/etc" {
		t.Fatalf("new tab should inherit the current directory, got %q", active.Directory)
	}
	if len(active.Scrollback) != 1 || active.Scrollback[0].Content != WelcomeMessage {
		t.Fatalf("new tab should start with the welcome line")
	}
	if active.HistoryIndex != -1 || len(active.CommandHistory) != 0 {
		t.Fatalf("new tab should start with empty history")
	}

	st = sh.NewTab(st)
	if got := st.Active().Title; got != "Terminal 2" {
		t.Fatalf("title = %q", got)
	}
}

func TestCloseLastTabIsNoop(t *testing.T) {
	st := newTestState()
	next := CloseTab(st, DefaultSessionID)
	if len(next.Sessions) != 1 || next.ActiveID != DefaultSessionID {
		t.Fatalf("closing the only tab must be a no-op")
	}
	if got := CloseTab(st, "missing"); len(got.Sessions) != 1 {
		t.Fatalf("closing an unknown tab must be a no-op")
	}
}

func TestCloseTabActivation(t *testing.T) {
	sh := newTestShell()
	st := newTestState()
	for range 3 {
		st = sh.NewTab(st)
	}
	// default, tab-1, tab-2, tab-3

	cases := []struct {
		name       string
		active     string
		close      string
		wantActive string
		wantIDs    []string
	}{
		{"middle active", "tab-1", "tab-1", "tab-2", []string{"default", "tab-2", "tab-3"}},
		{"last active", "tab-3", "tab-3", "tab-2", []string{"default", "tab-1", "tab-2"}},
		{"first active", "default", "default", "tab-1", []string{"tab-1", "tab-2", "tab-3"}},
		{"inactive", "tab-2", "default", "tab-2", []string{"tab-1", "tab-2", "tab-3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CloseTab(SwitchTab(st, tc.active), tc.close)
			if got.ActiveID != tc.wantActive {
				t.Fatalf("active = %s, want %s", got.ActiveID, tc.wantActive)
			}
			if ids := sessionIDs(got); !slices.Equal(ids, tc.wantIDs) {
				t.Fatalf("sessions = %v, want %v", ids, tc.wantIDs)
			}
		})
	}

	if len(st.Sessions) != 4 {
		t.Fatalf("CloseTab modified its input")
	}
}

func TestSwitchAndCycleTabs(t *testing.T) {
	sh := newTestShell()
	st := sh.NewTab(sh.NewTab(newTestState()))
	// default, tab-1, tab-2 with tab-2 active

	if got := SwitchTab(st, "nope"); got.ActiveID != "tab-2" {
		t.Fatalf("switching to an unknown tab should be ignored")
	}
	if got := SwitchTab(st, DefaultSessionID); got.ActiveID != DefaultSessionID {
		t.Fatalf("switch failed")
	}
	if got := CycleTab(st, 1); got.ActiveID != DefaultSessionID {
		t.Fatalf("cycling forward should wrap, got %s", got.ActiveID)
	}
	if got := CycleTab(st, -1); got.ActiveID != "tab-1" {
		t.Fatalf("cycling back = %s", got.ActiveID)
	}
	if got := CycleTab(SwitchTab(st, DefaultSessionID), -1); got.ActiveID != "tab-2" {
		t.Fatalf("cycling back from the first tab should wrap, got %s", got.ActiveID)
	}
}

func TestHistoryNavigation(t *testing.T) {
	sh := newTestShell()
	st := newTestState()

	if _, _, ok := HistoryUp(st); ok {
		t.Fatalf("up with empty history should do nothing")
	}

	st = run(sh, st, "echo a", "echo b")
	steps := []struct {
		up     bool
		want   string
		wantOK bool
	}{
		{true, "echo b", true},
		{true, "echo a", true},
		{true, "echo a", true}, // stays on the oldest
		{false, "echo b", true},
		{false, "", true}, // past the newest clears the line
		{false, "", false},
	}
	for i, step := range steps {
		var got string
		var ok bool
		if step.up {
			st, got, ok = HistoryUp(st)
		} else {
			st, got, ok = HistoryDown(st)
		}
		if got != step.want || ok != step.wantOK {
			t.Fatalf("step %d: got (%q, %v), want (%q, %v)", i, got, ok, step.want, step.wantOK)
		}
	}
	if st.Active().HistoryIndex != -1 {
		t.Fatalf("index = %d after leaving navigation", st.Active().HistoryIndex)
	}
}

func TestHistoryCursorResets(t *testing.T) {
	sh := newTestShell()
	st := run(sh, newTestState(), "echo a", "echo b")
	st, _, _ = HistoryUp(st)
	if st.Active().HistoryIndex != 0 {
		t.Fatalf("index = %d", st.Active().HistoryIndex)
	}
	if got := ResetHistoryCursor(st); got.Active().HistoryIndex != -1 {
		t.Fatalf("reset did not clear the cursor")
	}
	if got := sh.Exec(st, "pwd"); got.Active().HistoryIndex != -1 {
		t.Fatalf("executing should clear the cursor")
	}
}

func TestHistoryIsPerTab(t *testing.T) {
	sh := newTestShell()
	st := sh.Exec(newTestState(), "echo first")
	st = sh.NewTab(st)
	if _, _, ok := HistoryUp(st); ok {
		t.Fatalf("a new tab should have nothing to recall")
	}
	st = SwitchTab(st, DefaultSessionID)
	if _, got, _ := HistoryUp(st); !strings.HasPrefix(got, "echo first") {
		t.Fatalf("recall = %q", got)
	}
}

package shell

import (
	"strings"
	"sync"
	"testing"

	"termsim/internal/vfs"
)

func resolveDir(st State, p string) (*vfs.Node, error) {
	return vfs.Resolve(st.FS, p, vfs.Root)
}

func TestControllerExec(t *testing.T) {
	c := NewController(newTestShell(), newTestState())
	st := c.Exec("mkdir work")
	if _, err := resolveDir(st, "/home/user/work"); err != nil {
		t.Fatal(err)
	}
	if c.State().FS != st.FS {
		t.Fatalf("controller should hold the returned state")
	}
}

func TestControllerTabs(t *testing.T) {
	c := NewController(newTestShell(), newTestState())
	st := c.NewTab()
	id := st.ActiveID
	if len(st.Sessions) != 2 {
		t.Fatalf("expected two tabs")
	}
	c.CycleTab(1)
	if c.State().ActiveID != DefaultSessionID {
		t.Fatalf("cycle should wrap to the first tab")
	}
	c.SwitchTab(id)
	if got := c.CloseTab(id); len(got.Sessions) != 1 || got.ActiveID != DefaultSessionID {
		t.Fatalf("unexpected state after close: %v", sessionIDs(got))
	}
}

func TestControllerHistory(t *testing.T) {
	c := NewController(newTestShell(), newTestState())
	c.Exec("echo one")
	c.Exec("echo two")

	if got, ok := c.HistoryUp(); !ok || got != "echo two" {
		t.Fatalf("up = %q %v", got, ok)
	}
	if got, ok := c.HistoryUp(); !ok || got != "echo one" {
		t.Fatalf("up = %q %v", got, ok)
	}
	c.ResetHistoryCursor()
	if got, ok := c.HistoryDown(); ok || got != "" {
		t.Fatalf("down after reset = %q %v", got, ok)
	}
}

func TestControllerEditor(t *testing.T) {
	c := NewController(newTestShell(), newTestState())
	c.Exec("touch notes.txt")
	if st := c.Exec("edit notes.txt"); !st.Editor.Open {
		t.Fatalf("editor should be open")
	}
	if _, saved := c.SaveEditor("remember"); !saved {
		t.Fatalf("save should report a write")
	}
	if _, saved := c.SaveEditor("again"); saved {
		t.Fatalf("a second save has no editor to write from")
	}
	st := c.Exec("cat notes.txt")
	if got := tail(st, 1)[0].Content; got != "remember" {
		t.Fatalf("cat = %q", got)
	}

	c.Exec("edit notes.txt")
	if st := c.CancelEditor(); st.Editor.Open {
		t.Fatalf("editor should be closed")
	}
}

func TestControllerCompletion(t *testing.T) {
	c := NewController(newTestShell(), newTestState())
	if got := c.Complete("wh"); len(got) != 1 || got[0] != "whoami" {
		t.Fatalf("complete = %q", got)
	}
	first, ok := c.NextCompletion("c")
	if !ok || first != "clear" || !c.Completing() {
		t.Fatalf("first completion = %q %v", first, ok)
	}
	if next, _ := c.NextCompletion("c"); next != "cd" {
		t.Fatalf("second completion = %q", next)
	}
	c.ResetCompletion()
	if c.Completing() {
		t.Fatalf("reset should stop the cycle")
	}
}

func TestControllerConcurrentExec(t *testing.T) {
	c := NewController(newTestShell(), newTestState())
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Exec("mkdir d" + strings.Repeat("x", i))
		}()
	}
	wg.Wait()

	st := c.State()
	if got := len(st.Active().Scrollback); got != 21 {
		t.Fatalf("scrollback = %d, want welcome plus 20 echoes", got)
	}
	home, err := resolveDir(st, "/home/user")
	if err != nil {
		t.Fatal(err)
	}
	// documents, pictures, .bashrc and the twenty new directories
	if n := len(home.Children()); n != 23 {
		t.Fatalf("children = %d, want 23", n)
	}
}

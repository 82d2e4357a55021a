package shell

import (
	"sync"

	"termsim/internal/metrics"
)

// Controller owns the application State and is the single entry point for
// changing it. Every method replaces the whole state value; readers get
// snapshots. The mutex lets the HTTP front end share one controller across
// requests.
type Controller struct {
	mu     sync.Mutex
	shell  *Shell
	state  State
	cycler Cycler
}

// NewController takes ownership of st.
func NewController(sh *Shell, st State) *Controller {
	c := &Controller{shell: sh, state: st}
	c.observe()
	return c
}

func (c *Controller) observe() {
	metrics.SetFilesystemNodes(c.state.FS.Count())
	metrics.SetSessionsOpen(len(c.state.Sessions))
}

func (c *Controller) apply(fn func(State) State) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.state
	c.state = fn(c.state)
	if c.state.FS != prev.FS || len(c.state.Sessions) != len(prev.Sessions) {
		c.observe()
	}
	return c.state
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Exec runs one command line in the active tab.
func (c *Controller) Exec(input string) State {
	return c.apply(func(st State) State { return c.shell.Exec(st, input) })
}

// NewTab opens and activates a tab.
func (c *Controller) NewTab() State {
	return c.apply(c.shell.NewTab)
}

// CloseTab closes the tab with the given id.
func (c *Controller) CloseTab(id string) State {
	return c.apply(func(st State) State { return CloseTab(st, id) })
}

// SwitchTab activates the tab with the given id.
func (c *Controller) SwitchTab(id string) State {
	return c.apply(func(st State) State { return SwitchTab(st, id) })
}

// CycleTab moves the active tab by delta.
func (c *Controller) CycleTab(delta int) State {
	return c.apply(func(st State) State { return CycleTab(st, delta) })
}

// HistoryUp recalls an older command of the active tab.
func (c *Controller) HistoryUp() (string, bool) {
	var input string
	var ok bool
	c.apply(func(st State) State {
		st, input, ok = HistoryUp(st)
		return st
	})
	return input, ok
}

// HistoryDown recalls a newer command of the active tab.
func (c *Controller) HistoryDown() (string, bool) {
	var input string
	var ok bool
	c.apply(func(st State) State {
		st, input, ok = HistoryDown(st)
		return st
	})
	return input, ok
}

// ResetHistoryCursor leaves history navigation.
func (c *Controller) ResetHistoryCursor() {
	c.apply(ResetHistoryCursor)
}

// SaveEditor writes the editor content and closes the overlay. It reports
// false when no editor was open, checked under the same lock as the write.
func (c *Controller) SaveEditor(content string) (State, bool) {
	var saved bool
	st := c.apply(func(st State) State {
		saved = st.Editor.Open
		return c.shell.SaveEditor(st, content)
	})
	return st, saved
}

// CancelEditor closes the overlay without writing.
func (c *Controller) CancelEditor() State {
	return c.apply(CancelEditor)
}

// Complete lists completion candidates for input.
func (c *Controller) Complete(input string) []string {
	return Complete(input, c.State(), c.shell.registry)
}

// NextCompletion cycles through completions for input.
func (c *Controller) NextCompletion(input string) (string, bool) {
	st := c.State()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cycler.Next(input, st, c.shell.registry)
}

// Completing reports whether a completion cycle is in progress.
func (c *Controller) Completing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cycler.Active()
}

// ResetCompletion drops the completion cycle.
func (c *Controller) ResetCompletion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cycler.Reset()
}

package shell

import (
	"fmt"
	"slices"
)

// NewTab opens a tab in the current directory and makes it active.
func (sh *Shell) NewTab(st State) State {
	s := newSession(sh.newID(), fmt.Sprintf("Terminal %d", len(st.Sessions)), st.CurrentDirectory(), sh.now())
	st.Sessions = append(slices.Clip(st.Sessions), s)
	st.ActiveID = s.ID
	return st
}

// CloseTab removes the tab with the given id. The last remaining tab cannot
// be closed; closing the active tab activates the one that slides into its
// position, or the new last tab.
func CloseTab(st State, id string) State {
	idx := slices.IndexFunc(st.Sessions, func(s Session) bool { return s.ID == id })
	if idx == -1 || len(st.Sessions) <= 1 {
		return st
	}
	sessions := slices.Delete(slices.Clone(st.Sessions), idx, idx+1)
	if id == st.ActiveID {
		st.ActiveID = sessions[min(idx, len(sessions)-1)].ID
	}
	st.Sessions = sessions
	return st
}

// SwitchTab activates the tab with the given id, if it exists.
func SwitchTab(st State, id string) State {
	if slices.ContainsFunc(st.Sessions, func(s Session) bool { return s.ID == id }) {
		st.ActiveID = id
	}
	return st
}

// CycleTab moves the active tab by delta positions, wrapping around.
func CycleTab(st State, delta int) State {
	n := len(st.Sessions)
	if n == 0 {
		return st
	}
	idx := ((st.activeIndex()+delta)%n + n) % n
	st.ActiveID = st.Sessions[idx].ID
	return st
}

// HistoryUp recalls the next older command of the active tab. ok is false
// when there is nothing to recall.
func HistoryUp(st State) (next State, input string, ok bool) {
	s := st.Active()
	n := len(s.CommandHistory)
	if n == 0 {
		return st, "", false
	}
	idx := s.HistoryIndex
	if idx < n-1 {
		idx++
	}
	if idx < 0 {
		return st, "", false
	}
	st = st.withActive(func(s *Session) { s.HistoryIndex = idx })
	return st, s.CommandHistory[n-1-idx].Command, true
}

// HistoryDown walks back towards the newest command; stepping past it clears
// the input and leaves navigation.
func HistoryDown(st State) (next State, input string, ok bool) {
	s := st.Active()
	switch {
	case s.HistoryIndex > 0:
		idx := s.HistoryIndex - 1
		st = st.withActive(func(s *Session) { s.HistoryIndex = idx })
		return st, s.CommandHistory[len(s.CommandHistory)-1-idx].Command, true
	case s.HistoryIndex == 0:
		st = st.withActive(func(s *Session) { s.HistoryIndex = -1 })
		return st, "", true
	}
	return st, "", false
}

// ResetHistoryCursor leaves history navigation on the active tab.
func ResetHistoryCursor(st State) State {
	if st.Active().HistoryIndex == -1 {
		return st
	}
	return st.withActive(func(s *Session) { s.HistoryIndex = -1 })
}

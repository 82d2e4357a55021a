package shell

import (
	"slices"
	"time"

	"termsim/internal/model"
	"termsim/internal/vfs"
)

// DefaultSessionID is the id of the tab every run starts with.
const DefaultSessionID = "default"

// WelcomeMessage is the first line of every new tab.
const WelcomeMessage = `Welcome to termsim! Type "help" to see available commands.`

// Session is one terminal tab.
type Session struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Scrollback     []model.OutputLine  `json:"scrollback"`
	CommandHistory []model.HistoryItem `json:"commandHistory"`
	HistoryIndex   int                 `json:"historyIndex"` // -1 when not navigating
	Directory      string              `json:"directory"`
	PrevDirectory  string              `json:"prevDirectory,omitempty"`
}

// EditorState describes the edit overlay.
type EditorState struct {
	Open    bool   `json:"open"`
	Path    string `json:"path,omitempty"` // absolute
	Content string `json:"content,omitempty"`
}

// State is the whole application state. It is a value: operations in this
// package take a State and return a new one without modifying the slices or
// the tree reachable from the old value.
type State struct {
	Theme    string              `json:"theme"`
	Sessions []Session           `json:"sessions"`
	ActiveID string              `json:"activeId"`
	FS       *vfs.Node           `json:"fs"`
	History  []model.HistoryItem `json:"history"`
	Editor   EditorState         `json:"editor"`
}

func newSession(id, title, dir string, now time.Time) Session {
	return Session{
		ID:           id,
		Title:        title,
		Scrollback:   []model.OutputLine{line(now, model.Info, WelcomeMessage)},
		HistoryIndex: -1,
		Directory:    dir,
	}
}

// NewState returns the start-up state: the seed tree and a single tab in
// the home directory.
func NewState(theme string, now time.Time) State {
	if _, ok := model.LookupTheme(theme); !ok {
		theme = model.DefaultTheme
	}
	return State{
		Theme:    theme,
		Sessions: []Session{newSession(DefaultSessionID, "Terminal", vfs.HomeDir, now)},
		ActiveID: DefaultSessionID,
		FS:       vfs.Seed(now),
	}
}

func (st State) activeIndex() int {
	for i, s := range st.Sessions {
		if s.ID == st.ActiveID {
			return i
		}
	}
	return 0
}

// Active returns the active session.
func (st State) Active() Session {
	return st.Sessions[st.activeIndex()]
}

// CurrentDirectory is the active session's working directory.
func (st State) CurrentDirectory() string {
	return st.Active().Directory
}

// CurrentTheme resolves the theme name to its palette.
func (st State) CurrentTheme() model.Theme {
	t, ok := model.LookupTheme(st.Theme)
	if !ok {
		t, _ = model.LookupTheme(model.DefaultTheme)
	}
	return t
}

// withActive returns a copy of st whose active session has been edited by fn.
func (st State) withActive(fn func(s *Session)) State {
	sessions := slices.Clone(st.Sessions)
	fn(&sessions[st.activeIndex()])
	st.Sessions = sessions
	return st
}

// appendLines adds lines to the active scrollback.
func (st State) appendLines(lines ...model.OutputLine) State {
	return st.withActive(func(s *Session) {
		s.Scrollback = append(slices.Clip(s.Scrollback), lines...)
	})
}

// record appends a history item to the active session and the global list.
func (st State) record(item model.HistoryItem) State {
	st = st.withActive(func(s *Session) {
		s.CommandHistory = append(slices.Clip(s.CommandHistory), item)
		s.HistoryIndex = -1
	})
	st.History = append(slices.Clip(st.History), item)
	return st
}

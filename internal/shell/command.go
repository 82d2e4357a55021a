// Package shell is the command interpreter: the command registry, the
// dispatcher that applies command results to State, tab and history
// management, and autocomplete.
package shell

import (
	"time"

	"termsim/internal/model"
)

// Command is one entry in the registry.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Execute(args []string, ctx *Context) Result
}

// Context is what a command sees while it runs. State is a snapshot and must
// not be modified; effects are requested through the returned Result.
type Context struct {
	State    *State
	Now      time.Time
	Registry *Registry
}

// Cwd returns the working directory of the active session.
func (c *Context) Cwd() string {
	return c.State.CurrentDirectory()
}

// Result is the tagged union a command returns. The dispatcher switches on
// its concrete type.
type Result interface {
	isResult()
}

// Lines is plain textual output.
type Lines []model.OutputLine

// ClearScreen empties the active scrollback.
type ClearScreen struct{}

// ChangeDirectory moves the active session to an existing directory.
type ChangeDirectory struct {
	Path string
}

// ChangeTheme switches to a known theme.
type ChangeTheme struct {
	Name string
}

// CreateDirectory asks for a new directory at Path. Operand is the name as
// the user typed it, used in error messages.
type CreateDirectory struct {
	Path    string
	Operand string
}

// CreateFile asks for Path to exist as a file, bumping its modified time if
// it already does.
type CreateFile struct {
	Path    string
	Operand string
}

// OpenEditor opens the editor overlay on an existing file.
type OpenEditor struct {
	Path    string
	Content string
}

func (Lines) isResult()           {}
func (ClearScreen) isResult()     {}
func (ChangeDirectory) isResult() {}
func (ChangeTheme) isResult()     {}
func (CreateDirectory) isResult() {}
func (CreateFile) isResult()      {}
func (OpenEditor) isResult()      {}

func line(now time.Time, kind model.OutputKind, content string) model.OutputLine {
	return model.OutputLine{Content: content, Kind: kind, Timestamp: now}
}

func output(now time.Time, kind model.OutputKind, content string) Lines {
	return Lines{line(now, kind, content)}
}

package shell

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"termsim/internal/logging"
	"termsim/internal/metrics"
	"termsim/internal/model"
	"termsim/internal/vfs"
)

// Shell runs commands against a State. It holds no state of its own besides
// the registry and its collaborators.
type Shell struct {
	registry *Registry
	now      func() time.Time
	newID    func() string
	log      *zap.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(sh *Shell) { sh.now = now }
}

// WithIDs overrides the tab id generator.
func WithIDs(newID func() string) Option {
	return func(sh *Shell) { sh.newID = newID }
}

// WithLogger overrides the logger.
func WithLogger(l *zap.Logger) Option {
	return func(sh *Shell) { sh.log = l }
}

// WithRegistry overrides the command set.
func WithRegistry(r *Registry) Option {
	return func(sh *Shell) { sh.registry = r }
}

// New returns a Shell with the built-in commands.
func New(opts ...Option) *Shell {
	sh := &Shell{
		registry: DefaultRegistry(),
		now:      time.Now,
		newID:    uuid.NewString,
		log:      logging.L(),
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Registry exposes the command set, for help screens and completion.
func (sh *Shell) Registry() *Registry {
	return sh.registry
}

// Now reads the shell's clock.
func (sh *Shell) Now() time.Time {
	return sh.now()
}

func hasError(lines []model.OutputLine) bool {
	for _, l := range lines {
		if l.Kind == model.Error {
			return true
		}
	}
	return false
}

// Exec runs one command line and returns the resulting state. Whitespace-only
// input returns st unchanged. Only textual results are recorded to history.
func (sh *Shell) Exec(st State, input string) State {
	name, args := ParseInput(strings.TrimSpace(input))
	if name == "" {
		return st
	}

	now := sh.now()
	cwd := st.CurrentDirectory()
	echo := line(now, model.Standard, model.IconPrompt+" "+input)

	cmd, ok := sh.registry.Lookup(name)
	if !ok {
		sh.log.Debug("unknown command", zap.String("command", name))
		metrics.RecordCommand(name, metrics.OutcomeUnknown)
		return st.appendLines(echo, line(now, model.Error, "command not found: "+name))
	}

	ctx := &Context{State: &st, Now: now, Registry: sh.registry}
	result := cmd.Execute(args, ctx)
	sh.log.Debug("command executed",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.String("cwd", cwd),
		zap.String("session", st.ActiveID),
	)

	var out Lines
	record := false
	switch r := result.(type) {
	case Lines:
		out = r
		record = true

	case ClearScreen:
		metrics.RecordCommand(name, metrics.OutcomeOK)
		return st.withActive(func(s *Session) {
			s.Scrollback = nil
			s.HistoryIndex = -1
		})

	case ChangeDirectory:
		st = st.withActive(func(s *Session) {
			s.PrevDirectory = s.Directory
			s.Directory = r.Path
		})

	case ChangeTheme:
		st.Theme = r.Name
		out = output(now, model.Success, "Theme changed to "+r.Name)

	case CreateDirectory:
		root, err := vfs.Mkdir(st.FS, r.Path, now)
		if err != nil {
			sh.log.Warn("mkdir rejected", zap.String("path", r.Path), zap.Error(err))
			out = output(now, model.Error, mkdirError(r.Operand, err))
		} else {
			st.FS = root
		}

	case CreateFile:
		root, err := vfs.Touch(st.FS, r.Path, now)
		if err != nil {
			sh.log.Warn("touch rejected", zap.String("path", r.Path), zap.Error(err))
			out = output(now, model.Error, touchError(r.Operand))
		} else {
			st.FS = root
		}

	case OpenEditor:
		st.Editor = EditorState{Open: true, Path: r.Path, Content: r.Content}

	default:
		sh.log.Error("unhandled command result", zap.String("command", name))
		return st
	}

	outcome := metrics.OutcomeOK
	if hasError(out) {
		outcome = metrics.OutcomeError
	}
	metrics.RecordCommand(name, outcome)

	st = st.appendLines(append(Lines{echo}, out...)...)
	if !record {
		return st
	}
	return st.record(model.HistoryItem{
		Command:          input,
		Output:           out,
		WorkingDirectory: cwd,
		Timestamp:        now,
	})
}

// SaveEditor writes content to the file open in the editor and closes it.
func (sh *Shell) SaveEditor(st State, content string) State {
	if !st.Editor.Open {
		return st
	}
	now := sh.now()
	path := st.Editor.Path
	st.Editor = EditorState{}

	root, err := vfs.WriteFile(st.FS, path, content, now)
	if err != nil {
		sh.log.Warn("editor save rejected", zap.String("path", path), zap.Error(err))
		reason := "No such file"
		if errors.Is(err, vfs.ErrIsDirectory) {
			reason = "Is a directory"
		}
		return st.appendLines(line(now, model.Error, "edit: "+path+": "+reason))
	}
	st.FS = root
	_, name := vfs.Split(path)
	return st.appendLines(line(now, model.Success, "File saved: "+name))
}

// CancelEditor closes the editor without writing.
func CancelEditor(st State) State {
	st.Editor = EditorState{}
	return st
}

// Package batch runs command scripts without the terminal UI.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"termsim/internal/logging"
	"termsim/internal/model"
	"termsim/internal/shell"
)

// Run executes every command line read from r, in order, in the active tab.
func Run(ctrl *shell.Controller, r io.Reader) error {
	lines, errs := shell.ReadScript(r)

	count := 0
	for line := range lines {
		ctrl.Exec(line)
		count++
	}
	if err := <-errs; err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	logging.L().Info("batch finished", zap.Int("commands", count))
	return nil
}

func prefix(kind model.OutputKind) string {
	switch kind {
	case model.Error:
		return model.IconError + " "
	case model.Success:
		return model.IconSuccess + " "
	default:
		return ""
	}
}

// Render formats scrollback lines as plain text, marking errors and
// successes with an icon.
func Render(lines []model.OutputLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(prefix(l.Kind))
		b.WriteString(l.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// WriteText writes the active tab's scrollback to w.
func WriteText(w io.Writer, st shell.State) error {
	_, err := io.WriteString(w, Render(st.Active().Scrollback))
	return err
}

// WriteJSON writes the whole state to w as indented JSON.
func WriteJSON(w io.Writer, st shell.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

package shell

import (
	"strings"

	"termsim/internal/model"
	"termsim/internal/vfs"
)

// pathCommands take a path as their last argument and get path completion.
var pathCommands = map[string]bool{
	"cd":   true,
	"cat":  true,
	"ls":   true,
	"edit": true,
}

// Complete proposes full replacement inputs for a partially typed line.
func Complete(input string, st State, reg *Registry) []string {
	parts := strings.Split(input, " ")
	last := parts[len(parts)-1]

	// Still typing the command name
	if len(parts) == 1 {
		var out []string
		for _, name := range reg.Names() {
			if strings.HasPrefix(name, last) {
				out = append(out, name)
			}
		}
		return out
	}

	if !pathCommands[parts[0]] {
		return nil
	}

	cwd := st.CurrentDirectory()
	dir := cwd
	prefix := ""
	if i := strings.LastIndex(last, "/"); i != -1 {
		prefix = last[:i+1]
		dirPart := last[:i]
		if dirPart == "" {
			dirPart = vfs.Root
		}
		dir = vfs.ToAbsolute(dirPart, cwd)
	}

	node, err := vfs.Resolve(st.FS, dir, vfs.Root)
	if err != nil || !node.IsDir() {
		return nil
	}

	head := strings.Join(parts[:len(parts)-1], " ") + " "
	partial := last[len(prefix):]
	var out []string
	for _, child := range node.Children() {
		if !strings.HasPrefix(child.Name, partial) {
			continue
		}
		candidate := prefix + child.Name
		if child.IsDir() {
			candidate += model.IconDirSuffix
		}
		out = append(out, head+candidate)
	}
	return out
}

// Cycler steps through completion candidates on repeated requests. Any other
// keystroke should call Reset.
type Cycler struct {
	candidates []string
	index      int
}

// Next returns the next candidate for input, computing the list on the
// first call. ok is false when there are no candidates.
func (c *Cycler) Next(input string, st State, reg *Registry) (string, bool) {
	if len(c.candidates) == 0 {
		c.candidates = Complete(input, st, reg)
		c.index = 0
		if len(c.candidates) == 0 {
			return input, false
		}
		return c.candidates[0], true
	}
	c.index = (c.index + 1) % len(c.candidates)
	return c.candidates[c.index], true
}

// Active reports whether a candidate list is being cycled.
func (c *Cycler) Active() bool {
	return len(c.candidates) > 0
}

// Candidates returns the current candidate list.
func (c *Cycler) Candidates() []string {
	return c.candidates
}

// Reset drops the candidate list.
func (c *Cycler) Reset() {
	c.candidates = nil
	c.index = 0
}

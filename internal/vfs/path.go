package vfs

import (
	"fmt"
	"path"
	"strings"
)

// Root is the absolute path of the tree root.
const Root = "/"

// ToAbsolute turns a user-typed path into a normalized absolute path relative
// to cwd. Popping past the root stays at the root.
func ToAbsolute(p, cwd string) string {
	switch {
	case strings.HasPrefix(p, "/"):
		return path.Clean(p)
	case p == "" || p == ".":
		return cwd
	case p == "..":
		return path.Dir(cwd)
	}
	return path.Join(cwd, p)
}

// Split returns the parent directory and the final segment of an absolute
// path. The root has an empty name.
func Split(abs string) (parent, name string) {
	if abs == Root {
		return Root, ""
	}
	idx := strings.LastIndex(abs, "/")
	if idx == -1 {
		return Root, abs
	}
	parent = abs[:idx]
	if parent == "" {
		parent = Root
	}
	return parent, abs[idx+1:]
}

// segments returns the non-empty segments of an absolute path.
func segments(abs string) []string {
	if abs == Root {
		return nil
	}
	return strings.Split(strings.TrimPrefix(abs, "/"), "/")
}

// Resolve walks the tree from root to the node named by p.
func Resolve(root *Node, p, cwd string) (*Node, error) {
	abs := ToAbsolute(p, cwd)
	current := root
	for _, seg := range segments(abs) {
		if !current.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		next := current.Child(seg)
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		current = next
	}
	return current, nil
}

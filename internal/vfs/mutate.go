package vfs

import (
	"fmt"
	"time"
)

// rebuild copies every directory from dir down to the parent named by segs
// and lets fn edit that parent copy. Untouched siblings are shared with the
// old tree.
func rebuild(dir *Node, segs []string, name string, fn func(parent *Node, name string) error) (*Node, error) {
	if !dir.IsDir() {
		return nil, ErrNotDirectory
	}
	cp := dir.clone()
	if len(segs) == 0 {
		if err := fn(cp, name); err != nil {
			return nil, err
		}
		return cp, nil
	}
	child := dir.Child(segs[0])
	if child == nil {
		return nil, ErrNotFound
	}
	nc, err := rebuild(child, segs[1:], name, fn)
	if err != nil {
		return nil, err
	}
	cp.replace(nc)
	return cp, nil
}

func update(root *Node, abs string, fn func(parent *Node, name string) error) (*Node, error) {
	parent, name := Split(abs)
	newRoot, err := rebuild(root, segments(parent), name, fn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, abs)
	}
	return newRoot, nil
}

// Mkdir returns a new root with an empty directory at abs.
func Mkdir(root *Node, abs string, now time.Time) (*Node, error) {
	if abs == Root {
		return nil, fmt.Errorf("%w: %s", ErrExists, abs)
	}
	return update(root, abs, func(parent *Node, name string) error {
		if parent.Child(name) != nil {
			return ErrExists
		}
		parent.children = append(parent.children, NewDir(name, Metadata{
			Created:     now,
			Modified:    now,
			Permissions: PermDir,
			Owner:       DefaultOwner,
		}))
		return nil
	})
}

// Touch returns a new root where abs exists. An existing node only gets its
// modified time bumped; otherwise an empty file is created.
func Touch(root *Node, abs string, now time.Time) (*Node, error) {
	if abs == Root {
		cp := root.clone()
		cp.Metadata.Modified = now
		return cp, nil
	}
	return update(root, abs, func(parent *Node, name string) error {
		if existing := parent.Child(name); existing != nil {
			nc := existing.clone()
			nc.Metadata.Modified = now
			parent.replace(nc)
			return nil
		}
		parent.children = append(parent.children, NewFile(name, "", Metadata{
			Created:     now,
			Modified:    now,
			Permissions: PermFile,
			Owner:       DefaultOwner,
		}))
		return nil
	})
}

// WriteFile returns a new root where the existing file at abs holds content.
func WriteFile(root *Node, abs, content string, now time.Time) (*Node, error) {
	if abs == Root {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, abs)
	}
	return update(root, abs, func(parent *Node, name string) error {
		existing := parent.Child(name)
		if existing == nil {
			return ErrNotFound
		}
		if existing.IsDir() {
			return ErrIsDirectory
		}
		nc := existing.clone()
		nc.Content = content
		nc.Metadata.Modified = now
		parent.replace(nc)
		return nil
	})
}

// Package vfs implements the in-memory filesystem tree shared by every
// terminal session.
//
// Nodes are treated as immutable once they are reachable from a root: every
// mutation in mutate.go copies the directories along the changed path and
// returns a new root, so a State value holding an older root never observes
// later edits.
package vfs

import (
	"encoding/json"
	"slices"
	"time"
)

// Kind tells files and directories apart.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// Default permission strings and owner for nodes created at runtime.
const (
	PermDir      = "rwxr-xr-x"
	PermFile     = "rw-r--r--"
	DefaultOwner = "user"
)

// Metadata is informational only; nothing enforces it.
type Metadata struct {
	Created     time.Time
	Modified    time.Time
	Permissions string
	Owner       string
}

// Node is a file or a directory. Directory children keep insertion order.
type Node struct {
	Name     string
	Kind     Kind
	Content  string // files only
	Metadata Metadata

	children []*Node
}

// NewDir builds a directory node owning the given children.
func NewDir(name string, md Metadata, children ...*Node) *Node {
	return &Node{Name: name, Kind: Directory, Metadata: md, children: children}
}

// NewFile builds a file node.
func NewFile(name, content string, md Metadata) *Node {
	return &Node{Name: name, Kind: File, Content: content, Metadata: md}
}

func (n *Node) IsDir() bool {
	return n.Kind == Directory
}

// Child returns the named child or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Children returns the children in insertion order. The returned slice is a
// copy; the nodes themselves must not be modified.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

func (n *Node) clone() *Node {
	c := *n
	c.children = slices.Clone(n.children)
	return &c
}

// replace swaps the same-named child for nc.
func (n *Node) replace(nc *Node) {
	for i, c := range n.children {
		if c.Name == nc.Name {
			n.children[i] = nc
			return
		}
	}
}

type nodeJSON struct {
	Name        string      `json:"name"`
	Kind        string      `json:"kind"`
	Content     *string     `json:"content,omitempty"`
	Permissions string      `json:"permissions"`
	Owner       string      `json:"owner"`
	Created     time.Time   `json:"created"`
	Modified    time.Time   `json:"modified"`
	Children    []*nodeJSON `json:"children,omitempty"`
}

func (n *Node) toJSON() *nodeJSON {
	out := &nodeJSON{
		Name:        n.Name,
		Kind:        n.Kind.String(),
		Permissions: n.Metadata.Permissions,
		Owner:       n.Metadata.Owner,
		Created:     n.Metadata.Created,
		Modified:    n.Metadata.Modified,
	}
	if n.IsDir() {
		out.Children = make([]*nodeJSON, 0, len(n.children))
		for _, c := range n.children {
			out.Children = append(out.Children, c.toJSON())
		}
	} else {
		content := n.Content
		out.Content = &content
	}
	return out
}

// MarshalJSON renders the subtree with children as an ordered array.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

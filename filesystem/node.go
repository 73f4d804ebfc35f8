package filesystem

import (
	"github.com/brettbedarf/dirsh"
	"github.com/brettbedarf/dirsh/internal/util"
)

var _ dirsh.NodeInfo = (*Node)(nil)

// NodeID is a handle into a [Tree]'s node table. Zero is never allocated.
type NodeID uint64

// RootID is the handle of every tree's root directory
const RootID NodeID = 1

// Node is a directory or a file in a [Tree].
//
// Nodes are only created through a directory's Create methods (or [NewTree]
// for the root) so a Node always carries a validated name.
type Node struct {
	id       NodeID
	name     string   // Validated at creation, never mutated
	kind     Kind
	parent   NodeID   // Owning directory; 0 for the root
	children []NodeID // Directories only, insertion order
	fs       *Tree
}

// NodeID returns the node's handle in its tree
func (n *Node) NodeID() uint64 {
	return uint64(n.id)
}

// Name returns the node's immutable Name.
func (n *Node) Name() string {
	return n.name
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) IsDir() bool {
	return n.kind == DirKind
}

func (n *Node) IsRoot() bool {
	return n.parent == 0
}

// Parent returns the owning directory or nil for the root
func (n *Node) Parent() *Node {
	if n.parent == 0 {
		return nil
	}
	p, _ := n.fs.nodes.Load(n.parent)
	return p
}

// DisplayName is the name followed by the kind's path suffix ("docs/", "a.txt")
func (n *Node) DisplayName() string {
	return n.name + n.kind.PathSuffix()
}

// FullPath returns every ancestor's display name from the root down to and
// including this node, i.e. "alice/docs/notes.txt".
func (n *Node) FullPath() string {
	p := n.Parent()
	if p == nil {
		return n.DisplayName()
	}
	return p.FullPath() + n.DisplayName()
}

// Children returns the child nodes in insertion order; nil for files
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	nodes := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		if child, ok := n.fs.nodes.Load(id); ok {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

// ListChildren returns the display names of the children in insertion order
func (n *Node) ListChildren() []string {
	children := n.Children()
	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.DisplayName())
	}
	return names
}

// FindChild looks a child up by exact name. A single trailing "/" is ignored
// so "docs/" finds "docs".
func (n *Node) FindChild(name string) (*Node, bool) {
	return n.lookup(trimDirSlash(name))
}

// lookup scans children for an exact name match
func (n *Node) lookup(name string) (*Node, bool) {
	for _, child := range n.Children() {
		if child.name == name {
			return child, true
		}
	}
	return nil, false
}

// CreateSubdirectory appends a new directory child. A single trailing "/" is
// stripped from name first.
//
// Fails with [ErrDuplicateName] if a child of any kind already has the name and
// with [ErrInvalidName] if it holds characters outside [BaseAllowedCharacters].
func (n *Node) CreateSubdirectory(name string) (*Node, error) {
	return n.create("mkdir", DirKind, trimDirSlash(name))
}

// CreateFile appends a new file child.
//
// Fails with [ErrDuplicateName], [ErrInvalidName] or [ErrReservedName] for "."
// and "..".
func (n *Node) CreateFile(name string) (*Node, error) {
	return n.create("touch", FileKind, name)
}

// create checks for siblings before constructing so a failure never mutates n
func (n *Node) create(op string, kind Kind, name string) (*Node, error) {
	logger := util.GetLogger("Node.create")

	if !n.IsDir() {
		return nil, &NameError{Op: op, Name: name, Err: ErrNotADirectory}
	}
	if _, exists := n.lookup(name); exists {
		err := &NameError{Op: op, Name: name, Err: ErrDuplicateName}
		logger.Debug().Err(err).Str("parent", n.FullPath()).Msg("Child already exists")
		return nil, err
	}

	child, err := n.fs.newNode(op, kind, name, n.id)
	if err != nil {
		logger.Debug().Err(err).Str("parent", n.FullPath()).Msg("Failed to construct node")
		return nil, err
	}
	n.children = append(n.children, child.id)

	logger.Debug().Str("path", child.FullPath()).Stringer("kind", kind).Msg("Added new node")
	return child, nil
}

package filesystem

import (
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/brettbedarf/dirsh"
	"github.com/brettbedarf/dirsh/internal/util"
)

// Tree is a root directory, the table of every node reachable from it, and the
// shell's current directory cursor.
//
// NOTE: Tree is meant to be driven from a single goroutine. The node table is
// safe for concurrent reads but mutations of a directory's children are not
// synchronized.
type Tree struct {
	id     uuid.UUID                 // Session ID attached to logs
	root   *Node                     // Root of node tree
	cwd    *Node                     // Current directory; always a live directory
	lastID atomic.Uint64             // Last NodeID assigned; incremented when new nodes are created
	nodes  *xsync.Map[NodeID, *Node] // maps NodeIDs to Nodes
	logger util.Logger
}

// NewTree creates a tree whose root directory is named rootName, usually the
// user's name. The name is validated like any directory name.
func NewTree(rootName string) (*Tree, error) {
	t := &Tree{
		id:    uuid.New(),
		nodes: xsync.NewMap[NodeID, *Node](),
	}
	t.logger = util.GetLogger("Tree").With().Stringer("tree", t.id).Logger()

	root, err := t.newNode("root", DirKind, rootName, 0)
	if err != nil {
		return nil, err
	}
	t.root = root
	t.cwd = root
	t.logger.Debug().Str("root", root.FullPath()).Msg("Tree initialized")
	return t, nil
}

// ID returns the tree's session ID
func (t *Tree) ID() uuid.UUID {
	return t.id
}

func (t *Tree) Root() *Node {
	return t.root
}

// Cwd returns the current directory
func (t *Tree) Cwd() *Node {
	return t.cwd
}

// Node returns the node registered under id
func (t *Tree) Node(id NodeID) (*Node, bool) {
	return t.nodes.Load(id)
}

// Len returns the number of nodes in the tree, root included
func (t *Tree) Len() int {
	return t.nodes.Size()
}

// Cd moves the cursor.
//
// ".." moves to the parent and is a no-op at the root, "/" moves to the root,
// anything else is looked up among the current directory's children.
func (t *Tree) Cd(name string) error {
	switch name {
	case "..":
		if p := t.cwd.Parent(); p != nil {
			t.cwd = p
		}
	case "/":
		t.cwd = t.root
	default:
		child, ok := t.cwd.FindChild(name)
		if !ok {
			return &NameError{Op: "cd", Name: name, Err: ErrNotFound}
		}
		if !child.IsDir() {
			return &NameError{Op: "cd", Name: name, Err: ErrNotADirectory}
		}
		t.cwd = child
	}
	t.logger.Trace().Str("cwd", t.cwd.FullPath()).Msg("Changed directory")
	return nil
}

// AddNode creates the node described by req below the root. It will add any
// missing directories in the path and return the newly created leaf node.
//
// Directory leaves behave like `mkdir -p`: an existing directory is returned
// as is. Any other existing leaf fails with [ErrDuplicateName] and a file in
// the middle of the path with [ErrNotADirectory]. The whole path is checked
// first so a failing request leaves the tree untouched.
func (t *Tree) AddNode(req *dirsh.NodeRequest) (*Node, error) {
	logger := t.logger.With().Str("op", "AddNode").Str("path", req.Path).Logger()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	segments := strings.Split(strings.Trim(req.Path, "/"), "/")
	for _, seg := range segments {
		if seg == "" {
			return nil, &NameError{Op: "add", Name: req.Path, Err: ErrInvalidName}
		}
	}
	dirs, leaf := segments[:len(segments)-1], segments[len(segments)-1]
	kind := FileKind
	if req.Type == dirsh.DirNodeType {
		kind = DirKind
	}

	// Walk the part of the path that already exists
	cur := t.root
	for len(dirs) > 0 {
		child, ok := cur.lookup(dirs[0])
		if !ok {
			break
		}
		if !child.IsDir() {
			return nil, &NameError{Op: "add", Name: child.FullPath(), Err: ErrNotADirectory}
		}
		cur, dirs = child, dirs[1:]
	}
	if len(dirs) == 0 {
		if child, ok := cur.lookup(leaf); ok {
			if kind == DirKind && child.IsDir() {
				return child, nil
			}
			return nil, &NameError{Op: "add", Name: child.FullPath(), Err: ErrDuplicateName}
		}
	}
	for _, name := range dirs {
		if err := validateNew("add", DirKind, name); err != nil {
			logger.Debug().Err(err).Msg("Rejected ancestor directory")
			return nil, err
		}
	}
	if err := validateNew("add", kind, leaf); err != nil {
		logger.Debug().Err(err).Msg("Rejected leaf")
		return nil, err
	}

	for _, name := range dirs {
		next, err := cur.CreateSubdirectory(name)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	if kind == DirKind {
		return cur.CreateSubdirectory(leaf)
	}
	return cur.CreateFile(leaf)
}

// newNode validates name for kind and registers the node. Nothing is
// registered on failure.
func (t *Tree) newNode(op string, kind Kind, name string, parent NodeID) (*Node, error) {
	if err := validateNew(op, kind, name); err != nil {
		return nil, err
	}

	node := &Node{
		id:     NodeID(t.lastID.Add(1)),
		name:   name,
		kind:   kind,
		parent: parent,
		fs:     t,
	}
	t.nodes.Store(node.id, node)
	return node, nil
}
